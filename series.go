package demofolio

import (
	"fmt"
	"slices"
	"time"
)

// TimeSeriesPoint is a single synthesized balance observation. Series are
// ordered oldest to newest and never persisted: they are regenerated from
// their inputs on every call.
type TimeSeriesPoint struct {
	Time         time.Time
	Value        Money
	Interpolated bool
}

// Scope selects what a generated series covers: the whole portfolio or a
// single account.
type Scope struct {
	id        string
	factor    float64
	liability bool
}

// PortfolioScope covers the whole portfolio.
func PortfolioScope() Scope {
	return Scope{id: "portfolio", factor: 1.0}
}

// AccountScope covers one account, with that kind's volatility profile.
func AccountScope(a Account) Scope {
	return Scope{
		id:        a.ID,
		factor:    a.Kind.volatilityFactor(),
		liability: a.Kind.IsLiability(),
	}
}

// ID returns the scope's generation key ("portfolio" or the account id).
func (s Scope) ID() string { return s.id }

// GenerateSeries synthesizes the balance series for one scope and timeframe.
//
// The series is a random walk computed backward from now, starting at current,
// so the newest point is always exactly the scope's current balance. The
// generator is seeded from (user, scope, timeframe, time bucket): within one
// bucket repeated calls are identical, across buckets the history slowly
// drifts. Negative excursions are floored at zero after each step; the anchor
// itself is recorded before any step, so a liability's newest point keeps its
// negative balance.
func GenerateSeries(userKey string, tf Timeframe, now time.Time, current Money, scope Scope) []TimeSeriesPoint {
	userKey = NormalizeUserKey(userKey)
	r := NewKeyedRNG(fmt.Sprintf("perf|%s|%s|%s|%d", userKey, scope.id, tf, tf.Bucket(now)))

	volatility := tf.volatility() * scope.factor
	drift := r.Float64(-1, 1) * 0.0006
	if scope.liability {
		// gradual balance erosion on debt
		drift -= 0.0003
	}

	n := tf.Points()
	points := make([]TimeSeriesPoint, 0, n)
	value := current
	for i := 0; i < n; i++ {
		// The month view marks a short stretch of its history as
		// interpolated to demo the data-gap treatment.
		interpolated := tf == Month && i >= 12 && i <= 14
		points = append(points, TimeSeriesPoint{
			Time:         tf.StepBack(now, i),
			Value:        value,
			Interpolated: interpolated,
		})

		shock := r.Float64(-1.05, 1.20)
		step := value.MulFloat(volatility * shock)
		meanRevert := value.MulFloat(drift)
		value = value.Sub(step).Sub(meanRevert)
		if value.IsNegative() {
			value = M(0, current.Currency())
		}
	}

	// The walk accumulates newest first.
	slices.Reverse(points)
	return points
}
