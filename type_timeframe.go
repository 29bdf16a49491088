package demofolio

import (
	"fmt"
	"time"
)

// Timeframe selects the window and resolution of a generated series.
type Timeframe int

const (
	Day Timeframe = iota
	Week
	Month
	Year
	All
)

func (t Timeframe) String() string {
	switch t {
	case Day:
		return "day"
	case Week:
		return "week"
	case Month:
		return "month"
	case Year:
		return "year"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// ParseTimeframe parses a string into a Timeframe.
func ParseTimeframe(s string) (Timeframe, error) {
	switch s {
	case "day":
		return Day, nil
	case "week":
		return Week, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	case "all":
		return All, nil
	default:
		return 0, fmt.Errorf("unknown timeframe: %q", s)
	}
}

// Timeframes lists every timeframe in display order.
func Timeframes() []Timeframe { return []Timeframe{Day, Week, Month, Year, All} }

// Points returns the canonical number of points in a series for this timeframe.
func (t Timeframe) Points() int {
	switch t {
	case Day:
		return 24
	case Week:
		return 7
	case Month:
		return 30
	case Year:
		return 52
	default:
		return 36
	}
}

// StepBack returns the timestamp i steps back from now at this timeframe's
// resolution: hours for a day, days for a week or month, weeks for a year,
// months for the full history.
func (t Timeframe) StepBack(now time.Time, i int) time.Time {
	switch t {
	case Day:
		return now.Add(-time.Duration(i) * time.Hour)
	case Week, Month:
		return now.AddDate(0, 0, -i)
	case Year:
		return now.AddDate(0, 0, -7*i)
	default:
		return now.AddDate(0, -i, 0)
	}
}

// Bucket returns a coarse time index that changes at the timeframe's natural
// refresh cadence. Series are seeded from it, so repeated calls inside one
// bucket return identical series while the data still drifts over real time.
func (t Timeframe) Bucket(now time.Time) int {
	switch t {
	case Day:
		return now.Hour()
	case Week, Month:
		return now.Day()
	default:
		return int(now.Month())
	}
}

// volatility is the base per-step volatility of a generated series.
func (t Timeframe) volatility() float64 {
	switch t {
	case Day:
		return 0.002
	case Week:
		return 0.008
	case Month:
		return 0.010
	case Year:
		return 0.020
	default:
		return 0.028
	}
}
