package demofolio

import (
	"sort"
	"time"
)

// AccountContribution attributes a share of a portfolio move to one account.
type AccountContribution struct {
	AccountName     string
	InstitutionName string
	Kind            AccountKind
	Contribution    Money   // the account's own end minus start over the timeframe
	PercentOfChange Percent // share of the total absolute portfolio delta
	IsPositive      bool
}

// PerformanceSummary holds the starting value, the synthesized series and the
// calculated change for one scope over one timeframe.
type PerformanceSummary struct {
	Timeframe  Timeframe
	StartValue Money
	EndValue   Money
	Points     []TimeSeriesPoint
	KeyMovers  []AccountContribution
}

// Change returns the summary's end minus start.
func (p *PerformanceSummary) Change() Money {
	return p.EndValue.Sub(p.StartValue)
}

// PerformanceSummary computes the performance view for the whole portfolio,
// or for one account when accountID is non-empty. The end value equals the
// scope's current balance exactly. Key movers are attributed only on the
// portfolio scope. An unknown account or an empty catalog yields an empty
// summary.
func (s *System) PerformanceSummary(userKey string, tf Timeframe, accountID string, now time.Time) *PerformanceSummary {
	b := s.bundle(userKey)
	summary := &PerformanceSummary{Timeframe: tf}
	if len(b.Accounts) == 0 {
		return summary
	}

	var current Money
	var scope Scope
	if accountID != "" {
		a := b.Account(accountID)
		if a == nil {
			return summary
		}
		current = a.CurrentBalance
		scope = AccountScope(*a)
	} else {
		current = b.TotalBalance()
		scope = PortfolioScope()
	}

	summary.Points = GenerateSeries(b.UserKey, tf, now, current, scope)
	summary.StartValue = summary.Points[0].Value
	summary.EndValue = summary.Points[len(summary.Points)-1].Value
	if accountID == "" {
		summary.KeyMovers = keyMovers(b, tf, now)
	}
	return summary
}

// keyMovers ranks the accounts by the magnitude of their own move over the
// timeframe and keeps the top three. Each mover's share is taken against the
// sum of all absolute account deltas, so no single share can exceed 100%.
// A flat portfolio (zero total absolute delta) has no movers.
func keyMovers(b *Bundle, tf Timeframe, now time.Time) []AccountContribution {
	type mover struct {
		account      Account
		contribution Money
	}
	movers := make([]mover, 0, len(b.Accounts))
	totalAbs := M(0, b.Currency())
	for _, a := range b.Accounts {
		points := GenerateSeries(b.UserKey, tf, now, a.CurrentBalance, AccountScope(a))
		contribution := points[len(points)-1].Value.Sub(points[0].Value)
		movers = append(movers, mover{account: a, contribution: contribution})
		totalAbs = totalAbs.Add(contribution.Abs())
	}
	if totalAbs.IsZero() {
		return nil
	}

	sort.SliceStable(movers, func(i, j int) bool {
		return movers[i].contribution.Abs().GreaterThan(movers[j].contribution.Abs())
	})
	if len(movers) > 3 {
		movers = movers[:3]
	}

	contributions := make([]AccountContribution, 0, len(movers))
	for _, m := range movers {
		share := 100 * m.contribution.Abs().AsFloat() / totalAbs.AsFloat()
		contributions = append(contributions, AccountContribution{
			AccountName:     m.account.DisplayName,
			InstitutionName: m.account.InstitutionName,
			Kind:            m.account.Kind,
			Contribution:    m.contribution,
			PercentOfChange: Percent(share),
			IsPositive:      !m.contribution.IsNegative(),
		})
	}
	return contributions
}
