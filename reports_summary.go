package demofolio

import "time"

// AssetSlice is one asset class's share of the portfolio.
type AssetSlice struct {
	Class AssetClass
	Value Money
}

// PortfolioSummary is the at-a-glance dashboard view: totals, allocation and
// a short balance history.
type PortfolioSummary struct {
	UserKey         string
	Date            time.Time
	TotalBalance    Money
	InvestedCapital Money
	Allocation      []AssetSlice
	History         []TimeSeriesPoint
}

// PortfolioSummary aggregates the user's whole catalog on the given instant.
// With no bundle it returns zero totals and an empty history, never an error.
func (s *System) PortfolioSummary(userKey string, now time.Time) *PortfolioSummary {
	b := s.bundle(userKey)

	summary := &PortfolioSummary{
		UserKey: b.UserKey,
		Date:    now,
	}
	if len(b.Accounts) == 0 {
		return summary
	}

	summary.TotalBalance = b.TotalBalance()

	// Invested capital counts only money actually at work in markets:
	// positive balances of investment and crypto accounts.
	invested := M(0, b.Currency())
	for _, a := range b.Accounts {
		if (a.Kind == Investment || a.Kind == Crypto) && a.CurrentBalance.IsPositive() {
			invested = invested.Add(a.CurrentBalance)
		}
	}
	summary.InvestedCapital = invested

	// Allocation sums each asset class in display order, skipping classes
	// the user holds nothing in.
	byClass := make(map[AssetClass]Money)
	held := make(map[AssetClass]bool)
	for _, a := range b.Accounts {
		class := a.Kind.AssetClass()
		byClass[class] = byClass[class].Add(a.CurrentBalance)
		held[class] = true
	}
	for _, class := range AssetClasses() {
		if held[class] {
			summary.Allocation = append(summary.Allocation, AssetSlice{Class: class, Value: byClass[class]})
		}
	}

	// The dashboard chart reads the week-timeframe portfolio series as plain
	// balance points.
	summary.History = GenerateSeries(b.UserKey, Week, now, summary.TotalBalance, PortfolioScope())

	return summary
}
