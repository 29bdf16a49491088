package demofolio

import (
	"time"

	"github.com/google/uuid"
)

// RankedAccount is one account's performance entry over a timeframe, carrying
// everything the comparison screens display. The set is returned in catalog
// order; sorting into leaders and laggards is the caller's concern.
type RankedAccount struct {
	ID              uuid.UUID // stable derived history id, see StableID
	AccountName     string
	InstitutionName string
	BrandColorHex   string
	CurrentBalance  Money
	PreviousBalance Money
	AbsoluteGain    Money
	PercentageGain  Percent
	History         []TimeSeriesPoint
}

// RankedAccounts computes a performance entry for every account in the
// user's catalog. Every entry has a full synthesized history; there is no
// insufficient-data bucket to populate.
func (s *System) RankedAccounts(userKey string, tf Timeframe, now time.Time) []RankedAccount {
	b := s.bundle(userKey)

	ranked := make([]RankedAccount, 0, len(b.Accounts))
	for _, a := range b.Accounts {
		points := GenerateSeries(b.UserKey, tf, now, a.CurrentBalance, AccountScope(a))
		start := points[0].Value
		end := points[len(points)-1].Value
		gain := end.Sub(start)

		var percentage Percent
		if !start.IsZero() {
			percentage = Percent(100 * gain.AsFloat() / start.AsFloat())
		}

		var brand string
		if inst := b.Institution(a.InstitutionID); inst != nil {
			brand = inst.BrandColorHex
		}

		ranked = append(ranked, RankedAccount{
			ID:              StableID(b.UserKey, a.ID),
			AccountName:     a.DisplayName,
			InstitutionName: a.InstitutionName,
			BrandColorHex:   brand,
			CurrentBalance:  a.CurrentBalance,
			PreviousBalance: start,
			AbsoluteGain:    gain,
			PercentageGain:  percentage,
			History:         points,
		})
	}
	return ranked
}
