package demofolio

import (
	"fmt"
	"math"
	"time"
)

// This file owns the catalog lifecycle: the fixed first-run account set and
// the append-only upsert of linked institutions and accounts. Both are pure
// bundle mutations; persistence and locking live in System.

// InstitutionDescriptor describes an institution as the linking flow provides
// it, before the catalog derives its own id for it.
type InstitutionDescriptor struct {
	ExternalID    string
	Name          string
	LogoRef       string
	BrandColorHex string
}

// AccountDescriptor describes one account to link. A nil Balance means the
// catalog synthesizes a plausible one for the kind. CurrencyCode is the
// currency the descriptor declares its balance in; a bundle carries a single
// reporting currency, so foreign amounts are reinterpreted in it at upsert.
type AccountDescriptor struct {
	ExternalID   string
	DisplayName  string
	Kind         AccountKind
	MaskedNumber string
	Balance      *Money
	CurrencyCode string
}

const seedCurrency = "USD"

// newSeededBundle builds the first-run bundle for a user: a checking, a
// savings, an investment and one liability account. The liability is not
// decorative: without it, linking debt could never pull the aggregate balance
// down, which the product treats as a core behavior.
func newSeededBundle(userKey string, now time.Time) *Bundle {
	userKey = NormalizeUserKey(userKey)
	r := NewKeyedRNG("seed|" + userKey)

	b := &Bundle{
		SchemaVersion: SchemaVersion,
		UserKey:       userKey,
		CreatedAt:     now,
		BaseSeed:      Hash64("seed|" + userKey),
		Institutions: []Institution{
			{ID: "inst-harbor", Name: "Harbor National Bank", LogoRef: "harbor", BrandColorHex: "#1A6DBA"},
			{ID: "inst-ridgeline", Name: "Ridgeline Brokerage", LogoRef: "ridgeline", BrandColorHex: "#7A4BD0"},
			{ID: "inst-meridian", Name: "Meridian Card Services", LogoRef: "meridian", BrandColorHex: "#C03952"},
		},
	}

	seeds := []struct {
		id, name, institution string
		kind                  AccountKind
	}{
		{"seed-checking", "Everyday Checking", "inst-harbor", Checking},
		{"seed-savings", "Rainy Day Savings", "inst-harbor", Savings},
		{"seed-brokerage", "Brokerage Account", "inst-ridgeline", Investment},
		{"seed-card", "Meridian Rewards Card", "inst-meridian", CreditCard},
	}
	for _, s := range seeds {
		inst := b.Institution(s.institution)
		b.Accounts = append(b.Accounts, Account{
			ID:              s.id,
			InstitutionID:   inst.ID,
			InstitutionName: inst.Name,
			DisplayName:     s.name,
			Kind:            s.kind,
			MaskedNumber:    maskedNumber(r),
			CurrentBalance:  seededBalance(r, s.kind, seedCurrency),
			CurrencyCode:    seedCurrency,
			CreatedAt:       now,
		})
	}
	return b
}

// seededBalance draws a cent-rounded balance in the kind's plausible range.
func seededBalance(r *RNG, kind AccountKind, currency string) Money {
	lo, hi := kind.balanceRange()
	cents := math.Round(r.Float64(lo, hi) * 100)
	return M(cents/100, currency)
}

func maskedNumber(r *RNG) string {
	return fmt.Sprintf("%04d", r.Uint64()%10000)
}

// derivedInstitutionID builds the catalog id for a linked institution from
// its external id and a hash of its name.
func derivedInstitutionID(inst InstitutionDescriptor) string {
	return fmt.Sprintf("inst-%s-%08x", inst.ExternalID, uint32(Hash64(inst.Name)))
}

// upsertLinked appends the institution (unless one with the same derived id
// or name already exists) and every account whose id is not yet in the
// bundle. Existing accounts are never overwritten: retries are no-ops. It
// returns the ids of the accounts actually added and whether the institution
// itself is new.
func (b *Bundle) upsertLinked(inst InstitutionDescriptor, accounts []AccountDescriptor, now time.Time) (added []string, institutionAdded bool) {
	instID := derivedInstitutionID(inst)

	existing := b.Institution(instID)
	if existing == nil {
		existing = b.InstitutionNamed(inst.Name)
	}
	if existing == nil {
		b.Institutions = append(b.Institutions, Institution{
			ID:            instID,
			Name:          inst.Name,
			LogoRef:       inst.LogoRef,
			BrandColorHex: inst.BrandColorHex,
		})
		existing = b.Institution(instID)
		institutionAdded = true
	}

	// Every account joins in the bundle's reporting currency: aggregation
	// sums balances across the catalog and has no conversion rates.
	currency := b.Currency()
	for _, desc := range accounts {
		if b.Account(desc.ExternalID) != nil {
			continue // first write wins
		}

		var balance Money
		if desc.Balance != nil {
			balance = desc.Balance.In(currency)
		} else {
			r := NewKeyedRNG("balance|" + b.UserKey + "|" + desc.ExternalID)
			balance = seededBalance(r, desc.Kind, currency)
		}

		b.Accounts = append(b.Accounts, Account{
			ID:              desc.ExternalID,
			InstitutionID:   existing.ID,
			InstitutionName: existing.Name,
			DisplayName:     desc.DisplayName,
			Kind:            desc.Kind,
			MaskedNumber:    desc.MaskedNumber,
			CurrentBalance:  balance,
			CurrencyCode:    currency,
			CreatedAt:       now,
		})
		added = append(added, desc.ExternalID)
	}
	return added, institutionAdded
}
