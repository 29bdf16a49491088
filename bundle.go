package demofolio

import (
	"strings"
	"time"
)

// SchemaVersion is written into every persisted bundle. It is not yet checked
// on read.
const SchemaVersion = 1

// NormalizeUserKey canonicalizes a user key. All lookups, locks and derived
// seeds use the normalized form so "Alice@Example.com" and "alice@example.com"
// are the same user.
func NormalizeUserKey(userKey string) string {
	return strings.ToLower(strings.TrimSpace(userKey))
}

// Institution is a financial institution a user holds accounts with.
// Created at first link and immutable afterwards within a bundle.
type Institution struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	LogoRef       string `json:"logoRef"`
	BrandColorHex string `json:"brandColorHex"`
}

// Account is a single financial account. CurrentBalance is the generator's
// anchor value, not a ledger: it is set at creation and never edited by this
// package. Liability kinds carry a negative balance on purpose.
type Account struct {
	ID              string      `json:"id"`
	InstitutionID   string      `json:"institutionId"`
	InstitutionName string      `json:"institutionName"`
	DisplayName     string      `json:"displayName"`
	Kind            AccountKind `json:"kind"`
	MaskedNumber    string      `json:"maskedNumber"`
	CurrentBalance  Money       `json:"currentBalance"`
	CurrencyCode    string      `json:"currencyCode"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// Bundle is the full persisted record for one user: institutions, accounts
// and the seed everything deterministic is derived from. A bundle is created
// once by seeding and then only ever grows by upserts.
type Bundle struct {
	SchemaVersion int           `json:"schemaVersion"`
	UserKey       string        `json:"userKey"`
	CreatedAt     time.Time     `json:"createdAt"`
	BaseSeed      uint64        `json:"baseSeed"`
	Institutions  []Institution `json:"institutions"`
	Accounts      []Account     `json:"accounts"`
}

// Institution returns the institution with this id, or nil if unknown.
func (b *Bundle) Institution(id string) *Institution {
	for i := range b.Institutions {
		if b.Institutions[i].ID == id {
			return &b.Institutions[i]
		}
	}
	return nil
}

// InstitutionNamed returns the institution with this exact name, or nil.
func (b *Bundle) InstitutionNamed(name string) *Institution {
	for i := range b.Institutions {
		if b.Institutions[i].Name == name {
			return &b.Institutions[i]
		}
	}
	return nil
}

// Account returns the account with this id, or nil if unknown.
func (b *Bundle) Account(id string) *Account {
	for i := range b.Accounts {
		if b.Accounts[i].ID == id {
			return &b.Accounts[i]
		}
	}
	return nil
}

// AccountIDs returns the ids of all accounts in catalog order.
func (b *Bundle) AccountIDs() []string {
	ids := make([]string, 0, len(b.Accounts))
	for _, a := range b.Accounts {
		ids = append(ids, a.ID)
	}
	return ids
}

// AccountsOf returns the accounts belonging to one institution, in catalog order.
func (b *Bundle) AccountsOf(institutionID string) []Account {
	var accounts []Account
	for _, a := range b.Accounts {
		if a.InstitutionID == institutionID {
			accounts = append(accounts, a)
		}
	}
	return accounts
}

// TotalBalance sums every account's current balance, liabilities included.
func (b *Bundle) TotalBalance() Money {
	var total Money
	for _, a := range b.Accounts {
		total = total.Add(a.CurrentBalance)
	}
	return total
}

// Currency returns the bundle's reporting currency: the currency of its first
// account, or USD for an empty bundle.
func (b *Bundle) Currency() string {
	if len(b.Accounts) > 0 {
		return b.Accounts[0].CurrencyCode
	}
	return "USD"
}
