package demofolio

import (
	"encoding/json"
	"fmt"
)

// AccountKind is the closed set of account types the catalog knows about.
type AccountKind int

const (
	Checking AccountKind = iota
	Savings
	Investment
	Retirement
	Crypto
	CreditCard
	Loan
)

func (k AccountKind) String() string {
	switch k {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case Investment:
		return "investment"
	case Retirement:
		return "retirement"
	case Crypto:
		return "crypto"
	case CreditCard:
		return "credit-card"
	case Loan:
		return "loan"
	default:
		return "unknown"
	}
}

// ParseAccountKind parses a string into an AccountKind.
func ParseAccountKind(s string) (AccountKind, error) {
	switch s {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	case "investment":
		return Investment, nil
	case "retirement":
		return Retirement, nil
	case "crypto":
		return Crypto, nil
	case "credit-card":
		return CreditCard, nil
	case "loan":
		return Loan, nil
	default:
		return 0, fmt.Errorf("unknown account kind: %q", s)
	}
}

// IsLiability reports whether balances of this kind are debt; their current
// balance is expected to be negative.
func (k AccountKind) IsLiability() bool {
	return k == CreditCard || k == Loan
}

// AssetClass buckets account kinds for allocation charts.
type AssetClass int

const (
	Cash AssetClass = iota
	Stocks
	CryptoAssets
	Other
)

func (c AssetClass) String() string {
	switch c {
	case Cash:
		return "cash"
	case Stocks:
		return "stocks"
	case CryptoAssets:
		return "crypto"
	default:
		return "other"
	}
}

// AssetClasses lists every class in display order.
func AssetClasses() []AssetClass { return []AssetClass{Cash, Stocks, CryptoAssets, Other} }

// AssetClass maps the kind onto its allocation bucket.
func (k AccountKind) AssetClass() AssetClass {
	switch k {
	case Checking, Savings:
		return Cash
	case Investment, Retirement:
		return Stocks
	case Crypto:
		return CryptoAssets
	default:
		return Other
	}
}

// volatilityFactor scales a timeframe's base volatility for this kind.
func (k AccountKind) volatilityFactor() float64 {
	switch k {
	case Investment:
		return 1.25
	case Crypto:
		return 1.60
	case CreditCard, Loan:
		return 0.55
	case Checking, Savings:
		return 0.35
	case Retirement:
		return 0.90
	default:
		return 1.0
	}
}

// balanceRange is the plausible current-balance interval used when a linked
// account descriptor carries no balance. Liability ranges are negative.
func (k AccountKind) balanceRange() (lo, hi float64) {
	switch k {
	case Checking:
		return 800, 18_500
	case Savings:
		return 1_500, 42_000
	case Investment:
		return 5_000, 120_000
	case Retirement:
		return 10_000, 250_000
	case Crypto:
		return 200, 30_000
	case CreditCard:
		return -9_500, -200
	default: // Loan
		return -45_000, -1_000
	}
}

func (k AccountKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *AccountKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseAccountKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
