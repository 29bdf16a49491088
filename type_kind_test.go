package demofolio

import "testing"

func TestAccountKindRoundTrip(t *testing.T) {
	kinds := []AccountKind{Checking, Savings, Investment, Retirement, Crypto, CreditCard, Loan}
	for _, k := range kinds {
		t.Run(k.String(), func(t *testing.T) {
			got, err := ParseAccountKind(k.String())
			if err != nil {
				t.Fatalf("ParseAccountKind(%q): %v", k.String(), err)
			}
			if got != k {
				t.Errorf("round trip %v -> %q -> %v", k, k.String(), got)
			}
		})
	}
	if _, err := ParseAccountKind("mortgage"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestAccountKindLiability(t *testing.T) {
	for _, k := range []AccountKind{CreditCard, Loan} {
		if !k.IsLiability() {
			t.Errorf("%v should be a liability", k)
		}
		lo, hi := k.balanceRange()
		if lo >= 0 || hi >= 0 {
			t.Errorf("%v balance range [%v, %v] should be negative", k, lo, hi)
		}
	}
	for _, k := range []AccountKind{Checking, Savings, Investment, Retirement, Crypto} {
		if k.IsLiability() {
			t.Errorf("%v should not be a liability", k)
		}
		lo, hi := k.balanceRange()
		if lo <= 0 || hi <= lo {
			t.Errorf("%v balance range [%v, %v] should be positive and ordered", k, lo, hi)
		}
	}
}

func TestAssetClassMapping(t *testing.T) {
	tests := []struct {
		kind  AccountKind
		class AssetClass
	}{
		{Checking, Cash},
		{Savings, Cash},
		{Investment, Stocks},
		{Retirement, Stocks},
		{Crypto, CryptoAssets},
		{CreditCard, Other},
		{Loan, Other},
	}
	for _, tt := range tests {
		if got := tt.kind.AssetClass(); got != tt.class {
			t.Errorf("%v.AssetClass() = %v, want %v", tt.kind, got, tt.class)
		}
	}
}
