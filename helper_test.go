package demofolio

import "testing"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// newTestSystem returns a System over a store in a fresh temp directory.
func newTestSystem(t *testing.T) *System {
	t.Helper()
	return NewSystem(NewStore(t.TempDir()))
}
