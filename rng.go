package demofolio

// All randomness in this package flows through Hash64 and RNG so that
// identical (user, scope, timeframe, bucket) tuples reproduce identical
// output across process runs and platforms.

const (
	fnvOffsetBasis = 14695981039346656037
	fnvPrime       = 1099511628211

	lcgMultiplier = 6364136223846793005

	// substituted for a zero seed, an all-zero LCG state never leaves zero.
	defaultSeed = 0x9E3779B97F4A7C15
)

// Hash64 returns the FNV-1a hash of s.
func Hash64(s string) uint64 {
	var h uint64 = fnvOffsetBasis
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime
	}
	return h
}

// RNG is a linear-congruential generator. It is cheap, has no shared state,
// and produces the same sequence for the same seed everywhere.
type RNG struct {
	state uint64
}

// NewRNG returns a generator seeded with seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = defaultSeed
	}
	return &RNG{state: seed}
}

// NewKeyedRNG returns a generator seeded from the hash of key.
func NewKeyedRNG(key string) *RNG {
	return NewRNG(Hash64(key))
}

// Uint64 advances the generator and returns the next value.
func (r *RNG) Uint64() uint64 {
	r.state = r.state*lcgMultiplier + 1
	return r.state
}

// Float64 returns the next value mapped into [lo, hi].
func (r *RNG) Float64(lo, hi float64) float64 {
	unit := float64(r.Uint64()) / float64(^uint64(0))
	return lo + unit*(hi-lo)
}

// Bool returns the next value as a coin flip.
func (r *RNG) Bool() bool {
	return r.Uint64()&1 == 1
}
