package siege

// RNG is a deterministic pseudo-random number generator (64-bit LCG).
// Every random decision in a World goes through one RNG so a seed fully
// determines a run.
type RNG struct {
	state uint64
}

// NewRNG creates a generator from seed. A zero seed is replaced by 1.
func NewRNG(seed int64) *RNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &RNG{state: s}
}

// Next advances the generator and returns the raw state.
func (r *RNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1). Only the high 53 bits are used; the low
// bits of an LCG are weak.
func (r *RNG) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Intn returns a value in [0, n). It returns 0 for n <= 0.
func (r *RNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 33) % uint64(n)) //#nosec G115 -- n is positive
}

// State exposes the internal state for snapshots.
func (r *RNG) State() uint64 {
	return r.state
}
