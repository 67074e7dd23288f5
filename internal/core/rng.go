package core

// XorShift32 is a small deterministic pseudo-random generator with 32-bit
// state. Games that need randomness own one of these so that a run is fully
// reproducible from its seed.
type XorShift32 struct {
	state uint32
}

// DefaultSeed is used when no seed is configured.
const DefaultSeed uint32 = 0xDEADBEEF

// NewXorShift32 creates a generator. A zero seed would lock the generator at
// zero forever, so it falls back to DefaultSeed.
func NewXorShift32(seed uint32) *XorShift32 {
	if seed == 0 {
		seed = DefaultSeed
	}
	return &XorShift32{state: seed}
}

// Next returns the next 32-bit value in the sequence.
func (r *XorShift32) Next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (r *XorShift32) Intn(n int) int {
	if n <= 0 {
		panic("core: Intn called with non-positive n")
	}
	return int(r.Next() % uint32(n))
}
