package seed

// Source is a deterministic Mulberry32 generator seeded from a string.
// Two sources built from the same string produce identical sequences,
// which keeps terrain, colors, and collectible spawns reproducible for
// a shared session seed.
type Source struct {
	state uint32
}

// NewSource folds the seed string into a 32-bit state and returns a
// generator positioned at the start of its sequence.
func NewSource(seed string) *Source {
	var h uint32 = 1779033703
	for i := 0; i < len(seed); i++ {
		h = (h ^ uint32(seed[i])) * 3432918353
		h = h<<13 | h>>19
	}
	return &Source{state: h}
}

// Next returns the next value in [0, 1).
func (s *Source) Next() float64 {
	s.state += 0x6D2B79F5
	z := s.state
	z = (z ^ z>>15) * (z | 1)
	z ^= z + (z^z>>7)*(z|61)
	z ^= z >> 14
	return float64(z) / 4294967296.0
}

// Float64In returns a value uniformly drawn from [lo, hi).
func (s *Source) Float64In(lo, hi float64) float64 {
	return lo + s.Next()*(hi-lo)
}

// IntN returns a value uniformly drawn from [0, n). n must be > 0.
func (s *Source) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	v := int(s.Next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}
