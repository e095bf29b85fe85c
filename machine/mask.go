package machine

import "math/bits"

// MaxCounters is the largest number of indicator lights (and therefore
// counters) a single machine may declare.
const MaxCounters = 128

// A Mask is a fixed-width set of counter indices. It is comparable, so it can
// be used directly as a map key when searching over indicator states.
// The zero value is the empty set.
type Mask struct {
	lo, hi uint64
}

// With returns a copy of m with bit i set. i must be in [0, MaxCounters).
func (m Mask) With(i int) Mask {
	if i < 64 {
		m.lo |= 1 << uint(i)
	} else {
		m.hi |= 1 << uint(i-64)
	}
	return m
}

// Has returns true iff bit i is set.
func (m Mask) Has(i int) bool {
	if i < 64 {
		return m.lo&(1<<uint(i)) != 0
	}
	return m.hi&(1<<uint(i-64)) != 0
}

// Xor returns the symmetric difference of m and other.
// Pressing a toggle button is an Xor in state space.
func (m Mask) Xor(other Mask) Mask {
	return Mask{lo: m.lo ^ other.lo, hi: m.hi ^ other.hi}
}

// Overlaps returns true iff m and other share at least one bit.
func (m Mask) Overlaps(other Mask) bool {
	return m.lo&other.lo != 0 || m.hi&other.hi != 0
}

// IsZero returns true iff no bit is set.
func (m Mask) IsZero() bool {
	return m.lo == 0 && m.hi == 0
}

// Count returns the number of bits set.
func (m Mask) Count() int {
	return bits.OnesCount64(m.lo) + bits.OnesCount64(m.hi)
}

// Bits returns the indices of all set bits below n, in increasing order.
func (m Mask) Bits(n int) []int {
	res := make([]int, 0, m.Count())
	for i := 0; i < n; i++ {
		if m.Has(i) {
			res = append(res, i)
		}
	}
	return res
}

// Less orders masks as 128-bit integers. Used to normalize button order
// before deduplication.
func (m Mask) Less(other Mask) bool {
	if m.hi != other.hi {
		return m.hi < other.hi
	}
	return m.lo < other.lo
}
