package collide

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// Default parameters for the stock XOR and multiplicative candidates.
const (
	DefaultXORMask   = 0x2A
	DefaultMulFactor = 0x9E
)

// Identity returns the hash h(x) = x.
func Identity() Func {
	return func(x int) int { return x }
}

// XOR returns the hash h(x) = x ^ mask. XOR with a fixed mask is a bijection
// on the domain, so it relabels buckets without ever merging them.
func XOR(mask int) Func {
	return func(x int) int { return x ^ mask }
}

// Multiplicative returns the truncating 8-bit multiply h(x) = (x*factor) & 0xFF.
func Multiplicative(factor int) Func {
	return func(x int) int { return (x * factor) & 0xFF }
}

// BitReverse8 returns a hash that reverses the low 8 bits of its input.
// Bits above bit 7 are ignored. The returned function is an involution on
// the domain: applying it twice yields the original value.
func BitReverse8() Func {
	return func(x int) int { return int(bits.Reverse8(uint8(x))) }
}

// NewPermutation builds a random-permutation hash: the identity sequence
// over [0, 256) is shuffled once with rnd and the returned Func closes over
// the resulting lookup table. All evaluations in a run therefore see the
// same permutation; build a new candidate to draw a fresh one.
func NewPermutation(rnd *rand.Rand) Func {
	table := make([]int, DomainSize)
	for i := range table {
		table[i] = i
	}
	rnd.Shuffle(len(table), func(i, j int) {
		table[i], table[j] = table[j], table[i]
	})
	return func(x int) int { return table[x&0xFF] }
}

// PermutationFromTable builds a lookup hash from a fixed table, for
// reproducible permutations. The table must hold every value of [0, 256)
// exactly once.
func PermutationFromTable(table []int) (Func, error) {
	if len(table) != DomainSize {
		return nil, fmt.Errorf("permutation table must have %d entries, has %d", DomainSize, len(table))
	}
	var seen [DomainSize]bool
	for i, v := range table {
		if v < 0 || v >= DomainSize {
			return nil, fmt.Errorf("permutation table entry %d out of range: %d", i, v)
		}
		if seen[v] {
			return nil, fmt.Errorf("permutation table is not a bijection: value %d appears twice", v)
		}
		seen[v] = true
	}
	lookup := make([]int, DomainSize)
	copy(lookup, table)
	return func(x int) int { return lookup[x&0xFF] }, nil
}

// XXHash returns a candidate that mixes the input's low byte through
// xxhash64, as a full-strength reference point for the toy candidates.
// The 64-bit sum is truncated to int; bucket reduction uses the low bits.
func XXHash() Func {
	return func(x int) int {
		b := [1]byte{byte(x)}
		return int(xxhash.Sum64(b[:]))
	}
}
