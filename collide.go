package collide

import (
	"errors"
	"fmt"
)

// DomainSize is the number of values in the input domain [0, DomainSize).
// The domain is fixed for a run; every evaluation scans it exactly once.
const DomainSize = 256

// Func is a candidate hash function: a pure, deterministic mapping from an
// integer in the input domain to an integer. The output range need not match
// the input range; bucket reduction only looks at the low bits.
type Func func(x int) int

// ErrInvalidBucketCount flags a non-positive bucket count passed to Evaluate.
var ErrInvalidBucketCount = errors.New("bucket count must be positive")

// Evaluate applies h1 and h2 to every value of the input domain and tallies
// which (bucket-of-h1, bucket-of-h2) pair each value falls into, returning
// the fully populated buckets×buckets collision table.
//
// Reduction from hash output to bucket index uses a bitmask when buckets is
// a power of two and an explicit modulo otherwise, so odd bucket counts do
// not silently alias buckets. Hash outputs are reduced as unsigned values.
//
// The total mass of the returned table always equals DomainSize: every input
// contributes exactly one increment. There are no partial results; on error
// the table is nil.
func Evaluate(h1, h2 Func, buckets int) (*Table, error) {
	if buckets <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBucketCount, buckets)
	}
	if h1 == nil || h2 == nil {
		return nil, errors.New("hash function must not be nil")
	}
	reduce := moduloReduce
	if buckets&(buckets-1) == 0 {
		reduce = maskReduce
	}
	tab := newTable(buckets)
	for x := 0; x < DomainSize; x++ {
		tab.add(reduce(h1(x), buckets), reduce(h2(x), buckets))
	}
	assert(tab.total == DomainSize, "collision table lost mass")
	stats := tab.Stats()
	tracer().Debugf("collision table buckets=%d nonzero=%d fill=%.2f max=%d diagonal=%d",
		buckets, stats.NonZero, stats.FillRatio(), stats.MaxCell, stats.Diagonal)
	return tab, nil
}

func maskReduce(h, buckets int) int {
	return int(uint(h) & uint(buckets-1))
}

func moduloReduce(h, buckets int) int {
	return int(uint(h) % uint(buckets))
}
