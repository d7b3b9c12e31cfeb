/*
Package collide measures how candidate hash functions spread a small input
domain across buckets.

Given two hash functions over the fixed domain [0, 256) and a target bucket
count B, Evaluate tallies for every input value the pair (bucket under the
first hash, bucket under the second hash) into a B×B collision table.
Comparing each candidate against a fixed baseline this way makes clustering
and aliasing behavior visible at a glance: an identity-vs-identity table is
purely diagonal, a bijective candidate at full resolution yields a
permutation matrix, and a poor mixer shows banded structure.

Stock candidates cover the usual suspects (identity, fixed-table random
permutation, 8-bit bit-reversal, XOR with a constant, truncating
multiplicative hashing) plus xxhash64 as a full-strength reference point.
Candidates are plain function values; a Catalog maps display labels to
candidates and resolves abbreviated names.

Rendering is intentionally outside this package. The sibling package heatmap
turns collision tables into textual heat maps.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package collide

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'collide'
func tracer() tracing.Trace {
	return tracing.Select("collide")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
