// Package randbits generates deterministic pseudo-random bit sequences
// and position sets for the benchmark harness and its tests, mirroring
// the seeded XorShiftRng used by the original Rust RLE+ tests
// (filecoin-project/bitsets) so repeated runs are reproducible.
package randbits

import "golang.org/x/exp/rand"

// Dense returns n pseudo-random bits, each true with probability p, drawn
// from a generator seeded with seed.
func Dense(seed uint64, n int, p float64) []bool {
	rng := rand.New(rand.NewSource(seed))
	out := make([]bool, n)
	for i := range out {
		out[i] = rng.Float64() < p
	}
	return out
}

// Positions returns a strictly increasing sequence of n non-negative
// positions, with gaps drawn from [1, maxGap], suitable for driving
// concise.Builder.Append.
func Positions(seed uint64, n int, maxGap int) []int {
	if maxGap < 1 {
		maxGap = 1
	}
	rng := rand.New(rand.NewSource(seed))
	out := make([]int, n)
	pos := -1
	for i := range out {
		pos += 1 + rng.Intn(maxGap)
		out[i] = pos
	}
	return out
}

// PositionsFromDense converts a dense bit sequence into the sorted
// positions of its set bits, the representation concise.Builder expects.
func PositionsFromDense(bits []bool) []int {
	var out []int
	for i, b := range bits {
		if b {
			out = append(out, i)
		}
	}
	return out
}
