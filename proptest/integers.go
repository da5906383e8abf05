package proptest

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Choose generates a uniform integer in [lo, hi] (inclusive both ends),
// generic over any integer width via golang.org/x/exp/constraints.Integer
// rather than one hand-rolled function per type — the pack's own
// golang.org/x/exp dependency is what makes that generalization available
// without code generation or reflection.
//
// Children shrink by halves toward whichever of {0, lo, hi} sits closest to
// zero while staying in range: value − value/2^k for k = 0, 1, 2, … (so the
// target itself is the first candidate) until the term reaches zero, as
// spec.md §4.4 describes (generalized here so
// the same formula still terminates at the boundary when the range
// excludes zero).
func Choose[T constraints.Integer](lo, hi T) Generator[T] {
	if lo > hi {
		panic(NewInvalidArgument("Choose: lo (%v) > hi (%v)", lo, hi))
	}
	return func(r RNG, _ Size) RoseTree[T] {
		f, _ := r.Float64()
		span := float64(hi) - float64(lo) + 1
		v := lo + T(math.Floor(f*span))
		// Overflow/rounding fallback: clamp into range rather than trust
		// the double arithmetic at the extremes, per spec.md §4.4.
		if v > hi {
			v = hi
		}
		if v < lo {
			v = lo
		}
		return intShrinkRose(v, lo, hi)
	}
}

// intShrinkTarget picks the value closest to zero that still lies in
// [lo, hi]: zero itself when the range spans it, otherwise whichever bound
// is nearer to zero.
func intShrinkTarget[T constraints.Integer](lo, hi T) T {
	var zero T
	switch {
	case lo > zero:
		return lo
	case hi < zero:
		return hi
	default:
		return zero
	}
}

// intShrinkRose builds the halves-shrink tree for an integer value,
// re-deriving the same target at every depth so descendants keep shrinking
// toward it too.
func intShrinkRose[T constraints.Integer](v, lo, hi T) RoseTree[T] {
	target := intShrinkTarget(lo, hi)
	return RoseTree[T]{
		Root: v,
		children: memoize(func() []RoseTree[T] {
			diff := int64(v) - int64(target)
			if diff == 0 {
				return nil
			}
			// Shift the magnitude, not diff itself: diff >> k on a negative
			// diff is a sign-extending arithmetic shift that converges to
			// -1, never 0, so the loop below would never terminate for any
			// value below its shrink target (every negative element of a
			// range spanning zero). Shifting |diff| always reaches 0, and
			// the sign is reapplied when building the candidate.
			negative := diff < 0
			mag := diff
			if negative {
				mag = -mag
			}
			var out []RoseTree[T]
			seen := map[int64]bool{}
			for k := uint(0); ; k++ {
				step := mag >> k
				if step == 0 {
					break
				}
				if negative {
					step = -step
				}
				cand := int64(v) - step
				if seen[cand] {
					continue
				}
				seen[cand] = true
				out = append(out, intShrinkRose(T(cand), lo, hi))
			}
			return out
		}),
	}
}

// LargeInt generates an int64 in [min, max] (math.MinInt64 and
// math.MaxInt64 cover the full platform range), scaling the sampled
// magnitude with size rather than sampling uniformly over the entire
// 64-bit span regardless of size. A small size should mostly produce small
// integers.
//
// Strategy, per spec.md §4.4: sample bit_count in [1, min(size, 64)], draw
// a raw 64-bit value, keep its top bit_count bits, and reflect the result
// into [min, max] by repeatedly negating and right-shifting until it fits.
// The whole thing is wrapped in SuchThat so that a pathological range
// (e.g. one not containing zero) still only ever yields in-bounds,
// in-bounds-shrinking values.
func LargeInt(min, max int64) Generator[int64] {
	if min > max {
		panic(NewInvalidArgument("LargeInt: min (%d) > max (%d)", min, max))
	}
	raw := func(r RNG, size Size) RoseTree[int64] {
		maxBits := uint(size)
		if maxBits > 64 {
			maxBits = 64
		}
		if maxBits < 1 {
			maxBits = 1
		}
		bitCountF, r2 := r.Float64()
		bitCount := uint(bitCountF*float64(maxBits)) + 1
		if bitCount > 64 {
			bitCount = 64
		}
		bits64, _ := r2.Uint64()
		top := bits64 >> (64 - bitCount)
		v := reflectIntoRange(int64(top), min, max)
		return intShrinkRose(v, min, max)
	}
	return SuchThat(func(v int64) bool { return v >= min && v <= max }, raw, 10)
}

// reflectIntoRange folds v into [lo, hi] by negating and halving until it
// fits, per spec.md §4.4's "reflect into [min,max]" strategy. Halving ends
// at zero; when zero itself lies outside [lo, hi], the bound nearest zero
// is returned.
func reflectIntoRange(v, lo, hi int64) int64 {
	for v < lo || v > hi {
		if v == 0 {
			if lo > 0 {
				return lo
			}
			return hi
		}
		v = -v
		if v < lo || v > hi {
			v >>= 1
		}
	}
	return v
}

// BitCountOf reports how many bits are needed to represent v's magnitude,
// used by callers that want to mirror LargeInt's size-scaling logic for a
// custom bounded-integer generator.
func BitCountOf(v int64) int {
	u := uint64(v)
	if v < 0 {
		u = uint64(-v)
	}
	return bits.Len64(u)
}
