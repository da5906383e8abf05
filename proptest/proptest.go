// Package proptest provides property-based testing with integrated
// shrinking: generate random inputs for a property, and when one fails,
// search a lazily-constructed tree of strictly smaller candidate values for
// a minimal counterexample.
//
// The engine is built bottom-up from four pieces: a splittable RNG (RNG,
// in rng.go) that supports independent sub-streams without the sequential
// coupling a plain math/rand source has; a RoseTree (rose.go) pairing a
// value with its lazy shrinks; a Generator (gen.go) — a pure function from
// (RNG, Size) to a RoseTree — built up by primitive generators (integers.go,
// floats.go, text.go) and combinators (combinators.go, collections.go,
// recursive.go); and a driver (check.go) that runs trials and, on failure,
// walks the failing rose tree (shrink.go) to report a minimal
// counterexample.
//
// Basic usage:
//
//	func TestSquareIsNonNegative(t *testing.T) {
//	    report := proptest.QuickCheck(100, proptest.ForAll1(
//	        proptest.LargeInt(-1000, 1000),
//	        func(n int64) proptest.Verdict {
//	            return proptest.VerdictOf(n*n >= 0)
//	        },
//	    ), proptest.Options{})
//	    if !report.Passed() {
//	        t.Fatalf("property failed: %+v", report.Failure)
//	    }
//	}
package proptest
