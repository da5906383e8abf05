package proptest

import "math"

// pseudoFactor randomly factors maxLeafCount into a sequence of factors,
// each > 1, repeatedly dividing the remaining budget by a geometric-ish
// draw — spec.md §4.11 step 2. This heuristic is explicitly documented by
// spec.md as not statistically principled; this implementation preserves
// its shape (small factors much likelier than large ones, terminating
// once the remaining budget can't support another factor) rather than
// inventing a different distribution.
func pseudoFactor(r RNG, maxLeafCount int) []int {
	if maxLeafCount < 2 {
		return nil
	}
	var factors []int
	remaining := maxLeafCount
	cur := r
	for remaining > 1 {
		u, next := cur.Float64()
		cur = next
		exp := int(math.Floor(-math.Log(1-u) / math.Ln2))
		factor := 2 + exp
		if factor > remaining {
			factor = remaining
		}
		if factor < 2 {
			break
		}
		factors = append(factors, factor)
		remaining = remaining / factor
	}
	return factors
}

// Recursive builds a generator for a self-referential container type
// (trees, nested JSON-like values, expression ASTs) from a scalar base
// case and a function that, given "the generator for one level down",
// builds the generator for the container holding it.
//
// Naive recursion — containerGenFn(containerGenFn(containerGenFn(...)))
// sized the same way at every level — blows up combinatorially with size.
// Per spec.md §4.11, this instead bounds the total leaf count
// probabilistically: it samples a max leaf budget from size, pseudo-factors
// that budget into a handful of per-level sizes, and folds over them,
// bailing out to the scalar case with probability 1/11 at every step.
func Recursive[T any](containerGenFn func(Generator[T]) Generator[T], scalarGen Generator[T]) Generator[T] {
	return func(r RNG, s Size) RoseTree[T] {
		rFactor, rRun := r.Split()

		bound := int(math.Floor(math.Pow(float64(s), 1.1)))
		leafF, rFactor2 := rFactor.Float64()
		maxLeafCount := int(leafF * float64(bound+1))
		factors := pseudoFactor(rFactor2, maxLeafCount)

		current := Resize(s, scalarGen)
		cur := rRun
		for _, n := range factors {
			pf, next := cur.Float64()
			cur = next
			if pf < 1.0/11.0 {
				current = Resize(s, scalarGen)
				continue
			}
			current = Resize(Size(n), containerGenFn(current))
		}
		return current(cur, s)
	}
}
