package proptest

// This file generalizes proptest/combinators.go's original free-function
// combinator style (OneOf[T], Weighted[T], Pick[T], Shuffle[T] operating
// directly on values) to operate on Generator[T] values instead, so every
// combinator here carries its own shrink strategy rather than returning a
// bare T.

// OneOf picks uniformly among the given generators, shrinking toward
// earlier indices (via the integer shrink on the chosen index) and, within
// whichever generator was chosen, toward that generator's own shrinks.
// Panics if gens is empty.
func OneOf[T any](gens ...Generator[T]) Generator[T] {
	if len(gens) == 0 {
		panic(NewInvalidArgument("OneOf: called with no generators"))
	}
	idxGen := Choose(0, len(gens)-1)
	return Bind(idxGen, func(i int) Generator[T] {
		return gens[i]
	})
}

// WeightedGen pairs a generator with its relative selection weight for
// Frequency.
type WeightedGen[T any] struct {
	Weight float64
	Gen    Generator[T]
}

// Frequency picks among weighted generators: a uniform point in
// [0, Σweights) selects which generator to use by walking the list and
// subtracting weights, so index-shrinking naturally biases toward the
// first, typically "simplest", entry. Panics if wgens is empty or any
// weight is non-positive.
func Frequency[T any](wgens ...WeightedGen[T]) Generator[T] {
	if len(wgens) == 0 {
		panic(NewInvalidArgument("Frequency: called with no generators"))
	}
	total := 0.0
	for _, wg := range wgens {
		if wg.Weight <= 0 {
			panic(NewInvalidArgument("Frequency: weight must be positive, got %v", wg.Weight))
		}
		total += wg.Weight
	}
	return func(r RNG, s Size) RoseTree[T] {
		f, r1 := r.Float64()
		point := f * total
		cumulative := 0.0
		chosen := len(wgens) - 1
		for i, wg := range wgens {
			cumulative += wg.Weight
			if point < cumulative {
				chosen = i
				break
			}
		}
		idx := Generator[int](func(RNG, Size) RoseTree[int] { return intShrinkRose(chosen, 0, chosen) })
		return Bind(idx, func(i int) Generator[T] { return wgens[i].Gen })(r1, s)
	}
}

// Elements is sugar over OneOf for a fixed list of plain values, each
// wrapped in Pure (so the values themselves don't shrink further, only the
// choice of which one shrinks toward the first).
func Elements[T any](values ...T) Generator[T] {
	if len(values) == 0 {
		panic(NewInvalidArgument("Elements: called with no values"))
	}
	gens := make([]Generator[T], len(values))
	for i, v := range values {
		gens[i] = Pure(v)
	}
	return OneOf(gens...)
}

// SuchThat repeatedly samples g until pred passes, increasing size by one
// on every failed attempt (to escape a saturated small sample space), up
// to maxTries attempts. The returned tree is g's successful tree filtered
// by pred. Raises SuchThatExhausted on exhaustion.
func SuchThat[T any](pred func(T) bool, g Generator[T], maxTries int) Generator[T] {
	return func(r RNG, s Size) RoseTree[T] {
		cur := r
		size := s
		for attempt := 0; attempt < maxTries; attempt++ {
			r1, r2 := cur.Split()
			t := g(r1, size)
			if pred(t.Root) {
				return FilterRose(pred, t)
			}
			cur = r2
			size++
		}
		panic(NewSuchThatExhausted("SuchThat", maxTries))
	}
}

// Transform applies a pure function to every value a generator produces,
// an alias for Map kept for callers migrating from the value-level
// Transform helper this file used to export.
func Transform[A, B any](g Generator[A], f func(A) B) Generator[B] {
	return Map(f, g)
}

// Tuple2 runs two generators against independently split rng streams and
// zips their rose trees axis by axis (first's shrinks, then second's),
// realizing spec.md §4.6's "split rng n ways, run each, zip the resulting
// roses" for the n=2 case.
func Tuple2[A, B any](ga Generator[A], gb Generator[B]) Generator[Pair[A, B]] {
	return func(r RNG, s Size) RoseTree[Pair[A, B]] {
		streams := SplitN(r, 2)
		ta := ga(streams[0], s)
		tb := gb(streams[1], s)
		return zipPair(ta, tb)
	}
}

// Tuple3 generates three independently-split values, shrinking axis by
// axis in order.
func Tuple3[A, B, C any](ga Generator[A], gb Generator[B], gc Generator[C]) Generator[Triple[A, B, C]] {
	return func(r RNG, s Size) RoseTree[Triple[A, B, C]] {
		streams := SplitN(r, 3)
		ta := ga(streams[0], s)
		tb := gb(streams[1], s)
		tc := gc(streams[2], s)
		pair := zipPair(ta, zipPair(tb, tc))
		return MapRose(func(p Pair[A, Pair[B, C]]) Triple[A, B, C] {
			return Triple[A, B, C]{First: p.First, Second: p.Second.First, Third: p.Second.Second}
		}, pair)
	}
}

// Shuffle generates a shuffled permutation of values by folding a sequence
// of swap pairs over a mutable copy, shrinking toward the original
// (unshuffled) order as the number of swaps shrinks toward zero — per
// spec.md §4.10. Grounded on proptest/combinators.go's original
// Shuffle[T], reworked here to produce a shrinkable rose tree of swaps
// instead of an immediate slice.
func Shuffle[T any](values []T) Generator[[]T] {
	n := len(values)
	if n < 2 {
		return Pure(append([]T(nil), values...))
	}
	type swap struct{ i, j int }
	swapGen := Tuple2(Choose(0, n-1), Choose(0, n-1))
	swapsGen := VectorRange(Map(func(p Pair[int, int]) swap {
		return swap{p.First, p.Second}
	}, swapGen), 0, 2*n)

	return Map(func(swaps []swap) []T {
		out := append([]T(nil), values...)
		for _, sw := range swaps {
			out[sw.i], out[sw.j] = out[sw.j], out[sw.i]
		}
		return out
	}, swapsGen)
}
