package proptest

import (
	"cmp"
	"slices"
)

// VectorOf generates a slice with length uniform in [0, size], using g for
// every element. Shrinking can both remove elements and shrink individual
// elements, via ShrinkSlice.
func VectorOf[T any](g Generator[T]) Generator[[]T] {
	return func(r RNG, s Size) RoseTree[[]T] {
		lenF, r1 := r.Float64()
		n := int(lenF * float64(s+1))
		streams := SplitN(r1, n)
		trees := make([]RoseTree[T], n)
		for i := range trees {
			trees[i] = g(streams[i], s)
		}
		return ShrinkSlice(trees)
	}
}

// ListOf is an alias for VectorOf — spec.md draws a conceptual line between
// "vector" and "list" as indexed-vector vs. ordered-sequence, a
// distinction Go's single slice type doesn't need to represent separately.
func ListOf[T any](g Generator[T]) Generator[[]T] {
	return VectorOf(g)
}

// VectorExact generates a slice of exactly n elements via independent
// splits zipped together (spec.md's vector(g, n)): fixed length, only
// elements shrink.
func VectorExact[T any](g Generator[T], n int) Generator[[]T] {
	if n < 0 {
		panic(NewInvalidArgument("VectorExact: n must be non-negative, got %d", n))
	}
	return func(r RNG, s Size) RoseTree[[]T] {
		streams := SplitN(r, n)
		trees := make([]RoseTree[T], n)
		for i := range trees {
			trees[i] = g(streams[i], s)
		}
		return ZipSlice(trees)
	}
}

// VectorRange generates a slice with length uniform in [lo, hi] (spec.md's
// vector(g, lo, hi)). The shrink tree is filtered so no shrunk value drops
// below lo elements.
func VectorRange[T any](g Generator[T], lo, hi int) Generator[[]T] {
	if lo < 0 || lo > hi {
		panic(NewInvalidArgument("VectorRange: invalid bounds [%d, %d]", lo, hi))
	}
	lenGen := Choose(lo, hi)
	return func(r RNG, s Size) RoseTree[[]T] {
		r1, r2 := r.Split()
		n := lenGen(r1, s).Root
		streams := SplitN(r2, n)
		trees := make([]RoseTree[T], n)
		for i := range trees {
			trees[i] = g(streams[i], s)
		}
		full := ShrinkSlice(trees)
		return FilterRose(func(vs []T) bool { return len(vs) >= lo }, full)
	}
}

// distinctCollect repeatedly samples g, keyed by keyFn, skipping any draw
// whose key was already seen and bumping the size on each skip to push
// toward more variety — spec.md §4.6's retry-and-grow-size loop. It stops
// once target distinct elements are collected or maxTries draws have hit
// an already-seen key, whichever comes first; draws that add a new element
// do not count toward maxTries.
func distinctCollect[T any, K comparable](r RNG, size Size, g Generator[T], keyFn func(T) K, target, maxTries int) ([]RoseTree[T], RNG) {
	cur := r
	s := size
	seen := make(map[K]bool, target)
	trees := make([]RoseTree[T], 0, target)
	tries := 0
	for len(trees) < target && tries < maxTries {
		r1, r2 := cur.Split()
		t := g(r1, s)
		k := keyFn(t.Root)
		cur = r2
		if seen[k] {
			s++
			tries++
			continue
		}
		seen[k] = true
		trees = append(trees, t)
	}
	return trees, cur
}

// shuffleTrees performs a Fisher-Yates shuffle of trees using r, so that a
// distinct collection's element order is uniformly distributed rather than
// biased toward insertion order — spec.md §4.6 step 2.
func shuffleTrees[T any](r RNG, trees []RoseTree[T]) []RoseTree[T] {
	out := append([]RoseTree[T](nil), trees...)
	cur := r
	for i := len(out) - 1; i > 0; i-- {
		f, next := cur.Float64()
		j := int(f * float64(i+1))
		out[i], out[j] = out[j], out[i]
		cur = next
	}
	return out
}

// DistinctBy generates a slice of between minElements and maxElements
// distinct-by-keyFn values. maxElements < 0 means "scale with size": the
// target count is the current size. Raises SuchThatExhausted if fewer than
// minElements distinct values are collected before maxTries draws have hit
// an already-seen key — e.g. asking for 5 distinct values out of a 2-value
// domain.
func DistinctBy[T any, K comparable](g Generator[T], keyFn func(T) K, minElements, maxElements, maxTries int) Generator[[]T] {
	if maxTries <= 0 {
		maxTries = 10
	}
	return func(r RNG, s Size) RoseTree[[]T] {
		target := maxElements
		if target < 0 {
			target = int(s)
		}
		trees, cur := distinctCollect(r, s, g, keyFn, target, maxTries)
		if len(trees) < minElements {
			panic(NewSuchThatExhausted("DistinctBy", maxTries))
		}
		shuffled := shuffleTrees(cur, trees)
		full := ShrinkSlice(shuffled)
		return FilterRose(func(vs []T) bool {
			if len(vs) < minElements {
				return false
			}
			seen := make(map[K]bool, len(vs))
			for _, v := range vs {
				k := keyFn(v)
				if seen[k] {
					return false
				}
				seen[k] = true
			}
			return true
		}, full)
	}
}

func identityKey[T any](v T) T { return v }

// SetOf generates a slice of distinct values with length scaling with
// size, deduplicated by equality.
func SetOf[T comparable](g Generator[T]) Generator[[]T] {
	return Sized(func(s Size) Generator[[]T] {
		return DistinctBy(g, identityKey[T], 0, int(s), 10)
	})
}

// SetOfN generates exactly n distinct values, raising SuchThatExhausted if
// n distinct values can't be found within maxTries attempts — e.g.
// SetOfN(Choose(0,1), 5, 10) can never succeed since only two distinct
// values exist to draw from.
func SetOfN[T comparable](g Generator[T], n, maxTries int) Generator[[]T] {
	return DistinctBy(g, identityKey[T], n, n, maxTries)
}

// SortedSetOf generates a set of distinct, ascending-sorted values. It
// builds on SetOf and sorts the result at every shrink level, so the
// ascending invariant survives shrinking too.
func SortedSetOf[T cmp.Ordered](g Generator[T]) Generator[[]T] {
	return Map(func(vs []T) []T {
		out := append([]T(nil), vs...)
		slices.Sort(out)
		return out
	}, SetOf(g))
}

// MapOf generates a map with size-scaled entry count, keys deduplicated by
// equality.
func MapOf[K comparable, V any](keyGen Generator[K], valGen Generator[V]) Generator[map[K]V] {
	pairGen := Tuple2(keyGen, valGen)
	return Map(func(pairs []Pair[K, V]) map[K]V {
		m := make(map[K]V, len(pairs))
		for _, p := range pairs {
			m[p.First] = p.Second
		}
		return m
	}, Sized(func(s Size) Generator[[]Pair[K, V]] {
		return DistinctBy(pairGen, func(p Pair[K, V]) K { return p.First }, 0, int(s), 10)
	}))
}
