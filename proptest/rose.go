package proptest

// RoseTree pairs a realized value with a lazy sequence of strictly
// "smaller" variants. It is the substrate shrinking walks: traversing Root
// must never force the whole subtree, so Children is a restartable thunk
// rather than a materialized slice — generating all children of, say, a
// 1000-element vector eagerly would be catastrophic.
//
// Implementers in garbage-collected, single-threaded Go don't need a true
// lazy stream type: a closure that computes (and memoizes, so repeated
// calls are cheap) its result on first call is equivalent and far simpler.
type RoseTree[T any] struct {
	Root     T
	children func() []RoseTree[T]
}

// Children returns this node's child trees, computing them on first access
// and caching the result for subsequent calls.
func (t RoseTree[T]) Children() []RoseTree[T] {
	if t.children == nil {
		return nil
	}
	return t.children()
}

// memoize wraps a thunk so it is evaluated at most once; every subsequent
// call returns the cached slice. The engine is single-threaded (see
// spec.md §5), so no locking is required.
func memoize[T any](f func() []RoseTree[T]) func() []RoseTree[T] {
	var (
		done   bool
		cached []RoseTree[T]
	)
	return func() []RoseTree[T] {
		if !done {
			cached = f()
			done = true
		}
		return cached
	}
}

// PureRose builds a leaf node: a value with no shrinks.
func PureRose[T any](v T) RoseTree[T] {
	return RoseTree[T]{Root: v}
}

// MakeRose builds a rose tree directly from a root and a children thunk.
func MakeRose[T any](root T, children func() []RoseTree[T]) RoseTree[T] {
	return RoseTree[T]{Root: root, children: memoize(children)}
}

// MapRose applies f to the root and, lazily, to every descendant,
// preserving the tree's shape.
func MapRose[A, B any](f func(A) B, t RoseTree[A]) RoseTree[B] {
	return RoseTree[B]{
		Root: f(t.Root),
		children: memoize(func() []RoseTree[B] {
			kids := t.Children()
			out := make([]RoseTree[B], len(kids))
			for i, c := range kids {
				out[i] = MapRose(f, c)
			}
			return out
		}),
	}
}

// FilterRose prunes child branches whose root fails pred, keeping the root
// itself unconditionally. Callers must ensure the root already satisfies
// pred — invoking FilterRose on a tree whose root fails it is undefined,
// per spec.md's open question; this package documents rather than guards
// against that precondition, since a guard would require re-deriving the
// predicate's meaning for every call site for no behavioral benefit.
func FilterRose[T any](pred func(T) bool, t RoseTree[T]) RoseTree[T] {
	return RoseTree[T]{
		Root: t.Root,
		children: memoize(func() []RoseTree[T] {
			kids := t.Children()
			out := make([]RoseTree[T], 0, len(kids))
			for _, c := range kids {
				if pred(c.Root) {
					out = append(out, FilterRose(pred, c))
				}
			}
			return out
		}),
	}
}

// JoinRose flattens a tree-of-trees. The result's children are the
// (recursively joined) children of the outer root, concatenated with the
// children of the inner root — in that order.
func JoinRose[T any](t RoseTree[RoseTree[T]]) RoseTree[T] {
	inner := t.Root
	return RoseTree[T]{
		Root: inner.Root,
		children: memoize(func() []RoseTree[T] {
			outerKids := t.Children()
			innerKids := inner.Children()
			out := make([]RoseTree[T], 0, len(outerKids)+len(innerKids))
			for _, ok := range outerKids {
				out = append(out, JoinRose(ok))
			}
			out = append(out, innerKids...)
			return out
		}),
	}
}

// ZipSlice combines a slice of rose trees of the same type into a rose
// tree of a slice. Children are produced axis by axis, in order, with
// every child of one axis in turn — never the cross product of all axes.
// This is what lets Vector/List shrink element-wise without exploding
// combinatorially.
func ZipSlice[T any](ts []RoseTree[T]) RoseTree[[]T] {
	root := make([]T, len(ts))
	for i, t := range ts {
		root[i] = t.Root
	}
	return RoseTree[[]T]{
		Root: root,
		children: memoize(func() []RoseTree[[]T] {
			var out []RoseTree[[]T]
			for i := range ts {
				for _, c := range ts[i].Children() {
					next := append([]RoseTree[T](nil), ts...)
					next[i] = c
					out = append(out, ZipSlice(next))
				}
			}
			return out
		}),
	}
}

// ShrinkSlice is like ZipSlice but additionally yields, for each position,
// a variant with that element removed entirely. This is the combinator
// collection generators use to shrink both length and elements: removal
// variants come first (fewer elements is tried before smaller elements),
// followed by the per-axis element shrinks.
func ShrinkSlice[T any](ts []RoseTree[T]) RoseTree[[]T] {
	root := make([]T, len(ts))
	for i, t := range ts {
		root[i] = t.Root
	}
	return RoseTree[[]T]{
		Root: root,
		children: memoize(func() []RoseTree[[]T] {
			var out []RoseTree[[]T]
			for i := range ts {
				reduced := make([]RoseTree[T], 0, len(ts)-1)
				reduced = append(reduced, ts[:i]...)
				reduced = append(reduced, ts[i+1:]...)
				out = append(out, ShrinkSlice(reduced))
			}
			for i := range ts {
				for _, c := range ts[i].Children() {
					next := append([]RoseTree[T](nil), ts...)
					next[i] = c
					out = append(out, ShrinkSlice(next))
				}
			}
			return out
		}),
	}
}

// CollapseRose lifts grandchildren one level: the root is unchanged, and
// the new child list is the original children followed by each child's own
// children (recursively collapsed), effectively flattening a branch's
// entire descendant set into a single level below the root.
func CollapseRose[T any](t RoseTree[T]) RoseTree[T] {
	return RoseTree[T]{
		Root: t.Root,
		children: memoize(func() []RoseTree[T] {
			kids := t.Children()
			out := make([]RoseTree[T], 0, len(kids)*2)
			out = append(out, kids...)
			for _, c := range kids {
				out = append(out, CollapseRose(c).Children()...)
			}
			return out
		}),
	}
}

// Pair is the payload type for two-generator tuples; see Tuple2.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple is the payload type for three-generator tuples; see Tuple3.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// zipPair combines two rose trees into one over Pair, axis by axis in
// order (First's children, then Second's), matching the per-axis ordering
// ZipSlice uses for homogeneous slices.
func zipPair[A, B any](ta RoseTree[A], tb RoseTree[B]) RoseTree[Pair[A, B]] {
	root := Pair[A, B]{First: ta.Root, Second: tb.Root}
	return RoseTree[Pair[A, B]]{
		Root: root,
		children: memoize(func() []RoseTree[Pair[A, B]] {
			var out []RoseTree[Pair[A, B]]
			for _, ca := range ta.Children() {
				out = append(out, zipPair(ca, tb))
			}
			for _, cb := range tb.Children() {
				out = append(out, zipPair(ta, cb))
			}
			return out
		}),
	}
}
