package proptest

// Size is the non-negative knob that scales magnitudes, collection lengths,
// and recursion depth. The driver cycles size through 0..MaxSize-1 across
// trials (see check.go).
type Size uint32

// Generator produces a RoseTree of T from an RNG and a Size. A Generator
// must be referentially transparent: the same (RNG, Size) pair always
// yields a tree with an equal root and equal, fully-forced children.
// Determinism is the whole contract this package exists to provide.
type Generator[T any] func(RNG, Size) RoseTree[T]

// Pure ignores its rng and size and always yields a leaf rose tree around
// v — a constant generator with no shrinks.
func Pure[T any](v T) Generator[T] {
	return func(RNG, Size) RoseTree[T] {
		return PureRose(v)
	}
}

// Map runs g and applies f to its entire resulting tree.
func Map[A, B any](f func(A) B, g Generator[A]) Generator[B] {
	return func(r RNG, s Size) RoseTree[B] {
		return MapRose(f, g(r, s))
	}
}

// Bind sequences g into k. The rng is split into (r1, r2): g runs with r1
// to produce the outer tree, and for every node of that tree (root and
// every descendant alike) k is applied to the node's value and run with
// r2 — the *same* r2, reused unmodified across every shrunk outer value.
// That reuse is deliberate: it is what keeps composite generators' shrinks
// stable, since shrinking the outer value never perturbs the downstream
// randomness that produced the inner value. Do not re-split per inner
// invocation; that would make shrinks of composite generators
// unreproducible across runs.
func Bind[A, B any](g Generator[A], k func(A) Generator[B]) Generator[B] {
	return func(r RNG, s Size) RoseTree[B] {
		r1, r2 := r.Split()
		outer := g(r1, s)
		nested := MapRose(func(a A) RoseTree[B] {
			return k(a)(r2, s)
		}, outer)
		return JoinRose(nested)
	}
}

// Sized defers generator construction until the size is known, letting a
// generator's shape (not just its magnitudes) depend on size.
func Sized[T any](f func(Size) Generator[T]) Generator[T] {
	return func(r RNG, s Size) RoseTree[T] {
		return f(s)(r, s)
	}
}

// Resize overrides the size a generator sees, ignoring whatever size the
// caller was using.
func Resize[T any](n Size, g Generator[T]) Generator[T] {
	return func(r RNG, _ Size) RoseTree[T] {
		return g(r, n)
	}
}

// Scale resizes g by applying f to the ambient size.
func Scale[T any](f func(Size) Size, g Generator[T]) Generator[T] {
	return Sized(func(s Size) Generator[T] {
		return Resize(f(s), g)
	})
}
