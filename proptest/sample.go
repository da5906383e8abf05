package proptest

// defaultSampleSize is generate's default size (spec.md §6: generate(g,
// size = 30)).
const defaultSampleSize Size = 30

// defaultSampleCount is sample's default count (spec.md §6: sample(g,
// n = 10)).
const defaultSampleCount = 10

// Generate draws a single sample from g at the default size, discarding
// its shrink tree — useful in a REPL or a quick sanity check, not inside
// a property (use ForAllN there).
func Generate[T any](g Generator[T]) T {
	return GenerateSized(g, defaultSampleSize)
}

// GenerateSized is Generate with an explicit size.
func GenerateSized[T any](g Generator[T], size Size) T {
	return g(NewRNG(0), size).Root
}

// Sample draws the default count of samples from g, with sizes increasing
// from 0, discarding shrink trees.
func Sample[T any](g Generator[T]) []T {
	return SampleN(g, defaultSampleCount)
}

// SampleN draws n samples from g, with sizes 0, 1, 2, … n-1.
func SampleN[T any](g Generator[T], n int) []T {
	rng := NewRNG(0)
	out := make([]T, n)
	for i := 0; i < n; i++ {
		var next RNG
		rng, next = rng.Split()
		out[i] = g(next, Size(i)).Root
	}
	return out
}

// SampleSeq draws one sample from g per size 0..maxSize inclusive. Go has
// no built-in lazy sequence type, so unlike spec.md's sample_seq this
// returns the whole slice eagerly rather than an infinite lazy stream;
// callers after an unbounded sequence should call GenerateSized directly
// in their own loop instead.
func SampleSeq[T any](g Generator[T], maxSize Size) []T {
	return SampleN(g, int(maxSize)+1)
}
