package proptest

import (
	"fmt"
	"math"
	"math/big"

	"github.com/google/uuid"
)

// Charset constants for string generation, grounded on
// db/proptest/generators.go's original Charset* constants, carried over
// unchanged since they already covered exactly what spec.md's char/string
// families need.
const (
	CharsetAlphaLower = "abcdefghijklmnopqrstuvwxyz"
	CharsetAlphaUpper = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	CharsetAlpha      = CharsetAlphaLower + CharsetAlphaUpper
	CharsetDigits     = "0123456789"
	CharsetAlphaNum   = CharsetAlpha + CharsetDigits
	CharsetIdentStart = CharsetAlpha + "_"
	CharsetIdentBody  = CharsetAlphaNum + "_"
	CharsetPrintable  = CharsetAlphaNum + " !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// Char draws a uniform rune from the given code-point range [lo, hi]
// inclusive, per spec.md §4.9's "choose over unicode code-point ranges,
// fmap to character".
func Char(lo, hi rune) Generator[rune] {
	return Map(func(v int32) rune { return rune(v) }, Choose(int32(lo), int32(hi)))
}

// charsetElement builds a Generator[rune] that draws uniformly from the
// runes of charset, shrinking toward its earlier characters (Choose
// shrinks its index toward 0).
func charsetElement(charset string) Generator[rune] {
	runes := []rune(charset)
	return Map(func(i int) rune { return runes[i] }, Choose(0, len(runes)-1))
}

// StringOf generates a string of characters drawn from charset, with
// length uniform in [0, size] — spec.md §4.9's "vector of chars, joined".
func StringOf(charset string) Generator[string] {
	elem := charsetElement(charset)
	return Map(func(rs []rune) string { return string(rs) }, VectorOf(elem))
}

// StringOfRange is StringOf with an explicit [lo, hi] length bound.
func StringOfRange(charset string, lo, hi int) Generator[string] {
	elem := charsetElement(charset)
	return Map(func(rs []rune) string { return string(rs) }, VectorRange(elem, lo, hi))
}

// Identifier generates a valid identifier — a letter-or-underscore
// followed by up to maxLen-1 alphanumeric-or-underscore characters —
// grounded on db/proptest/generators.go's original Identifier/
// IdentifierLower helpers, rebuilt here as a shrinkable Generator rather
// than a one-shot value.
func Identifier(maxLen int) Generator[string] {
	if maxLen < 1 {
		maxLen = 1
	}
	start := charsetElement(CharsetIdentStart)
	body := charsetElement(CharsetIdentBody)
	return Bind(start, func(first rune) Generator[string] {
		return Map(func(rest []rune) string {
			return string(first) + string(rest)
		}, VectorRange(body, 0, maxLen-1))
	})
}

// looksNumeric rejects symbol/keyword candidates that would parse as a
// number: empty, or a leading '+'/'-' immediately followed by a digit, or
// a bare leading digit — per spec.md §4.9.
func looksNumeric(s string) bool {
	if s == "" {
		return true
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

// symbolScale shrinks the ambient size to floor(n^0.46), the same
// heuristic spec.md §4.9 specifies to keep symbol/keyword names short even
// at large test sizes.
func symbolScale(n Size) Size {
	return Size(math.Floor(math.Pow(float64(n), 0.46)))
}

// Symbol generates a short identifier-like string that cannot be
// misparsed as a number, per spec.md §4.9: built from Identifier, scaled
// down by symbolScale, and filtered with SuchThat to reject any candidate
// looksNumeric accepts (Identifier already can't start with a bare digit,
// but a leading "_1" body is fine for a symbol and only the leading
// +/-digit form needs rejecting).
func Symbol(maxLen int) Generator[string] {
	base := Scale(symbolScale, Identifier(maxLen))
	return SuchThat(func(s string) bool { return !looksNumeric(s) }, base, 10)
}

// Keyword generates a Symbol prefixed with ':', the conventional
// namespaced-keyword marker.
func Keyword(maxLen int) Generator[string] {
	return Map(func(s string) string { return ":" + s }, Symbol(maxLen))
}

// UUID generates a type-4 (random) UUID by drawing two 64-bit values and
// masking in the version/variant bits, via google/uuid's NewRandomFromReader
// equivalent construction. Per spec.md §4.9 it does not shrink: it is
// always a leaf rose.
func UUID() Generator[uuid.UUID] {
	return func(r RNG, _ Size) RoseTree[uuid.UUID] {
		hi, r1 := r.Uint64()
		lo, _ := r1.Uint64()
		var id uuid.UUID
		for i := 0; i < 8; i++ {
			id[i] = byte(hi >> (56 - 8*i))
		}
		for i := 0; i < 8; i++ {
			id[8+i] = byte(lo >> (56 - 8*i))
		}
		id[6] = (id[6] & 0x0f) | 0x40 // version 4
		id[8] = (id[8] & 0x3f) | 0x80 // RFC 4122 variant
		return PureRose(id)
	}
}

// Ratio is a rational number built from an independently-generated
// numerator and non-zero denominator, per spec.md §4.9 ("division
// performed in the target's rational arithmetic"); Reduce relies on the
// standard library's big.Rat rather than custom gcd code.
type Ratio struct {
	Num, Den int64
}

// Reduce returns r in lowest terms with a positive denominator.
func (r Ratio) Reduce() Ratio {
	rat := big.NewRat(r.Num, r.Den)
	return Ratio{Num: rat.Num().Int64(), Den: rat.Denom().Int64()}
}

// Float64 returns r as a float64.
func (r Ratio) Float64() float64 {
	return float64(r.Num) / float64(r.Den)
}

// String renders r as "num/den".
func (r Ratio) String() string {
	return fmt.Sprintf("%d/%d", r.Num, r.Den)
}

// RatioGen generates a Ratio from an independently-split int64 numerator
// and non-zero int64 denominator, each shrinking along its own axis via
// Tuple2 — spec.md §4.9's "numerator from int, non-zero denominator from
// int".
func RatioGen(numRange, denRange [2]int64) Generator[Ratio] {
	numGen := LargeInt(numRange[0], numRange[1])
	denGen := SuchThat(func(d int64) bool { return d != 0 }, LargeInt(denRange[0], denRange[1]), 10)
	return Map(func(p Pair[int64, int64]) Ratio {
		return Ratio{Num: p.First, Den: p.Second}
	}, Tuple2(numGen, denGen))
}
