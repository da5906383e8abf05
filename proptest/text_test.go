package proptest

import (
	"strings"
	"testing"
)

func TestStringOf_UsesOnlyCharsetRunes(t *testing.T) {
	g := StringOf(CharsetAlphaLower)
	r := NewRNG(1)
	for i := 0; i < 30; i++ {
		tr := g(r, 10)
		for _, rn := range tr.Root {
			if !strings.ContainsRune(CharsetAlphaLower, rn) {
				t.Fatalf("StringOf produced out-of-charset rune %q in %q", rn, tr.Root)
			}
		}
		r, _ = r.Split()
	}
}

func TestStringOfRange_RespectsLengthBounds(t *testing.T) {
	g := StringOfRange(CharsetDigits, 2, 5)
	r := NewRNG(1)
	for i := 0; i < 30; i++ {
		tr := g(r, 10)
		if len(tr.Root) < 2 || len(tr.Root) > 5 {
			t.Fatalf("StringOfRange(2,5) produced length %d", len(tr.Root))
		}
		r, _ = r.Split()
	}
}

func TestIdentifier_StartsWithLetterOrUnderscore(t *testing.T) {
	g := Identifier(10)
	r := NewRNG(1)
	for i := 0; i < 30; i++ {
		tr := g(r, 10)
		if len(tr.Root) == 0 {
			t.Fatal("Identifier produced an empty string")
		}
		first := tr.Root[0]
		if !strings.ContainsRune(CharsetIdentStart, rune(first)) {
			t.Fatalf("Identifier %q does not start with a valid start character", tr.Root)
		}
		r, _ = r.Split()
	}
}

func TestSymbol_NeverLooksNumeric(t *testing.T) {
	g := Symbol(20)
	r := NewRNG(1)
	for i := 0; i < 50; i++ {
		tr := g(r, 30)
		if looksNumeric(tr.Root) {
			t.Fatalf("Symbol produced a numeric-looking value: %q", tr.Root)
		}
		r, _ = r.Split()
	}
}

func TestKeyword_IsPrefixedSymbol(t *testing.T) {
	g := Keyword(10)
	tr := g(NewRNG(1), 20)
	if !strings.HasPrefix(tr.Root, ":") {
		t.Fatalf("Keyword %q does not start with ':'", tr.Root)
	}
}

func TestLooksNumeric(t *testing.T) {
	cases := map[string]bool{
		"":      true,
		"1abc":  true,
		"-5":    true,
		"+5":    true,
		"abc":   false,
		"-abc":  false,
		"_foo":  false,
		"a123":  false,
	}
	for s, want := range cases {
		if got := looksNumeric(s); got != want {
			t.Errorf("looksNumeric(%q) = %v, want %v", s, got, want)
		}
	}
}

func TestUUID_IsVersion4Variant1(t *testing.T) {
	g := UUID()
	tr := g(NewRNG(1), 0)
	id := tr.Root
	if (id[6] >> 4) != 4 {
		t.Fatalf("UUID version nibble = %x, want 4", id[6]>>4)
	}
	if (id[8] >> 6) != 0b10 {
		t.Fatalf("UUID variant bits = %b, want 10", id[8]>>6)
	}
}

func TestUUID_DoesNotShrink(t *testing.T) {
	g := UUID()
	tr := g(NewRNG(1), 0)
	if len(tr.Children()) != 0 {
		t.Fatalf("UUID generator produced shrink children")
	}
}

func TestRatio_Reduce(t *testing.T) {
	r := Ratio{Num: 4, Den: 8}.Reduce()
	if r.Num != 1 || r.Den != 2 {
		t.Fatalf("Reduce(4/8) = %d/%d, want 1/2", r.Num, r.Den)
	}
}

func TestRatioGen_DenominatorNeverZero(t *testing.T) {
	g := RatioGen([2]int64{-100, 100}, [2]int64{-10, 10})
	r := NewRNG(1)
	for i := 0; i < 30; i++ {
		tr := g(r, 10)
		if tr.Root.Den == 0 {
			t.Fatal("RatioGen produced a zero denominator")
		}
		r, _ = r.Split()
	}
}
