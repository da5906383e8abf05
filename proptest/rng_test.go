package proptest

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	r1 := NewRNG(12345)
	r2 := NewRNG(12345)

	for i := 0; i < 50; i++ {
		var v1, v2 uint64
		v1, r1 = r1.Uint64()
		v2, r2 = r2.Uint64()
		if v1 != v2 {
			t.Fatalf("same seed diverged at step %d: %d vs %d", i, v1, v2)
		}
	}
}

func TestRNG_DifferentSeedsDiverge(t *testing.T) {
	r1 := NewRNG(1)
	r2 := NewRNG(2)

	same := 0
	for i := 0; i < 50; i++ {
		var v1, v2 uint64
		v1, r1 = r1.Uint64()
		v2, r2 = r2.Uint64()
		if v1 == v2 {
			same++
		}
	}
	if same > 2 {
		t.Errorf("different seeds produced suspiciously many matches: %d/50", same)
	}
}

func TestRNG_SplitDeterministic(t *testing.T) {
	r := NewRNG(42)
	a1, b1 := r.Split()
	a2, b2 := r.Split()

	if a1 != a2 || b1 != b2 {
		t.Fatalf("Split is not deterministic: (%v,%v) vs (%v,%v)", a1, b1, a2, b2)
	}
}

func TestRNG_SplitProducesIndependentStreams(t *testing.T) {
	r := NewRNG(7)
	left, right := r.Split()

	leftVal, _ := left.Uint64()
	rightVal, _ := right.Uint64()
	if leftVal == rightVal {
		t.Errorf("left and right split streams produced the same first value: %d", leftVal)
	}
}

func TestRNG_Float64InUnitRange(t *testing.T) {
	r := NewRNG(9)
	for i := 0; i < 200; i++ {
		var f float64
		f, r = r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
	}
}

func TestSplitN_DeterministicAndDistinct(t *testing.T) {
	r := NewRNG(123)
	a := SplitN(r, 5)
	b := SplitN(r, 5)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("SplitN not deterministic at index %d", i)
		}
	}
	seen := map[RNG]bool{}
	for _, s := range a {
		if seen[s] {
			t.Fatalf("SplitN produced a duplicate stream")
		}
		seen[s] = true
	}
}
