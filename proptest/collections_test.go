package proptest

import "testing"

func TestVectorOf_LengthBoundedBySize(t *testing.T) {
	g := VectorOf(Choose(0, 9))
	r := NewRNG(1)
	for i := 0; i < 50; i++ {
		tr := g(r, 5)
		if len(tr.Root) > 6 {
			t.Fatalf("VectorOf with size 5 produced length %d", len(tr.Root))
		}
		r, _ = r.Split()
	}
}

func TestVectorExact_AlwaysExactLength(t *testing.T) {
	g := VectorExact(Choose(0, 9), 7)
	tr := g(NewRNG(1), 10)
	if len(tr.Root) != 7 {
		t.Fatalf("VectorExact(_, 7) produced length %d", len(tr.Root))
	}
	for _, c := range tr.Children() {
		if len(c.Root) != 7 {
			t.Fatalf("VectorExact shrink changed length to %d", len(c.Root))
		}
	}
}

func TestVectorRange_RespectsBounds(t *testing.T) {
	g := VectorRange(Choose(0, 9), 3, 6)
	r := NewRNG(1)
	for i := 0; i < 50; i++ {
		tr := g(r, 10)
		if len(tr.Root) < 3 || len(tr.Root) > 6 {
			t.Fatalf("VectorRange(3,6) produced length %d", len(tr.Root))
		}
		for _, c := range tr.Children() {
			if len(c.Root) < 3 {
				t.Fatalf("VectorRange shrink dropped below lo: length %d", len(c.Root))
			}
		}
		r, _ = r.Split()
	}
}

func TestSetOf_NoDuplicates(t *testing.T) {
	g := SetOf(Choose(0, 1000))
	r := NewRNG(1)
	for i := 0; i < 30; i++ {
		tr := g(r, 8)
		seen := map[int]bool{}
		for _, v := range tr.Root {
			if seen[v] {
				t.Fatalf("SetOf produced a duplicate: %v", tr.Root)
			}
			seen[v] = true
		}
		r, _ = r.Split()
	}
}

func TestSetOfN_ExhaustsOnSmallDomain(t *testing.T) {
	g := SetOfN(Choose(0, 1), 5, 10)
	defer func() {
		rec := recover()
		if rec == nil {
			t.Fatal("SetOfN(Choose(0,1), 5, 10) did not panic")
		}
		err, ok := rec.(*Error)
		if !ok || err.Kind != KindSuchThatExhausted {
			t.Fatalf("panic = %v, want KindSuchThatExhausted", rec)
		}
	}()
	g(NewRNG(1), 10)
}

func TestSortedSetOf_IsAscendingAndDistinct(t *testing.T) {
	g := SortedSetOf(Choose(0, 1000))
	r := NewRNG(4)
	for i := 0; i < 20; i++ {
		tr := g(r, 10)
		for j := 1; j < len(tr.Root); j++ {
			if tr.Root[j-1] >= tr.Root[j] {
				t.Fatalf("SortedSetOf not strictly ascending: %v", tr.Root)
			}
		}
		r, _ = r.Split()
	}
}

func TestMapOf_EntryCountBoundedBySize(t *testing.T) {
	g := MapOf(Choose(0, 50), Choose(0, 50))
	r := NewRNG(2)
	for i := 0; i < 20; i++ {
		tr := g(r, 8)
		if len(tr.Root) > 9 {
			t.Fatalf("MapOf produced oversized map: %d entries", len(tr.Root))
		}
		r, _ = r.Split()
	}
}

func TestDistinctBy_RaisesOnExhaustion(t *testing.T) {
	g := DistinctBy(Choose(0, 2), identityKey[int], 4, 4, 5)
	defer func() {
		if recover() == nil {
			t.Fatal("DistinctBy did not panic on an impossible request")
		}
	}()
	g(NewRNG(1), 10)
}
