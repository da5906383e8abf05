package proptest

import "testing"

func TestPure_AlwaysSameValueNoShrinks(t *testing.T) {
	g := Pure(42)
	tr := g(NewRNG(1), 10)
	if tr.Root != 42 {
		t.Fatalf("Root = %d, want 42", tr.Root)
	}
	if len(tr.Children()) != 0 {
		t.Fatalf("Pure generator produced children")
	}
}

func TestMap_AppliesToRootAndChildren(t *testing.T) {
	g := Map(func(v int) int { return v + 1 }, Choose(0, 100))
	tr := g(NewRNG(5), 10)

	base := Choose(0, 100)(NewRNG(5), 10)
	if tr.Root != base.Root+1 {
		t.Fatalf("Root = %d, want %d", tr.Root, base.Root+1)
	}
	if len(tr.Children()) != len(base.Children()) {
		t.Fatalf("Map changed the shape of the tree")
	}
}

// TestBind_StableShrinkRNG is the test §9 calls for by name: the same r2
// must be reused across every shrunk outer value so a composite
// generator's inner randomness does not get re-rolled as the outer value
// shrinks.
func TestBind_StableShrinkRNG(t *testing.T) {
	g := Bind(Choose(0, 20), func(n int) Generator[int] {
		return Choose(0, 1000)
	})

	tr := g(NewRNG(99), 20)
	kids := tr.Children()
	if len(kids) == 0 {
		t.Skip("no shrinks produced for this seed")
	}

	// Every child's inner value must come from the same r2 stream: running
	// Bind twice from scratch must reproduce the exact same child set.
	tr2 := g(NewRNG(99), 20)
	kids2 := tr2.Children()
	if len(kids) != len(kids2) {
		t.Fatalf("non-deterministic child count: %d vs %d", len(kids), len(kids2))
	}
	for i := range kids {
		if kids[i].Root != kids2[i].Root {
			t.Fatalf("child %d differs across runs: %d vs %d", i, kids[i].Root, kids2[i].Root)
		}
	}
}

func TestBind_LeftIdentity(t *testing.T) {
	k := func(n int) Generator[int] { return Pure(n * 2) }
	left := Bind(Pure(21), k)
	right := k(21)

	r := NewRNG(3)
	lt := left(r, 10)
	rt := right(r, 10)
	if lt.Root != rt.Root {
		t.Fatalf("bind(pure(x), k) != k(x): %d vs %d", lt.Root, rt.Root)
	}
}

func TestBind_RightIdentity(t *testing.T) {
	g := Choose(0, 50)
	bound := Bind(g, func(n int) Generator[int] { return Pure(n) })

	r := NewRNG(11)
	gt := g(r, 10)
	bt := bound(r, 10)
	if gt.Root != bt.Root {
		t.Fatalf("bind(g, pure) != g: %d vs %d", bt.Root, gt.Root)
	}
}

func TestSized_ReceivesAmbientSize(t *testing.T) {
	var seen Size
	g := Sized(func(s Size) Generator[int] {
		seen = s
		return Pure(int(s))
	})
	g(NewRNG(1), 17)
	if seen != 17 {
		t.Fatalf("Sized saw size %d, want 17", seen)
	}
}

func TestResize_OverridesSize(t *testing.T) {
	g := Resize(5, Sized(func(s Size) Generator[Size] { return Pure(s) }))
	tr := g(NewRNG(1), 999)
	if tr.Root != 5 {
		t.Fatalf("Resize did not override size: got %d, want 5", tr.Root)
	}
}

func TestScale_AppliesFunctionToAmbientSize(t *testing.T) {
	g := Scale(func(s Size) Size { return s * 2 }, Sized(func(s Size) Generator[Size] { return Pure(s) }))
	tr := g(NewRNG(1), 4)
	if tr.Root != 8 {
		t.Fatalf("Scale result = %d, want 8", tr.Root)
	}
}
