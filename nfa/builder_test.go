package nfa

import "testing"

func TestBuilderFragmentShape(t *testing.T) {
	b := NewBuilder()
	frag := b.Character('a')
	if frag.Start() != 0 {
		t.Fatalf("Start() = %d, want 0", frag.Start())
	}
	if frag.Accept() != StateID(frag.StateCount-1) {
		t.Fatalf("Accept() = %d, want %d", frag.Accept(), frag.StateCount-1)
	}
}

func TestBuilderConcatenatePreservesOrder(t *testing.T) {
	b := NewBuilder()
	a := b.Character('a')
	c := b.Character('b')
	frag := b.Concatenate(a, c)
	m := NewMatcher(frag)
	if !m.Test("ab") {
		t.Fatal("expected concatenated fragment to match \"ab\"")
	}
	if m.Test("ba") {
		t.Fatal("expected concatenated fragment not to match \"ba\"")
	}
}

func TestBuilderAlternate(t *testing.T) {
	b := NewBuilder()
	frag := b.Alternate(b.Character('a'), b.Character('b'))
	m := NewMatcher(frag)
	if !m.Test("a") || !m.Test("b") {
		t.Fatal("expected alternation to match both branches")
	}
	if m.Test("c") {
		t.Fatal("expected alternation not to match \"c\"")
	}
}

func TestBuilderGroupTagsBoundaries(t *testing.T) {
	b := NewBuilder()
	inner := b.Character('a')
	frag := b.Group(inner, true, 1)
	if len(frag.StartCapture[frag.Start()]) != 1 || frag.StartCapture[frag.Start()][0] != 1 {
		t.Fatalf("StartCapture = %v, want group 1 at start state", frag.StartCapture)
	}
	if len(frag.EndCapture[frag.Accept()]) != 1 || frag.EndCapture[frag.Accept()][0] != 1 {
		t.Fatalf("EndCapture = %v, want group 1 at accept state", frag.EndCapture)
	}
}

func TestBuilderGroupNonCapturingIsTransparent(t *testing.T) {
	b := NewBuilder()
	inner := b.Character('a')
	frag := b.Group(inner, false, 1)
	if len(frag.StartCapture) != 0 || len(frag.EndCapture) != 0 {
		t.Fatalf("non-capturing group should carry no capture boundaries, got start=%v end=%v", frag.StartCapture, frag.EndCapture)
	}
}

func TestBuilderRepeatBoundedExact(t *testing.T) {
	b := NewBuilder()
	frag := b.Repeat(b.Character('a'), 3, intPtr(3))
	m := NewMatcher(frag)
	if !m.Test("aaa") {
		t.Fatal("expected a{3} to match \"aaa\"")
	}
	if m.Test("aa") {
		t.Fatal("expected a{3} not to match \"aa\"")
	}
}

func TestBuilderRepeatUnbounded(t *testing.T) {
	b := NewBuilder()
	frag := b.Repeat(b.Character('a'), 2, nil)
	m := NewMatcher(frag)
	start, end, ok := m.Find("aaaaa")
	if !ok {
		t.Fatal("expected a{2,} to find a match")
	}
	if start != 0 || end != 5 {
		t.Fatalf("Find = (%d,%d), want (0,5) (longest run)", start, end)
	}
}

func intPtr(n int) *int { return &n }
