package literal

import (
	"testing"

	"gorx/syntax"
)

func mustParse(t *testing.T, pattern string) *syntax.Node {
	t.Helper()
	n, err := syntax.Parse(pattern)
	if err != nil {
		t.Fatalf("syntax.Parse(%q): %v", pattern, err)
	}
	return n
}

func TestExtractAlternatesPureLiterals(t *testing.T) {
	e := New(DefaultConfig())
	lits, ok := e.ExtractAlternates(mustParse(t, `cat|dog|bird`))
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	want := []string{"cat", "dog", "bird"}
	if len(lits) != len(want) {
		t.Fatalf("lits = %v, want %v", lits, want)
	}
	for i, l := range lits {
		if l != want[i] {
			t.Fatalf("lits[%d] = %q, want %q", i, l, want[i])
		}
	}
}

func TestExtractAlternatesRejectsNonLiteralBranch(t *testing.T) {
	e := New(DefaultConfig())
	_, ok := e.ExtractAlternates(mustParse(t, `cat|d.g`))
	if ok {
		t.Fatal("expected extraction to fail: branch contains a wildcard")
	}
}

func TestExtractAlternatesRejectsSingleLiteral(t *testing.T) {
	e := New(DefaultConfig())
	_, ok := e.ExtractAlternates(mustParse(t, `cat`))
	if ok {
		t.Fatal("expected extraction to fail: not an alternation")
	}
}

func TestExtractAlternatesRejectsCapturingGroupBranch(t *testing.T) {
	e := New(DefaultConfig())
	_, ok := e.ExtractAlternates(mustParse(t, `(cat)|dog`))
	if ok {
		t.Fatal("expected extraction to fail: a capturing group branch isn't a bare literal")
	}
}

func TestExtractAlternatesHonorsMaxLiteralLen(t *testing.T) {
	e := New(ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 2})
	_, ok := e.ExtractAlternates(mustParse(t, `cat|dog`))
	if ok {
		t.Fatal("expected extraction to fail: literals exceed MaxLiteralLen")
	}
}

func TestExtractAlternatesNonCapturingGroupBranch(t *testing.T) {
	e := New(DefaultConfig())
	lits, ok := e.ExtractAlternates(mustParse(t, `(:?cat)|dog`))
	if !ok {
		t.Fatal("expected extraction to succeed through a non-capturing group")
	}
	if len(lits) != 2 || lits[0] != "cat" || lits[1] != "dog" {
		t.Fatalf("lits = %v, want [cat dog]", lits)
	}
}
