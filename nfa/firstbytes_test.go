package nfa

import "testing"

func TestExtractFirstRunesLiteral(t *testing.T) {
	set := ExtractFirstRunes(mustParse(t, `cat`))
	if set == nil || !set.IsUseful() {
		t.Fatal("expected a useful first-rune set")
	}
	if !set.Contains('c') {
		t.Fatal("expected 'c' to be a possible first rune")
	}
	if set.Contains('d') {
		t.Fatal("did not expect 'd' to be a possible first rune")
	}
}

func TestExtractFirstRunesAlternation(t *testing.T) {
	set := ExtractFirstRunes(mustParse(t, `cat|dog`))
	if set == nil || !set.IsUseful() {
		t.Fatal("expected a useful first-rune set")
	}
	if !set.Contains('c') || !set.Contains('d') {
		t.Fatal("expected both branches' first runes")
	}
	if set.Contains('b') {
		t.Fatal("did not expect 'b'")
	}
}

func TestExtractFirstRunesStarIsNotUseful(t *testing.T) {
	if ExtractFirstRunes(mustParse(t, `a*`)) != nil {
		t.Fatal("expected nil: a* can start with nothing")
	}
}

func TestExtractFirstRunesNegatedClassIsNotUseful(t *testing.T) {
	if ExtractFirstRunes(mustParse(t, `[^a]`)) != nil {
		t.Fatal("expected nil: negated class is too broad to enumerate")
	}
}

func TestExtractFirstRunesCharacterClass(t *testing.T) {
	set := ExtractFirstRunes(mustParse(t, `[0-9]+`))
	if set == nil || !set.IsUseful() {
		t.Fatal("expected a useful first-rune set")
	}
	if !set.Contains('5') || set.Contains('a') {
		t.Fatal("expected first-rune set to match [0-9]")
	}
}
