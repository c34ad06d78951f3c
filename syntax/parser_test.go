package syntax

import "testing"

func TestParseLiteralConcat(t *testing.T) {
	n, err := Parse("ab")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpConcat {
		t.Fatalf("Op = %v, want Concat", n.Op)
	}
	if n.Sub[0].Char != 'a' || n.Sub[1].Char != 'b' {
		t.Fatalf("unexpected tree: %+v", n)
	}
}

func TestParseAlternation(t *testing.T) {
	n, err := Parse("a|b")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpAlternate {
		t.Fatalf("Op = %v, want Alternate", n.Op)
	}
}

func TestParseQuantifiers(t *testing.T) {
	cases := map[string]Op{
		"a*": OpStar,
		"a+": OpPlus,
		"a?": OpOptional,
	}
	for pattern, want := range cases {
		n, err := Parse(pattern)
		if err != nil {
			t.Fatalf("Parse(%q): %v", pattern, err)
		}
		if n.Op != want {
			t.Errorf("Parse(%q).Op = %v, want %v", pattern, n.Op, want)
		}
	}
}

func TestParseCountedRepetition(t *testing.T) {
	n, err := Parse("e{3}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpRange || n.Min != 3 || n.Max == nil || *n.Max != 3 {
		t.Fatalf("unexpected node: %+v", n)
	}

	n, err = Parse("e{1,3}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Min != 1 || *n.Max != 3 {
		t.Fatalf("unexpected range: min=%d max=%v", n.Min, n.Max)
	}

	n, err = Parse("e{3,}")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Min != 3 || n.Max != nil {
		t.Fatalf("unexpected unbounded range: min=%d max=%v", n.Min, n.Max)
	}
}

func TestParseCountedRepetitionOutOfOrder(t *testing.T) {
	_, err := Parse("e{3,1}")
	if err == nil {
		t.Fatal("expected an error for e{3,1}")
	}
	var pe *ParseError
	if !As(err, &pe) || pe.Code != RangeOutOfOrder {
		t.Fatalf("expected RangeOutOfOrder, got %v", err)
	}
}

func TestParseGroups(t *testing.T) {
	n, err := Parse("(:?ab)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpGroup || n.Capturing {
		t.Fatalf("expected non-capturing group, got %+v", n)
	}

	n, err = Parse("(?<hour>ab)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpGroup || !n.Capturing || n.Name != "hour" {
		t.Fatalf("expected named capturing group 'hour', got %+v", n)
	}

	n, err = Parse("(ab)")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpGroup || !n.Capturing || n.Name != "" {
		t.Fatalf("expected numbered capturing group, got %+v", n)
	}
}

func TestParseCharacterClass(t *testing.T) {
	n, err := Parse("[0-9]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpCharacterClass || n.Negate {
		t.Fatalf("unexpected node: %+v", n)
	}
	if !n.Matches('5') || n.Matches('a') {
		t.Fatalf("class membership wrong for [0-9]")
	}

	n, err = Parse("[^0-9]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !n.Negate {
		t.Fatal("expected negated class")
	}
	if n.Matches('5') || !n.Matches('a') {
		t.Fatalf("negated class membership wrong")
	}
}

func TestParseEscapeAliases(t *testing.T) {
	n, err := Parse(`\d`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpCharacterClass || n.Negate {
		t.Fatalf("unexpected node for \\d: %+v", n)
	}
	if !n.Matches('5') || n.Matches('x') {
		t.Fatalf("\\d membership wrong")
	}

	n, err = Parse(`\D`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !n.Negate {
		t.Fatal("expected \\D to be negated")
	}
	if n.Matches('5') || !n.Matches('x') {
		t.Fatalf("\\D membership wrong")
	}
}

func TestParseMetacharacterEscape(t *testing.T) {
	n, err := Parse(`\.`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if n.Op != OpCharacter || n.Char != '.' {
		t.Fatalf("expected literal '.', got %+v", n)
	}
}

func TestParseInvalidEscape(t *testing.T) {
	_, err := Parse(`\q`)
	if err == nil {
		t.Fatal("expected error for invalid escape")
	}
	var pe *ParseError
	if !As(err, &pe) || pe.Code != InvalidEscapeSequence {
		t.Fatalf("expected InvalidEscapeSequence, got %v", err)
	}
}

func TestParseMissingCloseParen(t *testing.T) {
	_, err := Parse("(ab")
	if err == nil {
		t.Fatal("expected error for missing ')'")
	}
	var pe *ParseError
	if !As(err, &pe) || pe.Code != MissingCharacter {
		t.Fatalf("expected MissingCharacter, got %v", err)
	}
}

func TestParseInvalidCaptureName(t *testing.T) {
	_, err := Parse("(?<1bad>x)")
	if err == nil {
		t.Fatal("expected error for invalid capture name")
	}
	var pe *ParseError
	if !As(err, &pe) || pe.Code != InvalidCaptureName {
		t.Fatalf("expected InvalidCaptureName, got %v", err)
	}
}

// As is a tiny local errors.As to avoid importing "errors" twice for a
// single helper in these table tests.
func As(err error, target **ParseError) bool {
	pe, ok := err.(*ParseError)
	if !ok {
		return false
	}
	*target = pe
	return true
}
