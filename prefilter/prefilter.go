// Package prefilter provides fast candidate rejection ahead of running the
// full NFA simulation.
//
// When a pattern is a pure alternation of literals (e.g. "cat|dog|bird"),
// scanning the haystack with a multi-pattern automaton is far cheaper than
// running the NFA at every position: a literal hit is a guaranteed full
// match (the whole pattern IS the alternation, nothing to verify), so the
// automaton's own span can be returned directly.
package prefilter

import (
	"strings"

	"github.com/coregx/ahocorasick"

	"gorx/literal"
	"gorx/syntax"
)

// Prefilter wraps an Aho-Corasick automaton built from a pattern's literal
// alternation branches.
type Prefilter struct {
	automaton *ahocorasick.Automaton
}

// Build returns a Prefilter for root, or nil if root isn't a pure literal
// alternation (no prefilter is worth building).
func Build(root *syntax.Node) *Prefilter {
	lits, ok := literal.New(literal.DefaultConfig()).ExtractAlternates(root)
	if !ok {
		return nil
	}

	// This parser doesn't factor common literal prefixes out of an
	// alternation the way some regex parsers do, so "cat|category" reaches
	// here as two independent branches. A prefilter hit is returned as the
	// authoritative match with no NFA verification (see Find), and nothing
	// guarantees the automaton resolves an overlap leftmost-longest rather
	// than at the first branch it finishes matching. Bail out to the NFA
	// whenever one branch is a prefix of another, rather than risk a short
	// match winning over a longer one that shares its start.
	if hasPrefixOverlap(lits) {
		return nil
	}

	seq := literal.NewSeq(toLiterals(lits)...)
	if seq.IsEmpty() {
		return nil
	}

	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &Prefilter{automaton: auto}
}

// hasPrefixOverlap reports whether any literal in lits is a prefix of a
// different, longer literal in lits.
func hasPrefixOverlap(lits []string) bool {
	for i, a := range lits {
		for j, b := range lits {
			if i != j && len(a) < len(b) && strings.HasPrefix(b, a) {
				return true
			}
		}
	}
	return false
}

// toLiterals wraps each extracted alternate as a complete literal: a hit
// against it is a full pattern match on its own, not merely a prefix.
func toLiterals(lits []string) []literal.Literal {
	out := make([]literal.Literal, len(lits))
	for i, s := range lits {
		out[i] = literal.NewLiteral([]byte(s), true)
	}
	return out
}

// Find returns the span of the first literal occurring at or after start,
// or ok=false if none occurs. Since every prefilter built here covers the
// pattern's entire alternation, a hit IS a full match — callers may skip
// NFA verification entirely.
func (p *Prefilter) Find(haystack []byte, start int) (begin, end int, ok bool) {
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return 0, 0, false
	}
	return m.Start, m.End, true
}

// IsMatch reports whether any literal occurs anywhere in haystack.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}
