// Package literal provides types and operations for extracting literal
// sequences from gorx ASTs, and for representing those sequences (Literal,
// Seq) for prefilter optimization.
package literal

import "gorx/syntax"

// ExtractorConfig bounds how much an Extractor is willing to enumerate
// before giving up.
type ExtractorConfig struct {
	// MaxLiterals caps how many alternatives an alternation may expand to.
	MaxLiterals int
	// MaxLiteralLen caps the byte length of any single extracted literal.
	MaxLiteralLen int
}

// DefaultConfig returns the default extraction limits.
func DefaultConfig() ExtractorConfig {
	return ExtractorConfig{MaxLiterals: 64, MaxLiteralLen: 64}
}

// Extractor walks an AST looking for alternations whose every branch is a
// plain literal (a concatenation of Character nodes with no class,
// wildcard, or quantifier) — the shape a multi-literal prefilter like
// Aho-Corasick can exploit directly.
type Extractor struct {
	config ExtractorConfig
}

// New returns an Extractor using config.
func New(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// ExtractAlternates returns the literal branches of root if root is (after
// unwrapping any enclosing non-capturing groups) a top-level Alternate tree
// where every leaf concatenation is pure literal text. ok is false if root
// does not have this shape, exceeds the extractor's limits, or any branch
// is not a pure literal (contains ., a class, or a quantifier) — in which
// case no prefilter can be built and the caller falls back to running the
// NFA directly.
func (e *Extractor) ExtractAlternates(root *syntax.Node) (lits []string, ok bool) {
	var out []string
	if !collectAlternates(root, &out, e.config) {
		return nil, false
	}
	if len(out) < 2 {
		// A single literal isn't an "alternation prefilter" in the sense
		// this extractor targets; callers fall back to the NFA for it.
		return nil, false
	}
	return out, true
}

func collectAlternates(n *syntax.Node, out *[]string, cfg ExtractorConfig) bool {
	switch n.Op {
	case syntax.OpAlternate:
		return collectAlternates(n.Sub[0], out, cfg) && collectAlternates(n.Sub[1], out, cfg)
	case syntax.OpGroup:
		// A capturing group branch is not a bare literal; only
		// non-capturing groups are unwrapped.
		if n.Capturing {
			return false
		}
		return collectAlternates(n.Sub[0], out, cfg)
	default:
		lit, ok := literalText(n)
		if !ok || lit == "" || len(lit) > cfg.MaxLiteralLen {
			return false
		}
		if len(*out) >= cfg.MaxLiterals {
			return false
		}
		*out = append(*out, lit)
		return true
	}
}

// literalText returns the exact text n matches if n is built entirely from
// Character and Concat nodes (optionally wrapped in non-capturing groups).
func literalText(n *syntax.Node) (string, bool) {
	switch n.Op {
	case syntax.OpCharacter:
		return string(n.Char), true
	case syntax.OpConcat:
		l, ok := literalText(n.Sub[0])
		if !ok {
			return "", false
		}
		r, ok := literalText(n.Sub[1])
		if !ok {
			return "", false
		}
		return l + r, true
	case syntax.OpGroup:
		if n.Capturing {
			return "", false
		}
		return literalText(n.Sub[0])
	case syntax.OpEmpty:
		return "", true
	default:
		return "", false
	}
}
