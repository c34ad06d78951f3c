package nfa

import "gorx/syntax"

// FirstRuneSet is the set of codepoints a pattern can possibly start with.
// A prefilter can use it for O(1) rejection of a candidate start position
// before ever running the simulator.
type FirstRuneSet struct {
	members  []ClassMember
	complete bool // always true on a returned set; a branch too complex to enumerate makes ExtractFirstRunes return nil
}

// Contains reports whether r can be the first codepoint of a match.
func (f *FirstRuneSet) Contains(r rune) bool {
	for _, m := range f.members {
		if r >= m.Lo && r <= m.Hi {
			return true
		}
	}
	return false
}

// IsUseful reports whether this set can actually reject anything: it must
// be exhaustively derived (no branch bailed out) and not the full pattern
// already matching at the very first step unconditionally on everything.
func (f *FirstRuneSet) IsUseful() bool {
	return f.complete && len(f.members) > 0
}

const maxFirstRuneDepth = 32

// ExtractFirstRunes derives the set of codepoints root's match can start
// with. It returns nil when the pattern can match the empty string at
// position 0 or is otherwise too irregular to characterize (e.g. a
// top-level Star), since neither case yields a useful prefilter.
func ExtractFirstRunes(root *syntax.Node) *FirstRuneSet {
	result := &FirstRuneSet{complete: true}
	if !extractFirstRunes(root, result, 0) {
		return nil
	}
	if !result.complete {
		return nil
	}
	return result
}

func addMember(result *FirstRuneSet, lo, hi rune) {
	result.members = append(result.members, ClassMember{Lo: lo, Hi: hi})
}

func extractFirstRunes(n *syntax.Node, result *FirstRuneSet, depth int) bool {
	if depth > maxFirstRuneDepth {
		return false
	}

	switch n.Op {
	case syntax.OpCharacter:
		addMember(result, n.Char, n.Char)
		return true

	case syntax.OpCharacterClass:
		if n.Negate {
			// A negated class's complement is unbounded in practice (it
			// includes nearly all of Unicode); not useful to enumerate.
			return false
		}
		for _, m := range n.Members {
			addMember(result, m.Lo, m.Hi)
		}
		return len(n.Members) > 0

	case syntax.OpWildcard:
		return false

	case syntax.OpEmpty:
		return false

	case syntax.OpConcat:
		return extractFirstRunes(n.Sub[0], result, depth+1)

	case syntax.OpAlternate:
		return extractFirstRunes(n.Sub[0], result, depth+1) &&
			extractFirstRunes(n.Sub[1], result, depth+1)

	case syntax.OpGroup:
		return extractFirstRunes(n.Sub[0], result, depth+1)

	case syntax.OpPlus:
		return extractFirstRunes(n.Sub[0], result, depth+1)

	case syntax.OpRange:
		if n.Min == 0 {
			return false
		}
		return extractFirstRunes(n.Sub[0], result, depth+1)

	case syntax.OpStar, syntax.OpOptional:
		// Can match zero codepoints: no useful first-rune guarantee.
		return false

	default:
		return false
	}
}
