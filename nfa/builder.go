package nfa

// Builder assembles NFA fragments via structural recursion. Every method
// that returns an *NFA returns a fragment satisfying the "one start (state
// 0), one accept (state_count-1)" shape, so callers can keep composing.
// There is no shared mutable state between fragments — relabelling always
// copies — so fragments can be reused (e.g. the inner automaton of a
// counted repetition is built once and concatenated several times).
//
// Capture bookkeeping rides along as plain StateID-keyed maps on each
// fragment (NFA.StartCapture / NFA.EndCapture); group indices themselves
// are assigned by the compiler's pre-pass (compile.go), not by the
// builder, so Repeat's cloned copies of an inner fragment naturally end up
// tagging the same group index from several different states.
type Builder struct{}

// NewBuilder returns a Builder. It carries no state; the zero value works
// equally well, but a constructor keeps call sites symmetric with the rest
// of the package's API.
func NewBuilder() *Builder {
	return &Builder{}
}

// Empty returns the 2-state fragment that matches the empty string.
func (b *Builder) Empty() *NFA {
	return &NFA{
		StateCount:  2,
		Transitions: [][]Transition{{{Kind: Epsilon, End: 1}}, nil},
	}
}

// Character returns the 2-state fragment that matches a single literal
// codepoint.
func (b *Builder) Character(c rune) *NFA {
	return &NFA{
		StateCount:  2,
		Transitions: [][]Transition{{{Kind: Character, Char: c, End: 1}}, nil},
	}
}

// Wildcard returns the 2-state fragment that matches any single codepoint.
func (b *Builder) Wildcard() *NFA {
	return &NFA{
		StateCount:  2,
		Transitions: [][]Transition{{{Kind: Wildcard, End: 1}}, nil},
	}
}

// Class returns the 2-state fragment that matches a single codepoint
// against a character class.
func (b *Builder) Class(negate bool, members []ClassMember) *NFA {
	cp := make([]ClassMember, len(members))
	copy(cp, members)
	return &NFA{
		StateCount: 2,
		Transitions: [][]Transition{
			{{Kind: Class, Negate: negate, Members: cp, End: 1}},
			nil,
		},
	}
}

// shiftCaptures returns a copy of m with every key (a StateID) shifted up
// by delta. Values (group indices) are untouched — an index names a group,
// not a state.
func shiftCaptures(m map[StateID][]int, delta int) map[StateID][]int {
	if len(m) == 0 {
		return nil
	}
	out := make(map[StateID][]int, len(m))
	for s, idxs := range m {
		cp := make([]int, len(idxs))
		copy(cp, idxs)
		out[s+StateID(delta)] = cp
	}
	return out
}

// mergeCaptures unions src into dst, returning dst (nil-safe: creates dst
// lazily). Keys never collide across fragments built by this package,
// since every composite constructor offsets one side before merging.
func mergeCaptures(dst, src map[StateID][]int) map[StateID][]int {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[StateID][]int, len(src))
	}
	for s, idxs := range src {
		dst[s] = append(append([]int{}, dst[s]...), idxs...)
	}
	return dst
}

// offset returns a copy of frag with every state id — including the keys of
// its capture maps — shifted up by delta. This is the single isolated
// relabelling operation every composite constructor below builds on.
func offset(frag *NFA, delta int) *NFA {
	out := &NFA{
		StateCount:   frag.StateCount + delta,
		Transitions:  make([][]Transition, frag.StateCount+delta),
		StartCapture: shiftCaptures(frag.StartCapture, delta),
		EndCapture:   shiftCaptures(frag.EndCapture, delta),
	}
	for i, trs := range frag.Transitions {
		shifted := make([]Transition, len(trs))
		for j, t := range trs {
			t.End += StateID(delta)
			shifted[j] = t
		}
		out.Transitions[i+delta] = shifted
	}
	return out
}

// mergeStates copies src's per-state transitions into dst starting at dst
// state index `at` (src's states have already been offset to live at
// [at, src.StateCount), so src.StateCount already includes at).
func mergeStates(dst *NFA, src *NFA, at int) {
	for i := at; i < src.StateCount; i++ {
		dst.Transitions[i] = src.Transitions[i]
	}
}

// Concatenate glues b's start to a's accept with an epsilon edge. The
// result's accept is b's (relabelled) accept.
func (bd *Builder) Concatenate(a, b *NFA) *NFA {
	off := a.StateCount
	shiftedB := offset(b, off)

	out := &NFA{
		StateCount:  a.StateCount + b.StateCount,
		Transitions: make([][]Transition, a.StateCount+b.StateCount),
	}
	mergeStates(out, a, 0)
	mergeStates(out, shiftedB, off)
	out.Transitions[off-1] = append(append([]Transition{}, out.Transitions[off-1]...),
		Transition{Kind: Epsilon, End: StateID(off)})

	out.StartCapture = mergeCaptures(mergeCaptures(nil, a.StartCapture), shiftedB.StartCapture)
	out.EndCapture = mergeCaptures(mergeCaptures(nil, a.EndCapture), shiftedB.EndCapture)
	return out
}

// Alternate builds a new start/accept pair epsilon-connected to both
// (relabelled) branches, implementing a|b.
func (bd *Builder) Alternate(a, b *NFA) *NFA {
	offA := 1
	offB := a.StateCount + 1
	newAccept := offB + b.StateCount

	shiftedA := offset(a, offA)
	shiftedB := offset(b, offB)

	out := &NFA{
		StateCount:  newAccept + 1,
		Transitions: make([][]Transition, newAccept+1),
	}
	out.Transitions[0] = []Transition{
		{Kind: Epsilon, End: StateID(offA)},
		{Kind: Epsilon, End: StateID(offB)},
	}
	mergeStates(out, shiftedA, offA)
	mergeStates(out, shiftedB, offB)

	out.Transitions[offB-1] = append(append([]Transition{}, out.Transitions[offB-1]...),
		Transition{Kind: Epsilon, End: StateID(newAccept)})
	out.Transitions[newAccept-1] = append(append([]Transition{}, out.Transitions[newAccept-1]...),
		Transition{Kind: Epsilon, End: StateID(newAccept)})

	out.StartCapture = mergeCaptures(mergeCaptures(nil, shiftedA.StartCapture), shiftedB.StartCapture)
	out.EndCapture = mergeCaptures(mergeCaptures(nil, shiftedA.EndCapture), shiftedB.EndCapture)
	return out
}

// Optional adds an epsilon edge from the start straight to the accept,
// implementing a?.
func (bd *Builder) Optional(a *NFA) *NFA {
	out := cloneNFA(a)
	out.Transitions[0] = append(append([]Transition{}, out.Transitions[0]...),
		Transition{Kind: Epsilon, End: a.Accept()})
	return out
}

// Plus builds a fresh 2-state skeleton around a (relabelled) copy of a,
// with a back edge from a's accept to a's start (re-entry) and a forward
// edge to the new accept, implementing a+.
func (bd *Builder) Plus(a *NFA) *NFA {
	off := 1
	shifted := offset(a, off)
	newAccept := off + a.StateCount

	out := &NFA{
		StateCount:  newAccept + 1,
		Transitions: make([][]Transition, newAccept+1),
	}
	out.Transitions[0] = []Transition{{Kind: Epsilon, End: StateID(off)}}
	mergeStates(out, shifted, off)
	out.Transitions[newAccept-1] = append(append([]Transition{}, out.Transitions[newAccept-1]...),
		Transition{Kind: Epsilon, End: StateID(off)},
		Transition{Kind: Epsilon, End: StateID(newAccept)},
	)
	out.StartCapture = shifted.StartCapture
	out.EndCapture = shifted.EndCapture
	return out
}

// Star implements a* as Plus(Optional(a)): the skip edge enables zero
// iterations, the back edge enables repetition.
func (bd *Builder) Star(a *NFA) *NFA {
	return bd.Plus(bd.Optional(a))
}

// Repeat implements the counted-repetition operator {min,max}. It unfolds
// structurally — concatenated copies of the inner fragment — rather than
// via a runtime counter, so the simulator stays stateless-per-state.
//
//	max == nil         -> min-fold concatenation, then an unbounded tail
//	max != nil          -> min-fold concatenation, then (max-min) optional copies
//
// If inner carries capture-group boundaries (from a capturing group nested
// inside the repeated subpattern), every unfolded copy tags the SAME group
// index from its own distinct states — multiple bindings for one logical
// group, last-iteration-wins at match time. That aliasing, not duplicate
// group numbering, is the documented limitation for captures under
// repetition; Repeat itself never invents new indices.
func (bd *Builder) Repeat(inner *NFA, min int, max *int) *NFA {
	var result *NFA
	if min == 0 {
		result = bd.Empty()
	} else {
		result = cloneNFA(inner)
		for i := 1; i < min; i++ {
			result = bd.Concatenate(result, cloneNFA(inner))
		}
	}

	if max != nil {
		for i := min; i < *max; i++ {
			result = bd.Concatenate(result, bd.Optional(cloneNFA(inner)))
		}
		return result
	}

	// Unbounded tail: a back edge from the last mandatory copy's accept to
	// that copy's start, and a forward edge to a freshly allocated accept.
	// With min == 0 there is no mandatory copy to loop, so {0,} is a star.
	if min == 0 {
		return bd.Star(cloneNFA(inner))
	}
	lastCopyStart := result.StateCount - inner.StateCount
	end := result.StateCount - 1

	out := &NFA{
		StateCount:   result.StateCount + 1,
		Transitions:  make([][]Transition, result.StateCount+1),
		StartCapture: result.StartCapture,
		EndCapture:   result.EndCapture,
	}
	mergeStates(out, result, 0)
	out.Transitions[end] = append(append([]Transition{}, out.Transitions[end]...),
		Transition{Kind: Epsilon, End: StateID(lastCopyStart)},
		Transition{Kind: Epsilon, End: StateID(end + 1)},
	)
	return out
}

// Group wraps inner unchanged but, if capturing, tags inner's start and
// accept states with the given 1-based group index in the capture maps.
// Non-capturing groups are transparent: they return inner as-is.
//
// index is assigned by the compiler's source-order pre-pass (compile.go),
// not computed here: Group only records where a given index's boundary
// falls, so nesting order and numbering are entirely the pre-pass's
// concern.
func (bd *Builder) Group(inner *NFA, capturing bool, index int) *NFA {
	if !capturing {
		return inner
	}
	out := cloneNFA(inner)
	if out.StartCapture == nil {
		out.StartCapture = make(map[StateID][]int, 1)
	}
	if out.EndCapture == nil {
		out.EndCapture = make(map[StateID][]int, 1)
	}
	start, accept := inner.Start(), inner.Accept()
	out.StartCapture[start] = append([]int{index}, out.StartCapture[start]...)
	out.EndCapture[accept] = append(out.EndCapture[accept], index)
	return out
}

func cloneNFA(a *NFA) *NFA {
	out := &NFA{
		StateCount:   a.StateCount,
		Transitions:  make([][]Transition, a.StateCount),
		StartCapture: shiftCaptures(a.StartCapture, 0),
		EndCapture:   shiftCaptures(a.EndCapture, 0),
	}
	for i, trs := range a.Transitions {
		out.Transitions[i] = append([]Transition{}, trs...)
	}
	return out
}
