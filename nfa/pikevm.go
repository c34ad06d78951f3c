package nfa

import (
	"unicode/utf8"

	"gorx/internal/conv"
	"gorx/internal/sparse"
	"gorx/simd"
)

// Matcher runs the Pike VM algorithm over an *NFA: a parallel simulation
// that advances every live thread one codepoint at a time, so the whole
// search is O(states x runes) with no backtracking.
//
// Captures ride along per-thread as a cowCaptures value, but splitting a
// thread at an Alternate or Star/Plus/Optional branch point, or stepping it
// over a rune, hands the child the same value without cloning it. Every
// thread seeded at one start position therefore shares a single capture
// slice: a boundary recorded on any path from that start overwrites the
// slot for all of them, and only seeding a new start allocates.
type Matcher struct {
	nfa *NFA

	queue     []thread
	nextQueue []thread
	visited   *sparse.SparseSet

	// asciiFastPath controls whether runePositions may skip per-rune UTF-8
	// decoding on verified-ASCII input.
	asciiFastPath bool

	// firstRunes, when set, lets findFrom/FindCaptures reject a candidate
	// start position in O(1) — without ever seeding a thread — whenever the
	// rune about to be consumed there cannot possibly begin a match.
	firstRunes *FirstRuneSet
}

// SetFirstRunes installs an early-reject gate derived from the pattern's
// AST (see ExtractFirstRunes): a candidate start position is skipped
// without seeding a thread there whenever the next rune isn't in the set.
// Passing nil disables the gate.
func (m *Matcher) SetFirstRunes(f *FirstRuneSet) {
	m.firstRunes = f
}

// canStartHere reports whether a new thread may be seeded at the current
// search position, given the rune (if any) it is about to consume. With no
// gate installed, or at end of input where an empty match is still
// possible, every position is a candidate.
func (m *Matcher) canStartHere(runes []runePos, idx int) bool {
	if m.firstRunes == nil || idx >= len(runes) {
		return true
	}
	return m.firstRunes.Contains(runes[idx].value)
}

// thread is one live execution path: the NFA state it is sitting in, where
// its overall match attempt started, and its capture boundaries so far.
type thread struct {
	state    StateID
	startPos int
	captures cowCaptures
}

// cowCaptures is a reference-counted capture slice: update copies it only
// when refs > 1. The matcher never calls clone, so refs stays at 1 and
// update writes in place into the slice shared by all threads of one start.
type cowCaptures struct {
	shared *sharedCaptures
}

type sharedCaptures struct {
	data []int
	refs int
}

func (c cowCaptures) clone() cowCaptures {
	if c.shared == nil {
		return cowCaptures{}
	}
	c.shared.refs++
	return cowCaptures{shared: c.shared}
}

func (c cowCaptures) update(slot, value int) cowCaptures {
	if c.shared == nil || slot < 0 || slot >= len(c.shared.data) {
		return c
	}
	if c.shared.refs > 1 {
		c.shared.refs--
		data := make([]int, len(c.shared.data))
		copy(data, c.shared.data)
		data[slot] = value
		return cowCaptures{shared: &sharedCaptures{data: data, refs: 1}}
	}
	c.shared.data[slot] = value
	return c
}

func (c cowCaptures) copyData() []int {
	if c.shared == nil {
		return nil
	}
	dst := make([]int, len(c.shared.data))
	copy(dst, c.shared.data)
	return dst
}

// Match is a bare match span, byte offsets into the searched string.
type Match struct {
	Start int
	End   int
}

// CaptureMatch is a match together with every capturing group's span.
// Groups[0] is always the whole match; Groups[i] is nil for group i if that
// group did not participate in this particular match.
type CaptureMatch struct {
	Start  int
	End    int
	Groups [][]int
}

// NewMatcher builds a Matcher that simulates nfa, with the ASCII fast path
// enabled.
func NewMatcher(n *NFA) *Matcher {
	return NewMatcherWithOptions(n, true)
}

// NewMatcherWithOptions builds a Matcher, letting the caller turn off the
// ASCII fast path (Config.EnableASCIIFastPath) when a byte-identical decode
// path is wanted regardless of input shape, e.g. while debugging.
func NewMatcherWithOptions(n *NFA, asciiFastPath bool) *Matcher {
	capacity := n.StateCount
	if capacity < 16 {
		capacity = 16
	}
	return &Matcher{
		nfa:           n,
		queue:         make([]thread, 0, capacity),
		nextQueue:     make([]thread, 0, capacity),
		visited:       sparse.NewSparseSet(conv.IntToUint32(capacity)),
		asciiFastPath: asciiFastPath,
	}
}

func (m *Matcher) newCaptures() cowCaptures {
	slots := m.nfa.GroupCount() * 2
	if slots == 0 {
		return cowCaptures{}
	}
	data := make([]int, slots)
	for i := range data {
		data[i] = -1
	}
	return cowCaptures{shared: &sharedCaptures{data: data, refs: 1}}
}

// Test reports whether the NFA matches anywhere in s.
func (m *Matcher) Test(s string) bool {
	_, _, ok := m.Find(s)
	return ok
}

// Find returns the leftmost-longest match in s, if any.
func (m *Matcher) Find(s string) (start, end int, ok bool) {
	return m.findFrom(s, 0)
}

// findFrom runs the unanchored parallel simulation starting the search no
// earlier than byte offset from, implementing leftmost-longest semantics:
// among all matches, prefer the earliest start, then the longest end.
func (m *Matcher) findFrom(s string, from int) (start, end int, ok bool) {
	m.queue = m.queue[:0]
	m.nextQueue = m.nextQueue[:0]
	m.visited.Clear()

	bestStart, bestEnd := -1, -1

	pos := from
	runes := m.runePositions(s, from)
	idx := 0
	for {
		if bestStart == -1 && m.canStartHere(runes, idx) {
			m.visited.Clear()
			m.addThread(thread{state: m.nfa.Start(), startPos: pos}, pos)
		}
		for _, t := range m.queue {
			if m.nfa.IsAccepting(t.state) {
				if bestStart == -1 || t.startPos < bestStart || (t.startPos == bestStart && pos > bestEnd) {
					bestStart, bestEnd = t.startPos, pos
				}
			}
		}

		if idx >= len(runes) {
			break
		}
		if bestStart != -1 {
			leftmostAlive := false
			for _, t := range m.queue {
				if t.startPos <= bestStart {
					leftmostAlive = true
					break
				}
			}
			if !leftmostAlive {
				break
			}
		}
		if len(m.queue) == 0 && bestStart != -1 {
			break
		}

		r := runes[idx]
		m.visited.Clear()
		for _, t := range m.queue {
			m.step(t, r.value, r.end)
		}
		m.queue, m.nextQueue = m.nextQueue, m.queue[:0]
		pos = r.end
		idx++
	}

	if bestStart == -1 {
		return -1, -1, false
	}
	return bestStart, bestEnd, true
}

// FindCaptures is Find but also resolves capture-group spans.
func (m *Matcher) FindCaptures(s string) *CaptureMatch {
	m.queue = m.queue[:0]
	m.nextQueue = m.nextQueue[:0]
	m.visited.Clear()

	bestStart, bestEnd := -1, -1
	var bestCaptures []int

	runes := m.runePositions(s, 0)
	pos := 0
	idx := 0
	for {
		if bestStart == -1 && m.canStartHere(runes, idx) {
			m.visited.Clear()
			caps := m.newCaptures()
			m.addThread(thread{state: m.nfa.Start(), startPos: pos, captures: caps}, pos)
		}
		for _, t := range m.queue {
			if m.nfa.IsAccepting(t.state) {
				if bestStart == -1 || t.startPos < bestStart || (t.startPos == bestStart && pos > bestEnd) {
					bestStart, bestEnd = t.startPos, pos
					bestCaptures = t.captures.copyData()
				}
			}
		}

		if idx >= len(runes) {
			break
		}
		if bestStart != -1 {
			leftmostAlive := false
			for _, t := range m.queue {
				if t.startPos <= bestStart {
					leftmostAlive = true
					break
				}
			}
			if !leftmostAlive {
				break
			}
		}
		if len(m.queue) == 0 && bestStart != -1 {
			break
		}

		r := runes[idx]
		m.visited.Clear()
		for _, t := range m.queue {
			m.step(t, r.value, r.end)
		}
		m.queue, m.nextQueue = m.nextQueue, m.queue[:0]
		pos = r.end
		idx++
	}

	if bestStart == -1 {
		return nil
	}
	return &CaptureMatch{Start: bestStart, End: bestEnd, Groups: m.resolveGroups(bestCaptures, bestStart, bestEnd)}
}

func (m *Matcher) resolveGroups(caps []int, start, end int) [][]int {
	n := m.nfa.GroupCount() + 1
	out := make([][]int, n)
	out[0] = []int{start, end}
	for i := 1; i < n; i++ {
		lo, hi := caps[(i-1)*2], caps[(i-1)*2+1]
		if lo >= 0 && hi >= 0 {
			out[i] = []int{lo, hi}
		}
	}
	return out
}

// FindAll returns every non-overlapping leftmost-longest match in s, in
// order. An empty match advances the next search position by one
// codepoint so it cannot loop forever on patterns like "a*" against "bbb".
func (m *Matcher) FindAll(s string) []Match {
	var out []Match
	pos := 0
	for pos <= len(s) {
		start, end, ok := m.findFrom(s, pos)
		if !ok {
			break
		}
		out = append(out, Match{Start: start, End: end})
		if end > pos {
			pos = end
		} else {
			pos = advanceOneRune(s, start)
		}
	}
	return out
}

type runePos struct {
	value rune
	end   int // byte offset immediately after this rune
}

// runePositions decodes s[from:] into one entry per codepoint, each
// carrying the byte offset where the NEXT codepoint (or end of string)
// begins — exactly the position threads advance to after consuming it.
//
// When asciiFastPath is enabled and s[from:] is verified pure ASCII, each
// byte is exactly one codepoint, so the decode loop is skipped entirely in
// favor of a direct byte walk.
func (m *Matcher) runePositions(s string, from int) []runePos {
	rest := s[from:]
	out := make([]runePos, 0, len(rest))
	if m.asciiFastPath && simd.IsASCII([]byte(rest)) {
		for i := 0; i < len(rest); i++ {
			out = append(out, runePos{value: rune(rest[i]), end: from + i + 1})
		}
		return out
	}
	for i := from; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		out = append(out, runePos{value: r, end: i})
	}
	return out
}

func advanceOneRune(s string, pos int) int {
	if pos >= len(s) {
		return pos + 1
	}
	_, size := utf8.DecodeRuneInString(s[pos:])
	return pos + size
}

// addThread follows epsilon transitions from t, applying capture
// boundaries recorded on each state it passes through, and enqueues the
// resulting leaves (accepting or input-consuming states) into the current
// generation.
func (m *Matcher) addThread(t thread, pos int) {
	if m.visited.Contains(conv.IntToUint32(int(t.state))) {
		return
	}
	m.visited.Insert(conv.IntToUint32(int(t.state)))

	t.captures = m.applyCaptures(t.state, t.captures, pos)

	if m.nfa.IsAccepting(t.state) {
		m.queue = append(m.queue, t)
	}
	hasConsuming := false
	for _, tr := range m.nfa.Transitions[t.state] {
		if tr.Kind == Epsilon {
			m.addThread(thread{state: tr.End, startPos: t.startPos, captures: t.captures}, pos)
		} else {
			hasConsuming = true
		}
	}
	if hasConsuming {
		m.queue = append(m.queue, t)
	}
}

// applyCaptures tags pos onto every group index that opens or closes at
// state s. When a group's boundary is reached from more than one state
// (Repeat's unfolded copies of a capturing group), whichever reaches this
// point last during construction simply overwrites the slot — last
// iteration wins, the accepted limitation for repeated captures.
func (m *Matcher) applyCaptures(s StateID, caps cowCaptures, pos int) cowCaptures {
	for _, g := range m.nfa.StartCapture[s] {
		caps = caps.update((g-1)*2, pos)
	}
	for _, g := range m.nfa.EndCapture[s] {
		caps = caps.update((g-1)*2+1, pos)
	}
	return caps
}

// step consumes rune r from thread t, landing in the next generation at
// byte offset nextPos.
func (m *Matcher) step(t thread, r rune, nextPos int) {
	for _, tr := range m.nfa.Transitions[t.state] {
		if tr.Kind != Epsilon && tr.Accepts(r) {
			m.addThreadToNext(thread{state: tr.End, startPos: t.startPos, captures: t.captures}, nextPos)
		}
	}
}

func (m *Matcher) addThreadToNext(t thread, pos int) {
	if m.visited.Contains(conv.IntToUint32(int(t.state))) {
		return
	}
	m.visited.Insert(conv.IntToUint32(int(t.state)))

	t.captures = m.applyCaptures(t.state, t.captures, pos)

	hasConsuming := false
	for _, tr := range m.nfa.Transitions[t.state] {
		if tr.Kind == Epsilon {
			m.addThreadToNext(thread{state: tr.End, startPos: t.startPos, captures: t.captures}, pos)
		} else {
			hasConsuming = true
		}
	}
	if hasConsuming || m.nfa.IsAccepting(t.state) {
		m.nextQueue = append(m.nextQueue, t)
	}
}
