// Package gorx provides a compact regex engine over a Parser → AST → NFA →
// Matcher pipeline.
//
// gorx's surface syntax is a deliberately small subset aimed at data
// plumbing and validation, not a Perl clone: no backreferences, no
// lookaround, no anchors, no lazy quantifiers, no flags, no Unicode
// property classes, and no replacement API. See the syntax package for the
// full grammar.
//
// Basic usage:
//
//	re, err := gorx.New(`\d+`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.Test("order 42") {
//	    fmt.Println(re.FindString("order 42")) // "42"
//	}
//
// Compiling is expensive (it runs the parser and NFA builder); Test, Find,
// FindAll and Captures only run the matcher against the cached NFA, so a
// *Regex is meant to be built once and reused.
package gorx

import (
	"gorx/nfa"
	"gorx/prefilter"
	"gorx/syntax"
)

// Error wraps a compilation failure with the pattern that caused it.
// Unwrap exposes the underlying *syntax.ParseError or *nfa.CompileError so
// callers can branch with errors.As.
type Error struct {
	Pattern string
	Err     error
}

func (e *Error) Error() string {
	return "gorx: " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Regex is a compiled pattern. A *Regex is safe for concurrent use: Test,
// Find, FindAll and Captures each allocate their own matcher state.
type Regex struct {
	pattern    string
	ast        *syntax.Node
	automaton  *nfa.NFA
	pre        *prefilter.Prefilter
	firstRunes *nfa.FirstRuneSet
	config     Config
}

func (r *Regex) matcher() *nfa.Matcher {
	m := nfa.NewMatcherWithOptions(r.automaton, r.config.EnableASCIIFastPath)
	m.SetFirstRunes(r.firstRunes)
	return m
}

// New compiles pattern with the default configuration.
func New(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// Compile is an alias for New, kept for callers migrating from stdlib
// regexp's naming.
func Compile(pattern string) (*Regex, error) {
	return New(pattern)
}

// MustCompile is like New but panics if pattern fails to compile. Intended
// for patterns fixed at program initialization.
func MustCompile(pattern string) *Regex {
	re, err := New(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// CompileWithConfig compiles pattern with a caller-supplied configuration.
func CompileWithConfig(pattern string, config Config) (*Regex, error) {
	ast, err := syntax.Parse(pattern)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}

	compiler := &nfa.Compiler{MaxDepth: config.MaxRecursionDepth}
	automaton, err := compiler.Compile(ast)
	if err != nil {
		return nil, &Error{Pattern: pattern, Err: err}
	}

	var pre *prefilter.Prefilter
	if config.EnablePrefilter {
		pre = prefilter.Build(ast)
	}

	var firstRunes *nfa.FirstRuneSet
	if set := nfa.ExtractFirstRunes(ast); set != nil && set.IsUseful() {
		firstRunes = set
	}

	return &Regex{pattern: pattern, ast: ast, automaton: automaton, pre: pre, firstRunes: firstRunes, config: config}, nil
}

// String returns the source pattern text.
func (r *Regex) String() string {
	return r.pattern
}

// NumSubexp returns the number of capturing groups (group 0, the whole
// match, is not counted).
func (r *Regex) NumSubexp() int {
	return r.automaton.GroupCount()
}

// Test reports whether input contains any match.
func (r *Regex) Test(input string) bool {
	if r.pre != nil {
		return r.pre.IsMatch([]byte(input))
	}
	return r.matcher().Test(input)
}

// Find returns the leftmost match in input, longest at that start
// position, or nil if there is none.
func (r *Regex) Find(input string) *Match {
	if r.pre != nil {
		if begin, end, ok := r.pre.Find([]byte(input), 0); ok {
			return &Match{Start: begin, End: end}
		}
		return nil
	}
	start, end, ok := r.matcher().Find(input)
	if !ok {
		return nil
	}
	return &Match{Start: start, End: end}
}

// FindString returns the text of the leftmost match in input, or "" if
// there is none. Callers that need to tell "no match" apart from an empty
// match should use Find instead.
func (r *Regex) FindString(input string) string {
	m := r.Find(input)
	if m == nil {
		return ""
	}
	return input[m.Start:m.End]
}

// FindAll returns every non-overlapping leftmost-longest match in input, in
// order of occurrence.
func (r *Regex) FindAll(input string) []Match {
	if r.pre != nil {
		return r.findAllPrefiltered(input)
	}
	matches := r.matcher().FindAll(input)
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = Match{Start: m.Start, End: m.End}
	}
	return out
}

// findAllPrefiltered walks literal hits directly: every prefilter built by
// this package covers the whole alternation, so a hit needs no NFA
// verification.
func (r *Regex) findAllPrefiltered(input string) []Match {
	var out []Match
	b := []byte(input)
	pos := 0
	for pos <= len(b) {
		begin, end, ok := r.pre.Find(b, pos)
		if !ok {
			break
		}
		out = append(out, Match{Start: begin, End: end})
		if end > pos {
			pos = end
		} else {
			pos++
		}
	}
	return out
}

// Captures returns the leftmost match together with its capture-group
// spans, or nil if there is no match.
func (r *Regex) Captures(input string) *Captures {
	cm := r.matcher().FindCaptures(input)
	if cm == nil {
		return nil
	}
	return &Captures{input: input, match: cm, names: r.automaton.GroupNames}
}

// Match is a match span: byte offsets into the searched string, always
// falling on codepoint boundaries.
type Match struct {
	Start int
	End   int
}

// String returns the matched substring of input. input must be the same
// string (or an identical copy) the match was found in.
func (m Match) String(input string) string {
	return input[m.Start:m.End]
}

// Captures holds a match and its capturing groups' spans, resolved against
// the input string that produced them.
type Captures struct {
	input string
	match *nfa.CaptureMatch
	names []string
}

// Get returns the text of the k-th group (0 is the whole match, k is
// 1-based for explicit groups), and whether that group participated in
// this match.
func (c *Captures) Get(k int) (string, bool) {
	span, ok := c.GetIndex(k)
	if !ok {
		return "", false
	}
	return c.input[span[0]:span[1]], true
}

// GetIndex is Get but returns the raw [start, end] byte offsets instead of
// the substring.
func (c *Captures) GetIndex(k int) ([]int, bool) {
	if k < 0 || k >= len(c.match.Groups) || c.match.Groups[k] == nil {
		return nil, false
	}
	return c.match.Groups[k], true
}

// GetName resolves a named group by name, equivalent to Get(k) for k the
// group's 1-based index.
func (c *Captures) GetName(name string) (string, bool) {
	for i, n := range c.names {
		if n == name {
			return c.Get(i + 1)
		}
	}
	return "", false
}
