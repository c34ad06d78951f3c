package nfa

import "gorx/syntax"

// maxRepeatCount bounds a single counted-repetition operand: Repeat unfolds
// {n,m} into n..m concatenated copies of its operand, so an unreasonably
// large bound would blow up the NFA's state count long before it would ever
// be a useful pattern.
const maxRepeatCount = 1000

// CompileError reports that an NFA could not be built from an otherwise
// well-formed AST, e.g. because it nests deeper than a Compiler's
// configured limit.
type CompileError struct {
	Reason string
}

func (e *CompileError) Error() string {
	return "gorx/nfa: " + e.Reason
}

// Compiler lowers a syntax.Node AST into an *NFA. Group numbering happens
// in a source-order pre-pass (numberGroups) before any fragment is built,
// so that builder.Repeat can freely clone a subtree without ever having to
// invent or renumber a group index.
type Compiler struct {
	// MaxDepth bounds AST recursion depth; 0 means unlimited. Guards
	// against stack exhaustion on pathologically nested patterns.
	MaxDepth int
}

// NewCompiler returns a Compiler with no depth limit.
func NewCompiler() *Compiler {
	return &Compiler{}
}

// Compile lowers root into a complete *NFA, including its GroupNames table.
func (c *Compiler) Compile(root *syntax.Node) (*NFA, error) {
	indexOf := make(map[*syntax.Node]int)
	var names []string
	numberGroups(root, indexOf, &names)

	b := NewBuilder()
	out, err := c.compileNode(b, root, indexOf, 0)
	if err != nil {
		return nil, err
	}
	out.GroupNames = names
	return out, nil
}

// numberGroups walks root in pre-order, assigning each capturing Group node
// the next 1-based index in the order its '(' appears in the pattern. Since
// a parent Group is visited before its children are recursed into, nested
// groups are numbered outer-first, matching "source order of opening
// parens".
func numberGroups(n *syntax.Node, indexOf map[*syntax.Node]int, names *[]string) {
	if n == nil {
		return
	}
	if n.Op == syntax.OpGroup && n.Capturing {
		*names = append(*names, n.Name)
		indexOf[n] = len(*names)
	}
	for _, sub := range n.Sub {
		numberGroups(sub, indexOf, names)
	}
}

func (c *Compiler) compileNode(b *Builder, n *syntax.Node, indexOf map[*syntax.Node]int, depth int) (*NFA, error) {
	if c.MaxDepth > 0 && depth > c.MaxDepth {
		return nil, &CompileError{Reason: "pattern nests too deeply"}
	}

	switch n.Op {
	case syntax.OpEmpty:
		return b.Empty(), nil
	case syntax.OpCharacter:
		return b.Character(n.Char), nil
	case syntax.OpWildcard:
		return b.Wildcard(), nil
	case syntax.OpCharacterClass:
		return b.Class(n.Negate, toNFAMembers(n.Members)), nil
	case syntax.OpConcat:
		l, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		r, err := c.compileNode(b, n.Sub[1], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Concatenate(l, r), nil
	case syntax.OpAlternate:
		l, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		r, err := c.compileNode(b, n.Sub[1], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Alternate(l, r), nil
	case syntax.OpStar:
		inner, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Star(inner), nil
	case syntax.OpPlus:
		inner, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Plus(inner), nil
	case syntax.OpOptional:
		inner, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Optional(inner), nil
	case syntax.OpRange:
		if n.Min > maxRepeatCount || (n.Max != nil && *n.Max > maxRepeatCount) {
			return nil, &CompileError{Reason: "counted repetition bound too large"}
		}
		inner, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Repeat(inner, n.Min, n.Max), nil
	case syntax.OpGroup:
		inner, err := c.compileNode(b, n.Sub[0], indexOf, depth+1)
		if err != nil {
			return nil, err
		}
		return b.Group(inner, n.Capturing, indexOf[n]), nil
	default:
		return nil, &CompileError{Reason: "unrecognized AST node"}
	}
}

func toNFAMembers(members []syntax.ClassMember) []ClassMember {
	out := make([]ClassMember, len(members))
	for i, m := range members {
		out[i] = ClassMember{Lo: m.Lo, Hi: m.Hi}
	}
	return out
}
