package formula

import (
	"slices"
	"strings"
)

// Op is the operator tag of a Node.
type Op int

const (
	OpAtom Op = iota
	OpBottom
	OpNot
	OpAnd
	OpOr
	OpImplies
	OpIff
	OpForall
	OpExists
)

func (op Op) String() string {
	switch op {
	case OpAtom:
		return "atom"
	case OpBottom:
		return "⊥"
	case OpNot:
		return "¬"
	case OpAnd:
		return "∧"
	case OpOr:
		return "∨"
	case OpImplies:
		return "→"
	case OpIff:
		return "↔"
	case OpForall:
		return "∀"
	case OpExists:
		return "∃"
	default:
		return "?"
	}
}

// Name returns the English name of the operator, as used in diagnostics.
func (op Op) Name() string {
	switch op {
	case OpAtom:
		return "atomic sentence"
	case OpBottom:
		return "contradiction (⊥)"
	case OpNot:
		return "negation (¬)"
	case OpAnd:
		return "conjunction (∧)"
	case OpOr:
		return "disjunction (∨)"
	case OpImplies:
		return "conditional (→)"
	case OpIff:
		return "biconditional (↔)"
	case OpForall:
		return "universal quantifier (∀)"
	case OpExists:
		return "existential quantifier (∃)"
	default:
		return "unknown operator"
	}
}

// IsBinary reports whether op joins two subformulas.
func (op Op) IsBinary() bool {
	return op == OpAnd || op == OpOr || op == OpImplies || op == OpIff
}

// IsQuantifier reports whether op binds a variable.
func (op Op) IsQuantifier() bool {
	return op == OpForall || op == OpExists
}

// Node is one operator or atomic sentence of a formula.
//
// Unary operators (¬, ∀, ∃) keep their operand in Right. Binary
// connectives use both Left and Right. Atoms and ⊥ have no children.
// Nodes are never modified once built.
type Node struct {
	Op     Op
	Symbol string   // predicate letter, atoms only
	Terms  []string // predicate arguments, atoms only
	Var    string   // bound variable, quantifiers only
	Left   *Node
	Right  *Node
}

// Atom builds an atomic sentence.
func Atom(symbol string, terms ...string) *Node {
	return &Node{Op: OpAtom, Symbol: symbol, Terms: terms}
}

// Bottom builds the contradiction constant.
func Bottom() *Node {
	return &Node{Op: OpBottom}
}

// Not builds a negation.
func Not(operand *Node) *Node {
	return &Node{Op: OpNot, Right: operand}
}

// Binary builds a binary connective.
func Binary(op Op, left, right *Node) *Node {
	return &Node{Op: op, Left: left, Right: right}
}

// Quantified builds a quantifier binding v over body.
func Quantified(op Op, v string, body *Node) *Node {
	return &Node{Op: op, Var: v, Right: body}
}

// Equal reports whether two trees are structurally identical:
// the same operators, predicates, terms, and bound variables.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Op != other.Op || n.Symbol != other.Symbol || n.Var != other.Var {
		return false
	}
	if !slices.Equal(n.Terms, other.Terms) {
		return false
	}
	return n.Left.Equal(other.Left) && n.Right.Equal(other.Right)
}

// Mentions reports whether term occurs anywhere in the tree, either as
// a predicate argument or as a bound variable.
func (n *Node) Mentions(term string) bool {
	if n == nil {
		return false
	}
	if n.Var == term || slices.Contains(n.Terms, term) {
		return true
	}
	return n.Left.Mentions(term) || n.Right.Mentions(term)
}

// Names returns the distinct name letters used in the tree, in order
// of first occurrence.
func (n *Node) Names() []string {
	var names []string
	n.Inspect(func(node *Node) bool {
		for _, t := range node.Terms {
			if IsNameTerm(t) && !slices.Contains(names, t) {
				names = append(names, t)
			}
		}
		return true
	})
	return names
}

// Inspect traverses the tree in depth-first order, left before right.
// Children are skipped when f returns false.
func (n *Node) Inspect(f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	n.Left.Inspect(f)
	n.Right.Inspect(f)
}

// Depth returns the nesting depth of the tree. An atom has depth 1.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.Left.Depth(), n.Right.Depth())
}

// String renders the canonical text of the formula. Parsing the result
// yields an Equal tree.
func (n *Node) String() string {
	var sb strings.Builder
	n.write(&sb, false)
	return sb.String()
}

func (n *Node) write(sb *strings.Builder, nested bool) {
	switch {
	case n == nil:
		sb.WriteString("<nil>")
	case n.Op == OpAtom:
		sb.WriteString(n.Symbol)
		for _, t := range n.Terms {
			sb.WriteString(t)
		}
	case n.Op == OpBottom:
		sb.WriteString("⊥")
	case n.Op == OpNot:
		sb.WriteString("¬")
		n.Right.write(sb, true)
	case n.Op.IsQuantifier():
		sb.WriteString(n.Op.String())
		sb.WriteString(n.Var)
		sb.WriteString(" ")
		n.Right.write(sb, true)
	case n.Op.IsBinary():
		if nested {
			sb.WriteString("(")
		}
		n.Left.write(sb, true)
		sb.WriteString(" " + n.Op.String() + " ")
		n.Right.write(sb, true)
		if nested {
			sb.WriteString(")")
		}
	default:
		sb.WriteString("?")
	}
}

// Dump renders the tree one node per line, indented by depth.
func (n *Node) Dump() string {
	var sb strings.Builder
	n.dump(&sb, 0)
	return sb.String()
}

func (n *Node) dump(sb *strings.Builder, indent int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", indent))
	switch {
	case n.Op == OpAtom:
		sb.WriteString(n.String())
	case n.Op.IsQuantifier():
		sb.WriteString(n.Op.String() + n.Var)
	default:
		sb.WriteString(n.Op.String())
	}
	sb.WriteString("\n")
	n.Left.dump(sb, indent+1)
	n.Right.dump(sb, indent+1)
}
