// Package compare checks expression trees against each other: shape
// equivalence, and how a bound variable in one tree is replaced by
// names in the other.
//
// All checks are built on Walk, a single lock-step traversal whose
// behavior at term positions is decided by a TermVisitor.
package compare

import (
	"fmt"

	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// TermVisitor is called for every pair of aligned predicate arguments.
// freeA and freeB report whether the term is a free occurrence of the
// walked variable in its tree. Returning false stops the walk.
type TermVisitor func(ta, tb string, freeA, freeB bool) bool

// Divergence describes the first point where two trees disagree.
type Divergence struct {
	A, B   *formula.Node // the disagreeing subtrees
	Reason string
}

func (d *Divergence) Error() string {
	return d.Reason
}

// Walk traverses a and b in lock-step. Operators, predicates, arities,
// and bound variables must match exactly; aligned terms are handed to
// visit. A quantifier that rebinds v hides v from its body.
func Walk(a, b *formula.Node, v string, visit TermVisitor) *Divergence {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil || b == nil:
		return &Divergence{A: a, B: b, Reason: "one formula is missing a subformula"}
	}

	if a.Op != b.Op {
		return &Divergence{A: a, B: b, Reason: fmt.Sprintf("expected %s but found %s", describe(a), describe(b))}
	}

	switch {
	case a.Op == formula.OpAtom:
		if a.Symbol != b.Symbol || len(a.Terms) != len(b.Terms) {
			return &Divergence{A: a, B: b, Reason: fmt.Sprintf("expected %s but found %s", a, b)}
		}
		for i := range a.Terms {
			ta, tb := a.Terms[i], b.Terms[i]
			if !visit(ta, tb, v != "" && ta == v, v != "" && tb == v) {
				return &Divergence{A: a, B: b, Reason: fmt.Sprintf("%s and %s differ at argument %d", a, b, i+1)}
			}
		}
		return nil

	case a.Op.IsQuantifier():
		if a.Var != b.Var {
			return &Divergence{A: a, B: b, Reason: fmt.Sprintf("%s%s and %s%s bind different variables", a.Op, a.Var, b.Op, b.Var)}
		}
		if a.Var == v {
			v = ""
		}
	}

	if d := Walk(a.Left, b.Left, v, visit); d != nil {
		return d
	}
	return Walk(a.Right, b.Right, v, visit)
}

func describe(n *formula.Node) string {
	if n.Op == formula.OpAtom {
		return n.String()
	}
	return "a " + n.Op.Name()
}

// VerifySameStructure checks that a and b have the same shape, letting
// them differ only where either holds a free occurrence of v. With an
// empty v the trees must be identical.
func VerifySameStructure(a, b *formula.Node, v string, aNo, bNo proof.LineNo) types.Response {
	d := Walk(a, b, v, func(ta, tb string, freeA, freeB bool) bool {
		return ta == tb || freeA || freeB
	})
	if d != nil {
		return types.Invalid(types.KindStructuralMismatch,
			"Lines %s and %s should have the same structure: %s", aNo, bNo, d.Reason)
	}
	return types.Valid()
}

// VerifyVarReplacesSomeName checks that every free occurrence of v in a
// is matched in b by a name, and that it is always the same name. A
// free v in b must face v in a.
func VerifyVarReplacesSomeName(a, b *formula.Node, v string, aNo, bNo proof.LineNo) types.Response {
	_, resp := replacementName(a, b, v, aNo, bNo)
	return resp
}

// VerifyVarReplacesEveryName is VerifyVarReplacesSomeName with the
// added demand that the name is fully generalized: wherever b uses the
// name, a must hold v.
func VerifyVarReplacesEveryName(a, b *formula.Node, v string, aNo, bNo proof.LineNo) types.Response {
	name, resp := replacementName(a, b, v, aNo, bNo)
	if !resp.Valid || name == "" {
		return resp
	}

	d := Walk(a, b, v, func(ta, tb string, freeA, _ bool) bool {
		return tb != name || freeA
	})
	if d != nil {
		return types.Invalid(types.KindIncompleteSubstitution,
			"Every instance of name %s on line %s should be replaced with variable %s on line %s",
			name, bNo, v, aNo)
	}
	return types.Valid()
}

// replacementName returns the single name standing for v in b, or ""
// when v does not occur free in a.
func replacementName(a, b *formula.Node, v string, aNo, bNo proof.LineNo) (string, types.Response) {
	var (
		name string
		fail types.Response
	)
	d := Walk(a, b, v, func(ta, tb string, freeA, freeB bool) bool {
		if freeB && !freeA {
			fail = types.Invalid(types.KindStructuralMismatch,
				"Lines %s and %s should have the same structure: line %s has variable %s where line %s has %s",
				aNo, bNo, bNo, v, aNo, ta)
			return false
		}
		if !freeA {
			return true
		}
		if !formula.IsNameTerm(tb) {
			fail = types.Invalid(types.KindIncompleteSubstitution,
				"Instances of variable %s on line %s should be replaced with a name on line %s, found %s",
				v, aNo, bNo, tb)
			return false
		}
		if name == "" {
			name = tb
		}
		if tb != name {
			fail = types.Invalid(types.KindInconsistentSubstitution,
				"All instances of variable %s on line %s should be replaced with the same name on line %s, found %s and %s",
				v, aNo, bNo, name, tb)
			return false
		}
		return true
	})
	if d != nil {
		if fail.Kind != types.KindNone {
			return "", fail
		}
		return "", types.Invalid(types.KindStructuralMismatch,
			"Lines %s and %s should have the same structure: %s", aNo, bNo, d.Reason)
	}
	return name, types.Valid()
}

// Witness returns the name that replaces the free occurrences of v in a
// at the aligned positions of b. It returns "" when v does not occur
// free in a or when no single name stands for it.
func Witness(a, b *formula.Node, v string) string {
	name, resp := replacementName(a, b, v, nil, nil)
	if !resp.Valid {
		return ""
	}
	return name
}
