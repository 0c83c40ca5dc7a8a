package rules

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// ConditionalIntro discharges a subproof A … B as A → B. →I i
type ConditionalIntro struct{ info }

func NewConditionalIntro(Options) *ConditionalIntro {
	return &ConditionalIntro{info{name: "Conditional Introduction", symbols: []string{"→I"}, usage: "→I i"}}
}

func (r *ConditionalIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	sp, resp := c.citedSubproof(0)
	if !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(current, formula.OpImplies, c.label()); !resp.Valid {
		return resp
	}
	if !current.Left.Equal(sp.first) {
		return c.failf(types.KindFormulaMismatch,
			"The antecedent of line %s should be the assumption on line %s", c.label(), sp.open.Label())
	}
	if !current.Right.Equal(sp.last) {
		return c.failf(types.KindFormulaMismatch,
			"The consequent of line %s should be the expression on line %s", c.label(), sp.close.Label())
	}
	return c.ok()
}

// ConditionalElim is modus ponens: from A → B and A infer B. →E m, n
type ConditionalElim struct{ info }

func NewConditionalElim(Options) *ConditionalElim {
	return &ConditionalElim{info{name: "Conditional Elimination", symbols: []string{"→E"}, usage: "→E m, n"}}
}

func (r *ConditionalElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 2)
	if !resp.Valid {
		return resp
	}
	m, n, mTree, nTree, resp := c.citedPair()
	if !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}

	modusPonens := func(cond, ante *formula.Node) bool {
		return cond.Op == formula.OpImplies && cond.Left.Equal(ante) && cond.Right.Equal(current)
	}
	if modusPonens(mTree, nTree) || modusPonens(nTree, mTree) {
		return c.ok()
	}
	if mTree.Op != formula.OpImplies && nTree.Op != formula.OpImplies {
		return c.failf(types.KindWrongOperator,
			"One of lines %s should have the conditional (→) as its root operand", joinLabels(m, n))
	}
	return c.failf(types.KindFormulaMismatch,
		"Lines %s should be a conditional and its antecedent, with line %s its consequent",
		joinLabels(m, n), c.label())
}

// BiconditionalIntro: from subproofs A … B and B … A infer A ↔ B. ↔I i, j
type BiconditionalIntro struct{ info }

func NewBiconditionalIntro(Options) *BiconditionalIntro {
	return &BiconditionalIntro{info{name: "Biconditional Introduction", symbols: []string{"↔I"}, usage: "↔I i, j"}}
}

func (r *BiconditionalIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 2)
	if !resp.Valid {
		return resp
	}
	i, resp := c.citedSubproof(0)
	if !resp.Valid {
		return resp
	}
	j, resp := c.citedSubproof(1)
	if !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(current, formula.OpIff, c.label()); !resp.Valid {
		return resp
	}

	leads := func(sp *subproof, from, to *formula.Node) bool {
		return sp.first.Equal(from) && sp.last.Equal(to)
	}
	a, b := current.Left, current.Right
	if leads(i, a, b) && leads(j, b, a) || leads(i, b, a) && leads(j, a, b) {
		return c.ok()
	}
	return c.failf(types.KindFormulaMismatch,
		"Subproofs %s and %s should derive each side of line %s from the other", i, j, c.label())
}

// BiconditionalElim: from A ↔ B and one side infer the other. ↔E m, n
type BiconditionalElim struct{ info }

func NewBiconditionalElim(Options) *BiconditionalElim {
	return &BiconditionalElim{info{name: "Biconditional Elimination", symbols: []string{"↔E"}, usage: "↔E m, n"}}
}

func (r *BiconditionalElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 2)
	if !resp.Valid {
		return resp
	}
	m, n, mTree, nTree, resp := c.citedPair()
	if !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}

	follows := func(iff, side *formula.Node) bool {
		if iff.Op != formula.OpIff {
			return false
		}
		return iff.Left.Equal(side) && iff.Right.Equal(current) ||
			iff.Right.Equal(side) && iff.Left.Equal(current)
	}
	if follows(mTree, nTree) || follows(nTree, mTree) {
		return c.ok()
	}
	if mTree.Op != formula.OpIff && nTree.Op != formula.OpIff {
		return c.failf(types.KindWrongOperator,
			"One of lines %s should have the biconditional (↔) as its root operand", joinLabels(m, n))
	}
	return c.failf(types.KindFormulaMismatch,
		"Lines %s should be a biconditional and one of its sides, with line %s the other side",
		joinLabels(m, n), c.label())
}
