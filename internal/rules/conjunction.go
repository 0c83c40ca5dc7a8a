package rules

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// ConjunctionIntro: from A and B infer A ∧ B. ∧I m, n
type ConjunctionIntro struct{ info }

func NewConjunctionIntro(Options) *ConjunctionIntro {
	return &ConjunctionIntro{info{name: "Conjunction Introduction", symbols: []string{"∧I"}, usage: "∧I m, n"}}
}

func (r *ConjunctionIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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
	if resp := c.expectOp(current, formula.OpAnd, c.label()); !resp.Valid {
		return resp
	}

	if current.Left.Equal(mTree) && current.Right.Equal(nTree) ||
		current.Left.Equal(nTree) && current.Right.Equal(mTree) {
		return c.ok()
	}
	return c.failf(types.KindFormulaMismatch,
		"The conjuncts of line %s should be the expressions on lines %s", c.label(), joinLabels(m, n))
}

// ConjunctionElim: from A ∧ B infer either conjunct. ∧E m
type ConjunctionElim struct{ info }

func NewConjunctionElim(Options) *ConjunctionElim {
	return &ConjunctionElim{info{name: "Conjunction Elimination", symbols: []string{"∧E"}, usage: "∧E m"}}
}

func (r *ConjunctionElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(mTree, formula.OpAnd, m.Label()); !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}

	if current.Equal(mTree.Left) || current.Equal(mTree.Right) {
		return c.ok()
	}
	return c.failf(types.KindFormulaMismatch,
		"The expression on line %s should be one of the conjuncts of line %s", c.label(), m.Label())
}
