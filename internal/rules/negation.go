package rules

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// NegationIntro: a subproof A … ⊥ yields ¬A. ¬I i
type NegationIntro struct{ info }

func NewNegationIntro(Options) *NegationIntro {
	return &NegationIntro{info{name: "Negation Introduction", symbols: []string{"¬I"}, usage: "¬I i"}}
}

func (r *NegationIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	sp, resp := c.citedSubproof(0)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectBottom(sp.last, sp.close.Label()); !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(current, formula.OpNot, c.label()); !resp.Valid {
		return resp
	}
	return c.expectEqual(current.Right, sp.first, c.label(), sp.open.Label())
}

// NegationElim: from A and ¬A infer ⊥. ¬E m, n
type NegationElim struct{ info }

func NewNegationElim(Options) *NegationElim {
	return &NegationElim{info{name: "Negation Elimination", symbols: []string{"¬E"}, usage: "¬E m, n"}}
}

func (r *NegationElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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
	if resp := c.expectBottom(current, c.label()); !resp.Valid {
		return resp
	}
	if contradicts(mTree, nTree) || contradicts(nTree, mTree) {
		return c.ok()
	}
	return c.failf(types.KindFormulaMismatch,
		"Lines %s should be an expression and its negation", joinLabels(m, n))
}

func contradicts(neg, pos *formula.Node) bool {
	return neg.Op == formula.OpNot && neg.Right.Equal(pos)
}

// Explosion: anything follows from ⊥. X m
type Explosion struct{ info }

func NewExplosion(Options) *Explosion {
	return &Explosion{info{name: "Explosion", symbols: []string{"X"}, usage: "X m"}}
}

func (r *Explosion) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectBottom(mTree, m.Label()); !resp.Valid {
		return resp
	}
	_, resp = c.current()
	return resp
}

// IndirectProof: a subproof ¬A … ⊥ yields A. IP i
type IndirectProof struct{ info }

func NewIndirectProof(Options) *IndirectProof {
	return &IndirectProof{info{name: "Indirect Proof", symbols: []string{"IP"}, usage: "IP i"}}
}

func (r *IndirectProof) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	sp, resp := c.citedSubproof(0)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectBottom(sp.last, sp.close.Label()); !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if !contradicts(sp.first, current) {
		return c.failf(types.KindFormulaMismatch,
			"The assumption on line %s should be the negation of line %s", sp.open.Label(), c.label())
	}
	return c.ok()
}

// DoubleNegationElim: from ¬¬A infer A. DNE m
type DoubleNegationElim struct{ info }

func NewDoubleNegationElim(Options) *DoubleNegationElim {
	return &DoubleNegationElim{info{name: "Double Negation Elimination", symbols: []string{"DNE"}, usage: "DNE m"}}
}

func (r *DoubleNegationElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	if mTree.Op != formula.OpNot || mTree.Right.Op != formula.OpNot {
		return c.failf(types.KindWrongOperator, "Line %s should be a double negation (¬¬)", m.Label())
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	return c.expectEqual(current, mTree.Right.Right, c.label(), m.Label())
}
