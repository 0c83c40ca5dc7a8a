package rules

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// DisjunctionIntro: from A infer A ∨ B or B ∨ A. ∨I m
type DisjunctionIntro struct{ info }

func NewDisjunctionIntro(Options) *DisjunctionIntro {
	return &DisjunctionIntro{info{name: "Disjunction Introduction", symbols: []string{"∨I"}, usage: "∨I m"}}
}

func (r *DisjunctionIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(current, formula.OpOr, c.label()); !resp.Valid {
		return resp
	}

	if current.Left.Equal(mTree) || current.Right.Equal(mTree) {
		return c.ok()
	}
	return c.failf(types.KindFormulaMismatch,
		"The expression on line %s should be one of the disjuncts of line %s", m.Label(), c.label())
}

// DisjunctionElim: from A ∨ B, a subproof A … C and a subproof B … C,
// infer C. ∨E m, i, j
type DisjunctionElim struct{ info }

func NewDisjunctionElim(Options) *DisjunctionElim {
	return &DisjunctionElim{info{name: "Disjunction Elimination", symbols: []string{"∨E"}, usage: "∨E m, i, j"}}
}

func (r *DisjunctionElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 3)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(mTree, formula.OpOr, m.Label()); !resp.Valid {
		return resp
	}
	left, resp := c.citedSubproof(1)
	if !resp.Valid {
		return resp
	}
	right, resp := c.citedSubproof(2)
	if !resp.Valid {
		return resp
	}

	if !(left.first.Equal(mTree.Left) && right.first.Equal(mTree.Right) ||
		left.first.Equal(mTree.Right) && right.first.Equal(mTree.Left)) {
		return c.failf(types.KindFormulaMismatch,
			"Subproofs %s and %s should assume the two disjuncts of line %s", left, right, m.Label())
	}

	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if resp := c.expectEqual(current, left.last, c.label(), left.close.Label()); !resp.Valid {
		return resp
	}
	return c.expectEqual(current, right.last, c.label(), right.close.Label())
}
