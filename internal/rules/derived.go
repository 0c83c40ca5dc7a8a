package rules

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// DisjunctiveSyllogism: from A ∨ B and the negation of one disjunct
// infer the other. DS m, n
type DisjunctiveSyllogism struct{ info }

func NewDisjunctiveSyllogism(Options) *DisjunctiveSyllogism {
	return &DisjunctiveSyllogism{info{name: "Disjunctive Syllogism", symbols: []string{"DS"}, usage: "DS m, n"}}
}

func (r *DisjunctiveSyllogism) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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

	syllogism := func(or, neg *formula.Node) bool {
		if or.Op != formula.OpOr {
			return false
		}
		return contradicts(neg, or.Left) && or.Right.Equal(current) ||
			contradicts(neg, or.Right) && or.Left.Equal(current)
	}
	if syllogism(mTree, nTree) || syllogism(nTree, mTree) {
		return c.ok()
	}
	if mTree.Op != formula.OpOr && nTree.Op != formula.OpOr {
		return c.failf(types.KindWrongOperator,
			"One of lines %s should have the disjunction (∨) as its root operand", joinLabels(m, n))
	}
	return c.failf(types.KindFormulaMismatch,
		"Lines %s should be a disjunction and the negation of one disjunct, with line %s the other disjunct",
		joinLabels(m, n), c.label())
}

// ModusTollens: from A → B and ¬B infer ¬A. MT m, n
type ModusTollens struct{ info }

func NewModusTollens(Options) *ModusTollens {
	return &ModusTollens{info{name: "Modus Tollens", symbols: []string{"MT"}, usage: "MT m, n"}}
}

func (r *ModusTollens) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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
	if resp := c.expectOp(current, formula.OpNot, c.label()); !resp.Valid {
		return resp
	}

	tollens := func(cond, neg *formula.Node) bool {
		return cond.Op == formula.OpImplies && contradicts(neg, cond.Right) && contradicts(current, cond.Left)
	}
	if tollens(mTree, nTree) || tollens(nTree, mTree) {
		return c.ok()
	}
	if mTree.Op != formula.OpImplies && nTree.Op != formula.OpImplies {
		return c.failf(types.KindWrongOperator,
			"One of lines %s should have the conditional (→) as its root operand", joinLabels(m, n))
	}
	return c.failf(types.KindFormulaMismatch,
		"Lines %s should be a conditional and the negation of its consequent, with line %s negating its antecedent",
		joinLabels(m, n), c.label())
}
