package rules

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// Premise accepts a top-level line restating one of the premises.
type Premise struct{ info }

func NewPremise(Options) *Premise {
	return &Premise{info{name: "Premise", symbols: []string{"Premise", "PR"}, usage: "Premise"}}
}

func (r *Premise) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 0)
	if !resp.Valid {
		return resp
	}
	if line.No.Depth() != 1 {
		return c.failf(types.KindPremiseMismatch, "Premises cannot appear inside a subproof")
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}

	for _, premise := range doc.PremiseList() {
		n, err := p.Parse(premise)
		if err != nil {
			continue
		}
		if n.Equal(current) {
			return c.ok()
		}
	}
	return c.failf(types.KindPremiseMismatch, "%s is not one of the premises", current)
}

// Assumption opens a subproof. Any formula may be assumed, but only on
// the first line of a subproof.
type Assumption struct{ info }

func NewAssumption(Options) *Assumption {
	return &Assumption{info{name: "Assumption", symbols: []string{"Assumption", "AS"}, usage: "Assumption"}}
}

func (r *Assumption) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 0)
	if !resp.Valid {
		return resp
	}
	if !line.OpensSubproof() {
		return c.failf(types.KindMalformedLineNumber,
			"An assumption must open a new subproof (a line numbered like %s)", line.No.Child(1))
	}
	_, resp = c.current()
	return resp
}

// Reiteration repeats a visible line unchanged. R m
type Reiteration struct{ info }

func NewReiteration(Options) *Reiteration {
	return &Reiteration{info{name: "Reiteration", symbols: []string{"R"}, usage: "R m"}}
}

func (r *Reiteration) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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
	return c.expectEqual(current, mTree, c.label(), m.Label())
}
