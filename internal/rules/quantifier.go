package rules

import (
	"github.com/gnolang/ndcheck/internal/compare"
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// UniversalIntro generalizes a line about an arbitrary name. ∀I m
//
// Without StrictNames the name is not checked for being arbitrary, so a
// name that appears in a premise or an open assumption is accepted.
type UniversalIntro struct {
	info
	strict bool
}

func NewUniversalIntro(opts Options) *UniversalIntro {
	return &UniversalIntro{
		info:   info{name: "Universal Introduction", symbols: []string{"∀I"}, usage: "∀I m"},
		strict: opts.StrictNames,
	}
}

func (r *UniversalIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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
	if resp := c.expectOp(current, formula.OpForall, c.label()); !resp.Valid {
		return resp
	}

	v, body := current.Var, current.Right
	if resp := compare.VerifySameStructure(mTree, body, v, m.No, line.No); !resp.Valid {
		return c.fail(resp)
	}
	if resp := compare.VerifyVarReplacesEveryName(body, mTree, v, line.No, m.No); !resp.Valid {
		return c.fail(resp)
	}

	if r.strict {
		if name := compare.Witness(body, mTree, v); name != "" {
			return c.arbitrary(name, current)
		}
	}
	return c.ok()
}

// arbitrary checks that name is not constrained by a premise, an open
// assumption, or the line being derived.
func (c *check) arbitrary(name string, current *formula.Node) types.Response {
	if current.Mentions(name) {
		return c.failf(types.KindUnsoundGeneralization,
			"Name %s cannot be generalized: it still occurs on line %s", name, c.label())
	}
	if resp := c.notInPremises(name); !resp.Valid {
		return resp
	}
	for _, a := range c.doc.OpenAssumptions(c.line.No) {
		n, err := c.parser.Parse(a.Formula)
		if err != nil {
			continue
		}
		if n.Mentions(name) {
			return c.failf(types.KindUnsoundGeneralization,
				"Name %s cannot be generalized: it occurs in the assumption on line %s, which is still open",
				name, a.Label())
		}
	}
	return c.ok()
}

func (c *check) notInPremises(name string) types.Response {
	for _, premise := range c.doc.PremiseList() {
		n, err := c.parser.Parse(premise)
		if err != nil {
			continue
		}
		if n.Mentions(name) {
			return c.failf(types.KindUnsoundGeneralization,
				"Name %s occurs in the premise %s and cannot stand for an arbitrary individual", name, n)
		}
	}
	return c.ok()
}

// UniversalElim instantiates a universal with a name. ∀E m
type UniversalElim struct{ info }

func NewUniversalElim(Options) *UniversalElim {
	return &UniversalElim{info{name: "Universal Elimination", symbols: []string{"∀E"}, usage: "∀E m"}}
}

func (r *UniversalElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 1)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(mTree, formula.OpForall, m.Label()); !resp.Valid {
		return resp
	}
	current, resp := c.current()
	if !resp.Valid {
		return resp
	}

	v, body := mTree.Var, mTree.Right
	if resp := compare.VerifySameStructure(body, current, v, m.No, line.No); !resp.Valid {
		return c.fail(resp)
	}
	if resp := compare.VerifyVarReplacesSomeName(body, current, v, m.No, line.No); !resp.Valid {
		return c.fail(resp)
	}
	return c.ok()
}

// ExistentialIntro: from a line about a name infer that something has
// the property. ∃I m
type ExistentialIntro struct{ info }

func NewExistentialIntro(Options) *ExistentialIntro {
	return &ExistentialIntro{info{name: "Existential Introduction", symbols: []string{"∃I"}, usage: "∃I m"}}
}

func (r *ExistentialIntro) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
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
	if resp := c.expectOp(current, formula.OpExists, c.label()); !resp.Valid {
		return resp
	}

	v, body := current.Var, current.Right
	if resp := compare.VerifySameStructure(body, mTree, v, line.No, m.No); !resp.Valid {
		return c.fail(resp)
	}
	if resp := compare.VerifyVarReplacesSomeName(body, mTree, v, line.No, m.No); !resp.Valid {
		return c.fail(resp)
	}
	return c.ok()
}

// ExistentialElim reasons from an existential through a subproof about a
// witness name. ∃E m, i
//
// The checks run in a fixed order: the citations, the root operator of
// m, the shape of i.1 against the body of m, the witness substitution,
// and finally the current line against i.x.
type ExistentialElim struct {
	info
	strict bool
}

func NewExistentialElim(opts Options) *ExistentialElim {
	return &ExistentialElim{
		info:   info{name: "Existential Elimination", symbols: []string{"∃E"}, usage: "∃E m, i"},
		strict: opts.StrictNames,
	}
}

func (r *ExistentialElim) Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response {
	c, resp := begin(r.info, line, doc, p, 2)
	if !resp.Valid {
		return resp
	}
	m, mTree, resp := c.cited(0)
	if !resp.Valid {
		return resp
	}
	sp, resp := c.citedSubproof(1)
	if !resp.Valid {
		return resp
	}
	if resp := c.expectOp(mTree, formula.OpExists, m.Label()); !resp.Valid {
		return resp
	}

	v, body := mTree.Var, mTree.Right
	if resp := compare.VerifySameStructure(body, sp.first, v, m.No, sp.open.No); !resp.Valid {
		return c.fail(resp)
	}
	if resp := compare.VerifyVarReplacesSomeName(body, sp.first, v, m.No, sp.open.No); !resp.Valid {
		return c.fail(resp)
	}

	current, resp := c.current()
	if !resp.Valid {
		return resp
	}
	if resp := c.expectEqual(current, sp.last, c.label(), sp.close.Label()); !resp.Valid {
		return resp
	}

	if r.strict {
		name := compare.Witness(body, sp.first, v)
		if name == "" {
			return c.ok()
		}
		if mTree.Mentions(name) {
			return c.failf(types.KindUnsoundGeneralization,
				"The witness %s on line %s must be a new name, but it occurs on line %s",
				name, sp.open.Label(), m.Label())
		}
		if current.Mentions(name) {
			return c.failf(types.KindUnsoundGeneralization,
				"The witness %s on line %s must not occur on line %s", name, sp.open.Label(), c.label())
		}
		return c.notInPremises(name)
	}
	return c.ok()
}
