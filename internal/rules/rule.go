// Package rules implements one verifier per inference rule of the
// natural-deduction system.
//
// Every verifier follows the same pattern: parse the citation on the
// current line, resolve and scope-check each cited line or subproof,
// parse the formulas involved, then compare trees. The first failure is
// returned as a response annotated with the current line number.
package rules

import (
	"fmt"
	"strings"

	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
)

// Options tune rules whose exact strength is a policy choice.
type Options struct {
	// StrictNames makes ∀I and ∃E reject names that are constrained
	// elsewhere in the proof.
	StrictNames bool
}

// info carries the descriptive parts every rule shares.
type info struct {
	name    string
	symbols []string
	usage   string
}

func (i info) Name() string      { return i.name }
func (i info) Symbols() []string { return i.symbols }
func (i info) Usage() string     { return i.usage }

// check holds the state of verifying one line against one rule.
type check struct {
	rule   info
	line   *proof.Line
	doc    *proof.Document
	parser *formula.Parser
	cite   proof.Citation
}

// begin parses the citation of line and checks that it carries exactly
// want references.
func begin(rule info, line *proof.Line, doc *proof.Document, p *formula.Parser, want int) (*check, types.Response) {
	c := &check{rule: rule, line: line, doc: doc, parser: p}

	cite, err := proof.ParseCitation(line.Rule)
	if err != nil {
		return nil, c.malformed()
	}
	if len(cite.Refs) != want {
		return nil, c.malformed()
	}
	c.cite = cite
	return c, types.Valid()
}

func (c *check) malformed() types.Response {
	return c.fail(types.Invalid(types.KindMalformedCitation,
		"Rule not formatted properly. %s: %s", c.rule.name, c.rule.usage))
}

func (c *check) fail(resp types.Response) types.Response {
	return resp.OnLine(c.line.Label())
}

func (c *check) failf(kind types.Kind, format string, args ...any) types.Response {
	return c.fail(types.Invalid(kind, format, args...))
}

func (c *check) ok() types.Response {
	return types.Valid()
}

// current parses the formula of the line being checked.
func (c *check) current() (*formula.Node, types.Response) {
	return c.tree(c.line)
}

func (c *check) tree(l *proof.Line) (*formula.Node, types.Response) {
	n, err := c.parser.Parse(l.Formula)
	if err != nil {
		return nil, c.failf(types.KindMalformedFormula,
			"Line %s does not contain a well-formed formula: %v", l.Label(), err)
	}
	return n, types.Valid()
}

// cited resolves reference i as a single line visible from the current
// line and parses its formula.
func (c *check) cited(i int) (*proof.Line, *formula.Node, types.Response) {
	ref := c.cite.Refs[i]
	if ref.IsRange() {
		return nil, nil, c.failf(types.KindMalformedCitation,
			"%s cites a range where a single line is expected. %s: %s", ref, c.rule.name, c.rule.usage)
	}
	target, err := c.doc.LineWithNo(ref.Start)
	if err != nil {
		return nil, nil, c.fail(types.FromError(err))
	}
	if resp := proof.VerifyLineCitation(c.line.No, target.No); !resp.Valid {
		return nil, nil, c.fail(resp)
	}
	n, resp := c.tree(target)
	if !resp.Valid {
		return nil, nil, resp
	}
	return target, n, types.Valid()
}

// subproof is a resolved subproof citation.
type subproof struct {
	header      proof.LineNo
	open, close *proof.Line
	first, last *formula.Node
}

// citedSubproof resolves reference i as a closed subproof visible from
// the current line and parses its boundary formulas.
func (c *check) citedSubproof(i int) (*subproof, types.Response) {
	header, openLine, closeLine, err := c.doc.ResolveSubproof(c.cite.Refs[i])
	if err != nil {
		return nil, c.fail(types.FromError(err))
	}
	if resp := proof.VerifySubproofCitation(c.line.No, header); !resp.Valid {
		return nil, c.fail(resp)
	}
	sp := &subproof{header: header, open: openLine, close: closeLine}
	var resp types.Response
	if sp.first, resp = c.tree(openLine); !resp.Valid {
		return nil, resp
	}
	if sp.last, resp = c.tree(closeLine); !resp.Valid {
		return nil, resp
	}
	return sp, types.Valid()
}

// expectOp fails unless n has operator op.
func (c *check) expectOp(n *formula.Node, op formula.Op, lineNo string) types.Response {
	if n.Op != op {
		return c.failf(types.KindWrongOperator,
			"The root operand of line %s should be the %s", lineNo, op.Name())
	}
	return types.Valid()
}

// expectEqual fails unless got and want are the same formula.
func (c *check) expectEqual(got, want *formula.Node, gotLine, wantLine string) types.Response {
	if !got.Equal(want) {
		return c.failf(types.KindFormulaMismatch,
			"The expressions on line %s and line %s should be equivalent", wantLine, gotLine)
	}
	return types.Valid()
}

// expectBottom fails unless n is ⊥.
func (c *check) expectBottom(n *formula.Node, lineNo string) types.Response {
	if n.Op != formula.OpBottom {
		return c.failf(types.KindWrongOperator, "Line %s should be a contradiction (⊥)", lineNo)
	}
	return types.Valid()
}

func (c *check) label() string {
	return c.line.Label()
}

func joinLabels(lines ...*proof.Line) string {
	labels := make([]string, len(lines))
	for i, l := range lines {
		labels[i] = l.Label()
	}
	return strings.Join(labels, ", ")
}

func (s *subproof) String() string {
	return fmt.Sprintf("%s-%s", s.open.Label(), s.close.Label())
}

// citedPair resolves the two single-line references of a rule whose
// premises may be cited in either order.
func (c *check) citedPair() (a, b *proof.Line, ta, tb *formula.Node, resp types.Response) {
	if a, ta, resp = c.cited(0); !resp.Valid {
		return
	}
	b, tb, resp = c.cited(1)
	return
}
