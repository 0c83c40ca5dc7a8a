package internal

import (
	"crypto/md5"
	"fmt"
	"runtime"
	"strings"

	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/rules"
	tt "github.com/gnolang/ndcheck/internal/types"
	"golang.org/x/sync/errgroup"
)

// Options configures an Engine.
type Options struct {
	// StrictNames turns on the arbitrary-name checks of ∀I and ∃E.
	StrictNames bool
	// Parallel checks the lines of a proof concurrently.
	Parallel bool
	// Rules sets the severity of rules, keyed by any of their symbols.
	Rules map[string]tt.ConfigRule
}

// Engine checks proofs line by line against the rule catalogue.
// It is safe for concurrent use once configured.
type Engine struct {
	ignoredRules map[string]bool // by rule name
	rules        map[string]Rule // by every symbol
	catalogue    []Rule
	parser       *formula.Parser
	parallel     bool
	strictNames  bool
}

// NewEngine creates a new proof checking engine.
func NewEngine(opts Options) (*Engine, error) {
	engine := &Engine{
		parser:      formula.NewParser(),
		parallel:    opts.Parallel,
		strictNames: opts.StrictNames,
	}
	engine.registerDefaultRules(rules.Options{StrictNames: opts.StrictNames})
	if err := engine.applyRules(opts.Rules); err != nil {
		return nil, err
	}
	return engine, nil
}

func (e *Engine) registerDefaultRules(opts rules.Options) {
	e.rules = make(map[string]Rule)
	e.catalogue = make([]Rule, 0, len(allRuleConstructors))
	for _, newRule := range allRuleConstructors {
		r := newRule(opts)
		e.catalogue = append(e.catalogue, r)
		for _, sym := range r.Symbols() {
			e.rules[sym] = r
		}
	}
}

func (e *Engine) applyRules(config map[string]tt.ConfigRule) error {
	for key, rule := range config {
		if e.findRule(key) == nil {
			return fmt.Errorf("unknown rule %q in configuration", key)
		}
		if rule.Severity == tt.SeverityOff {
			_ = e.IgnoreRule(key)
		}
	}
	return nil
}

func (e *Engine) findRule(symbol string) Rule {
	if r, ok := e.rules[formula.ReplaceAliases(symbol)]; ok {
		return r
	}
	return nil
}

// IgnoreRule disables the rule cited by symbol. Lines citing it are
// reported as using an unknown rule.
func (e *Engine) IgnoreRule(symbol string) error {
	r := e.findRule(symbol)
	if r == nil {
		return fmt.Errorf("unknown rule %q", symbol)
	}
	if e.ignoredRules == nil {
		e.ignoredRules = make(map[string]bool)
	}
	e.ignoredRules[r.Name()] = true
	return nil
}

// Fingerprint identifies the options that decide a verdict: the name
// checks and the set of enabled rules. Engines with equal fingerprints
// produce the same report for the same proof.
func (e *Engine) Fingerprint() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "strict=%t", e.strictNames)
	for _, r := range e.Rules() {
		sb.WriteString(";")
		sb.WriteString(r.Name())
	}
	return fmt.Sprintf("%x", md5.Sum([]byte(sb.String())))
}

// Rules returns the enabled rules in catalogue order.
func (e *Engine) Rules() []Rule {
	out := make([]Rule, 0, len(e.catalogue))
	for _, r := range e.catalogue {
		if !e.ignoredRules[r.Name()] {
			out = append(out, r)
		}
	}
	return out
}

// Check verifies every line of doc and the conclusion. It never stops
// at the first failure.
func (e *Engine) Check(doc *proof.Document) tt.Report {
	report := tt.Report{Lines: make([]tt.Response, len(doc.Lines))}

	if e.parallel {
		var g errgroup.Group
		g.SetLimit(runtime.NumCPU())
		for i := range doc.Lines {
			g.Go(func() error {
				report.Lines[i] = e.CheckLine(doc, i)
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for i := range doc.Lines {
			report.Lines[i] = e.CheckLine(doc, i)
		}
	}

	report.Conclusion = e.checkConclusion(doc)
	report.Valid = len(report.Failures()) == 0
	return report
}

// CheckLine verifies line i of doc.
func (e *Engine) CheckLine(doc *proof.Document, i int) (resp tt.Response) {
	line := doc.Lines[i]
	defer func() {
		if r := recover(); r != nil {
			resp = tt.Invalid(tt.KindInternal, "internal error while checking: %v", r)
		}
		resp = resp.OnLine(line.Label())
		resp.Line = line.Label()
		resp.Rule = line.Rule
	}()

	if err := doc.StructureError(i); err != nil {
		return tt.FromError(err)
	}
	if _, err := e.parser.Parse(line.Formula); err != nil {
		return tt.Invalid(tt.KindMalformedFormula,
			"Line %s does not contain a well-formed formula: %v", line.Label(), err)
	}
	cite, err := proof.ParseCitation(line.Rule)
	if err != nil {
		return tt.FromError(err)
	}

	r, ok := e.rules[cite.Symbol]
	if !ok {
		return tt.Invalid(tt.KindUnknownRule, "Unknown rule %q", cite.Symbol)
	}
	if e.ignoredRules[r.Name()] {
		return tt.Invalid(tt.KindUnknownRule, "rule %s (%s) is disabled", cite.Symbol, r.Name())
	}
	if line.OpensSubproof() && !isAssumption(r) {
		return tt.Invalid(tt.KindMalformedCitation,
			"Line %s opens subproof %s and must be an Assumption", line.Label(), line.No.Parent())
	}

	return r.Verify(line, doc, e.parser)
}

func (e *Engine) checkConclusion(doc *proof.Document) tt.Response {
	last := doc.Last()
	if last == nil {
		return tt.Invalid(tt.KindConclusionMismatch, "The proof has no lines")
	}

	resp := e.conclusionOf(doc, last)
	resp.Line = last.Label()
	return resp
}

func (e *Engine) conclusionOf(doc *proof.Document, last *proof.Line) tt.Response {
	want, err := e.parser.Parse(doc.Conclusion)
	if err != nil {
		return tt.Invalid(tt.KindConclusionMismatch,
			"The conclusion %q is not a well-formed formula: %v", doc.Conclusion, err)
	}
	got, err := e.parser.Parse(last.Formula)
	if err != nil {
		return tt.Invalid(tt.KindConclusionMismatch,
			"The last line %s does not contain a well-formed formula", last.Label())
	}
	if last.No == nil {
		return tt.Invalid(tt.KindConclusionMismatch,
			"The last line %s does not have a valid line number", last.Label())
	}
	if last.No.Depth() != 1 {
		return tt.Invalid(tt.KindConclusionMismatch,
			"The last line %s is inside a subproof; the conclusion must be reached outside every subproof",
			last.Label())
	}
	if !got.Equal(want) {
		return tt.Invalid(tt.KindConclusionMismatch,
			"The last line %s should be the conclusion %s, found %s", last.Label(), want, got)
	}
	return tt.Valid()
}
