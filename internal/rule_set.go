package internal

import (
	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/rules"
	tt "github.com/gnolang/ndcheck/internal/types"
)

// Rule defines the interface for all inference rules.
type Rule interface {
	// Verify checks one proof line that cites this rule.
	Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) tt.Response

	// Name returns the English name of the rule.
	Name() string

	// Symbols returns every symbol the rule can be cited by, preferred first.
	Symbols() []string

	// Usage shows how the rule is cited.
	Usage() string
}

type ruleConstructor func(rules.Options) Rule

func wrap[R Rule](f func(rules.Options) R) ruleConstructor {
	return func(opts rules.Options) Rule { return f(opts) }
}

// allRuleConstructors lists the catalogue in presentation order.
var allRuleConstructors = []ruleConstructor{
	wrap(rules.NewPremise),
	wrap(rules.NewAssumption),
	wrap(rules.NewReiteration),
	wrap(rules.NewConjunctionIntro),
	wrap(rules.NewConjunctionElim),
	wrap(rules.NewDisjunctionIntro),
	wrap(rules.NewDisjunctionElim),
	wrap(rules.NewConditionalIntro),
	wrap(rules.NewConditionalElim),
	wrap(rules.NewBiconditionalIntro),
	wrap(rules.NewBiconditionalElim),
	wrap(rules.NewNegationIntro),
	wrap(rules.NewNegationElim),
	wrap(rules.NewExplosion),
	wrap(rules.NewIndirectProof),
	wrap(rules.NewDoubleNegationElim),
	wrap(rules.NewDisjunctiveSyllogism),
	wrap(rules.NewModusTollens),
	wrap(rules.NewUniversalIntro),
	wrap(rules.NewUniversalElim),
	wrap(rules.NewExistentialIntro),
	wrap(rules.NewExistentialElim),
}

func isAssumption(r Rule) bool {
	_, ok := r.(*rules.Assumption)
	return ok
}
