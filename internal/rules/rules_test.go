package rules

import (
	"testing"

	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/proof"
	"github.com/gnolang/ndcheck/internal/types"
	"github.com/stretchr/testify/assert"
)

type verifier interface {
	Verify(line *proof.Line, doc *proof.Document, p *formula.Parser) types.Response
}

type ruleCase struct {
	name     string
	premises string
	lines    [][3]string
	kind     types.Kind // KindNone when the last line should check
}

// runCases verifies the last line of every case with r.
func runCases(t *testing.T, r verifier, tests []ruleCase) {
	t.Helper()
	parser := formula.NewParser()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := make([]proof.RawLine, len(tt.lines))
			for i, l := range tt.lines {
				raw[i] = proof.RawLine{LineNo: l[0], Formula: l[1], Rule: l[2]}
			}
			doc := proof.NewDocument(tt.premises, "", raw)
			resp := r.Verify(doc.Last(), doc, parser)
			assert.Equal(t, tt.kind == types.KindNone, resp.Valid, resp.Message)
			assert.Equal(t, tt.kind, resp.Kind, resp.Message)
			if !resp.Valid {
				assert.Contains(t, resp.Message, "Error on line "+doc.Last().Label()+": ")
			}
		})
	}
}

func TestPremise(t *testing.T) {
	t.Parallel()
	runCases(t, NewPremise(Options{}), []ruleCase{
		{"declared", "A ∧ B, C", [][3]string{{"1", "A∧B", "Premise"}}, types.KindNone},
		{"short symbol", "A ∧ B, C", [][3]string{{"1", "C", "PR"}}, types.KindNone},
		{"not declared", "A", [][3]string{{"1", "B", "Premise"}}, types.KindPremiseMismatch},
		{"inside subproof", "A", [][3]string{{"1", "A", "PR"}, {"2.1", "A", "Premise"}}, types.KindPremiseMismatch},
		{"cites lines", "A", [][3]string{{"1", "A", "Premise 1"}}, types.KindMalformedCitation},
		{"malformed formula", "A", [][3]string{{"1", "A ∧", "Premise"}}, types.KindMalformedFormula},
	})
}

func TestAssumption(t *testing.T) {
	t.Parallel()
	runCases(t, NewAssumption(Options{}), []ruleCase{
		{"opens subproof", "A", [][3]string{{"1", "A", "PR"}, {"2.1", "B", "AS"}}, types.KindNone},
		{"top level", "A", [][3]string{{"1", "A", "PR"}, {"2", "B", "Assumption"}}, types.KindMalformedLineNumber},
		{"middle of subproof", "", [][3]string{{"1.1", "A", "AS"}, {"1.2", "B", "Assumption"}}, types.KindMalformedLineNumber},
	})
}

func TestReiteration(t *testing.T) {
	t.Parallel()
	runCases(t, NewReiteration(Options{}), []ruleCase{
		{"same formula", "", [][3]string{{"1", "A", "PR"}, {"2", "A", "R 1"}}, types.KindNone},
		{"into subproof", "", [][3]string{{"1", "A", "PR"}, {"2.1", "B", "AS"}, {"2.2", "A", "R 1"}}, types.KindNone},
		{"different formula", "", [][3]string{{"1", "A", "PR"}, {"2", "B", "R 1"}}, types.KindFormulaMismatch},
		{"too many lines", "", [][3]string{{"1", "A", "PR"}, {"2", "A", "R 1, 1"}}, types.KindMalformedCitation},
		{"range", "", [][3]string{{"1", "A", "PR"}, {"2", "A", "R 1-1"}}, types.KindMalformedCitation},
		{"missing line", "", [][3]string{{"1", "A", "PR"}, {"2", "A", "R 5"}}, types.KindLineNotFound},
		{"cites itself", "", [][3]string{{"1", "A", "PR"}, {"2", "A", "R 2"}}, types.KindOutOfScope},
		{"closed subproof", "", [][3]string{
			{"1", "A", "PR"},
			{"2.1", "B", "AS"},
			{"2.2", "B", "R 2.1"},
			{"3", "B", "R 2.2"},
		}, types.KindOutOfScope},
		{"cited line malformed", "", [][3]string{{"1", "A ∧", "PR"}, {"2", "A", "R 1"}}, types.KindMalformedFormula},
	})
}

func TestMalformedCitationMessage(t *testing.T) {
	t.Parallel()

	doc := proof.NewDocument("∃x Px", "", []proof.RawLine{
		{LineNo: "1", Formula: "∃x Px", Rule: "PR"},
		{LineNo: "2", Formula: "∃x Px", Rule: "∃E 1"},
	})
	resp := NewExistentialElim(Options{}).Verify(doc.Last(), doc, formula.NewParser())
	assert.False(t, resp.Valid)
	assert.Equal(t, types.KindMalformedCitation, resp.Kind)
	assert.Equal(t, "Error on line 2: Rule not formatted properly. Existential Elimination: ∃E m, i", resp.Message)
}

func TestConjunction(t *testing.T) {
	t.Parallel()

	ab := [][3]string{{"1", "A", "PR"}, {"2", "B", "PR"}}
	with := func(l [3]string) [][3]string {
		return append(append([][3]string{}, ab...), l)
	}

	runCases(t, NewConjunctionIntro(Options{}), []ruleCase{
		{"in order", "", with([3]string{"3", "A ∧ B", "∧I 1, 2"}), types.KindNone},
		{"swapped", "", with([3]string{"3", "B ∧ A", "∧I 1, 2"}), types.KindNone},
		{"wrong operator", "", with([3]string{"3", "A ∨ B", "∧I 1, 2"}), types.KindWrongOperator},
		{"wrong conjunct", "", with([3]string{"3", "A ∧ A", "∧I 1, 2"}), types.KindFormulaMismatch},
		{"one line", "", with([3]string{"3", "A ∧ B", "∧I 1"}), types.KindMalformedCitation},
	})

	runCases(t, NewConjunctionElim(Options{}), []ruleCase{
		{"left", "", [][3]string{{"1", "A ∧ B", "PR"}, {"2", "A", "∧E 1"}}, types.KindNone},
		{"right", "", [][3]string{{"1", "A ∧ B", "PR"}, {"2", "B", "∧E 1"}}, types.KindNone},
		{"not a conjunct", "", [][3]string{{"1", "A ∧ B", "PR"}, {"2", "C", "∧E 1"}}, types.KindFormulaMismatch},
		{"not a conjunction", "", [][3]string{{"1", "A ∨ B", "PR"}, {"2", "A", "∧E 1"}}, types.KindWrongOperator},
	})
}

func TestDisjunction(t *testing.T) {
	t.Parallel()

	runCases(t, NewDisjunctionIntro(Options{}), []ruleCase{
		{"right disjunct", "", [][3]string{{"1", "A", "PR"}, {"2", "B ∨ A", "∨I 1"}}, types.KindNone},
		{"left disjunct", "", [][3]string{{"1", "A", "PR"}, {"2", "A ∨ (B → C)", "∨I 1"}}, types.KindNone},
		{"neither", "", [][3]string{{"1", "A", "PR"}, {"2", "B ∨ C", "∨I 1"}}, types.KindFormulaMismatch},
		{"not a disjunction", "", [][3]string{{"1", "A", "PR"}, {"2", "A ∧ A", "∨I 1"}}, types.KindWrongOperator},
	})

	cases := func(conclusion, rule string) [][3]string {
		return [][3]string{
			{"1", "A ∨ B", "PR"},
			{"2.1", "A", "AS"},
			{"2.2", "B ∨ A", "∨I 2.1"},
			{"3.1", "B", "AS"},
			{"3.2", "B ∨ A", "∨I 3.1"},
			{"4", conclusion, rule},
		}
	}
	runCases(t, NewDisjunctionElim(Options{}), []ruleCase{
		{"headers", "", cases("B ∨ A", "∨E 1, 2, 3"), types.KindNone},
		{"ranges", "", cases("B ∨ A", "∨E 1, 2.1-2.2, 3.1-3.2"), types.KindNone},
		{"subproofs swapped", "", cases("B ∨ A", "∨E 1, 3, 2"), types.KindNone},
		{"same subproof twice", "", cases("B ∨ A", "∨E 1, 2, 2"), types.KindFormulaMismatch},
		{"different conclusion", "", cases("A ∨ B", "∨E 1, 2, 3"), types.KindFormulaMismatch},
		{"not a subproof", "", cases("B ∨ A", "∨E 1, 2, 1"), types.KindMalformedSubproofReference},
		{"bad range", "", cases("B ∨ A", "∨E 1, 2.1-2.1, 3"), types.KindMalformedSubproofReference},
		{"missing subproof", "", cases("B ∨ A", "∨E 1, 2"), types.KindMalformedCitation},
	})
}

func TestConditional(t *testing.T) {
	t.Parallel()

	sub := func(conclusion, rule string) [][3]string {
		return [][3]string{
			{"1.1", "A", "AS"},
			{"1.2", "A ∨ B", "∨I 1.1"},
			{"2", conclusion, rule},
		}
	}
	runCases(t, NewConditionalIntro(Options{}), []ruleCase{
		{"discharge", "", sub("A → (A ∨ B)", "→I 1"), types.KindNone},
		{"range", "", sub("A → A ∨ B", "→I 1.1-1.2"), types.KindNone},
		{"wrong antecedent", "", sub("B → (A ∨ B)", "→I 1"), types.KindFormulaMismatch},
		{"wrong consequent", "", sub("A → B", "→I 1"), types.KindFormulaMismatch},
		{"not a conditional", "", sub("A ∧ (A ∨ B)", "→I 1"), types.KindWrongOperator},
		{"not a subproof", "", sub("A → (A ∨ B)", "→I 1.2"), types.KindMalformedSubproofReference},
		{"still open", "", [][3]string{
			{"1.1", "A", "AS"},
			{"1.2", "A → A", "→I 1"},
		}, types.KindOutOfScope},
	})

	runCases(t, NewConditionalElim(Options{}), []ruleCase{
		{"modus ponens", "", [][3]string{{"1", "A → B", "PR"}, {"2", "A", "PR"}, {"3", "B", "→E 1, 2"}}, types.KindNone},
		{"swapped", "", [][3]string{{"1", "A → B", "PR"}, {"2", "A", "PR"}, {"3", "B", "→E 2, 1"}}, types.KindNone},
		{"affirming the consequent", "", [][3]string{{"1", "A → B", "PR"}, {"2", "B", "PR"}, {"3", "A", "→E 1, 2"}}, types.KindFormulaMismatch},
		{"no conditional", "", [][3]string{{"1", "A", "PR"}, {"2", "B", "PR"}, {"3", "B", "→E 1, 2"}}, types.KindWrongOperator},
	})

	bi := func(conclusion, rule string) [][3]string {
		return [][3]string{
			{"1.1", "A", "AS"},
			{"1.2", "B", "R 1.1"},
			{"2.1", "B", "AS"},
			{"2.2", "A", "R 2.1"},
			{"3", conclusion, rule},
		}
	}
	runCases(t, NewBiconditionalIntro(Options{}), []ruleCase{
		{"both directions", "", bi("A ↔ B", "↔I 1, 2"), types.KindNone},
		{"subproofs swapped", "", bi("A ↔ B", "↔I 2, 1"), types.KindNone},
		{"sides swapped", "", bi("B ↔ A", "↔I 1, 2"), types.KindNone},
		{"one direction twice", "", bi("A ↔ B", "↔I 1, 1"), types.KindFormulaMismatch},
		{"other formula", "", bi("A ↔ C", "↔I 1, 2"), types.KindFormulaMismatch},
	})

	runCases(t, NewBiconditionalElim(Options{}), []ruleCase{
		{"left to right", "", [][3]string{{"1", "A ↔ B", "PR"}, {"2", "A", "PR"}, {"3", "B", "↔E 1, 2"}}, types.KindNone},
		{"right to left", "", [][3]string{{"1", "A ↔ B", "PR"}, {"2", "B", "PR"}, {"3", "A", "↔E 2, 1"}}, types.KindNone},
		{"same side", "", [][3]string{{"1", "A ↔ B", "PR"}, {"2", "B", "PR"}, {"3", "B", "↔E 1, 2"}}, types.KindFormulaMismatch},
		{"no biconditional", "", [][3]string{{"1", "A → B", "PR"}, {"2", "A", "PR"}, {"3", "B", "↔E 1, 2"}}, types.KindWrongOperator},
	})
}

func TestNegation(t *testing.T) {
	t.Parallel()

	refute := func(assumed, last, conclusion, rule string) [][3]string {
		return [][3]string{
			{"1", "¬B", "PR"},
			{"2.1", assumed, "AS"},
			{"2.2", last, "X 2.1"},
			{"3", conclusion, rule},
		}
	}
	runCases(t, NewNegationIntro(Options{}), []ruleCase{
		{"refutes assumption", "", refute("B", "⊥", "¬B", "¬I 2"), types.KindNone},
		{"subproof not refuted", "", refute("B", "C", "¬B", "¬I 2"), types.KindWrongOperator},
		{"negates the wrong thing", "", refute("B", "⊥", "¬C", "¬I 2"), types.KindFormulaMismatch},
		{"not a negation", "", refute("B", "⊥", "B", "¬I 2"), types.KindWrongOperator},
	})

	runCases(t, NewIndirectProof(Options{}), []ruleCase{
		{"refutes negation", "", refute("¬A", "⊥", "A", "IP 2"), types.KindNone},
		{"assumption not negated", "", refute("A", "⊥", "A", "IP 2"), types.KindFormulaMismatch},
		{"no contradiction", "", refute("¬A", "A", "A", "IP 2"), types.KindWrongOperator},
	})

	runCases(t, NewNegationElim(Options{}), []ruleCase{
		{"contradiction", "", [][3]string{{"1", "A", "PR"}, {"2", "¬A", "PR"}, {"3", "⊥", "¬E 1, 2"}}, types.KindNone},
		{"swapped", "", [][3]string{{"1", "A", "PR"}, {"2", "¬A", "PR"}, {"3", "⊥", "¬E 2, 1"}}, types.KindNone},
		{"alias", "", [][3]string{{"1", "A", "PR"}, {"2", "¬A", "PR"}, {"3", `\contradiction`, "¬E 1, 2"}}, types.KindNone},
		{"not contradictory", "", [][3]string{{"1", "A", "PR"}, {"2", "¬B", "PR"}, {"3", "⊥", "¬E 1, 2"}}, types.KindFormulaMismatch},
		{"not bottom", "", [][3]string{{"1", "A", "PR"}, {"2", "¬A", "PR"}, {"3", "A", "¬E 1, 2"}}, types.KindWrongOperator},
	})

	runCases(t, NewExplosion(Options{}), []ruleCase{
		{"from bottom", "", [][3]string{{"1", "⊥", "PR"}, {"2", "Q ∧ R", "X 1"}}, types.KindNone},
		{"not bottom", "", [][3]string{{"1", "A", "PR"}, {"2", "Q", "X 1"}}, types.KindWrongOperator},
	})

	runCases(t, NewDoubleNegationElim(Options{}), []ruleCase{
		{"double negation", "", [][3]string{{"1", "¬¬(A ∨ B)", "PR"}, {"2", "A ∨ B", "DNE 1"}}, types.KindNone},
		{"single negation", "", [][3]string{{"1", "¬A", "PR"}, {"2", "A", "DNE 1"}}, types.KindWrongOperator},
		{"wrong result", "", [][3]string{{"1", "¬¬A", "PR"}, {"2", "¬A", "DNE 1"}}, types.KindFormulaMismatch},
	})
}

func TestDerived(t *testing.T) {
	t.Parallel()

	runCases(t, NewDisjunctiveSyllogism(Options{}), []ruleCase{
		{"drop left", "", [][3]string{{"1", "A ∨ B", "PR"}, {"2", "¬A", "PR"}, {"3", "B", "DS 1, 2"}}, types.KindNone},
		{"drop right swapped", "", [][3]string{{"1", "A ∨ B", "PR"}, {"2", "¬B", "PR"}, {"3", "A", "DS 2, 1"}}, types.KindNone},
		{"wrong disjunct", "", [][3]string{{"1", "A ∨ B", "PR"}, {"2", "¬A", "PR"}, {"3", "A", "DS 1, 2"}}, types.KindFormulaMismatch},
		{"no disjunction", "", [][3]string{{"1", "A ∧ B", "PR"}, {"2", "¬A", "PR"}, {"3", "B", "DS 1, 2"}}, types.KindWrongOperator},
	})

	runCases(t, NewModusTollens(Options{}), []ruleCase{
		{"tollens", "", [][3]string{{"1", "A → B", "PR"}, {"2", "¬B", "PR"}, {"3", "¬A", "MT 1, 2"}}, types.KindNone},
		{"swapped", "", [][3]string{{"1", "A → B", "PR"}, {"2", "¬B", "PR"}, {"3", "¬A", "MT 2, 1"}}, types.KindNone},
		{"denying the antecedent", "", [][3]string{{"1", "A → B", "PR"}, {"2", "¬A", "PR"}, {"3", "¬B", "MT 1, 2"}}, types.KindFormulaMismatch},
		{"not a negation", "", [][3]string{{"1", "A → B", "PR"}, {"2", "¬B", "PR"}, {"3", "A", "MT 1, 2"}}, types.KindWrongOperator},
	})
}

func TestUniversalElim(t *testing.T) {
	t.Parallel()

	runCases(t, NewUniversalElim(Options{}), []ruleCase{
		{"instantiate", "", [][3]string{{"1", "∀x (Px → Qx)", "PR"}, {"2", "Pa → Qa", "∀E 1"}}, types.KindNone},
		{"two names", "", [][3]string{{"1", "∀x (Px → Qx)", "PR"}, {"2", "Pa → Qb", "∀E 1"}}, types.KindInconsistentSubstitution},
		{"changed predicate", "", [][3]string{{"1", "∀x (Px → Qx)", "PR"}, {"2", "Pa → Ra", "∀E 1"}}, types.KindStructuralMismatch},
		{"variable kept", "", [][3]string{{"1", "∀x Px", "PR"}, {"2", "Py", "∀E 1"}}, types.KindIncompleteSubstitution},
		{"name turned into variable", "", [][3]string{{"1", "∀x (Px ∧ Qa)", "PR"}, {"2", "Pb ∧ Qx", "∀E 1"}}, types.KindStructuralMismatch},
		{"not universal", "", [][3]string{{"1", "∃x Px", "PR"}, {"2", "Pa", "∀E 1"}}, types.KindWrongOperator},
	})
}

func TestExistentialIntro(t *testing.T) {
	t.Parallel()

	runCases(t, NewExistentialIntro(Options{}), []ruleCase{
		{"generalize", "", [][3]string{{"1", "Pa ∧ Qa", "PR"}, {"2", "∃x (Px ∧ Qx)", "∃I 1"}}, types.KindNone},
		{"some occurrences", "", [][3]string{{"1", "Pa ∧ Pa", "PR"}, {"2", "∃x (Px ∧ Pa)", "∃I 1"}}, types.KindNone},
		{"variable in the instance", "", [][3]string{{"1", "Pa ∧ Qx", "PR"}, {"2", "∃x (Px ∧ Qb)", "∃I 1"}}, types.KindStructuralMismatch},
		{"two names", "", [][3]string{{"1", "Pa ∧ Pb", "PR"}, {"2", "∃x (Px ∧ Px)", "∃I 1"}}, types.KindInconsistentSubstitution},
		{"not existential", "", [][3]string{{"1", "Pa", "PR"}, {"2", "∀x Px", "∃I 1"}}, types.KindWrongOperator},
	})
}

func existentialProof(premises, m, witness, last, conclusion, rule string) ruleCase {
	return ruleCase{
		premises: premises,
		lines: [][3]string{
			{"1", m, "PR"},
			{"2.1", witness, "AS"},
			{"2.2", last, "R 2.1"},
			{"3", conclusion, rule},
		},
	}
}

func TestExistentialElim(t *testing.T) {
	t.Parallel()

	named := func(name string, kind types.Kind, rc ruleCase) ruleCase {
		rc.name, rc.kind = name, kind
		return rc
	}

	runCases(t, NewExistentialElim(Options{}), []ruleCase{
		named("sound", types.KindNone,
			existentialProof("∃x Px", "∃x Px", "Pa", "∃x Px", "∃x Px", "∃E 1, 2")),
		named("range citation", types.KindNone,
			existentialProof("∃x Px", "∃x Px", "Pa", "∃x Px", "∃x Px", "∃E 1, 2.1-2.2")),
		named("inconsistent witness", types.KindInconsistentSubstitution,
			existentialProof("", "∃x (Px ∧ Px)", "Pa ∧ Pb", "A", "A", "∃E 1, 2")),
		named("shape differs", types.KindStructuralMismatch,
			existentialProof("", "∃x Px", "Pa ∧ Pb", "A", "A", "∃E 1, 2")),
		named("not existential", types.KindWrongOperator,
			existentialProof("", "∀x Px", "Pa", "A", "A", "∃E 1, 2")),
		named("conclusion differs", types.KindFormulaMismatch,
			existentialProof("", "∃x Px", "Pa", "A", "B", "∃E 1, 2")),
		named("not a subproof", types.KindMalformedSubproofReference,
			existentialProof("", "∃x Px", "Pa", "A", "A", "∃E 1, 1")),
		named("witness in conclusion allowed", types.KindNone,
			existentialProof("", "∃x Px", "Pa", "Pa", "Pa", "∃E 1, 2")),
	})

	runCases(t, NewExistentialElim(Options{StrictNames: true}), []ruleCase{
		named("sound", types.KindNone,
			existentialProof("∃x Px", "∃x Px", "Pa", "∃x Px", "∃x Px", "∃E 1, 2")),
		named("witness in conclusion", types.KindUnsoundGeneralization,
			existentialProof("", "∃x Px", "Pa", "Pa", "Pa", "∃E 1, 2")),
		named("witness in premise", types.KindUnsoundGeneralization,
			existentialProof("∃x Px, Qa", "∃x Px", "Pa", "∃x Px", "∃x Px", "∃E 1, 2")),
		named("witness in existential", types.KindUnsoundGeneralization,
			existentialProof("", "∃x Rxa", "Raa", "A", "A", "∃E 1, 2")),
	})
}

func TestUniversalIntro(t *testing.T) {
	t.Parallel()

	runCases(t, NewUniversalIntro(Options{}), []ruleCase{
		{"generalize", "", [][3]string{{"1", "∀x Px", "PR"}, {"2", "Pa", "∀E 1"}, {"3", "∀x Px", "∀I 2"}}, types.KindNone},
		{"every occurrence", "", [][3]string{{"1", "Pa ∧ Qa", "PR"}, {"2", "∀x (Px ∧ Qx)", "∀I 1"}}, types.KindNone},
		{"name left behind", "", [][3]string{{"1", "Pa ∧ Pa", "PR"}, {"2", "∀x (Px ∧ Pa)", "∀I 1"}}, types.KindIncompleteSubstitution},
		{"two names", "", [][3]string{{"1", "Pa ∧ Pb", "PR"}, {"2", "∀x (Px ∧ Px)", "∀I 1"}}, types.KindInconsistentSubstitution},
		{"shape differs", "", [][3]string{{"1", "Pa ∨ Pa", "PR"}, {"2", "∀x (Px ∧ Px)", "∀I 1"}}, types.KindStructuralMismatch},
		{"variable turned into name", "", [][3]string{{"1", "Pb ∧ Qx", "PR"}, {"2", "∀x (Px ∧ Qc)", "∀I 1"}}, types.KindStructuralMismatch},
		{"not universal", "", [][3]string{{"1", "Pa", "PR"}, {"2", "∃x Px", "∀I 1"}}, types.KindWrongOperator},
		{"name from premise accepted", "Pa", [][3]string{{"1", "Pa", "PR"}, {"2", "∀x Px", "∀I 1"}}, types.KindNone},
	})

	runCases(t, NewUniversalIntro(Options{StrictNames: true}), []ruleCase{
		{"arbitrary name", "∀x Px", [][3]string{{"1", "∀x Px", "PR"}, {"2", "Pa", "∀E 1"}, {"3", "∀x Px", "∀I 2"}}, types.KindNone},
		{"name from premise", "Pa", [][3]string{{"1", "Pa", "PR"}, {"2", "∀x Px", "∀I 1"}}, types.KindUnsoundGeneralization},
		{"name from open assumption", "", [][3]string{{"1.1", "Pa", "AS"}, {"1.2", "∀x Px", "∀I 1.1"}}, types.KindUnsoundGeneralization},
		{"closed assumption", "", [][3]string{
			{"1.1", "Pa", "AS"},
			{"1.2", "Pa", "R 1.1"},
			{"2", "Pa → Pa", "→I 1"},
			{"3", "∀x (Px → Px)", "∀I 2"},
		}, types.KindNone},
	})
}

func TestRuleInfo(t *testing.T) {
	t.Parallel()

	r := NewExistentialElim(Options{})
	assert.Equal(t, "Existential Elimination", r.Name())
	assert.Equal(t, []string{"∃E"}, r.Symbols())
	assert.Equal(t, "∃E m, i", r.Usage())
	assert.Equal(t, []string{"Premise", "PR"}, NewPremise(Options{}).Symbols())
}
