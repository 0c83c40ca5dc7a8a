// Package internal provides the core of the natural-deduction proof checker.
//
// A proof is a document of numbered lines. Each line holds a formula and
// cites the inference rule that justifies it, together with the earlier
// lines or subproofs the rule is applied to. Line numbers are dotted: 3.2
// is the second line of the subproof opened at 3, whose first line 3.1 is
// its assumption.
//
// Key components:
//
// Engine: checks every line of a proof against the rule it cites and the
// last line against the stated conclusion. It never stops at the first
// failure, so a report lists every problem in the proof.
//
// Rule: an interface implemented by each inference rule of the catalogue.
// Rules are looked up by any of their symbols, e.g. "∧E", "PR", or the
// typed alias "&E".
//
// Cache: remembers reports of proof files that have not changed.
//
// Watcher: re-checks proof files as they are edited.
//
// The formula language, line numbering, and tree comparison live in the
// formula, proof, and compare subpackages.
//
// Usage:
//
//	engine, err := internal.NewEngine(internal.Options{})
//	if err != nil {
//	    // handle error
//	}
//
//	report := engine.Check(doc)
//	for _, resp := range report.Failures() {
//	    fmt.Println(resp.Message)
//	}
package internal
