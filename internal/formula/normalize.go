package formula

import (
	"strings"
	"unicode"
)

// aliases maps typed spellings to their logical symbols. Longer
// spellings come first so "<->" wins over "->".
var aliases = strings.NewReplacer(
	`\contradiction`, "⊥",
	`\implies`, "→",
	`\forall`, "∀",
	`\exists`, "∃",
	`\and`, "∧",
	`\not`, "¬",
	`\iff`, "↔",
	`\or`, "∨",
	"<->", "↔",
	"->", "→",
	"&", "∧",
	"|", "∨",
	"~", "¬",
	"#", "⊥",
)

// Normalize replaces typed aliases with logical symbols and removes
// all whitespace.
func Normalize(s string) string {
	s = aliases.Replace(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ReplaceAliases replaces typed aliases with logical symbols and keeps
// whitespace intact.
func ReplaceAliases(s string) string {
	return aliases.Replace(s)
}

// IsVariable reports whether r is a variable letter (s–z).
func IsVariable(r rune) bool {
	return r >= 's' && r <= 'z'
}

// IsName reports whether r is a name letter (a–r).
func IsName(r rune) bool {
	return r >= 'a' && r <= 'r'
}

// IsVariableTerm reports whether term is a single variable letter.
func IsVariableTerm(term string) bool {
	r := []rune(term)
	return len(r) == 1 && IsVariable(r[0])
}

// IsNameTerm reports whether term is a single name letter.
func IsNameTerm(term string) bool {
	r := []rune(term)
	return len(r) == 1 && IsName(r[0])
}
