package proof

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/gnolang/ndcheck/internal/formula"
	"github.com/gnolang/ndcheck/internal/types"
)

// Reference is one entry of a citation: a single line number, or a
// range whose ends are the first and last line of a subproof.
type Reference struct {
	Start LineNo
	End   LineNo // nil unless the reference is a range
}

// IsRange reports whether the reference spans a subproof.
func (r Reference) IsRange() bool {
	return r.End != nil
}

func (r Reference) String() string {
	if r.IsRange() {
		return r.Start.String() + "-" + r.End.String()
	}
	return r.Start.String()
}

// Citation is a parsed rule justification, e.g. "∃E 1, 2".
type Citation struct {
	Symbol string
	Refs   []Reference
}

// LineNos returns every line number mentioned by the citation in the
// order written; a range contributes both of its ends.
func (c Citation) LineNos() []LineNo {
	var out []LineNo
	for _, r := range c.Refs {
		out = append(out, r.Start)
		if r.IsRange() {
			out = append(out, r.End)
		}
	}
	return out
}

var (
	dashes       = strings.NewReplacer("–", "-", "—", "-")
	spacedDash   = regexp.MustCompile(`\s*-\s*`)
	refSeparator = regexp.MustCompile(`[\s,]+`)
)

// ParseCitation splits a rule justification into its symbol and line
// references. The symbol is everything before the first digit, with
// typed aliases replaced and whitespace removed.
func ParseCitation(rule string) (Citation, error) {
	rule = formula.ReplaceAliases(strings.TrimSpace(rule))

	cut := strings.IndexFunc(rule, unicode.IsDigit)
	symbolPart, refPart := rule, ""
	if cut >= 0 {
		symbolPart, refPart = rule[:cut], rule[cut:]
	}

	symbol := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == ',' {
			return -1
		}
		return r
	}, symbolPart)
	if symbol == "" {
		return Citation{}, types.Errorf(types.KindMalformedCitation, "missing rule symbol in %q", rule)
	}

	c := Citation{Symbol: symbol}
	refPart = spacedDash.ReplaceAllString(dashes.Replace(refPart), "-")
	for _, field := range refSeparator.Split(refPart, -1) {
		if field == "" {
			continue
		}
		ref, err := parseReference(field)
		if err != nil {
			return Citation{}, err
		}
		c.Refs = append(c.Refs, ref)
	}
	return c, nil
}

func parseReference(field string) (Reference, error) {
	start, end, isRange := strings.Cut(field, "-")
	from, err := ParseLineNo(start)
	if err != nil {
		return Reference{}, types.Errorf(types.KindMalformedCitation, "%q is not a line reference", field)
	}
	if !isRange {
		return Reference{Start: from}, nil
	}
	to, err := ParseLineNo(end)
	if err != nil {
		return Reference{}, types.Errorf(types.KindMalformedCitation, "%q is not a line range", field)
	}
	return Reference{Start: from, End: to}, nil
}
