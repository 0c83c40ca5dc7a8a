package proof

import (
	"strings"

	"github.com/gnolang/ndcheck/internal/types"
)

// RawLine is a proof line as submitted, before its number is parsed.
type RawLine struct {
	LineNo  string `yaml:"line_no" json:"line_no"`
	Formula string `yaml:"formula" json:"formula"`
	Rule    string `yaml:"rule" json:"rule"`
}

// Line is one numbered step of a proof.
type Line struct {
	Raw     string // line number as submitted
	No      LineNo // nil when Raw is malformed
	Formula string
	Rule    string
	Index   int // position in the document

	noErr error
}

// NumberError returns the error raised while parsing the line number.
func (l *Line) NumberError() error {
	return l.noErr
}

// OpensSubproof reports whether the line is the first line of a subproof.
func (l *Line) OpensSubproof() bool {
	return l.No.Depth() > 1 && l.No.Last() == 1
}

// Label returns the parsed line number, or the raw text when it could
// not be parsed.
func (l *Line) Label() string {
	if l.No == nil {
		return l.Raw
	}
	return l.No.String()
}

// Document is a whole proof: premises, the conclusion to reach, and the
// ordered lines. It is read-only once built.
type Document struct {
	Premises   string
	Conclusion string
	Lines      []*Line

	index map[string]int
}

// NewDocument builds a document from submitted lines. Line numbers are
// parsed here, once; a malformed number is kept on its line and
// reported by the checker rather than failing construction.
func NewDocument(premises, conclusion string, raw []RawLine) *Document {
	doc := &Document{
		Premises:   premises,
		Conclusion: conclusion,
		Lines:      make([]*Line, 0, len(raw)),
		index:      make(map[string]int, len(raw)),
	}
	for i, r := range raw {
		line := &Line{
			Raw:     strings.TrimSpace(r.LineNo),
			Formula: r.Formula,
			Rule:    r.Rule,
			Index:   i,
		}
		line.No, line.noErr = ParseLineNo(r.LineNo)
		if line.noErr == nil {
			key := line.No.String()
			if _, dup := doc.index[key]; !dup {
				doc.index[key] = i
			}
		}
		doc.Lines = append(doc.Lines, line)
	}
	return doc
}

// Last returns the final line, or nil for an empty document.
func (d *Document) Last() *Line {
	if len(d.Lines) == 0 {
		return nil
	}
	return d.Lines[len(d.Lines)-1]
}

// PremiseList splits the premises text at top-level commas or
// semicolons. Commas inside parentheses belong to argument lists.
func (d *Document) PremiseList() []string {
	var (
		out   []string
		depth int
		start int
	)
	s := d.Premises
	flush := func(end int) {
		if p := strings.TrimSpace(s[start:end]); p != "" {
			out = append(out, p)
		}
	}
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		case ',', ';':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return out
}

// StructureError checks that line i is correctly placed relative to the
// lines before it: numbers strictly increase, and a new subproof opens
// one level at a time, starting at .1. Closing any number of levels at
// once is allowed.
func (d *Document) StructureError(i int) error {
	line := d.Lines[i]
	if line.noErr != nil {
		return line.noErr
	}

	prev := LineNo{}
	for j := i - 1; j >= 0; j-- {
		if d.Lines[j].No != nil {
			prev = d.Lines[j].No
			break
		}
	}
	cur := line.No

	if !prev.Before(cur) {
		return types.Errorf(types.KindMalformedLineNumber,
			"line %s must come after line %s", cur, prev)
	}

	// continuing the current subproof or one of its open ancestors
	if isOpenAt(cur.Parent(), prev) {
		return nil
	}

	header := cur.Parent()
	if cur.Last() != 1 {
		return types.Errorf(types.KindMalformedLineNumber,
			"line %s does not continue an open subproof; a new subproof must start at %s",
			cur, header.Child(1))
	}
	if !isOpenAt(header.Parent(), prev) {
		return types.Errorf(types.KindMalformedLineNumber,
			"line %s opens more than one subproof level at once", cur)
	}
	if !prev.Before(header) {
		return types.Errorf(types.KindMalformedLineNumber,
			"subproof %s must be numbered after line %s", header, prev)
	}
	return nil
}

// isOpenAt reports whether subproof scope is still open at line at.
// The top-level scope is always open.
func isOpenAt(scope, at LineNo) bool {
	return len(scope) == 0 || (at.HasPrefix(scope) && len(scope) < len(at))
}
