package proof

import (
	"github.com/gnolang/ndcheck/internal/types"
)

// LineWithNo returns the line numbered n.
func (d *Document) LineWithNo(n LineNo) (*Line, error) {
	i, ok := d.index[n.String()]
	if !ok {
		return nil, types.Errorf(types.KindLineNotFound, "line %s does not exist", n)
	}
	return d.Lines[i], nil
}

// LinesInSubproof returns the boundary lines of the subproof opened at
// header: its assumption header.1 and its last line at the same level.
func (d *Document) LinesInSubproof(header LineNo) (openLine, closeLine *Line, err error) {
	if len(header) == 0 {
		return nil, nil, types.Errorf(types.KindMalformedSubproofReference, "missing subproof reference")
	}
	openLine, err = d.LineWithNo(header.Child(1))
	if err != nil {
		return nil, nil, types.Errorf(types.KindMalformedSubproofReference,
			"%s does not refer to a subproof: line %s does not exist", header, header.Child(1))
	}
	closeLine = openLine
	for _, l := range d.Lines[openLine.Index+1:] {
		if l.No == nil {
			continue
		}
		if !l.No.HasPrefix(header) {
			break
		}
		if l.No.Depth() == header.Depth()+1 {
			closeLine = l
		}
	}
	return openLine, closeLine, nil
}

// ResolveSubproof returns the boundary lines of the subproof named by
// ref. A single reference names the subproof header (2 for lines
// 2.1…2.x); a range must run from the subproof's first line to its last.
func (d *Document) ResolveSubproof(ref Reference) (header LineNo, openLine, closeLine *Line, err error) {
	if !ref.IsRange() {
		openLine, closeLine, err = d.LinesInSubproof(ref.Start)
		return ref.Start, openLine, closeLine, err
	}

	if ref.Start.Depth() < 2 || ref.Start.Last() != 1 {
		return nil, nil, nil, types.Errorf(types.KindMalformedSubproofReference,
			"range %s must start at the first line of a subproof", ref)
	}
	header = ref.Start.Parent()
	openLine, closeLine, err = d.LinesInSubproof(header)
	if err != nil {
		return nil, nil, nil, err
	}
	if !closeLine.No.Equal(ref.End) {
		return nil, nil, nil, types.Errorf(types.KindMalformedSubproofReference,
			"range %s must end at line %s, the last line of subproof %s", ref, closeLine.No, header)
	}
	return header, openLine, closeLine, nil
}

// OpenAssumptions returns the assumption lines of every subproof still
// open at line n, outermost first.
func (d *Document) OpenAssumptions(n LineNo) []*Line {
	var out []*Line
	for depth := 1; depth < n.Depth(); depth++ {
		if l, err := d.LineWithNo(n[:depth].Child(1)); err == nil {
			out = append(out, l)
		}
	}
	return out
}

// VerifyLineCitation checks that the line cited can be seen from the
// citing line: it must come earlier, and every subproof enclosing it
// must still be open at the citing line. Lines of a closed subproof can
// only be used through a citation of the whole subproof.
func VerifyLineCitation(citing, cited LineNo) types.Response {
	if !cited.Before(citing) {
		return types.Invalid(types.KindOutOfScope,
			"Invalid citation: line %s must come before line %s", cited, citing)
	}
	if !isOpenAt(cited.Parent(), citing) {
		return types.Invalid(types.KindOutOfScope,
			"Invalid citation: line %s is inside subproof %s, which is closed at line %s",
			cited, cited.Parent(), citing)
	}
	return types.Valid()
}

// VerifySubproofCitation checks that the subproof opened at header can
// be cited as a whole from the citing line: it must be closed already,
// and must sit in a scope that is still open.
func VerifySubproofCitation(citing, header LineNo) types.Response {
	if citing.HasPrefix(header) {
		return types.Invalid(types.KindOutOfScope,
			"Invalid citation: subproof %s is still open at line %s", header, citing)
	}
	if !header.Before(citing) {
		return types.Invalid(types.KindOutOfScope,
			"Invalid citation: subproof %s must come before line %s", header, citing)
	}
	if !isOpenAt(header.Parent(), citing) {
		return types.Invalid(types.KindOutOfScope,
			"Invalid citation: subproof %s is inside subproof %s, which is closed at line %s",
			header, header.Parent(), citing)
	}
	return types.Valid()
}
