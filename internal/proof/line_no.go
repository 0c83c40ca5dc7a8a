package proof

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gnolang/ndcheck/internal/types"
)

// LineNo is a hierarchical line address such as 3 or 3.2.1. A line at
// depth k has k components; the first k-1 name its enclosing subproofs.
type LineNo []int

// ParseLineNo parses a dotted line number. Every component must be a
// positive integer.
func ParseLineNo(s string) (LineNo, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, types.Errorf(types.KindMalformedLineNumber, "empty line number")
	}
	parts := strings.Split(s, ".")
	no := make(LineNo, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 || part[0] == '+' {
			return nil, types.Errorf(types.KindMalformedLineNumber, "%q is not a valid line number", s)
		}
		no = append(no, n)
	}
	return no, nil
}

// MustParseLineNo is like ParseLineNo but panics on malformed input.
func MustParseLineNo(s string) LineNo {
	no, err := ParseLineNo(s)
	if err != nil {
		panic(err)
	}
	return no
}

func (n LineNo) String() string {
	parts := make([]string, len(n))
	for i, c := range n {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ".")
}

// Depth returns the nesting level; top-level lines have depth 1.
func (n LineNo) Depth() int {
	return len(n)
}

// Parent returns the address of the enclosing subproof, or nil for a
// top-level line.
func (n LineNo) Parent() LineNo {
	if len(n) <= 1 {
		return nil
	}
	return n[:len(n)-1]
}

// Last returns the final component.
func (n LineNo) Last() int {
	if len(n) == 0 {
		return 0
	}
	return n[len(n)-1]
}

// Child returns the address of the k-th line inside subproof n.
func (n LineNo) Child(k int) LineNo {
	child := make(LineNo, len(n), len(n)+1)
	copy(child, n)
	return append(child, k)
}

// HasPrefix reports whether prefix is an ancestor of, or equal to, n.
func (n LineNo) HasPrefix(prefix LineNo) bool {
	return len(prefix) <= len(n) && slices.Equal(n[:len(prefix)], prefix)
}

// Equal reports whether both addresses are the same.
func (n LineNo) Equal(other LineNo) bool {
	return slices.Equal(n, other)
}

// Compare orders addresses component by component; a prefix sorts
// before its extensions, so subproof 3 precedes line 3.1.
func (n LineNo) Compare(other LineNo) int {
	return slices.Compare(n, other)
}

// Before reports whether n precedes other in document order.
func (n LineNo) Before(other LineNo) bool {
	return n.Compare(other) < 0
}
