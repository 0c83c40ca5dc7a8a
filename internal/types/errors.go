package types

import (
	"errors"
	"fmt"
)

// Kind classifies why a proof line failed to check.
type Kind int

const (
	KindNone Kind = iota
	KindMalformedFormula
	KindMalformedCitation
	KindMalformedLineNumber
	KindLineNotFound
	KindMalformedSubproofReference
	KindOutOfScope
	KindStructuralMismatch
	KindInconsistentSubstitution
	KindIncompleteSubstitution
	KindWrongOperator
	KindFormulaMismatch
	KindPremiseMismatch
	KindUnsoundGeneralization
	KindUnknownRule
	KindConclusionMismatch
	// KindInternal marks a checker bug rather than a user mistake.
	KindInternal
)

var kindNames = map[Kind]string{
	KindNone:                       "",
	KindMalformedFormula:           "MalformedFormula",
	KindMalformedCitation:          "MalformedCitation",
	KindMalformedLineNumber:        "MalformedLineNumber",
	KindLineNotFound:               "LineNotFound",
	KindMalformedSubproofReference: "MalformedSubproofReference",
	KindOutOfScope:                 "OutOfScope",
	KindStructuralMismatch:         "StructuralMismatch",
	KindInconsistentSubstitution:   "InconsistentSubstitution",
	KindIncompleteSubstitution:     "IncompleteSubstitution",
	KindWrongOperator:              "WrongOperator",
	KindFormulaMismatch:            "FormulaMismatch",
	KindPremiseMismatch:            "PremiseMismatch",
	KindUnsoundGeneralization:      "UnsoundGeneralization",
	KindUnknownRule:                "UnknownRule",
	KindConclusionMismatch:         "ConclusionMismatch",
	KindInternal:                   "Internal",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", text)
}

// Error is a classified failure raised while resolving or parsing
// parts of a proof.
type Error struct {
	Kind Kind
	Msg  string
}

// Errorf builds an *Error of the given kind.
func Errorf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.Msg
}

// Is reports kind equality so callers can match with errors.Is
// against a bare &Error{Kind: k}.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Msg == "" && t.Kind == e.Kind
}

// Response converts the error into a failing response.
func (e *Error) Response() Response {
	return Response{Kind: e.Kind, Message: e.Msg}
}

// KindOf returns the kind carried by err, or KindInternal for
// errors that did not originate from this package.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// FromError converts any error into a failing response.
func FromError(err error) Response {
	var e *Error
	if errors.As(err, &e) {
		return e.Response()
	}
	return Response{Kind: KindInternal, Message: err.Error()}
}
