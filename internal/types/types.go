package types

import (
	"fmt"
	"strings"
)

// Response is the outcome of checking one proof line.
type Response struct {
	Line    string `json:"line"`
	Rule    string `json:"rule,omitempty"`
	Valid   bool   `json:"valid"`
	Kind    Kind   `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// Valid returns a passing response.
func Valid() Response {
	return Response{Valid: true}
}

// Invalid returns a failing response of the given kind.
func Invalid(kind Kind, format string, args ...any) Response {
	return Response{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}

// OnLine prefixes the diagnostic with the line it was raised on.
// Valid responses are returned unchanged.
func (r Response) OnLine(lineNo string) Response {
	if r.Valid {
		return r
	}
	const prefix = "Error on line "
	if !strings.HasPrefix(r.Message, prefix) {
		r.Message = prefix + lineNo + ": " + r.Message
	}
	return r
}

// Report aggregates the per-line responses of a whole proof.
type Report struct {
	Lines      []Response `json:"lines"`
	Conclusion Response   `json:"conclusion"`
	Valid      bool       `json:"valid"`
}

// Failures returns the invalid responses in document order,
// the conclusion check last.
func (r Report) Failures() []Response {
	var out []Response
	for _, resp := range r.Lines {
		if !resp.Valid {
			out = append(out, resp)
		}
	}
	if !r.Conclusion.Valid {
		out = append(out, r.Conclusion)
	}
	return out
}

// Severity controls whether a rule is available to proofs.
type Severity int

const (
	SeverityError Severity = iota
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityOff:
		return "off"
	default:
		return "unknown"
	}
}

func (s Severity) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s *Severity) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "error", "on":
		*s = SeverityError
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("invalid severity %q", raw)
	}
	return nil
}

// ConfigRule is the per-rule entry of the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}
