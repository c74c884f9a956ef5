package diagnostic

import (
	"fmt"
	"strings"

	"github.com/thoreinstein/tagwm/internal/errors"
)

// Severity represents the impact of an issue.
type Severity int

const (
	// SeverityFatal indicates compilation could not produce a runtime.
	SeverityFatal Severity = iota
	// SeverityWarning indicates a value was replaced or dropped.
	SeverityWarning
	// SeverityInfo indicates an informational note.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "fatal":
		*s = SeverityFatal
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", b)
	}
	return nil
}

// Issue is a single problem found in a configuration document.
type Issue struct {
	Severity Severity `json:"severity"`
	// Section is the document path of the offending section, e.g.
	// "screen[0].tags.tag[3]".
	Section string `json:"section,omitempty"`
	Message string `json:"message"`
	// Value is the offending value (optional).
	Value any `json:"value,omitempty"`
	// Hint suggests a correction (optional).
	Hint string `json:"hint,omitempty"`
	// Context carries extra key/value detail such as the screen number.
	Context map[string]string `json:"context,omitempty"`
}

// Error implements the error interface.
func (i Issue) Error() string {
	var sb strings.Builder
	sb.WriteString(i.Severity.String())
	sb.WriteString(": ")
	if i.Section != "" {
		sb.WriteString(i.Section)
		sb.WriteString(": ")
	}
	sb.WriteString(i.Message)
	if i.Value != nil {
		fmt.Fprintf(&sb, " (got %v)", i.Value)
	}
	if i.Hint != "" {
		sb.WriteString("; ")
		sb.WriteString(i.Hint)
	}
	return sb.String()
}

// Result aggregates the issues of one compilation.
type Result struct {
	Issues []Issue `json:"issues"`
}

func (r *Result) add(i Issue) *Issue {
	r.Issues = append(r.Issues, i)
	return &r.Issues[len(r.Issues)-1]
}

// AddFatal records a fatal issue.
func (r *Result) AddFatal(section, message string, value any) *Issue {
	return r.add(Issue{Severity: SeverityFatal, Section: section, Message: message, Value: value})
}

// AddWarning records a warning. The returned issue may be annotated with a
// hint or context until the next Add call.
func (r *Result) AddWarning(section, message string, value any) *Issue {
	return r.add(Issue{Severity: SeverityWarning, Section: section, Message: message, Value: value})
}

// AddInfo records an informational note.
func (r *Result) AddInfo(section, message string, value any) *Issue {
	return r.add(Issue{Severity: SeverityInfo, Section: section, Message: message, Value: value})
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var res []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			res = append(res, i)
		}
	}
	return res
}

// HasFatal returns true if any issue is fatal.
func (r *Result) HasFatal() bool {
	return len(r.filter(SeverityFatal)) > 0
}

// HasWarnings returns true if any issue is a warning.
func (r *Result) HasWarnings() bool {
	return len(r.filter(SeverityWarning)) > 0
}

// Fatal returns the fatal issues.
func (r *Result) Fatal() []Issue {
	return r.filter(SeverityFatal)
}

// Warnings returns the warnings.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns the informational notes.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}
