package lcg

import (
	"errors"
	"strings"
)

// IssueKind classifies a single validation failure.
type IssueKind int

const (
	// KindFormat: the text does not have the shape of a non-negative integer.
	KindFormat IssueKind = iota
	// KindDomain: the integer fails a domain predicate (prime, odd, range).
	KindDomain
	// KindCapacity: the requested count exceeds HardCapRows.
	KindCapacity
)

// sentinel maps the kind to its package-level error.
func (k IssueKind) sentinel() error {
	switch k {
	case KindDomain:
		return ErrDomain
	case KindCapacity:
		return ErrCapacity
	default:
		return ErrFormat
	}
}

// Issue is one violated rule. Message is meant for display as is.
type Issue struct {
	Field   string
	Kind    IssueKind
	Message string
}

// ValidationError carries every issue found in one request, in check order.
// It is never returned with an empty Issues slice.
type ValidationError struct {
	Variant Variant
	Issues  []Issue
}

// Error joins all messages into one line.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("lcg: invalid ")
	sb.WriteString(e.Variant.String())
	sb.WriteString(" parameters: ")
	for i, is := range e.Issues {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(is.Message)
	}
	return sb.String()
}

// Is reports whether any issue belongs to the class of target.
func (e *ValidationError) Is(target error) bool {
	for _, is := range e.Issues {
		if is.Kind.sentinel() == target {
			return true
		}
	}
	return false
}

// Messages returns the display messages in order.
func (e *ValidationError) Messages() []string {
	out := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		out[i] = is.Message
	}
	return out
}

// IssuesOf extracts the issue list from err, or nil if err is not a
// *ValidationError.
func IssuesOf(err error) []Issue {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Issues
	}
	return nil
}
