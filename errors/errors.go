package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // document parsing (upstream collaborator)
	PhaseBuild  Phase = "build"  // registry construction
	PhaseDecode Phase = "decode" // document to typed value
	PhaseEncode Phase = "encode" // typed value to document
)

// Kind categorizes the error
type Kind string

const (
	KindFieldMissing      Kind = "field_missing"
	KindTypeMismatch      Kind = "type_mismatch"
	KindIntegerRange      Kind = "integer_range"
	KindNoMatchingVariant Kind = "no_matching_variant"
	KindAmbiguousVariant  Kind = "ambiguous_variant"
	KindFieldUnknown      Kind = "field_unknown"
	KindInvalidData       Kind = "invalid_data"
	KindMalformedInput    Kind = "malformed_input"
	KindRegistration      Kind = "registration"
	KindUnsupported       Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value      any
	Cause      error
	Phase      Phase
	Kind       Kind
	Expected   string
	Actual     string
	Detail     string
	Path       []string
	Candidates []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Expected != "" || e.Actual != "" {
		b.WriteString(": ")
		if e.Expected != "" && e.Actual != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
			b.WriteString(", got ")
			b.WriteString(e.Actual)
		} else if e.Expected != "" {
			b.WriteString("expected ")
			b.WriteString(e.Expected)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Actual)
		}
	}

	if e.Detail != "" {
		if e.Expected != "" || e.Actual != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if len(e.Candidates) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Candidates, ", "))
		b.WriteByte(']')
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Expected sets the expected shape description
func (b *Builder) Expected(s string) *Builder {
	b.err.Expected = s
	return b
}

// Actual sets the observed shape description
func (b *Builder) Actual(s string) *Builder {
	b.err.Actual = s
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Candidates sets the variant members involved
func (b *Builder) Candidates(names ...string) *Builder {
	b.err.Candidates = names
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// MissingField creates a missing required field error. path includes the
// missing field as its last element.
func MissingField(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldMissing,
		Path:   path,
		Detail: fmt.Sprintf("required field %q not found", fieldName),
	}
}

// TypeMismatch creates a type mismatch error
func TypeMismatch(phase Phase, path []string, expected, actual string) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindTypeMismatch,
		Path:     path,
		Expected: expected,
		Actual:   actual,
	}
}

// IntegerOutOfRange creates an integer range error for values that do not
// fit a signed 64-bit target without loss
func IntegerOutOfRange(phase Phase, path []string, value any) *Error {
	return &Error{
		Phase:    phase,
		Kind:     KindIntegerRange,
		Path:     path,
		Expected: "signed 64-bit integer",
		Detail:   fmt.Sprintf("value %v does not fit", value),
		Value:    value,
	}
}

// NoMatchingVariant creates an error for a document shape matching no
// variant member; presentFields names the keys seen in the input
func NoMatchingVariant(phase Phase, path []string, presentFields []string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoMatchingVariant,
		Path:   path,
		Detail: fmt.Sprintf("no member matches fields {%s}", strings.Join(presentFields, ", ")),
	}
}

// AmbiguousVariant creates an error for a document shape matching more than
// one equally specific member. This is a modeling defect, never resolved by
// declaration order.
func AmbiguousVariant(phase Phase, path []string, candidates []string) *Error {
	return &Error{
		Phase:      phase,
		Kind:       KindAmbiguousVariant,
		Path:       path,
		Detail:     "shape matches several members",
		Candidates: candidates,
	}
}

// UnknownField creates an unknown field error (strict mode only)
func UnknownField(phase Phase, path []string, fieldName string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindFieldUnknown,
		Path:   path,
		Detail: fmt.Sprintf("unknown field %q", fieldName),
	}
}

// Malformed wraps an upstream parse failure, passed through unchanged
func Malformed(cause error) *Error {
	return &Error{
		Phase: PhaseParse,
		Kind:  KindMalformedInput,
		Cause: cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Registration creates a registry construction error
func Registration(name string, detail string) *Error {
	return &Error{
		Phase:  PhaseBuild,
		Kind:   KindRegistration,
		Detail: fmt.Sprintf("register %q: %s", name, detail),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
