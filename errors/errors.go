package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode    Phase = "decode"    // code units to code points
	PhaseEncode    Phase = "encode"    // code points to code units
	PhaseConvert   Phase = "convert"   // eager conversion and views
	PhaseTransform Phase = "transform" // byte-oriented transformer
	PhaseValidate  Phase = "validate"  // validation passes
	PhaseLift      Phase = "lift"      // guest memory to Go
	PhaseLower     Phase = "lower"     // Go to guest memory
)

// Kind categorizes the error
type Kind string

const (
	KindIllegalSequence    Kind = "illegal_sequence"
	KindIncompleteSequence Kind = "incomplete_sequence"
	KindInvalidCodePoint   Kind = "invalid_code_point"
	KindOutOfBounds        Kind = "out_of_bounds"
	KindMisaligned         Kind = "misaligned"
	KindAllocation         Kind = "allocation"
	KindUnsupported        Kind = "unsupported"
	KindInvalidInput       Kind = "invalid_input"
	KindNilPointer         Kind = "nil_pointer"
	KindOverflow           Kind = "overflow"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value   any
	Cause   error
	Phase   Phase
	Kind    Kind
	Form    string // encoding form name, e.g. "UTF-16"
	WitType string
	Detail  string
	Path    []string
	Offset  int // offset in code units, -1 when unknown
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Form != "" {
		b.WriteString(" in ")
		b.WriteString(e.Form)
		if e.Offset >= 0 {
			b.WriteString(" at unit ")
			b.WriteString(strconv.Itoa(e.Offset))
		}
	}

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.WitType != "" {
		b.WriteString(": WIT type ")
		b.WriteString(e.WitType)
	}

	if e.Detail != "" {
		if e.WitType != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
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
			Phase:  phase,
			Kind:   kind,
			Offset: -1,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Form sets the encoding form name
func (b *Builder) Form(f string) *Builder {
	b.err.Form = f
	return b
}

// Offset sets the offset in code units
func (b *Builder) Offset(n int) *Builder {
	b.err.Offset = n
	return b
}

// WitType sets the WIT type name
func (b *Builder) WitType(t string) *Builder {
	b.err.WitType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

const maxPreview = 8

func preview(units []uint32) string {
	if len(units) > maxPreview {
		units = units[:maxPreview]
	}
	parts := make([]string, len(units))
	for i, u := range units {
		parts[i] = strconv.FormatUint(uint64(u), 16)
	}
	return strings.Join(parts, " ")
}

// IllegalSequence creates a malformed input error. units holds the offending
// code units widened to 32 bits.
func IllegalSequence(phase Phase, form string, offset int, units []uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIllegalSequence,
		Form:   form,
		Offset: offset,
		Detail: fmt.Sprintf("illegal sequence [%s]", preview(units)),
		Value:  units,
	}
}

// IncompleteSequence creates a truncated input error
func IncompleteSequence(phase Phase, form string, offset int, units []uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIncompleteSequence,
		Form:   form,
		Offset: offset,
		Detail: fmt.Sprintf("input ends inside sequence [%s]", preview(units)),
		Value:  units,
	}
}

// InvalidCodePoint creates an error for a value outside the Unicode scalar range
func InvalidCodePoint(phase Phase, value uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidCodePoint,
		Offset: -1,
		Detail: fmt.Sprintf("%#x is not a Unicode scalar value", value),
		Value:  value,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Offset: -1,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Offset: -1,
		Detail: what,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, ptr, length, size uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Offset: -1,
		Detail: fmt.Sprintf("range [%d, %d) out of bounds (size %d)", ptr, ptr+length, size),
		Value:  ptr,
	}
}

// Misaligned creates an alignment error
func Misaligned(phase Phase, ptr, align uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMisaligned,
		Offset: -1,
		Detail: fmt.Sprintf("pointer %d is not %d-byte aligned", ptr, align),
		Value:  ptr,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Offset: -1,
		Detail: fmt.Sprintf("nil %s", what),
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, value any, limit string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Offset: -1,
		Detail: fmt.Sprintf("value %v overflows %s", value, limit),
		Value:  value,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Offset: -1,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Offset: -1,
		Detail: detail,
		Cause:  cause,
	}
}
