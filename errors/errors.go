package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Kind identifies one of the closed set of failures the compiler core can
// report. Consumers may switch over it exhaustively.
type Kind string

const (
	ImportRead             Kind = "ImportReadError"
	ImportCycle            Kind = "ImportCycleError"
	UnsupportedOperation   Kind = "UnsupportedOperationError"
	SchemaCollision        Kind = "SchemaCollisionError"
	OperationTypeCollision Kind = "OperationTypeCollisionError"
	UnknownType            Kind = "UnknownTypeError"
	InvalidReference       Kind = "InvalidReferenceError"
	ReferenceNotFound      Kind = "ReferenceNotFoundError"
	FileNotFoundInGraph    Kind = "FileNotFoundInGraph"
)

// Location points at a position in a schema file.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

func (a Location) Before(b Location) bool {
	return a.Line < b.Line || (a.Line == b.Line && a.Column < b.Column)
}

// CompileError is a single defect found while resolving, parsing or linking
// a schema graph. It carries the offending name and file path where they
// apply, so a consumer can render a diagnostic without re-deriving context.
type CompileError struct {
	Kind      Kind       `json:"kind"`
	Message   string     `json:"message"`
	Name      string     `json:"name,omitempty"` // offending type, member or role name
	File      string     `json:"file,omitempty"` // file the defect was found in
	Locations []Location `json:"locations,omitempty"`
	Err       error      `json:"-"` // underlying cause
}

func Errorf(kind Kind, format string, a ...interface{}) *CompileError {
	return &CompileError{
		Kind:    kind,
		Message: fmt.Sprintf(format, a...),
	}
}

func (err *CompileError) WithName(name string) *CompileError {
	err.Name = name
	return err
}

func (err *CompileError) WithFile(path string) *CompileError {
	err.File = path
	return err
}

func (err *CompileError) WithLocation(line, column int) *CompileError {
	err.Locations = append(err.Locations, Location{Line: line, Column: column})
	return err
}

func (err *CompileError) WithCause(cause error) *CompileError {
	err.Err = cause
	return err
}

func (err *CompileError) Error() string {
	if err == nil {
		return "<nil>"
	}
	str := fmt.Sprintf("blossom: %s", err.Message)
	if err.File != "" {
		str += fmt.Sprintf(" (%s)", err.File)
	}
	for _, loc := range err.Locations {
		str += fmt.Sprintf(" (line %d, column %d)", loc.Line, loc.Column)
	}
	return str
}

func (err *CompileError) Unwrap() error { return err.Err }

var _ error = &CompileError{}

// IsKind reports whether err is, or wraps, a CompileError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *CompileError
	return stderrors.As(err, &ce) && ce.Kind == kind
}

// Defect is one aggregated linking failure, tagged with the position of the
// declaration in the link scan and the declaration's name.
type Defect struct {
	Index       int
	Declaration string
	Err         error
}

// LinkingError collects every reference-resolution failure found while
// linking one file. Reference errors never abort the scan of remaining
// declarations; they are gathered here and raised once per link invocation.
type LinkingError struct {
	File    string
	Defects []Defect
}

func (err *LinkingError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "blossom: linking %s: %d unresolved reference(s)", err.File, len(err.Defects))
	for _, d := range err.Defects {
		fmt.Fprintf(&sb, "\n\t[%d] %s: %s", d.Index, d.Declaration, d.Err)
	}
	return sb.String()
}

// Unwrap exposes the underlying defects to errors.Is and errors.As.
func (err *LinkingError) Unwrap() []error {
	errs := make([]error, len(err.Defects))
	for i, d := range err.Defects {
		errs[i] = d.Err
	}
	return errs
}

var _ error = &LinkingError{}
