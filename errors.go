package polygen

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the errors reported by this package.
type ErrorKind int

const (
	// InvalidParameter reports generation parameters that cannot produce a
	// shape, such as an empty list of sizes or an out of range index.
	InvalidParameter ErrorKind = iota + 1
	// DegenerateGeometry reports geometry that cannot be processed, such as
	// polygons without area or with crossing edges.
	DegenerateGeometry
	// ExportTargetUnresolved reports an export target that couldn't be
	// resolved at export time.
	ExportTargetUnresolved
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidParameter:
		return "invalid parameter"
	case DegenerateGeometry:
		return "degenerate geometry"
	case ExportTargetUnresolved:
		return "export target unresolved"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by the operations of this package.
//
// Errors of the same kind match each other via [errors.Is] as long as the
// target has no Op, which allows comparing against [ErrInvalidParameter],
// [ErrDegenerateGeometry], and [ErrExportTargetUnresolved].
type Error struct {
	Kind ErrorKind
	// Op is the operation that failed, e.g. "CreateShape".
	Op  string
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Op == "" && e.Err == nil:
		return e.Kind.String()
	case e.Op == "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	default:
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Err)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrInvalidParameter       = &Error{Kind: InvalidParameter}
	ErrDegenerateGeometry     = &Error{Kind: DegenerateGeometry}
	ErrExportTargetUnresolved = &Error{Kind: ExportTargetUnresolved}

	// ErrIndexOutOfRange is wrapped by the InvalidParameter error returned
	// when an insertion index lies outside of the shape.
	ErrIndexOutOfRange = errors.New("index out of range")
)

func invalidf(op string, format string, args ...any) error {
	return &Error{Kind: InvalidParameter, Op: op, Err: fmt.Errorf(format, args...)}
}

func degeneratef(op string, format string, args ...any) error {
	return &Error{Kind: DegenerateGeometry, Op: op, Err: fmt.Errorf(format, args...)}
}
