package fileicon

import (
	"fmt"
)

// ErrorKind classifies the failures the public API can report
type ErrorKind int

const (
	// KindPathDoesNotExist means the requested path could not be stat'd.
	// Existence is checked up front so every platform behaves the same;
	// the Windows shell would otherwise hand back a generic default icon
	// for paths that do not exist.
	KindPathDoesNotExist ErrorKind = iota
	// KindNullIconSize means the requested icon size was zero or negative.
	KindNullIconSize
	// KindUnsupportedFormat means the platform produced pixel data in a
	// layout this library does not understand.
	KindUnsupportedFormat
	// KindFailed covers every other platform-layer failure: subsystem
	// init, shell lookup, missing theme icon, allocation. The public
	// contract deliberately does not distinguish why the OS could not
	// produce an icon.
	KindFailed
)

// String returns a string representation of the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindPathDoesNotExist:
		return "path does not exist"
	case KindNullIconSize:
		return "null icon size"
	case KindUnsupportedFormat:
		return "unsupported pixel format"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Error is a structured icon-lookup error
type Error struct {
	Kind      ErrorKind
	Operation string
	Path      string
	Err       error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("fileicon: %s in %s [%s]", e.Kind, e.Operation, e.Path)
	}
	return fmt.Sprintf("fileicon: %s in %s", e.Kind, e.Operation)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the ErrorKind from an error returned by this package.
// Errors from other sources report KindFailed.
func KindOf(err error) ErrorKind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return KindFailed
}

func newPathError(operation, path string, err error) *Error {
	return &Error{
		Kind:      KindPathDoesNotExist,
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

func newSizeError(operation string) *Error {
	return &Error{
		Kind:      KindNullIconSize,
		Operation: operation,
	}
}

func newPlatformError(operation, path string, kind ErrorKind, err error) *Error {
	return &Error{
		Kind:      kind,
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}
