package tgl

import (
	"errors"
	"fmt"
)

// ErrUnsupported is returned when a resolver lacks an optional capability,
// e.g. loading translations from a map.
var ErrUnsupported = errors.New("operation not supported by resolver")

// ParseError reports malformed catalog content.
type ParseError struct {
	// Line is the 1-based physical line, or 0 when the error is not tied
	// to a line.
	Line int
	Msg  string
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Line > 0 {
		return fmt.Sprintf("cannot parse catalog: line %d: %s", e.Line, msg)
	}
	return "cannot parse catalog: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResourceError reports a catalog file or directory that could not be read.
type ResourceError struct {
	Path string
	Err  error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
