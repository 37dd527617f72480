package core

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by a pipeline stage matches one of
// these via errors.Is.
var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrIOFailure        = errors.New("resource unreadable")
	ErrParseFailure     = errors.New("parse failure")
)

// ErrFieldCount reports a row whose field count differs from len(Columns).
var ErrFieldCount = errors.New("wrong field count")

// ParseError describes the first row that could not be converted.
// It matches ErrParseFailure and its cause via errors.Is.
type ParseError struct {
	Line   int    // 1-based line number in the resource
	Column string // Column name, empty for row-level errors
	Value  string // Offending cell, empty for row-level errors
	Err    error  // Underlying cause (ErrFieldCount, ErrInvalidDate, ...)
}

func (e *ParseError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s: line %d: column %q: %v", ErrParseFailure, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("%s: line %d: %v", ErrParseFailure, e.Line, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrParseFailure, e.Err}
}
