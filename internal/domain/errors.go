package domain

import (
	"errors"
	"fmt"
)

// ParseErrorKind classifies record parse failures.
type ParseErrorKind string

const (
	// MalformedRecord covers wrong field counts, invalid UTF-8 and
	// unparseable identifiers.
	MalformedRecord ParseErrorKind = "MALFORMED_RECORD"
	// MissingField marks an empty required field.
	MissingField ParseErrorKind = "MISSING_FIELD"
	// InvalidMetadata marks optional metadata that fails to parse, such as a
	// non-numeric or negative age.
	InvalidMetadata ParseErrorKind = "INVALID_METADATA"
)

// ParseError describes one rejected dataset line.
type ParseError struct {
	Kind   ParseErrorKind
	Line   int
	Field  string
	Detail string
}

func (e *ParseError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("line %d: %s: field %q: %s", e.Line, e.Kind, e.Field, e.Detail)
	}
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Detail)
}

// ConflictError reports a person identifier appearing with incompatible
// attribute values across records.
type ConflictError struct {
	PersonID PersonID
	Field    string
	Existing string
	Incoming string
	Line     int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("line %d: conflicting %s for person %s: %q vs %q",
		e.Line, e.Field, e.PersonID, e.Existing, e.Incoming)
}

// UnknownIdentifierError reports a query endpoint absent from the graph.
type UnknownIdentifierError struct {
	ID PersonID
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("unknown person identifier %s", e.ID)
}

var (
	// ErrNoPath indicates the endpoints exist but are not connected by any
	// directed path. A legitimate query outcome, distinct from unknown ids.
	ErrNoPath = errors.New("no path between persons")

	// ErrSelfLoop indicates a record relating a person to themselves.
	ErrSelfLoop = errors.New("self relationship")
)
