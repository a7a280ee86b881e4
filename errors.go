package kor

import (
	"errors"
	"fmt"
)

// SchemaError reports an invalid schema declaration: a malformed id, a
// Selection without options, an Option marked repeatable, or duplicate
// sibling ids. It is raised at build time and is always fatal to the caller.
type SchemaError struct {
	ID     string // id of the offending node ("" when unknown)
	Reason string
}

func (e *SchemaError) Error() string {
	if e.ID == "" {
		return "kor: invalid schema: " + e.Reason
	}
	return fmt.Sprintf("kor: invalid schema node %q: %s", e.ID, e.Reason)
}

// UnsupportedError reports that an encoder structurally cannot represent a
// schema shape, e.g. CSV with repeated or nested attributes. It is raised
// when the encoder is constructed, never from deep inside a parse.
type UnsupportedError struct {
	Format string // encoder format name
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("kor: %s encoder: unsupported schema: %s", e.Format, e.Reason)
}

// DecodeError reports response text that superficially matches the expected
// format but is malformed beyond recovery. Absence of recognizable data is
// not a DecodeError; decoders return empty Values for that.
type DecodeError struct {
	Format string
	Cause  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("kor: %s decode: %v", e.Format, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// VisitError reports a visitor that has no implementation for a node kind.
// It signals an incomplete consumer, not a data problem.
type VisitError struct {
	Kind string
}

func (e *VisitError) Error() string {
	return fmt.Sprintf("kor: visitor does not implement node kind %s", e.Kind)
}

// AsSchemaError extracts a *SchemaError using errors.As internally.
func AsSchemaError(err error) (*SchemaError, bool) {
	var se *SchemaError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// AsDecodeError extracts a *DecodeError using errors.As internally.
func AsDecodeError(err error) (*DecodeError, bool) {
	var de *DecodeError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
