package canonicaljson

import (
	"errors"
	"reflect"
)

// ErrSizeLimit is returned when an encoded document exceeds MaxEncodedLen.
// The check runs once, after the full encode completes; a document that
// trips it produces no output at all.
var ErrSizeLimit = errors.New("canonicaljson: canonical JSON larger than 65,535 bytes is not allowed")

// InvalidInputError reports a value that has no canonical representation:
// a floating-point number, a non-string map key, a string that is not
// valid UTF-8, or a Go kind the encoder cannot classify. The encoder never
// coerces such values; the whole encode fails at the point the value is
// seen.
type InvalidInputError struct {
	GoType reflect.Type // offending Go type, may be nil
	msg    string
}

func (e *InvalidInputError) Error() string {
	if e.GoType != nil {
		return "canonicaljson: invalid input: " + e.msg + " (" + e.GoType.String() + ")"
	}
	return "canonicaljson: invalid input: " + e.msg
}

// WriteError reports that the output sink rejected a write. It aborts the
// encode; nothing is retried.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "canonicaljson: write failed: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error { return e.Err }

// MarshalerError reports that a Marshaler or encoding.TextMarshaler
// implementation failed to produce a value.
type MarshalerError struct {
	GoType reflect.Type
	Err    error
}

func (e *MarshalerError) Error() string {
	return "canonicaljson: error calling marshaler for type " + e.GoType.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }

func errFloat(t reflect.Type) error {
	return &InvalidInputError{GoType: t, msg: "floats are not allowed"}
}

func errKeyType(t reflect.Type) error {
	return &InvalidInputError{GoType: t, msg: "key must be a string"}
}

func errUnsupported(t reflect.Type) error {
	return &InvalidInputError{GoType: t, msg: "unsupported type"}
}
