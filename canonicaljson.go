package canonicaljson

import (
	"io"
	"sync"
)

// MaxEncodedLen is the hard ceiling on an encoded document. Canonical JSON
// larger than this is rejected outright; there is no partial output.
const MaxEncodedLen = 65535

// Marshaler is implemented by types that control their own canonical form.
// Implementations return a dynamic Value rather than raw bytes, so the
// output stays canonical by construction; there is deliberately no raw
// escape hatch equivalent to json.Marshaler.
type Marshaler interface {
	MarshalCanonicalJSON() (Value, error)
}

var encodeStatePool = sync.Pool{New: func() any { return new(encodeState) }}

// Marshal returns the canonical JSON encoding of v.
//
// The error is one of *InvalidInputError, *MarshalerError, or ErrSizeLimit;
// every error is terminal, and no output is produced for a failed encode.
func Marshal(v any) ([]byte, error) {
	e := encodeStatePool.Get().(*encodeState)
	defer encodeStatePool.Put(e)
	e.buf = e.buf[:0]

	if err := e.marshal(v); err != nil {
		return nil, err
	}
	if len(e.buf) > MaxEncodedLen {
		return nil, ErrSizeLimit
	}
	out := make([]byte, len(e.buf))
	copy(out, e.buf)
	return out, nil
}

// MarshalString returns the canonical JSON encoding of v as a string.
// The output is always valid UTF-8.
func MarshalString(v any) (string, error) {
	b, err := Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// An Encoder writes canonical JSON documents to an output sink.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w. The sink is expected
// to be exclusively owned for the duration of each Encode call.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the canonical JSON encoding of v to the sink.
//
// The document is fully materialized and size-checked before anything is
// written, so a failed encode leaves the sink untouched. A rejected write
// is reported as a *WriteError.
func (enc *Encoder) Encode(v any) error {
	b, err := Marshal(v)
	if err != nil {
		return err
	}
	if _, err := enc.w.Write(b); err != nil {
		return &WriteError{Err: err}
	}
	return nil
}
