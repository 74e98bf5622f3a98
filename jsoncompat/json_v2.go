//go:build goexperiment.jsonv2

package json

import (
	jsonv2 "encoding/json/v2"
)

// JSON v2 compatibility layer
//
// The canonical encoder never parses JSON itself; this package supplies
// the ordinary (non-canonical) marshal/unmarshal used to check that a
// canonical document round-trips through a standard parser.

func Unmarshal(data []byte, v any) error {
	return jsonv2.Unmarshal(data, v)
}

func Marshal(v any) ([]byte, error) {
	return jsonv2.Marshal(v)
}
