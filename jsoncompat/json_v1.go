//go:build !goexperiment.jsonv2

package json

import (
	stdjson "encoding/json"
)

// JSON v1 compatibility layer (default)

func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}

func Marshal(v any) ([]byte, error) {
	return stdjson.Marshal(v)
}
