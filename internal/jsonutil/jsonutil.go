// Package jsonutil wraps github.com/go-json-experiment/json with the two
// call shapes the bots need: decoding scanner artifacts and writing
// indented, deterministic reports.
package jsonutil

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshal decodes data into v. Unknown members are ignored.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// MarshalIndent encodes v with two-space indentation and a trailing newline.
// Struct fields keep their declaration order, so output is stable across runs.
func MarshalIndent(v any) ([]byte, error) {
	data, err := json.Marshal(v, jsontext.WithIndent("  "))
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
