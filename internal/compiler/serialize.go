package compiler

import (
	"bytes"
	"encoding/json"
)

// Encode serializes the document as canonical JSON: fixed key order (the
// struct field order), 2-space indentation, no HTML escaping, trailing
// newline. Identical documents always encode to identical bytes.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
