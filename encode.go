package demofolio

import (
	"encoding/json"
	"fmt"
	"io"
)

// This file persists a bundle as one pretty-printed JSON object. The record is
// meant to be human-readable: a user poking at the store directory should be
// able to see exactly which institutions and accounts were synthesized.

// EncodeBundle writes the bundle as indented JSON.
func EncodeBundle(w io.Writer, b *Bundle) error {
	data, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bundle for %q: %w", b.UserKey, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write bundle: %w", err)
	}
	return nil
}

// DecodeBundle reads a bundle previously written by EncodeBundle.
func DecodeBundle(r io.Reader) (*Bundle, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading bundle: %w", err)
	}
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("format error in bundle record: %w", err)
	}
	return &b, nil
}
