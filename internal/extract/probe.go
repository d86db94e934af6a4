// Package extract pulls generated text and image URLs out of provider responses
// whose shape is not known in advance. Each lookup is an ordered fallback chain
// of probes; the first probe that matches wins. New response shapes are
// supported by adding a probe, never by editing an existing one.
package extract

import (
	"encoding/json"
	"fmt"
)

// Probe inspects a decoded JSON value and reports the string it found.
type Probe struct {
	Name  string
	Match func(v any) (string, bool)
}

// Chain is a priority-ordered list of probes.
type Chain []Probe

// First returns the result of the first matching probe.
func (c Chain) First(v any) (string, bool) {
	for _, probe := range c {
		if found, ok := probe.Match(v); ok {
			return found, true
		}
	}
	return "", false
}

// With returns a new chain with the given probes evaluated before c.
func (c Chain) With(first ...Probe) Chain {
	chain := make(Chain, 0, len(first)+len(c))
	chain = append(chain, first...)
	return append(chain, c...)
}

// StringAt builds a probe that matches a string located at path.
// Path elements are object keys (string) or array indices (int).
func StringAt(name string, path ...any) Probe {
	return Probe{
		Name: name,
		Match: func(v any) (string, bool) {
			found, ok := Lookup(v, path...)
			if !ok {
				return "", false
			}
			s, ok := found.(string)
			return s, ok
		},
	}
}

// Lookup walks v along path and returns the value found there.
func Lookup(v any, path ...any) (any, bool) {
	current := v
	for _, step := range path {
		switch key := step.(type) {
		case string:
			obj, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			next, exists := obj[key]
			if !exists || next == nil {
				return nil, false
			}
			current = next
		case int:
			arr, ok := current.([]any)
			if !ok || key < 0 || key >= len(arr) {
				return nil, false
			}
			current = arr[key]
		default:
			return nil, false
		}
	}
	return current, true
}

// Decode parses raw JSON into the generic representation used by the probes.
func Decode(raw []byte) (any, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return v, nil
}
