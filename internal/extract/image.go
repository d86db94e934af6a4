package extract

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // compiled once
var quotedURL = regexp.MustCompile(`"(https?://[^"\s]+)"`)

// ImageURLChain returns the structural probes for image URLs in priority order.
func ImageURLChain() Chain {
	return Chain{
		httpAt("choices[0].message.content", "choices", 0, "message", "content"),
		httpAt("choices[0].text", "choices", 0, "text"),
		httpAt("self"),
		httpAt("url", "url"),
		httpAt("image_url", "image_url"),
		httpAt("data[0].url", "data", 0, "url"),
		httpAt("result.url", "result", "url"),
		{Name: "array", Match: firstInArray},
	}
}

// ImageURL finds the first HTTP(S) URL in v. Structural probes are tried first,
// then a scan of the serialized value. It never fails; ok is false when no URL exists.
func ImageURL(v any) (string, bool) {
	if found, ok := ImageURLChain().First(v); ok {
		return found, true
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", false
	}
	return scan(buf.Bytes())
}

// ImageURLFromJSON runs the structural probes over raw and falls back to
// scanning raw itself, so the first URL is picked in document order.
// Undecodable input is scanned as text.
func ImageURLFromJSON(raw []byte) (string, bool) {
	if v, err := Decode(raw); err == nil {
		if found, ok := ImageURLChain().First(v); ok {
			return found, true
		}
	}
	return scan(raw)
}

// scan returns the first quoted HTTP(S) URL in raw. Escaped slashes are
// unescaped first.
func scan(raw []byte) (string, bool) {
	raw = bytes.ReplaceAll(raw, []byte(`\/`), []byte("/"))
	match := quotedURL.FindSubmatch(raw)
	if match == nil {
		return "", false
	}
	return strings.TrimSpace(string(match[1])), true
}

func httpAt(name string, path ...any) Probe {
	inner := StringAt(name, path...)
	return Probe{
		Name: name,
		Match: func(v any) (string, bool) {
			s, ok := inner.Match(v)
			if !ok {
				return "", false
			}
			return httpString(s)
		},
	}
}

func firstInArray(v any) (string, bool) {
	items, ok := v.([]any)
	if !ok {
		return "", false
	}
	for _, item := range items {
		if s, isString := item.(string); isString {
			if found, ok := httpString(s); ok {
				return found, true
			}
			continue
		}
		if found, ok := httpAt("url", "url").Match(item); ok {
			return found, true
		}
	}
	return "", false
}

func httpString(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "http") {
		return "", false
	}
	return trimmed, true
}
