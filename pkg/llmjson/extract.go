// Package llmjson recovers structured objects from free-form model replies.
package llmjson

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Span returns the greedy candidate from the first '{' to the last '}'.
// Replies carrying two objects yield one span covering both (and whatever
// sits between them); decoding such a span usually fails.
func Span(text string) (string, bool) {
	i := strings.Index(text, "{")
	if i < 0 {
		return "", false
	}
	j := strings.LastIndex(text, "}")
	if j <= i {
		return "", false
	}
	return text[i : j+1], true
}

// ExtractObject decodes the greedy brace span of text. It reports false when
// no span exists or the span is not a JSON object.
func ExtractObject(text string) (map[string]any, bool) {
	span, ok := Span(text)
	if !ok {
		return nil, false
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(span), &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}

// Bool reads a boolean field. Models sometimes quote booleans, so "true" and
// "false" strings are accepted too.
func Bool(obj map[string]any, key string) (bool, bool) {
	switch v := obj[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return false, false
		}
		return b, true
	default:
		return false, false
	}
}

// String reads a string field; missing or non-string values yield "".
func String(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}
