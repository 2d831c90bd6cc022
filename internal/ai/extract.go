package ai

import (
	"encoding/json"
	"strings"
	"unicode/utf8"
)

const snippetLimit = 200

// ExtractJSON pulls the JSON object embedded in a raw generation response
// and unmarshals it into v. Models routinely wrap payloads in markdown code
// fences and surrounding prose; fences are stripped first, then the
// outermost brace pair is taken as the candidate payload.
func ExtractJSON(raw string, v any) error {
	cleaned := stripFences(raw)

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return &MalformedResponseError{Reason: "no JSON object found", Snippet: snippet(cleaned)}
	}

	candidate := cleaned[start : end+1]
	if err := json.Unmarshal([]byte(candidate), v); err != nil {
		return &MalformedResponseError{Reason: err.Error(), Snippet: snippet(candidate)}
	}
	return nil
}

// stripFences removes triple-backtick code fence markers, with or without a
// language tag, leaving the fenced content in place.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

func snippet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) <= snippetLimit {
		return s
	}
	// Back off to a rune boundary so the cut never produces invalid UTF-8.
	cut := snippetLimit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
