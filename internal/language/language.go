package language

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Normalize lowercases and trims a language code. Returns "" for blank input.
func Normalize(code string) string {
	return strings.ToLower(strings.TrimSpace(code))
}

// NormalizeList deduplicates and normalizes a list of language codes,
// preserving order. The order of the result is significant: it becomes the
// language ranking used when sorting output tracks.
func NormalizeList(codes []string) []string {
	if len(codes) == 0 {
		return nil
	}
	normalized := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		trimmed := Normalize(code)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

// DisplayName returns the English display name for a language code ("eng" ->
// "English"). Codes that do not resolve to a known language come back
// unchanged so callers can still render something meaningful.
func DisplayName(code string) string {
	trimmed := Normalize(code)
	if trimmed == "" {
		return ""
	}
	tag, err := language.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	if name := display.English.Languages().Name(tag); name != "" {
		return name
	}
	return trimmed
}
