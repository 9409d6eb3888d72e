package plan

import (
	"m4vify/internal/language"
	"m4vify/internal/track"
)

// ShowLanguage reports whether titles for the given kind group must name the
// track language. Audio and video groups only disambiguate when more than one
// language is present; subtitle titles always carry the language.
func ShowLanguage(kind track.Kind, group []track.Track) bool {
	if kind == track.KindSubtitle {
		return true
	}
	seen := make(map[string]struct{}, len(group))
	for _, t := range group {
		seen[t.Language] = struct{}{}
	}
	return len(seen) > 1
}

// Title computes the human-readable track title, e.g. "English Surround" or
// just "Surround" when the group is single-language. Formats without a
// category label yield an empty title.
func Title(t track.Track, showLanguage bool) string {
	label := track.CategoryLabel(t.MediaFormat)
	if label == "" {
		return ""
	}
	if !showLanguage {
		return label
	}
	return language.DisplayName(t.Language) + " " + label
}
