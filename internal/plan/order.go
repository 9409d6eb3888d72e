package plan

import (
	"fmt"
	"sort"

	"m4vify/internal/track"
)

// Order sorts tracks by (language rank, format rank), preserving the original
// relative order for exact rank ties. The language ranking is the run's
// preference list; every track's language and format must appear in their
// respective tables, since anything unknown should already have been filtered
// out upstream.
func Order(tracks []track.Track, languageRanking []string) ([]track.Track, error) {
	langRank := make(map[string]int, len(languageRanking))
	for i, code := range languageRanking {
		if _, ok := langRank[code]; !ok {
			langRank[code] = i
		}
	}

	type keyed struct {
		t      track.Track
		lang   int
		format int
	}
	keys := make([]keyed, 0, len(tracks))
	for _, t := range tracks {
		lang, ok := langRank[t.Language]
		if !ok {
			return nil, fmt.Errorf("order tracks: language %q of track %s not in ranking %v", t.Language, t, languageRanking)
		}
		format, ok := track.FormatRank(t.MediaFormat)
		if !ok {
			return nil, fmt.Errorf("order tracks: format %q of track %s not in rank table", t.MediaFormat, t)
		}
		keys = append(keys, keyed{t: t, lang: lang, format: format})
	}

	sort.SliceStable(keys, func(i, j int) bool {
		if keys[i].lang != keys[j].lang {
			return keys[i].lang < keys[j].lang
		}
		return keys[i].format < keys[j].format
	})

	ordered := make([]track.Track, len(keys))
	for i, k := range keys {
		ordered[i] = k.t
	}
	return ordered, nil
}
