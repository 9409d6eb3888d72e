package inventory

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"m4vify/internal/language"
	"m4vify/internal/track"
)

// streamLine matches one stream entry in the prober's textual report:
//
//	Stream #0:1(eng): Audio: ac3 (5.1(side))
//
// The language and trailing codec detail are optional. Index fields are
// matched loosely so that a superficially valid line with garbage indexes
// surfaces as a ParseError instead of being silently skipped.
var streamLine = regexp.MustCompile(`Stream #(\w+):(\w+)(?:\((\w+)\))?:\s+(\w+):\s+(\w+)\s*(.*)`)

// surroundMarker is the channel-layout hint emitted for side-channel 5.1
// audio streams.
const surroundMarker = "5.1(side)"

// ParseError reports a stream line whose index fields were not numeric.
type ParseError struct {
	Line  string
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("inventory parse: %s index %q is not numeric in line %q", e.Field, e.Value, e.Line)
}

// Tracks holds the filtered track lists in discovery order.
type Tracks struct {
	Video     []track.Track
	Audio     []track.Track
	Subtitles []track.Track
}

// Empty reports whether no track survived parsing and filtering.
func (t Tracks) Empty() bool {
	return len(t.Video) == 0 && len(t.Audio) == 0 && len(t.Subtitles) == 0
}

// Parse scans a line-oriented inventory report and returns the tracks that
// pass the language and format policy. Tracks without a language tag take
// forced when it is non-empty and are dropped otherwise; tagged tracks must
// be in the allowed list. Formats outside the recognized vocabulary are
// dropped. Lines that do not look like stream entries are ignored.
func Parse(report string, allowed []string, forced string) (Tracks, error) {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, code := range language.NormalizeList(allowed) {
		allowedSet[code] = struct{}{}
	}
	forced = language.Normalize(forced)

	var out Tracks
	seen := make(map[[2]int]struct{})

	for _, line := range strings.Split(report, "\n") {
		line = strings.TrimSpace(line)
		match := streamLine.FindStringSubmatch(line)
		if match == nil {
			continue
		}

		kind, ok := track.KindFromInventory(match[4])
		if !ok {
			continue
		}

		containerIndex, err := parseIndex(line, "container", match[1])
		if err != nil {
			return Tracks{}, err
		}
		streamIndex, err := parseIndex(line, "stream", match[2])
		if err != nil {
			return Tracks{}, err
		}

		lang := language.Normalize(match[3])
		if lang == "" {
			if forced == "" {
				continue
			}
			lang = forced
		} else if _, ok := allowedSet[lang]; !ok {
			continue
		}

		format := match[5]
		if !track.KnownFormat(format) {
			continue
		}

		key := [2]int{containerIndex, streamIndex}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		t := track.Track{
			ContainerIndex: containerIndex,
			StreamIndex:    streamIndex,
			Language:       lang,
			MediaFormat:    format,
			Kind:           kind,
			OutputCodec:    track.DefaultOutputCodec(format),
		}
		if kind == track.KindAudio && strings.Contains(match[6], surroundMarker) {
			t.SurroundLayout = true
		}

		switch kind {
		case track.KindVideo:
			out.Video = append(out.Video, t)
		case track.KindAudio:
			out.Audio = append(out.Audio, t)
		case track.KindSubtitle:
			out.Subtitles = append(out.Subtitles, t)
		}
	}

	return out, nil
}

func parseIndex(line, field, value string) (int, error) {
	index, err := strconv.Atoi(value)
	if err != nil || index < 0 {
		return 0, &ParseError{Line: line, Field: field, Value: value}
	}
	return index, nil
}
