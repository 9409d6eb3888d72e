package track

import "fmt"

// Kind identifies the elementary stream category.
type Kind string

const (
	KindVideo    Kind = "video"
	KindAudio    Kind = "audio"
	KindSubtitle Kind = "subtitle"
)

// KindFromInventory maps the capitalized kind word used in prober reports
// ("Video", "Audio", "Subtitle") to a Kind. The boolean is false for any
// other word.
func KindFromInventory(word string) (Kind, bool) {
	switch word {
	case "Video":
		return KindVideo, true
	case "Audio":
		return KindAudio, true
	case "Subtitle":
		return KindSubtitle, true
	default:
		return "", false
	}
}

// Class groups media formats by the conversion policy that applies to them.
type Class int

const (
	ClassUnknown Class = iota
	ClassVideo
	ClassStereo
	ClassSurround
	ClassLossless
	ClassConvertible
	ClassSubtitle
)

// formats is the closed vocabulary of recognized media formats. Slice order
// doubles as the global format rank used when sorting output tracks.
var formats = []string{"h264", "aac", "ac3", "dts", "flac", "vorbis", "subrip", "mov_text"}

var formatClasses = map[string]Class{
	"h264":     ClassVideo,
	"aac":      ClassStereo,
	"ac3":      ClassSurround,
	"dts":      ClassSurround,
	"flac":     ClassLossless,
	"vorbis":   ClassConvertible,
	"subrip":   ClassSubtitle,
	"mov_text": ClassSubtitle,
}

var formatRank = func() map[string]int {
	ranks := make(map[string]int, len(formats))
	for i, format := range formats {
		ranks[format] = i
	}
	return ranks
}()

// Classify returns the policy class for a media format, or ClassUnknown when
// the format is outside the recognized vocabulary.
func Classify(format string) Class {
	return formatClasses[format]
}

// KnownFormat reports whether the format belongs to the closed vocabulary.
func KnownFormat(format string) bool {
	_, ok := formatClasses[format]
	return ok
}

// FormatRank returns the position of the format in the global rank table.
func FormatRank(format string) (int, bool) {
	rank, ok := formatRank[format]
	return rank, ok
}

// CategoryLabel returns the human-readable category used in track titles.
// Unrecognized formats yield an empty label.
func CategoryLabel(format string) string {
	switch Classify(format) {
	case ClassVideo:
		return "Video"
	case ClassStereo:
		return "Stereo"
	case ClassSurround:
		return "Surround"
	case ClassLossless:
		return "Lossless"
	case ClassSubtitle:
		return "Subtitles"
	default:
		return ""
	}
}

// Track describes one elementary stream discovered in an input container or
// synthesized by the conversion planner. Fields are treated as read-only
// after construction except ContainerIndex, which the plan assembler rewrites
// when renumbering temp-file-backed inputs.
type Track struct {
	ContainerIndex int
	StreamIndex    int
	Language       string
	MediaFormat    string
	Kind           Kind

	// SourcePath is set only on synthetic tracks materialized as their own
	// temporary input file. Inline-encoded synthetics leave it empty and
	// reference the original container.
	SourcePath string

	// OutputCodec is "copy" for passthrough or the encoder to invoke.
	OutputCodec    string
	EncoderOptions []string

	SurroundLayout bool
	Synthetic      bool
}

// DefaultOutputCodec returns the codec directive a discovered track of the
// given format carries into the output container. Everything copies except
// subrip subtitles, which the MP4 family cannot hold and which transcode to
// mov_text.
func DefaultOutputCodec(format string) string {
	if format == "subrip" {
		return "mov_text"
	}
	return "copy"
}

// Map renders the stream selector in <container>:<stream> form.
func (t Track) Map() string {
	return fmt.Sprintf("%d:%d", t.ContainerIndex, t.StreamIndex)
}

// String identifies the track in logs.
func (t Track) String() string {
	return fmt.Sprintf("%d:%d:%s:%s", t.ContainerIndex, t.StreamIndex, t.Language, t.MediaFormat)
}
