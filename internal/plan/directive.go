package plan

import "m4vify/internal/track"

// StreamRef addresses one stream within the directive's input file list.
type StreamRef struct {
	Input  int
	Stream int
}

// CodecDirective pairs a per-kind positional output index with the codec and
// encoder options to apply to that track.
type CodecDirective struct {
	Kind     track.Kind
	Position int
	Codec    string
	Options  []string
}

// MetadataDirective pairs a per-kind positional output index with the
// language tag and title to stamp on that track.
type MetadataDirective struct {
	Kind     track.Kind
	Position int
	Language string
	Title    string
}

// Directive is the fully-resolved declarative description of one external
// encode invocation. Mapping, codec, and metadata entries share the same
// ordering: the video block, then audio, then subtitles.
type Directive struct {
	// Inputs lists input files, original source first, followed by one entry
	// per temp-file-backed synthetic track.
	Inputs []string

	Mappings []StreamRef
	Codecs   []CodecDirective
	Metadata []MetadataDirective

	// Container options.
	Format     string
	OutputName string
	Overwrite  bool

	// CompatibilityFlags holds global flags required by codec choices in the
	// plan, such as enabling the experimental DTS encoder.
	CompatibilityFlags []string

	// Tracks retains the final ordered track list for display and logging.
	Tracks []track.Track
}
