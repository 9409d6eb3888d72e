package plan

import (
	"path/filepath"
	"strings"

	"m4vify/internal/track"
)

// OutputSuffix is appended to the source basename to form the destination
// filename.
const OutputSuffix = ".transcoded.m4v"

// containerFormat is the output format tag handed to the encoder.
const containerFormat = "mp4"

// Assemble merges the ordered track lists into the directive describing one
// encode invocation against sourcePath. The lists must already be in their
// final order.
//
// Tracks backed by their own temporary file are promoted to additional
// inputs; a single counter, shared across the video, audio, and subtitle
// blocks in that order, assigns their container indexes.
func Assemble(video, audio, subtitles []track.Track, sourcePath string) Directive {
	directive := Directive{
		Inputs:     []string{sourcePath},
		Format:     containerFormat,
		OutputName: outputName(sourcePath),
		Overwrite:  true,
	}

	nextInput := 1
	groups := []struct {
		kind   track.Kind
		tracks []track.Track
	}{
		{track.KindVideo, video},
		{track.KindAudio, audio},
		{track.KindSubtitle, subtitles},
	}

	for g := range groups {
		for i := range groups[g].tracks {
			t := &groups[g].tracks[i]
			if t.SourcePath == "" {
				continue
			}
			t.ContainerIndex = nextInput
			directive.Inputs = append(directive.Inputs, t.SourcePath)
			nextInput++
		}
	}

	dtsPresent := false
	for _, group := range groups {
		show := ShowLanguage(group.kind, group.tracks)
		for position, t := range group.tracks {
			directive.Mappings = append(directive.Mappings, StreamRef{Input: t.ContainerIndex, Stream: t.StreamIndex})
			directive.Codecs = append(directive.Codecs, CodecDirective{
				Kind:     group.kind,
				Position: position,
				Codec:    t.OutputCodec,
				Options:  t.EncoderOptions,
			})
			directive.Metadata = append(directive.Metadata, MetadataDirective{
				Kind:     group.kind,
				Position: position,
				Language: t.Language,
				Title:    Title(t, show),
			})
			directive.Tracks = append(directive.Tracks, t)
			if t.OutputCodec == dtsEncoder {
				dtsPresent = true
			}
		}
	}

	if dtsPresent {
		// The DTS encoder is gated behind ffmpeg's experimental strictness level.
		directive.CompatibilityFlags = []string{"-strict", "-2"}
	}

	return directive
}

// Build runs the conversion policy, ordering, and assembly for one source
// file. languageRanking must contain every language surviving the parse,
// including any forced override. Returns ErrNothingToConvert when no track
// remains.
func Build(video, audio, subtitles []track.Track, languageRanking []string, sourcePath string) (Directive, error) {
	audio = ConvertAudio(audio)

	if len(video) == 0 && len(audio) == 0 && len(subtitles) == 0 {
		return Directive{}, ErrNothingToConvert
	}

	var err error
	if video, err = Order(video, languageRanking); err != nil {
		return Directive{}, err
	}
	if audio, err = Order(audio, languageRanking); err != nil {
		return Directive{}, err
	}
	if subtitles, err = Order(subtitles, languageRanking); err != nil {
		return Directive{}, err
	}

	return Assemble(video, audio, subtitles, sourcePath), nil
}

func outputName(sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + OutputSuffix
}
