package ffmpeg

import (
	"fmt"

	"m4vify/internal/plan"
	"m4vify/internal/track"
)

// Arguments renders a plan directive into the encoder argument list. The
// output is written to outputPath, which the caller points into its staging
// area before moving the finished file to its destination.
func Arguments(directive plan.Directive, logLevel, outputPath string) []string {
	args := []string{"-hide_banner", "-nostdin", "-loglevel", logLevel}

	for _, input := range directive.Inputs {
		args = append(args, "-i", input)
	}

	for _, m := range directive.Mappings {
		args = append(args, "-map", fmt.Sprintf("%d:%d", m.Input, m.Stream))
	}

	for _, c := range directive.Codecs {
		selector := kindSelector(c.Kind)
		args = append(args, fmt.Sprintf("-c:%s:%d", selector, c.Position), c.Codec)
		// Encoder options come as flag/value pairs and are qualified to the
		// track they belong to so they never leak onto sibling streams.
		for i := 0; i+1 < len(c.Options); i += 2 {
			args = append(args, fmt.Sprintf("%s:%s:%d", c.Options[i], selector, c.Position), c.Options[i+1])
		}
	}

	for _, m := range directive.Metadata {
		selector := fmt.Sprintf("-metadata:s:%s:%d", kindSelector(m.Kind), m.Position)
		args = append(args, selector, "language="+m.Language)
		if m.Title != "" {
			args = append(args, selector, "title="+m.Title)
		}
	}

	args = append(args, directive.CompatibilityFlags...)
	args = append(args, "-f", directive.Format)
	if directive.Overwrite {
		args = append(args, "-y")
	}
	return append(args, outputPath)
}

func kindSelector(kind track.Kind) string {
	switch kind {
	case track.KindVideo:
		return "v"
	case track.KindAudio:
		return "a"
	case track.KindSubtitle:
		return "s"
	default:
		return ""
	}
}
