package plan

import (
	"errors"

	"m4vify/internal/track"
)

// ErrNothingToConvert signals that no track survived filtering and planning,
// so there is no output container to produce.
var ErrNothingToConvert = errors.New("nothing to convert")

// Encoder names for synthetic audio tracks.
const (
	aacEncoder = "aac"
	dtsEncoder = "dca"
)

// stereoAACOptions is the fixed parameter set for stereo downmix tracks:
// two channels, constant bitrate, lowpass cutoff below the AAC encoder's
// unstable high band. Flags are bare; the argument builder qualifies them
// with the track's output stream specifier.
var stereoAACOptions = []string{"-ac", "2", "-b", "160k", "-cutoff", "18000"}

// ConvertAudio applies the re-encoding policy to the discovered audio tracks
// and returns the resulting list. Video and subtitle tracks are not the
// planner's concern and pass through the pipeline unmodified.
//
// Policy per discovered track:
//   - surround formats keep the original and gain a stereo AAC downmix;
//   - convertible formats are replaced by a stereo AAC re-encode;
//   - lossless formats are replaced by a stereo AAC re-encode, plus a DTS
//     re-encode first when the source carried a 5.1 side-channel layout;
//   - everything else passes through.
//
// The input list is snapshotted before the policy pass so synthetic tracks
// are never themselves re-evaluated.
func ConvertAudio(audio []track.Track) []track.Track {
	snapshot := make([]track.Track, len(audio))
	copy(snapshot, audio)

	out := make([]track.Track, 0, len(snapshot)+2)
	for _, t := range snapshot {
		if t.Synthetic {
			out = append(out, t)
			continue
		}
		switch track.Classify(t.MediaFormat) {
		case track.ClassSurround:
			out = append(out, t, stereoAAC(t))
		case track.ClassConvertible:
			out = append(out, stereoAAC(t))
		case track.ClassLossless:
			if t.SurroundLayout {
				out = append(out, surroundDTS(t))
			}
			out = append(out, stereoAAC(t))
		default:
			out = append(out, t)
		}
	}
	return out
}

// stereoAAC derives a stereo AAC downmix track from source. The synthetic
// track references the source stream; encoding happens inline during the
// final remux, so no separate input file is needed.
func stereoAAC(source track.Track) track.Track {
	return track.Track{
		ContainerIndex: source.ContainerIndex,
		StreamIndex:    source.StreamIndex,
		Language:       source.Language,
		MediaFormat:    "aac",
		Kind:           track.KindAudio,
		OutputCodec:    aacEncoder,
		EncoderOptions: append([]string(nil), stereoAACOptions...),
		Synthetic:      true,
	}
}

// surroundDTS derives a DTS re-encode from a lossless surround source,
// preserving the 5.1 layout in a format the output container accepts.
func surroundDTS(source track.Track) track.Track {
	return track.Track{
		ContainerIndex: source.ContainerIndex,
		StreamIndex:    source.StreamIndex,
		Language:       source.Language,
		MediaFormat:    "dts",
		Kind:           track.KindAudio,
		OutputCodec:    dtsEncoder,
		Synthetic:      true,
	}
}
