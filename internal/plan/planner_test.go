package plan

import (
	"testing"

	"m4vify/internal/track"
)

func audioTrack(stream int, lang, format string, surround bool) track.Track {
	return track.Track{
		ContainerIndex: 0,
		StreamIndex:    stream,
		Language:       lang,
		MediaFormat:    format,
		Kind:           track.KindAudio,
		OutputCodec:    track.DefaultOutputCodec(format),
		SurroundLayout: surround,
	}
}

func TestConvertAudioSurroundKeepsOriginalAndAppendsDownmix(t *testing.T) {
	in := []track.Track{audioTrack(1, "eng", "ac3", true)}
	out := ConvertAudio(in)

	if len(out) != 2 {
		t.Fatalf("expected original + downmix, got %v", out)
	}
	if out[0].MediaFormat != "ac3" || out[0].Synthetic || out[0].OutputCodec != "copy" {
		t.Fatalf("original surround track altered: %+v", out[0])
	}
	aac := out[1]
	if !aac.Synthetic || aac.MediaFormat != "aac" || aac.OutputCodec != "aac" {
		t.Fatalf("unexpected synthetic track: %+v", aac)
	}
	if aac.Language != "eng" || aac.ContainerIndex != 0 || aac.StreamIndex != 1 {
		t.Fatalf("synthetic track must reference the source stream: %+v", aac)
	}
	if len(aac.EncoderOptions) == 0 || aac.EncoderOptions[0] != "-ac" || aac.EncoderOptions[1] != "2" {
		t.Fatalf("stereo downmix must force 2 channels: %v", aac.EncoderOptions)
	}
}

func TestConvertAudioConvertibleReplacedByDownmix(t *testing.T) {
	in := []track.Track{audioTrack(1, "eng", "vorbis", false)}
	out := ConvertAudio(in)

	if len(out) != 1 {
		t.Fatalf("convertible original should be replaced, got %v", out)
	}
	if out[0].MediaFormat != "aac" || !out[0].Synthetic {
		t.Fatalf("expected synthetic aac replacement, got %+v", out[0])
	}
}

func TestConvertAudioLosslessSurroundEmitsDTSThenAAC(t *testing.T) {
	in := []track.Track{audioTrack(1, "eng", "flac", true)}
	out := ConvertAudio(in)

	if len(out) != 2 {
		t.Fatalf("expected dts + aac synthetics, got %v", out)
	}
	if out[0].MediaFormat != "dts" || out[0].OutputCodec != "dca" || !out[0].Synthetic {
		t.Fatalf("expected synthetic dts first, got %+v", out[0])
	}
	if out[1].MediaFormat != "aac" || !out[1].Synthetic {
		t.Fatalf("expected synthetic aac second, got %+v", out[1])
	}
	for _, syn := range out {
		if syn.Language != "eng" {
			t.Fatalf("synthetic track language must match source: %+v", syn)
		}
	}
}

func TestConvertAudioLosslessStereoEmitsOnlyAAC(t *testing.T) {
	in := []track.Track{audioTrack(1, "eng", "flac", false)}
	out := ConvertAudio(in)

	if len(out) != 1 || out[0].MediaFormat != "aac" {
		t.Fatalf("stereo lossless should yield a single aac synthetic, got %v", out)
	}
}

func TestConvertAudioLeavesStereoUntouched(t *testing.T) {
	in := []track.Track{audioTrack(1, "eng", "aac", false)}
	out := ConvertAudio(in)

	if len(out) != 1 || out[0].Synthetic || out[0].MediaFormat != "aac" {
		t.Fatalf("plain aac track should pass through, got %v", out)
	}
}

func TestConvertAudioIdempotentOnPlannedList(t *testing.T) {
	planned := []track.Track{
		{StreamIndex: 1, Language: "eng", MediaFormat: "aac", Kind: track.KindAudio, OutputCodec: "aac", Synthetic: true},
	}
	out := ConvertAudio(planned)
	if len(out) != len(planned) {
		t.Fatalf("replanning a planned list changed it: %v", out)
	}
	if out[0].MediaFormat != planned[0].MediaFormat || out[0].Synthetic != planned[0].Synthetic {
		t.Fatalf("replanning altered track: %+v", out[0])
	}
}

func TestConvertAudioDoesNotMutateInput(t *testing.T) {
	in := []track.Track{audioTrack(1, "eng", "ac3", true)}
	_ = ConvertAudio(in)
	if len(in) != 1 || in[0].MediaFormat != "ac3" {
		t.Fatalf("input list mutated: %v", in)
	}
}
