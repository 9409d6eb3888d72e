package plan

import (
	"testing"

	"m4vify/internal/track"
)

func TestOrderByLanguageThenFormat(t *testing.T) {
	tracks := []track.Track{
		{StreamIndex: 0, Language: "rus", MediaFormat: "aac", Kind: track.KindAudio},
		{StreamIndex: 1, Language: "eng", MediaFormat: "ac3", Kind: track.KindAudio},
		{StreamIndex: 2, Language: "eng", MediaFormat: "aac", Kind: track.KindAudio},
	}
	ordered, err := Order(tracks, []string{"eng", "rus"})
	if err != nil {
		t.Fatalf("Order: %v", err)
	}

	want := []int{2, 1, 0}
	for i, stream := range want {
		if ordered[i].StreamIndex != stream {
			t.Fatalf("position %d: got stream %d, want %d (%v)", i, ordered[i].StreamIndex, stream, ordered)
		}
	}
}

func TestOrderIsStableForRankTies(t *testing.T) {
	tracks := []track.Track{
		{StreamIndex: 1, Language: "eng", MediaFormat: "aac", Kind: track.KindAudio},
		{StreamIndex: 2, Language: "eng", MediaFormat: "aac", Kind: track.KindAudio},
		{StreamIndex: 3, Language: "eng", MediaFormat: "aac", Kind: track.KindAudio},
	}
	ordered, err := Order(tracks, []string{"eng"})
	if err != nil {
		t.Fatalf("Order: %v", err)
	}
	for i, tr := range ordered {
		if tr.StreamIndex != i+1 {
			t.Fatalf("stable ordering violated: %v", ordered)
		}
	}
}

func TestOrderRejectsUnknownLanguage(t *testing.T) {
	tracks := []track.Track{{Language: "fra", MediaFormat: "aac", Kind: track.KindAudio}}
	if _, err := Order(tracks, []string{"eng"}); err == nil {
		t.Fatal("expected error for language missing from ranking")
	}
}

func TestOrderRejectsUnknownFormat(t *testing.T) {
	tracks := []track.Track{{Language: "eng", MediaFormat: "opus", Kind: track.KindAudio}}
	if _, err := Order(tracks, []string{"eng"}); err == nil {
		t.Fatal("expected error for format missing from rank table")
	}
}
