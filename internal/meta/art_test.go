package meta

import (
	"bytes"
	"testing"
)

func TestArtExtractorForDispatch(t *testing.T) {
	if _, ok := ArtExtractorFor("x.flac").(flacArt); !ok {
		t.Error("expected flac extractor for .flac")
	}
	if _, ok := ArtExtractorFor("x.mp3").(mp3Art); !ok {
		t.Error("expected mp3 extractor for .mp3")
	}
	if ArtExtractorFor("x.ogg") != nil {
		t.Error("expected no extractor for unsupported suffix")
	}
	if ArtExtractorFor("x.MP3") != nil {
		t.Error("suffix dispatch is case-sensitive")
	}
}

func TestMP3ArtExtract(t *testing.T) {
	cover := []byte{0xff, 0xd8, 0xff, 0xe0, 1, 2, 3, 4}
	path := writeTestFile(t, "a.mp3", id3v23(
		textFrame("TIT2", "Song"),
		apicFrame("image/jpeg", cover),
	))

	data, err := (mp3Art{}).Extract(path)
	if err != nil {
		t.Fatalf("art extraction failed: %v", err)
	}
	if !bytes.Equal(data, cover) {
		t.Errorf("expected cover payload %v, got %v", cover, data)
	}
}

func TestMP3ArtAbsent(t *testing.T) {
	path := writeTestFile(t, "a.mp3", id3v23(textFrame("TIT2", "Song")))

	data, err := (mp3Art{}).Extract(path)
	if err != nil {
		t.Fatalf("art extraction failed: %v", err)
	}
	if data != nil {
		t.Errorf("expected no art, got %d bytes", len(data))
	}
}

func TestFLACArtRejectsOtherContainers(t *testing.T) {
	// An ID3-tagged file handed to the flac extractor yields nothing
	path := writeTestFile(t, "a.flac", id3v23(
		textFrame("TIT2", "Song"),
		apicFrame("image/jpeg", []byte{1, 2, 3}),
	))

	data, err := (flacArt{}).Extract(path)
	if err != nil {
		t.Fatalf("art extraction failed: %v", err)
	}
	if data != nil {
		t.Error("expected no art from a non-FLAC container")
	}
}

func TestArtFromUnparsableFile(t *testing.T) {
	path := writeTestFile(t, "noise.mp3", []byte("static"))

	data, err := (mp3Art{}).Extract(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if data != nil {
		t.Error("expected no art")
	}
}
