package meta

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
)

// ArtExtractor pulls an embedded cover image out of one container family.
// A file without an embedded picture yields (nil, nil).
type ArtExtractor interface {
	Extract(path string) ([]byte, error)
}

// ArtExtractorFor selects the extractor for the container type of path,
// or nil when the path is not a recognized container.
func ArtExtractorFor(path string) ArtExtractor {
	switch {
	case strings.HasSuffix(path, ".flac"):
		return flacArt{}
	case strings.HasSuffix(path, ".mp3"):
		return mp3Art{}
	default:
		return nil
	}
}

// flacArt reads the front entry of a FLAC file's embedded picture list
type flacArt struct{}

func (flacArt) Extract(path string) ([]byte, error) {
	m, err := readTags(path)
	if err != nil || m == nil {
		return nil, err
	}
	if m.FileType() != tag.FLAC {
		return nil, nil
	}
	if pic := m.Picture(); pic != nil {
		return pic.Data, nil
	}
	return nil, nil
}

// mp3Art reads the payload of the first attached-picture frame of an MP3's
// ID3v2 tag container. Files carrying only an ID3v1 tag have no picture
// frames and yield nothing.
type mp3Art struct{}

func (mp3Art) Extract(path string) ([]byte, error) {
	m, err := readTags(path)
	if err != nil || m == nil {
		return nil, err
	}
	switch m.Format() {
	case tag.ID3v2_2, tag.ID3v2_3, tag.ID3v2_4:
	default:
		return nil, nil
	}
	if pic := m.Picture(); pic != nil {
		return pic.Data, nil
	}
	return nil, nil
}

func readTags(path string) (tag.Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// No tag container at all means no art, not a failure
		return nil, nil
	}
	return m, nil
}
