// Package meta reads embedded tags and cover art out of audio containers.
// It is strictly read-only with respect to the source files and returns
// names, never catalog ids; id allocation belongs to the store.
package meta

import (
	"fmt"
	"os"
	"strings"

	"github.com/dhowden/tag"
	"github.com/franz/midx/internal/util"
)

// SupportedExtensions are the recognized audio container suffixes.
// Matching is a case-sensitive suffix check.
var SupportedExtensions = []string{".flac", ".mp3"}

// IsSupportedPath reports whether the path has a recognized audio suffix
func IsSupportedPath(path string) bool {
	for _, ext := range SupportedExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Raw holds the tag fields of one file before name-to-id resolution.
// Title is always set; the zero values of the other fields mean absent.
type Raw struct {
	Title    string
	TrackNum *int
	Artist   string
	Album    string
}

// Extract reads the embedded tags of the file at path. A container that
// cannot be parsed yields (nil, nil): "no information available" is a valid
// outcome, not an error. When the container parses, Title falls back to the
// filename without extension, and a track-number tag of 0 is mapped to
// absent (the common tag-format sentinel for "not set" — a genuine track 0
// cannot be represented).
func Extract(path string) (*Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		util.DebugLog("No readable tags in %s: %v", path, err)
		return nil, nil
	}

	raw := &Raw{
		Title:  m.Title(),
		Artist: m.Artist(),
		Album:  m.Album(),
	}
	if raw.Title == "" {
		raw.Title = util.BareName(path)
	}
	if n, _ := m.Track(); n != 0 {
		raw.TrackNum = &n
	}
	return raw, nil
}
