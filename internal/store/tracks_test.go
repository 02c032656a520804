package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/franz/midx/internal/util"
)

func TestInsertTrackPreconditions(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	dirID, err := s.InsertMusicDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(dir, "a.mp3")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Unknown parent directory id
	if _, _, err := s.InsertTrack(path, dirID+100); !errors.Is(err, util.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID for unknown dir, got %v", err)
	}

	// File missing from disk
	if _, _, err := s.InsertTrack(filepath.Join(dir, "missing.mp3"), dirID); err == nil {
		t.Error("expected error for missing file")
	}

	// Path that is a directory, not a regular file
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if _, _, err := s.InsertTrack(sub, dirID); !errors.Is(err, util.ErrNotRegularFile) {
		t.Errorf("expected ErrNotRegularFile, got %v", err)
	}

	tracks, err := s.GetAllTracks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 0 {
		t.Errorf("expected no rows after refused inserts, got %d", len(tracks))
	}
}

func TestInsertTrackIdempotent(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	dirID, err := s.InsertMusicDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "a.mp3")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	id1, created, err := s.InsertTrack(path, dirID)
	if err != nil {
		t.Fatal(err)
	}
	if !created {
		t.Error("expected first insert to create a row")
	}

	id2, created, err := s.InsertTrack(path, dirID)
	if err != nil {
		t.Fatal(err)
	}
	if created {
		t.Error("expected second insert to hit the existing row")
	}
	if id1 != id2 {
		t.Errorf("expected same id, got %d and %d", id1, id2)
	}
}

func TestRemoveTrack(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	dirID, err := s.InsertMusicDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	trackID := registerTrack(t, s, dir, dirID, "a.mp3", nil, nil)

	if err := s.RemoveTrack(trackID); err != nil {
		t.Fatalf("failed to remove track: %v", err)
	}

	if s.ValidTrackID(trackID) {
		t.Error("expected track row to be gone")
	}
	tm, err := s.GetTrackMetadata(trackID)
	if err != nil {
		t.Fatal(err)
	}
	if tm != nil {
		t.Error("expected metadata row to be gone")
	}

	// Removing an id that no longer exists is not an error
	if err := s.RemoveTrack(trackID); err != nil {
		t.Errorf("expected repeat removal to succeed, got %v", err)
	}
}

func TestTrackMetadataRoundTrip(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	dirID, err := s.InsertMusicDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "song.mp3")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	trackID, _, err := s.InsertTrack(path, dirID)
	if err != nil {
		t.Fatal(err)
	}

	artistID, err := s.InsertArtist("X")
	if err != nil {
		t.Fatal(err)
	}
	albumID, err := s.InsertAlbum("Y", &artistID)
	if err != nil {
		t.Fatal(err)
	}

	num := 3
	err = s.InsertTrackMetadata(&TrackMetadata{
		TrackID:  trackID,
		Title:    "Song",
		TrackNum: &num,
		ArtistID: &artistID,
		AlbumID:  &albumID,
	})
	if err != nil {
		t.Fatalf("failed to insert metadata: %v", err)
	}

	tm, err := s.GetTrackMetadata(trackID)
	if err != nil {
		t.Fatal(err)
	}
	if tm == nil {
		t.Fatal("expected metadata row")
	}
	if tm.Title != "Song" || tm.TrackNum == nil || *tm.TrackNum != 3 {
		t.Errorf("unexpected metadata: %+v", tm)
	}
	if tm.ArtistID == nil || *tm.ArtistID != artistID || tm.AlbumID == nil || *tm.AlbumID != albumID {
		t.Errorf("unexpected metadata references: %+v", tm)
	}
}

func TestInsertTrackMetadataRequiresTrack(t *testing.T) {
	s := newTestStore(t)

	err := s.InsertTrackMetadata(&TrackMetadata{TrackID: 7, Title: "ghost"})
	if !errors.Is(err, util.ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestGetAllTracksLeftJoin(t *testing.T) {
	s := newTestStore(t)
	dir := t.TempDir()

	dirID, err := s.InsertMusicDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	// One track with metadata, one without
	withMeta := registerTrack(t, s, dir, dirID, "a.mp3", nil, nil)

	bare := filepath.Join(dir, "b.mp3")
	if err := os.WriteFile(bare, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	bareID, _, err := s.InsertTrack(bare, dirID)
	if err != nil {
		t.Fatal(err)
	}

	tracks, err := s.GetAllTracks()
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(tracks))
	}

	byID := make(map[int64]*TrackWithMetadata)
	for _, track := range tracks {
		byID[track.ID] = track
	}
	if byID[withMeta].Metadata == nil {
		t.Error("expected metadata on first track")
	}
	if byID[bareID].Metadata != nil {
		t.Error("expected no metadata on bare track")
	}
}
