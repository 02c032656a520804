package store

import (
	"database/sql"
	"fmt"

	"github.com/franz/midx/internal/util"
)

// InsertTrack registers a file as a track under the given scan root and
// returns its id. The boolean reports whether a new row was created; a path
// already in the catalog returns its existing id with created=false.
// The parent root must be registered and the canonical path must point at
// an existing regular file; otherwise no row is written.
func (s *Store) InsertTrack(path string, dirID int64) (id int64, created bool, err error) {
	if !s.ValidMusicDirID(dirID) {
		return 0, false, fmt.Errorf("track %s: dir %d: %w", path, dirID, util.ErrInvalidID)
	}

	canonical, err := util.Canonicalize(path)
	if err != nil {
		return 0, false, err
	}
	if !util.IsRegularFile(canonical) {
		return 0, false, fmt.Errorf("%s: %w", canonical, util.ErrNotRegularFile)
	}

	if id, err := s.GetTrackID(canonical); err == nil {
		return id, false, nil
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO tracks (file_path, dir_id) VALUES (?, ?)", canonical, dirID); err != nil {
		return 0, false, fmt.Errorf("failed to insert track: %w", err)
	}

	id, err = s.GetTrackID(canonical)
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// GetTrackID looks a track up by its canonical file path
func (s *Store) GetTrackID(path string) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM tracks WHERE file_path = ?", path).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("track %s: %w", path, util.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up track: %w", err)
	}
	return id, nil
}

// GetTrackByID retrieves a track by id, or nil if it does not exist
func (s *Store) GetTrackByID(id int64) (*Track, error) {
	t := &Track{}
	err := s.db.QueryRow("SELECT id, file_path, dir_id FROM tracks WHERE id = ?", id).Scan(&t.ID, &t.Path, &t.DirID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get track: %w", err)
	}
	return t, nil
}

// GetAllTracks retrieves every track joined with its metadata row.
// Tracks indexed without metadata come back with Metadata == nil.
func (s *Store) GetAllTracks() ([]*TrackWithMetadata, error) {
	rows, err := s.db.Query(`
		SELECT t.id, t.file_path, t.dir_id, tm.title, tm.track_num, tm.artist_id, tm.album_id
		FROM tracks t
		LEFT JOIN track_metadata tm ON t.id = tm.track_id
		ORDER BY t.id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks: %w", err)
	}
	defer rows.Close()

	var tracks []*TrackWithMetadata
	for rows.Next() {
		t := &TrackWithMetadata{}
		var title sql.NullString
		var trackNum, artistID, albumID sql.NullInt64
		if err := rows.Scan(&t.ID, &t.Path, &t.DirID, &title, &trackNum, &artistID, &albumID); err != nil {
			return nil, fmt.Errorf("failed to scan track: %w", err)
		}
		if title.Valid {
			tm := &TrackMetadata{TrackID: t.ID, Title: title.String}
			if trackNum.Valid {
				n := int(trackNum.Int64)
				tm.TrackNum = &n
			}
			if artistID.Valid {
				tm.ArtistID = &artistID.Int64
			}
			if albumID.Valid {
				tm.AlbumID = &albumID.Int64
			}
			t.Metadata = tm
		}
		tracks = append(tracks, t)
	}
	return tracks, rows.Err()
}

// ValidTrackID reports whether a track with the given id exists
func (s *Store) ValidTrackID(id int64) bool {
	var exists int
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM tracks WHERE id = ?)", id).Scan(&exists); err != nil {
		return false
	}
	return exists == 1
}

// RemoveTrack deletes a track and its metadata row, metadata first to
// respect the foreign key. Removing an id that is not in the catalog is
// not an error.
func (s *Store) RemoveTrack(id int64) error {
	return s.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM track_metadata WHERE track_id = ?", id); err != nil {
			return fmt.Errorf("failed to delete track metadata: %w", err)
		}
		if _, err := tx.Exec("DELETE FROM tracks WHERE id = ?", id); err != nil {
			return fmt.Errorf("failed to delete track: %w", err)
		}
		return nil
	})
}
