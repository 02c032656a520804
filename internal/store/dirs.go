package store

import (
	"database/sql"
	"fmt"

	"github.com/franz/midx/internal/util"
)

// InsertMusicDir registers a scan root and returns its id. Idempotent: a
// path already registered (after canonicalization) returns the existing id
// without creating a second row. The path must exist and be a directory.
func (s *Store) InsertMusicDir(path string) (int64, error) {
	if !util.IsDir(path) {
		return 0, fmt.Errorf("%s: %w", path, util.ErrNotDirectory)
	}

	canonical, err := util.Canonicalize(path)
	if err != nil {
		return 0, err
	}

	if id, err := s.GetMusicDirID(canonical); err == nil {
		return id, nil
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO music_dirs (path) VALUES (?)", canonical); err != nil {
		return 0, fmt.Errorf("failed to insert music dir: %w", err)
	}

	return s.GetMusicDirID(canonical)
}

// GetMusicDirID looks a scan root up by its canonical path
func (s *Store) GetMusicDirID(path string) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM music_dirs WHERE path = ?", path).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("music dir %s: %w", path, util.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up music dir: %w", err)
	}
	return id, nil
}

// GetMusicDirByID retrieves a scan root by id, or nil if it does not exist
func (s *Store) GetMusicDirByID(id int64) (*MusicDir, error) {
	d := &MusicDir{}
	err := s.db.QueryRow("SELECT id, path FROM music_dirs WHERE id = ?", id).Scan(&d.ID, &d.Path)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get music dir: %w", err)
	}
	return d, nil
}

// GetAllMusicDirs retrieves every registered scan root
func (s *Store) GetAllMusicDirs() ([]*MusicDir, error) {
	rows, err := s.db.Query("SELECT id, path FROM music_dirs ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query music dirs: %w", err)
	}
	defer rows.Close()

	var dirs []*MusicDir
	for rows.Next() {
		d := &MusicDir{}
		if err := rows.Scan(&d.ID, &d.Path); err != nil {
			return nil, fmt.Errorf("failed to scan music dir: %w", err)
		}
		dirs = append(dirs, d)
	}
	return dirs, rows.Err()
}

// ValidMusicDirID reports whether a scan root with the given id exists
func (s *Store) ValidMusicDirID(id int64) bool {
	var exists int
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM music_dirs WHERE id = ?)", id).Scan(&exists); err != nil {
		return false
	}
	return exists == 1
}

// GetTrackIDsOfMusicDir returns the ids of every track rooted under the
// given scan root
func (s *Store) GetTrackIDsOfMusicDir(dirID int64) ([]int64, error) {
	rows, err := s.db.Query("SELECT id FROM tracks WHERE dir_id = ? ORDER BY id", dirID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tracks of music dir: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan track id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RemoveMusicDir unregisters a scan root and cascades to all tracks rooted
// under it: metadata rows first, then track rows, then the root itself, as
// a single transaction so a mid-cascade failure leaves no partial state.
// Artists and albums are never cascade-deleted; orphans stay in place.
func (s *Store) RemoveMusicDir(path string) error {
	if !util.IsDir(path) {
		return fmt.Errorf("%s: %w", path, util.ErrNotDirectory)
	}

	canonical, err := util.Canonicalize(path)
	if err != nil {
		return err
	}

	dirID, err := s.GetMusicDirID(canonical)
	if err != nil {
		return err
	}

	return s.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`
			DELETE FROM track_metadata
			WHERE track_id IN (SELECT id FROM tracks WHERE dir_id = ?)
		`, dirID); err != nil {
			return fmt.Errorf("failed to delete track metadata: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM tracks WHERE dir_id = ?", dirID); err != nil {
			return fmt.Errorf("failed to delete tracks: %w", err)
		}

		if _, err := tx.Exec("DELETE FROM music_dirs WHERE id = ?", dirID); err != nil {
			return fmt.Errorf("failed to delete music dir: %w", err)
		}

		return nil
	})
}
