package store

import (
	"database/sql"
	"fmt"

	"github.com/franz/midx/internal/util"
)

// InsertAlbum creates an album row for (name, artist) or returns the id of
// the existing one. The same title may exist once per artist and once more
// with no artist at all. A non-nil artistID must already exist in the
// catalog; otherwise the insert is refused and no row is created.
func (s *Store) InsertAlbum(name string, artistID *int64) (int64, error) {
	if artistID != nil && !s.ValidArtistID(*artistID) {
		return 0, fmt.Errorf("album %q: artist %d: %w", name, *artistID, util.ErrInvalidID)
	}

	if id, err := s.GetAlbumID(name, artistID); err == nil {
		return id, nil
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO albums (name, artist_id) VALUES (?, ?)", name, artistID); err != nil {
		return 0, fmt.Errorf("failed to insert album: %w", err)
	}

	return s.GetAlbumID(name, artistID)
}

// GetAlbumID looks an album up by its (name, artist) natural key.
// IS rather than = so that a nil artist matches the NULL column.
func (s *Store) GetAlbumID(name string, artistID *int64) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM albums WHERE name = ? AND artist_id IS ?", name, artistID).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("album %q: %w", name, util.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up album: %w", err)
	}
	return id, nil
}

// GetAlbumByID retrieves an album by id, or nil if it does not exist
func (s *Store) GetAlbumByID(id int64) (*Album, error) {
	a := &Album{}
	var artistID sql.NullInt64
	err := s.db.QueryRow("SELECT id, name, artist_id FROM albums WHERE id = ?", id).Scan(&a.ID, &a.Name, &artistID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album: %w", err)
	}
	if artistID.Valid {
		a.ArtistID = &artistID.Int64
	}
	return a, nil
}

// GetAllAlbums retrieves every album in the catalog
func (s *Store) GetAllAlbums() ([]*Album, error) {
	rows, err := s.db.Query("SELECT id, name, artist_id FROM albums ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query albums: %w", err)
	}
	defer rows.Close()

	var albums []*Album
	for rows.Next() {
		a := &Album{}
		var artistID sql.NullInt64
		if err := rows.Scan(&a.ID, &a.Name, &artistID); err != nil {
			return nil, fmt.Errorf("failed to scan album: %w", err)
		}
		if artistID.Valid {
			a.ArtistID = &artistID.Int64
		}
		albums = append(albums, a)
	}
	return albums, rows.Err()
}

// ValidAlbumID reports whether an album with the given id exists
func (s *Store) ValidAlbumID(id int64) bool {
	var exists int
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM albums WHERE id = ?)", id).Scan(&exists); err != nil {
		return false
	}
	return exists == 1
}
