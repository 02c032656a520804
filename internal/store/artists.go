package store

import (
	"database/sql"
	"fmt"

	"github.com/franz/midx/internal/util"
)

// InsertArtist creates an artist row for the given name, or returns the id
// of the existing one. Artist names are unique catalog-wide.
func (s *Store) InsertArtist(name string) (int64, error) {
	if id, err := s.GetArtistID(name); err == nil {
		return id, nil
	}

	if _, err := s.db.Exec("INSERT OR IGNORE INTO artists (name) VALUES (?)", name); err != nil {
		return 0, fmt.Errorf("failed to insert artist: %w", err)
	}

	return s.GetArtistID(name)
}

// GetArtistID looks an artist up by name
func (s *Store) GetArtistID(name string) (int64, error) {
	var id int64
	err := s.db.QueryRow("SELECT id FROM artists WHERE name = ?", name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, fmt.Errorf("artist %q: %w", name, util.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to look up artist: %w", err)
	}
	return id, nil
}

// GetArtistByID retrieves an artist by id, or nil if it does not exist
func (s *Store) GetArtistByID(id int64) (*Artist, error) {
	a := &Artist{}
	err := s.db.QueryRow("SELECT id, name FROM artists WHERE id = ?", id).Scan(&a.ID, &a.Name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get artist: %w", err)
	}
	return a, nil
}

// GetAllArtists retrieves every artist in the catalog
func (s *Store) GetAllArtists() ([]*Artist, error) {
	rows, err := s.db.Query("SELECT id, name FROM artists ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query artists: %w", err)
	}
	defer rows.Close()

	var artists []*Artist
	for rows.Next() {
		a := &Artist{}
		if err := rows.Scan(&a.ID, &a.Name); err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, a)
	}
	return artists, rows.Err()
}

// ValidArtistID reports whether an artist with the given id exists
func (s *Store) ValidArtistID(id int64) bool {
	var exists int
	if err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM artists WHERE id = ?)", id).Scan(&exists); err != nil {
		return false
	}
	return exists == 1
}
