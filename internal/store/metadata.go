package store

import (
	"database/sql"
	"fmt"

	"github.com/franz/midx/internal/util"
)

// InsertTrackMetadata upserts the 1:1 metadata row of a track. The track
// and any referenced artist or album must already exist.
func (s *Store) InsertTrackMetadata(tm *TrackMetadata) error {
	if !s.ValidTrackID(tm.TrackID) {
		return fmt.Errorf("metadata for track %d: %w", tm.TrackID, util.ErrInvalidID)
	}
	if tm.ArtistID != nil && !s.ValidArtistID(*tm.ArtistID) {
		return fmt.Errorf("metadata for track %d: artist %d: %w", tm.TrackID, *tm.ArtistID, util.ErrInvalidID)
	}
	if tm.AlbumID != nil && !s.ValidAlbumID(*tm.AlbumID) {
		return fmt.Errorf("metadata for track %d: album %d: %w", tm.TrackID, *tm.AlbumID, util.ErrInvalidID)
	}

	_, err := s.db.Exec(`
		INSERT OR REPLACE INTO track_metadata (track_id, title, track_num, artist_id, album_id)
		VALUES (?, ?, ?, ?, ?)
	`, tm.TrackID, tm.Title, tm.TrackNum, tm.ArtistID, tm.AlbumID)
	if err != nil {
		return fmt.Errorf("failed to insert track metadata: %w", err)
	}
	return nil
}

// GetTrackMetadata retrieves the metadata row of a track, or nil if the
// track was indexed without one
func (s *Store) GetTrackMetadata(trackID int64) (*TrackMetadata, error) {
	tm := &TrackMetadata{}
	var trackNum, artistID, albumID sql.NullInt64
	err := s.db.QueryRow(`
		SELECT track_id, title, track_num, artist_id, album_id
		FROM track_metadata WHERE track_id = ?
	`, trackID).Scan(&tm.TrackID, &tm.Title, &trackNum, &artistID, &albumID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get track metadata: %w", err)
	}
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
	return tm, nil
}
