package store

// Schema v1 - the five catalog tables.
// Uniqueness is always on the natural key (canonical path, artist name,
// album name per artist); ids are surrogate AUTOINCREMENT keys.
const schemaV1 = `
-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_version (
  version INTEGER PRIMARY KEY,
  applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Registered scan roots
CREATE TABLE IF NOT EXISTS music_dirs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  path TEXT NOT NULL UNIQUE
);

-- Artists, deduplicated by name
CREATE TABLE IF NOT EXISTS artists (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE
);

-- Albums, unique per (name, artist); artist_id NULL for untagged artists
CREATE TABLE IF NOT EXISTS albums (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  artist_id INTEGER REFERENCES artists(id),
  CONSTRAINT unique_artist_album UNIQUE (name, artist_id)
);

-- One row per file on disk, identified by canonical path
CREATE TABLE IF NOT EXISTS tracks (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  file_path TEXT NOT NULL UNIQUE,
  dir_id INTEGER NOT NULL REFERENCES music_dirs(id)
);

CREATE INDEX IF NOT EXISTS idx_tracks_dir_id ON tracks(dir_id);

-- Optional 1:1 tag payload per track
CREATE TABLE IF NOT EXISTS track_metadata (
  track_id INTEGER PRIMARY KEY REFERENCES tracks(id),
  title TEXT NOT NULL,
  track_num INTEGER,
  artist_id INTEGER REFERENCES artists(id),
  album_id INTEGER REFERENCES albums(id)
);

CREATE INDEX IF NOT EXISTS idx_track_metadata_artist ON track_metadata(artist_id);
CREATE INDEX IF NOT EXISTS idx_track_metadata_album ON track_metadata(album_id);
`
