// Package scan walks registered music directories and drives the catalog
// store to index every supported audio file it finds.
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/franz/midx/internal/art"
	"github.com/franz/midx/internal/meta"
	"github.com/franz/midx/internal/store"
	"github.com/franz/midx/internal/util"
)

// Scanner indexes audio files into the catalog. It runs strictly
// sequentially; the store's access contract allows a single caller.
type Scanner struct {
	store    *store.Store
	art      *art.Cache
	progress func(path string)
}

// Config holds scanner configuration
type Config struct {
	Store *store.Store
	Art   *art.Cache

	// Progress, when set, is invoked once per visited audio file
	Progress func(path string)
}

// New creates a new Scanner
func New(cfg *Config) *Scanner {
	return &Scanner{
		store:    cfg.Store,
		art:      cfg.Art,
		progress: cfg.Progress,
	}
}

// Result reports what one scan pass did
type Result struct {
	DirID        int64
	FilesIndexed int
	FilesSkipped int
	Errors       []error
}

// ScanDir registers path as a music directory (idempotent) and indexes
// every supported audio file under it. A path that is missing or not a
// directory aborts the call with nothing registered. A single file that
// fails to yield metadata does not abort the scan; its track row is still
// created, just without a metadata row.
func (s *Scanner) ScanDir(ctx context.Context, path string) (*Result, error) {
	if !util.IsDir(path) {
		return nil, fmt.Errorf("%s: %w", path, util.ErrNotDirectory)
	}
	canonical, err := util.Canonicalize(path)
	if err != nil {
		return nil, err
	}

	dirID, err := s.store.InsertMusicDir(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to register music dir: %w", err)
	}

	util.InfoLog("Scanning %s (dir %d)", canonical, dirID)
	result := &Result{DirID: dirID}

	walkErr := filepath.WalkDir(canonical, func(p string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			util.WarnLog("Error accessing %s: %v", p, err)
			result.Errors = append(result.Errors, fmt.Errorf("access error: %s: %w", p, err))
			return nil
		}
		if d.IsDir() || !d.Type().IsRegular() || !meta.IsSupportedPath(p) {
			return nil
		}

		if s.progress != nil {
			s.progress(p)
		}
		s.indexFile(p, dirID, result)
		return nil
	})
	if walkErr != nil {
		return result, fmt.Errorf("walk error: %w", walkErr)
	}

	util.SuccessLog("Scan of %s complete: %d indexed, %d already cataloged, %d errors",
		canonical, result.FilesIndexed, result.FilesSkipped, len(result.Errors))
	return result, nil
}

// indexFile registers one audio file and, for new tracks, its tag metadata
// and cover art
func (s *Scanner) indexFile(path string, dirID int64, result *Result) {
	trackID, created, err := s.store.InsertTrack(path, dirID)
	if err != nil {
		util.WarnLog("Skipping %s: %v", path, err)
		result.Errors = append(result.Errors, err)
		return
	}
	if !created {
		result.FilesSkipped++
		return
	}
	result.FilesIndexed++

	raw, err := meta.Extract(path)
	if err != nil {
		util.WarnLog("Failed to read %s: %v", path, err)
		result.Errors = append(result.Errors, err)
		return
	}
	if raw == nil {
		util.DebugLog("No metadata in %s, indexed bare", path)
		return
	}

	tm := &store.TrackMetadata{
		TrackID:  trackID,
		Title:    raw.Title,
		TrackNum: raw.TrackNum,
	}

	if raw.Artist != "" {
		artistID, err := s.store.InsertArtist(raw.Artist)
		if err != nil {
			util.WarnLog("Failed to register artist %q: %v", raw.Artist, err)
			result.Errors = append(result.Errors, err)
		} else {
			tm.ArtistID = &artistID
		}
	}

	if raw.Album != "" {
		albumID, err := s.store.InsertAlbum(raw.Album, tm.ArtistID)
		if err != nil {
			util.WarnLog("Failed to register album %q: %v", raw.Album, err)
			result.Errors = append(result.Errors, err)
		} else {
			tm.AlbumID = &albumID
		}
	}

	if err := s.store.InsertTrackMetadata(tm); err != nil {
		util.WarnLog("Failed to store metadata for %s: %v", path, err)
		result.Errors = append(result.Errors, err)
		return
	}

	if tm.AlbumID != nil {
		s.cacheArt(path, *tm.AlbumID)
	}
}

// cacheArt extracts the file's embedded cover and hands it to the art
// cache. Extraction is skipped entirely when the album's art already
// exists on disk.
func (s *Scanner) cacheArt(path string, albumID int64) {
	if s.art == nil || s.art.Has(albumID) {
		return
	}
	extractor := meta.ArtExtractorFor(path)
	if extractor == nil {
		return
	}
	pic, err := extractor.Extract(path)
	if err != nil || len(pic) == 0 {
		return
	}
	if written, err := s.art.Put(albumID, pic); err != nil {
		util.WarnLog("Failed to cache art for album %d: %v", albumID, err)
	} else if written {
		util.DebugLog("Cached cover art for album %d from %s", albumID, path)
	}
}

// Rebuild re-runs ScanDir over every registered music directory. New files
// get indexed; files already cataloged are no-ops. Nothing is ever removed
// here, even for files gone from disk; that is Reconcile's job.
func (s *Scanner) Rebuild(ctx context.Context) (*Result, error) {
	dirs, err := s.store.GetAllMusicDirs()
	if err != nil {
		return nil, fmt.Errorf("failed to list music dirs: %w", err)
	}

	total := &Result{}
	for _, dir := range dirs {
		select {
		case <-ctx.Done():
			return total, ctx.Err()
		default:
		}

		res, err := s.ScanDir(ctx, dir.Path)
		if err != nil {
			// A single unreadable root aborts that root only
			util.WarnLog("Skipping %s: %v", dir.Path, err)
			total.Errors = append(total.Errors, err)
			continue
		}
		total.FilesIndexed += res.FilesIndexed
		total.FilesSkipped += res.FilesSkipped
		total.Errors = append(total.Errors, res.Errors...)
	}
	return total, nil
}

// Reconcile removes tracks under the given music directory whose files no
// longer exist on disk, and returns how many were pruned. Scans never do
// this implicitly; pruning is always an explicit request.
func (s *Scanner) Reconcile(ctx context.Context, dirID int64) (int, error) {
	if !s.store.ValidMusicDirID(dirID) {
		return 0, fmt.Errorf("dir %d: %w", dirID, util.ErrInvalidID)
	}

	ids, err := s.store.GetTrackIDsOfMusicDir(dirID)
	if err != nil {
		return 0, err
	}

	pruned := 0
	for _, id := range ids {
		select {
		case <-ctx.Done():
			return pruned, ctx.Err()
		default:
		}

		track, err := s.store.GetTrackByID(id)
		if err != nil {
			return pruned, err
		}
		if track == nil || util.IsRegularFile(track.Path) {
			continue
		}
		if err := s.store.RemoveTrack(id); err != nil {
			return pruned, err
		}
		util.DebugLog("Pruned stale track %d (%s)", id, track.Path)
		pruned++
	}
	return pruned, nil
}
