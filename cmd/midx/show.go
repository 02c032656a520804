package main

import (
	"fmt"
	"strconv"

	"github.com/franz/midx/internal/util"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <dir|artist|album|track> <id>",
	Short: "Show one catalog entity by id",
	Long: `Look a single catalog entity up by its id.

  midx show dir 1       the directory path and its track ids
  midx show artist 3    the artist name
  midx show album 2     the album title and its artist
  midx show track 17    the track path and its metadata`,
	Args: cobra.ExactArgs(2),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	id, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %q", args[1])
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	switch args[0] {
	case "dir":
		dir, err := db.GetMusicDirByID(id)
		if err != nil {
			return err
		}
		if dir == nil {
			return fmt.Errorf("dir %d: %w", id, util.ErrNotFound)
		}
		fmt.Printf("dir %d: %s\n", dir.ID, dir.Path)
		ids, err := db.GetTrackIDsOfMusicDir(id)
		if err != nil {
			return err
		}
		fmt.Printf("tracks (%d): %v\n", len(ids), ids)

	case "artist":
		artist, err := db.GetArtistByID(id)
		if err != nil {
			return err
		}
		if artist == nil {
			return fmt.Errorf("artist %d: %w", id, util.ErrNotFound)
		}
		fmt.Printf("artist %d: %s\n", artist.ID, artist.Name)

	case "album":
		album, err := db.GetAlbumByID(id)
		if err != nil {
			return err
		}
		if album == nil {
			return fmt.Errorf("album %d: %w", id, util.ErrNotFound)
		}
		fmt.Printf("album %d: %s\n", album.ID, album.Name)
		if album.ArtistID != nil {
			if artist, err := db.GetArtistByID(*album.ArtistID); err == nil && artist != nil {
				fmt.Printf("artist: %s\n", artist.Name)
			}
		}

	case "track":
		track, err := db.GetTrackByID(id)
		if err != nil {
			return err
		}
		if track == nil {
			return fmt.Errorf("track %d: %w", id, util.ErrNotFound)
		}
		fmt.Printf("track %d: %s (dir %d)\n", track.ID, track.Path, track.DirID)
		tm, err := db.GetTrackMetadata(id)
		if err != nil {
			return err
		}
		if tm == nil {
			fmt.Println("no metadata")
			return nil
		}
		fmt.Printf("title: %s\n", tm.Title)
		if tm.TrackNum != nil {
			fmt.Printf("track number: %d\n", *tm.TrackNum)
		}

	default:
		return fmt.Errorf("unknown entity %q (want dir, artist, album, or track)", args[0])
	}
	return nil
}
