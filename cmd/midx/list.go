package main

import (
	"fmt"

	"github.com/franz/midx/internal/store"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List cataloged directories, artists, albums, or tracks",
}

var listDirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "List registered music directories",
	RunE:  runListDirs,
}

var listArtistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "List cataloged artists",
	RunE:  runListArtists,
}

var listAlbumsCmd = &cobra.Command{
	Use:   "albums",
	Short: "List cataloged albums",
	RunE:  runListAlbums,
}

var listTracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List cataloged tracks with their metadata",
	RunE:  runListTracks,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.AddCommand(listDirsCmd, listArtistsCmd, listAlbumsCmd, listTracksCmd)
}

func runListDirs(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	dirs, err := db.GetAllMusicDirs()
	if err != nil {
		return err
	}
	for _, d := range dirs {
		fmt.Printf("%4d  %s\n", d.ID, d.Path)
	}
	return nil
}

func runListArtists(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	artists, err := db.GetAllArtists()
	if err != nil {
		return err
	}
	for _, a := range artists {
		fmt.Printf("%4d  %s\n", a.ID, a.Name)
	}
	return nil
}

func runListAlbums(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	albums, err := db.GetAllAlbums()
	if err != nil {
		return err
	}
	artistNames, err := artistNameIndex(db)
	if err != nil {
		return err
	}
	for _, a := range albums {
		artist := "-"
		if a.ArtistID != nil {
			artist = artistNames[*a.ArtistID]
		}
		fmt.Printf("%4d  %-40s  %s\n", a.ID, a.Name, artist)
	}
	return nil
}

func runListTracks(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tracks, err := db.GetAllTracks()
	if err != nil {
		return err
	}
	artistNames, err := artistNameIndex(db)
	if err != nil {
		return err
	}
	albumNames, err := albumNameIndex(db)
	if err != nil {
		return err
	}

	for _, t := range tracks {
		if t.Metadata == nil {
			fmt.Printf("%4d  %s\n", t.ID, t.Path)
			continue
		}
		tm := t.Metadata
		num, artist, album := "--", "-", "-"
		if tm.TrackNum != nil {
			num = fmt.Sprintf("%02d", *tm.TrackNum)
		}
		if tm.ArtistID != nil {
			artist = artistNames[*tm.ArtistID]
		}
		if tm.AlbumID != nil {
			album = albumNames[*tm.AlbumID]
		}
		fmt.Printf("%4d  %s  %-40s  %-25s  %s\n", t.ID, num, tm.Title, artist, album)
	}
	return nil
}

func artistNameIndex(db *store.Store) (map[int64]string, error) {
	artists, err := db.GetAllArtists()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(artists))
	for _, a := range artists {
		names[a.ID] = a.Name
	}
	return names, nil
}

func albumNameIndex(db *store.Store) (map[int64]string, error) {
	albums, err := db.GetAllAlbums()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(albums))
	for _, a := range albums {
		names[a.ID] = a.Name
	}
	return names, nil
}
