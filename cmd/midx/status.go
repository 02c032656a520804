package main

import (
	"os"

	"github.com/dustin/go-humanize"
	"github.com/franz/midx/internal/store"
	"github.com/franz/midx/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog statistics and verify database integrity",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	stats, err := db.GetStats()
	if err != nil {
		return err
	}

	dbPath := viper.GetString("db")
	util.InfoLog("Catalog: %s", dbPath)
	if info, err := os.Stat(dbPath); err == nil {
		util.InfoLog("Size: %s", humanize.Bytes(uint64(info.Size())))
	}
	util.InfoLog("SQLite: %s", store.SQLiteVersion())
	util.InfoLog("Art cache: %s", viper.GetString("art-dir"))
	util.InfoLog("")
	util.InfoLog("Music directories: %d", stats.MusicDirs)
	util.InfoLog("Artists: %d", stats.Artists)
	util.InfoLog("Albums: %d", stats.Albums)
	util.InfoLog("Tracks: %d", stats.Tracks)
	util.InfoLog("Tracks with metadata: %d", stats.TrackMetadata)

	if err := db.CheckIntegrity(); err != nil {
		return err
	}
	util.SuccessLog("Integrity check passed")
	return nil
}
