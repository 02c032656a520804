package main

import (
	"fmt"

	"github.com/franz/midx/internal/util"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [path]",
	Short: "Remove a music directory or a single track from the catalog",
	Long: `Remove a registered music directory and every track cataloged under
it, or, with --track, a single track by id.

Removing a directory deletes its track and metadata rows in one transaction.
Artists and albums are never removed; they may become orphaned and are left
in place. This only touches the catalog, never the files on disk.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().Int64("track", 0, "remove a single track by id instead of a directory")
}

func runRemove(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	trackID, _ := cmd.Flags().GetInt64("track")
	if trackID == 0 && len(args) == 0 {
		return fmt.Errorf("either a directory path or --track <id> is required")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if trackID != 0 {
		if !db.ValidTrackID(trackID) {
			return fmt.Errorf("track %d: %w", trackID, util.ErrInvalidID)
		}
		if err := db.RemoveTrack(trackID); err != nil {
			return fmt.Errorf("failed to remove track %d: %w", trackID, err)
		}
		util.SuccessLog("Removed track %d", trackID)
		return nil
	}

	if err := db.RemoveMusicDir(args[0]); err != nil {
		return fmt.Errorf("failed to remove %s: %w", args[0], err)
	}
	util.SuccessLog("Removed music directory %s", args[0])
	return nil
}
