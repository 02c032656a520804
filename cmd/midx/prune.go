package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/franz/midx/internal/scan"
	"github.com/franz/midx/internal/util"
	"github.com/spf13/cobra"
)

var pruneCmd = &cobra.Command{
	Use:   "prune <dir-id>",
	Short: "Remove cataloged tracks whose files no longer exist",
	Long: `Walk the tracks cataloged under a music directory and remove those
whose files have disappeared from disk.

Scanning never prunes implicitly - deleted files accumulate in the catalog
until this command is run.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrune,
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}

func runPrune(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	dirID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid directory id %q", args[0])
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if !db.ValidMusicDirID(dirID) {
		return fmt.Errorf("dir %d: %w", dirID, util.ErrInvalidID)
	}

	scanner := scan.New(&scan.Config{Store: db})
	pruned, err := scanner.Reconcile(context.Background(), dirID)
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	util.SuccessLog("Pruned %d stale tracks from dir %d", pruned, dirID)
	return nil
}
