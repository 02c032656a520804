package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/franz/midx/internal/scan"
	"github.com/franz/midx/internal/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path|dir-id]",
	Short: "Index audio files under a music directory",
	Long: `Walk a music directory and index every .flac and .mp3 file in it.
The directory may be given as a path or as the id of an already registered
root.

A path is registered first if it isn't already. For each new file a track
row is created, its embedded tags are read into the catalog, and any
embedded cover art is cached once per album. Files already cataloged are
skipped, so re-scanning is always safe.

With --all, every registered music directory is re-scanned instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("all", false, "re-scan every registered music directory")
}

func runScan(cmd *cobra.Command, args []string) error {
	applyLogFlags()
	ctx := context.Background()

	all, _ := cmd.Flags().GetBool("all")
	if !all && len(args) == 0 {
		return fmt.Errorf("either a directory path or --all is required")
	}

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	cache, err := openArtCache()
	if err != nil {
		return err
	}

	// Indeterminate progress bar on a terminal, plain logs otherwise
	var bar *progressbar.ProgressBar
	if util.IsTerminal(os.Stdout.Fd()) && !util.IsQuiet() {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Indexing"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("files"),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	scanner := scan.New(&scan.Config{
		Store: db,
		Art:   cache,
		Progress: func(path string) {
			if bar != nil {
				bar.Add(1)
			}
		},
	})

	start := time.Now()

	var result *scan.Result
	if all {
		result, err = scanner.Rebuild(ctx)
	} else {
		target := args[0]
		// A numeric argument names an already registered root by id
		if dirID, perr := strconv.ParseInt(target, 10, 64); perr == nil {
			dir, derr := db.GetMusicDirByID(dirID)
			if derr != nil {
				return derr
			}
			if dir == nil {
				return fmt.Errorf("dir %d: %w", dirID, util.ErrInvalidID)
			}
			target = dir.Path
		}
		result, err = scanner.ScanDir(ctx, target)
	}
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	util.SuccessLog("Scan complete in %v", time.Since(start).Round(time.Millisecond))
	util.InfoLog("  Files indexed: %s", humanize.Comma(int64(result.FilesIndexed)))
	util.InfoLog("  Already cataloged: %s", humanize.Comma(int64(result.FilesSkipped)))
	if len(result.Errors) > 0 {
		util.WarnLog("  Errors: %d", len(result.Errors))
	}
	return nil
}
