package main

import (
	"fmt"

	"github.com/franz/midx/internal/util"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <path>",
	Short: "Register a music directory with the catalog",
	Long: `Register a directory as a music root. The path is canonicalized
(symlinks resolved, made absolute) before registration, and registering the
same directory twice is a no-op that returns the same id.

Registration does not index any files; run 'midx scan' afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	applyLogFlags()

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := db.InsertMusicDir(args[0])
	if err != nil {
		return fmt.Errorf("failed to register %s: %w", args[0], err)
	}

	util.SuccessLog("Registered music directory %s (id %d)", args[0], id)
	fmt.Println(id)
	return nil
}
