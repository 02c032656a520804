package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/franz/midx/internal/art"
	"github.com/franz/midx/internal/store"
	"github.com/franz/midx/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set at build time
	Version = "dev"

	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "midx",
		Short: "midx - a persistent catalog of your local music files",
		Long: `midx maintains a persistent catalog of your local audio files.
It scans registered music directories for .flac and .mp3 files, extracts
embedded tags and cover art, and stores normalized artist/album/track
records so front-ends can browse the library without rescanning disk.`,
		Version: Version,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is midx.yaml in config dir)")
	rootCmd.PersistentFlags().String("db", defaultDBPath(), "catalog database file")
	rootCmd.PersistentFlags().String("art-dir", defaultArtDir(), "cover art cache directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "quiet output (errors only)")

	// Bind flags to viper
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("art-dir", rootCmd.PersistentFlags().Lookup("art-dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(filepath.Join(xdg.ConfigHome, "midx"))
		viper.AddConfigPath(".")
		viper.SetConfigName("midx")
		viper.SetConfigType("yaml")
	}

	// Read in environment variables that match
	viper.SetEnvPrefix("MIDX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		util.InfoLog("Using config file: %s", viper.ConfigFileUsed())
	}
}

func defaultDBPath() string {
	return filepath.Join(xdg.DataHome, "midx", "midx.db")
}

func defaultArtDir() string {
	return filepath.Join(xdg.DataHome, "midx", "art")
}

// applyLogFlags sets the log level from the global flags. Every command
// calls this first.
func applyLogFlags() {
	util.SetVerbose(viper.GetBool("verbose"))
	util.SetQuiet(viper.GetBool("quiet"))
}

// openStore opens the catalog database. Schema initialization failure is
// unrecoverable, so the returned error propagates out of the command and
// terminates the process.
func openStore() (*store.Store, error) {
	dbPath := viper.GetString("db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	util.DebugLog("Opening catalog: %s", dbPath)
	db, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	return db, nil
}

// openArtCache opens the cover art cache directory
func openArtCache() (*art.Cache, error) {
	cache, err := art.NewCache(viper.GetString("art-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to open art cache: %w", err)
	}
	return cache, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
