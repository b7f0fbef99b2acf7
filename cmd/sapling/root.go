package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "sapling",
	Short: "sapling is a minimal scene-graph runtime for Ebitengine",
	Long: `sapling drives a tree of nodes through a per-frame update pass and an
input pass, and paints drawable nodes in attach order.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Settings file (YAML or JSON)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides settings)")
}

// loadSettings reads --config if given, else returns defaults, and applies
// --log-level.
func loadSettings(cmd *cobra.Command) (sapling.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	s := sapling.DefaultSettings()
	if path != "" {
		var err error
		if s, err = sapling.LoadSettings(path); err != nil {
			return sapling.Settings{}, err
		}
	}
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		s.LogLevel = lvl
	}
	return s, nil
}

func newLogger(s sapling.Settings) *slog.Logger {
	return logging.New(logging.ParseLevel(s.LogLevel))
}
