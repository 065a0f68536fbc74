// Package commands wires the CLI surface: a root command with serve and
// fetch subcommands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/caesbrissa/visual-poker/internal/buildinfo"
	"github.com/caesbrissa/visual-poker/internal/config"
)

var configPath string

// NewRootCmd builds the visualpoker command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     "visualpoker",
		Short:   "Poker performance dashboard backend",
		Long:    "Polls a Google Sheets session log and serves derived performance metrics over HTTP.",
		Version: fmt.Sprintf("%s (commit %s, built %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
	}

	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config file")

	root.AddCommand(newServeCmd())
	root.AddCommand(newFetchCmd())

	return root
}

// loadConfig layers defaults, the optional config file and the env
// overrides, then validates the result.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if err := cfg.LoadFile(configPath); err != nil {
		return cfg, err
	}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
