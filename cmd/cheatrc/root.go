package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"github.com/walteh/cheatrc/cmd/cheatrc/opts"
	"github.com/walteh/cheatrc/pkg/config"
	"gitlab.com/tozd/go/errors"
)

var (
	// Flags
	configFile string
	debug      bool
)

const defaultConfigFile = ".cheatrc.hcl"

// newRootOpts creates a new RootOpts with initialized dependencies
func newRootOpts(ctx context.Context) (*opts.RootOpts, error) {
	cfg := &config.Config{}

	// The default cheat file is optional; an explicitly named one is not
	if _, err := os.Stat(configFile); err != nil {
		if configFile != defaultConfigFile {
			return nil, errors.Errorf("cheat file: %w", err)
		}
	} else {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, errors.Errorf("loading cheat file: %w", err)
		}
		cfg = loaded
	}

	table, err := cfg.BuildTable()
	if err != nil {
		return nil, errors.Errorf("building rule table: %w", err)
	}

	return &opts.RootOpts{
		Config: cfg,
		Table:  table,
	}, nil
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&configFile, "config", "c", defaultConfigFile, "cheat file path (HCL or YAML)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}
