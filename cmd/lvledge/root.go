// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries the state shared by every subcommand after flag parsing.
type app struct {
	cfgPath string
	debug   bool

	cfg Config
	log *zap.Logger
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvledge",
		Short: "State-level and edge analysis of sampled two-state signals",
		Long: `lvledge derives the seven state levels of a sampled signal from a histogram
of its amplitudes and extracts every logical transition, runt edges included.

Samples are read as CSV rows of "h,v" (or a single "v" column on a unit grid).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	pf.BoolVar(&a.debug, "debug", false, "Turn on debugging output")
	pf.String("mode", "", "Histogram reduction: mode|mean")
	pf.Int("nbins", 0, "Histogram bin count")
	pf.String("policy", "", "Intermediate point policy: nearest|begin-on-falling|end-on-falling")

	root.AddCommand(newGenCmd(a), newLevelsCmd(a), newEdgesCmd(a))

	return root
}

// setup loads the configuration, applies explicit flags over it and builds
// the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.cfgPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("mode") {
		cfg.Levels.Mode, _ = flags.GetString("mode")
	}
	if flags.Changed("nbins") {
		cfg.Levels.NBins, _ = flags.GetInt("nbins")
	}
	if flags.Changed("policy") {
		cfg.Edges.Policy, _ = flags.GetString("policy")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	if a.log == nil {
		if a.log, err = newLogger(a.debug); err != nil {
			return err
		}
	}
	a.log.Debug("configuration loaded",
		zap.String("config", a.cfgPath),
		zap.String("mode", cfg.Levels.Mode),
		zap.Int("nbins", cfg.Levels.NBins),
		zap.String("policy", cfg.Edges.Policy),
	)

	return nil
}

// newLogger returns a development logger under --debug, a production one
// otherwise. Both write to stderr.
func newLogger(debug bool) (*zap.Logger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, fmt.Errorf("can't initialize zap logger: %w", err)
	}

	return l, nil
}
