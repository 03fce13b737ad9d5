// SPDX-License-Identifier: MIT

package main

import (
	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/signal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// levelsReport is the YAML document printed by "lvledge levels".
type levelsReport struct {
	Samples   int                `yaml:"samples"`
	Levels    levels.StateLevels `yaml:"levels"`
	Histogram *levels.Histogram  `yaml:"histogram,omitempty"`
}

func newLevelsCmd(a *app) *cobra.Command {
	var (
		input     string
		histogram bool
	)
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "Print the state levels of a signal as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sig, err := a.readInput(input)
			if err != nil {
				return err
			}
			opts, err := a.cfg.LevelOptions()
			if err != nil {
				return err
			}
			opts.Logger = a.log

			lv, hist, err := levels.Compute(sig, &opts)
			if err != nil {
				return err
			}
			report := levelsReport{Samples: sig.Len(), Levels: lv}
			if histogram {
				report.Histogram = &hist
			}

			return writeYAML(cmd.OutOrStdout(), report)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "CSV input file (- for stdin)")
	cmd.Flags().BoolVar(&histogram, "histogram", false, "Include the histogram in the output")

	return cmd
}

// readInput loads the CSV signal at path.
func (a *app) readInput(path string) (*signal.Signal, error) {
	rc, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	sig, err := readSignal(rc)
	if err != nil {
		return nil, err
	}
	a.log.Debug("signal loaded", zap.String("input", path), zap.Int("samples", sig.Len()))

	return sig, nil
}
