// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvledge/pulsegen"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a synthetic trapezoid pulse train as CSV",
		Long: `Generate low plateau, rising ramp, high plateau and falling ramp periods as
configured in the "gen" section of the config file. Dips listed there turn
part of a high plateau into a runt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := &a.cfg.Gen
			flags := cmd.Flags()
			if flags.Changed("periods") {
				g.Periods, _ = flags.GetInt("periods")
			}
			if flags.Changed("noise") {
				g.Noise, _ = flags.GetFloat64("noise")
			}
			if flags.Changed("seed") {
				g.Seed, _ = flags.GetInt64("seed")
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			sig, err := pulsegen.Trapezoid(g.Periods, a.cfg.GenOptions()...)
			if err != nil {
				return err
			}
			a.log.Debug("pulse train generated",
				zap.Int("periods", g.Periods),
				zap.Int("samples", sig.Len()),
				zap.Int("dips", len(g.Dips)),
			)

			return writeSignal(cmd.OutOrStdout(), sig)
		},
	}
	cmd.Flags().Int("periods", 0, "Number of periods")
	cmd.Flags().Float64("noise", 0, "Gaussian noise standard deviation")
	cmd.Flags().Int64("seed", 0, "Noise seed")

	return cmd
}
