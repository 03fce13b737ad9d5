// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvledge/edges"
	"github.com/katalvlaran/lvledge/levels"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// edgesReport is the YAML document printed by "lvledge edges".
type edgesReport struct {
	Levels levels.StateLevels     `yaml:"levels"`
	Counts map[edges.EdgeType]int `yaml:"counts"`
	Edges  []edges.Edge           `yaml:"edges"`
}

func newEdgesCmd(a *app) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "edges",
		Short: "Extract the edges of a signal",
		Long: `Print every edge as YAML, or with --point the begin, intermediate or end
samples of all edges as "h,v" CSV.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("point") {
				a.cfg.Edges.Point, _ = cmd.Flags().GetString("point")
				if err := a.cfg.Validate(); err != nil {
					return fmt.Errorf("invalid flags: %w", err)
				}
			}

			sig, err := a.readInput(input)
			if err != nil {
				return err
			}
			levelOpts, err := a.cfg.LevelOptions()
			if err != nil {
				return err
			}
			levelOpts.Logger = a.log
			policy, err := a.cfg.Policy()
			if err != nil {
				return err
			}

			lv, list, err := edges.Analyze(sig, &levelOpts,
				edges.WithIntPointPolicy(policy),
				edges.WithLogger(a.log),
			)
			if err != nil {
				return err
			}
			a.log.Info("edges extracted", zap.Int("samples", sig.Len()), zap.Int("edges", len(list)))

			if a.cfg.Edges.Point == "" {
				return writeYAML(cmd.OutOrStdout(), edgesReport{Levels: lv, Counts: edges.Count(list), Edges: list})
			}
			which, err := edges.ParseWhich(a.cfg.Edges.Point)
			if err != nil {
				return err
			}
			h, v, err := edges.ToArrays(list, which)
			if err != nil {
				return err
			}

			return writeArrays(cmd.OutOrStdout(), h, v)
		},
	}
	cmd.Flags().StringVarP(&input, "input", "i", "-", "CSV input file (- for stdin)")
	cmd.Flags().String("point", "", "Project one point per edge as CSV: begin|intermediate|end")

	return cmd
}
