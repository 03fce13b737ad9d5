// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/lvledge/edges"
	"github.com/katalvlaran/lvledge/levels"
	"github.com/katalvlaran/lvledge/pulsegen"
	"gopkg.in/yaml.v3"
)

var configValidate = validator.New()

// Config is the YAML configuration file. Every section is optional; missing
// values keep the library defaults.
type Config struct {
	Levels LevelsConfig `yaml:"levels"`
	Edges  EdgesConfig  `yaml:"edges"`
	Gen    GenConfig    `yaml:"gen"`
}

// LevelsConfig mirrors levels.Options.
type LevelsConfig struct {
	Mode   string        `yaml:"mode" validate:"oneof=mode mean"`
	NBins  int           `yaml:"nbins" validate:"gte=2"`
	Bounds *BoundsConfig `yaml:"bounds" validate:"omitempty"`
	Refs   RefsConfig    `yaml:"refs"`
}

// BoundsConfig is an explicit histogram range.
type BoundsConfig struct {
	Lower float64 `yaml:"lower"`
	Upper float64 `yaml:"upper" validate:"gtefield=Lower"`
}

// RefsConfig holds the percentage references, strictly increasing from Low to High.
type RefsConfig struct {
	High         float64 `yaml:"high" validate:"gte=0,lte=100,gtfield=HighRunt"`
	HighRunt     float64 `yaml:"high_runt" validate:"gte=0,lte=100,gtfield=Intermediate"`
	Intermediate float64 `yaml:"intermediate" validate:"gte=0,lte=100,gtfield=LowRunt"`
	LowRunt      float64 `yaml:"low_runt" validate:"gte=0,lte=100,gtfield=Low"`
	Low          float64 `yaml:"low" validate:"gte=0,lte=100"`
}

// EdgesConfig selects the intermediate-point policy and the projected point.
type EdgesConfig struct {
	Policy string `yaml:"policy" validate:"oneof=nearest begin-on-falling end-on-falling"`
	Point  string `yaml:"point" validate:"omitempty,oneof=begin intermediate end"`
}

// GenConfig describes the pulse train written by "lvledge gen".
type GenConfig struct {
	Periods  int         `yaml:"periods" validate:"gte=1"`
	Low      float64     `yaml:"low"`
	High     float64     `yaml:"high" validate:"gtfield=Low"`
	Segments [4]int      `yaml:"segments" validate:"dive,gte=1"`
	Noise    float64     `yaml:"noise" validate:"gte=0"`
	Seed     int64       `yaml:"seed"`
	Start    float64     `yaml:"start"`
	Interval float64     `yaml:"interval" validate:"gt=0"`
	Dips     []DipConfig `yaml:"dips" validate:"dive"`
}

// DipConfig is one pulsegen.WithDip call.
type DipConfig struct {
	Period   int     `yaml:"period" validate:"gte=0"`
	Offset   int     `yaml:"offset" validate:"gte=0"`
	Width    int     `yaml:"width" validate:"gte=1"`
	Fraction float64 `yaml:"fraction" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the library defaults and a four-period 0..100 pulse train.
func DefaultConfig() Config {
	refs := levels.DefaultRefs()

	return Config{
		Levels: LevelsConfig{
			Mode:  levels.HistogramMode.String(),
			NBins: levels.DefaultNBins,
			Refs: RefsConfig{
				High:         refs.High,
				HighRunt:     refs.HighRunt,
				Intermediate: refs.Intermediate,
				LowRunt:      refs.LowRunt,
				Low:          refs.Low,
			},
		},
		Edges: EdgesConfig{Policy: edges.Nearest.String()},
		Gen: GenConfig{
			Periods:  4,
			Low:      0,
			High:     100,
			Segments: [4]int{10, 10, 10, 10},
			Seed:     1,
			Interval: 1,
		},
	}
}

// LoadConfig reads path over DefaultConfig and validates the result.
// An empty path yields the validated defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the struct tags.
func (c Config) Validate() error {
	return configValidate.Struct(c)
}

// LevelOptions converts the levels section.
func (c Config) LevelOptions() (levels.Options, error) {
	mode, err := levels.ParseMode(c.Levels.Mode)
	if err != nil {
		return levels.Options{}, err
	}
	opts := levels.DefaultOptions()
	opts.Mode = mode
	opts.NBins = c.Levels.NBins
	opts.Refs = levels.Refs{
		High:         c.Levels.Refs.High,
		HighRunt:     c.Levels.Refs.HighRunt,
		Intermediate: c.Levels.Refs.Intermediate,
		LowRunt:      c.Levels.Refs.LowRunt,
		Low:          c.Levels.Refs.Low,
	}
	if b := c.Levels.Bounds; b != nil {
		opts.Bounds = &levels.Bounds{Lower: b.Lower, Upper: b.Upper}
	}

	return opts, nil
}

// Policy converts the edges policy.
func (c Config) Policy() (edges.IntPointPolicy, error) {
	return edges.ParseIntPointPolicy(c.Edges.Policy)
}

// GenOptions converts the gen section into pulsegen options.
func (c Config) GenOptions() []pulsegen.Option {
	g := c.Gen
	opts := []pulsegen.Option{
		pulsegen.WithLevels(g.Low, g.High),
		pulsegen.WithSegments(g.Segments[0], g.Segments[1], g.Segments[2], g.Segments[3]),
		pulsegen.WithNoise(g.Noise),
		pulsegen.WithSeed(g.Seed),
		pulsegen.WithSampleInterval(g.Start, g.Interval),
	}
	for _, d := range g.Dips {
		opts = append(opts, pulsegen.WithDip(d.Period, d.Offset, d.Width, d.Fraction))
	}

	return opts
}
