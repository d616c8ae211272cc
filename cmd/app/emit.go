package main

import (
	"fmt"

	"github.com/0x0FACED/go-branching/pkg/branching"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// circleSize is the style field of emitted sample circles.
const circleSize = 5

func newEmitCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emit",
		Short: "Run the sampler and print its segments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEmit(cmd)
		},
	}
	addParamFlags(cmd)
	return cmd
}

func addParamFlags(cmd *cobra.Command) {
	ref := branching.Reference()
	fs := cmd.Flags()
	fs.Float64("width", ref.SizeX, "domain width")
	fs.Float64("height", ref.SizeY, "domain height")
	fs.Float64("radius", ref.Radius, "minimum distance between samples")
	fs.Int("children", ref.ChildrenLimit, "children per sample, 0 for unlimited")
	fs.Float64("angle", ref.Angle, "wedge width inherited by children, in degrees")
	fs.Bool("circles", false, "also print one circle per sample")
}

// applyParamFlags overrides config values with explicitly set flags.
func (a *app) applyParamFlags(fs *pflag.FlagSet) error {
	var err error
	fs.Visit(func(f *pflag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "width":
			a.cfg.Width, err = fs.GetFloat64(f.Name)
		case "height":
			a.cfg.Height, err = fs.GetFloat64(f.Name)
		case "radius":
			a.cfg.Radius, err = fs.GetFloat64(f.Name)
		case "children":
			a.cfg.ChildrenLimit, err = fs.GetInt(f.Name)
		case "angle":
			a.cfg.Angle, err = fs.GetFloat64(f.Name)
		case "circles":
			a.cfg.Circles, err = fs.GetBool(f.Name)
		}
	})
	return err
}

func (a *app) runEmit(cmd *cobra.Command) error {
	if err := a.applyParamFlags(cmd.Flags()); err != nil {
		return err
	}

	r, seed := rng(a.cfg.Seed)
	sampler, err := branching.New(a.cfg.Params(), branching.WithRand(r), branching.WithLogger(a.log))
	if err != nil {
		return err
	}
	a.log.Info("[cli] Sampling", zap.Int64("seed", seed))

	sampler.Fill()

	out := cmd.OutOrStdout()
	if err := branching.WriteLines(out, sampler.Segments()); err != nil {
		return fmt.Errorf("write segments: %w", err)
	}
	if a.cfg.Circles {
		if err := branching.WriteCircles(out, sampler.Samples(), circleSize); err != nil {
			return fmt.Errorf("write samples: %w", err)
		}
	}

	return nil
}
