// Package config loads run parameters from a TOML file.
//
// A file only needs the keys it changes; everything else keeps the value of
// the reference run:
//
//	width = 2000
//	height = 1200
//	radius = 12
//	children_limit = 3
//	angle = 120
//	seed = 42
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/0x0FACED/go-branching/pkg/branching"
	"github.com/BurntSushi/toml"
)

// ErrUnknownKeys is returned for keys Config does not define.
var ErrUnknownKeys = errors.New("unknown config keys")

// Config holds the parameters of one run.
type Config struct {
	Width         float64 `toml:"width"`
	Height        float64 `toml:"height"`
	Radius        float64 `toml:"radius"`
	ChildrenLimit int     `toml:"children_limit"`
	Angle         float64 `toml:"angle"`
	// Seed of the random source, 0 picks one from the clock.
	Seed int64 `toml:"seed"`
	// Circles also emits one circle record per sample.
	Circles bool `toml:"circles"`
}

// Default returns the reference run.
func Default() Config {
	ref := branching.Reference()
	return Config{
		Width:         ref.SizeX,
		Height:        ref.SizeY,
		Radius:        ref.Radius,
		ChildrenLimit: ref.ChildrenLimit,
		Angle:         ref.Angle,
	}
}

// Load decodes path over Default.
func Load(path string) (Config, error) {
	cfg := Default()

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("load config %s: %w: %s", path, ErrUnknownKeys, strings.Join(keys, ", "))
	}

	return cfg, cfg.Validate()
}

func (c Config) Params() branching.Params {
	return branching.Params{
		SizeX:         c.Width,
		SizeY:         c.Height,
		Radius:        c.Radius,
		ChildrenLimit: c.ChildrenLimit,
		Angle:         c.Angle,
	}
}

func (c Config) Validate() error {
	return c.Params().Validate()
}
