package branching

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

// DefaultRetries is the number of candidates thrown per expansion.
const DefaultRetries = 5

// densityReference is the x extent over which the candidate distance band
// widens from [r, r] to [r, 3r].
const densityReference = 10800.0

// ErrInvalidParams wraps every parameter validation failure.
var ErrInvalidParams = errors.New("invalid sampler parameters")

// Params are the construction parameters of a Sampler.
type Params struct {
	SizeX float64
	SizeY float64
	// Radius is the minimum separation between samples.
	Radius float64
	// ChildrenLimit caps successful children per sample, 0 means unlimited.
	ChildrenLimit int
	// Angle is the width, in degrees, of the wedge inherited by each child.
	Angle float64
}

// Reference returns the parameters of the reference run.
func Reference() Params {
	return Params{
		SizeX:         10800,
		SizeY:         7200,
		Radius:        40,
		ChildrenLimit: 10,
		Angle:         90,
	}
}

// Validate reports every violated constraint at once.
func (p Params) Validate() error {
	var err error

	if !positive(p.SizeX) {
		err = multierr.Append(err, fmt.Errorf("size x must be positive, got %v", p.SizeX))
	}
	if !positive(p.SizeY) {
		err = multierr.Append(err, fmt.Errorf("size y must be positive, got %v", p.SizeY))
	}
	// Grid cells are floor(r/√2) wide and must not collapse to zero.
	if !positive(p.Radius) || p.Radius < math.Sqrt2 {
		err = multierr.Append(err, fmt.Errorf("radius must be at least √2, got %v", p.Radius))
	}
	if p.ChildrenLimit < 0 {
		err = multierr.Append(err, fmt.Errorf("children limit must not be negative, got %d", p.ChildrenLimit))
	}
	if !positive(p.Angle) {
		err = multierr.Append(err, fmt.Errorf("angle must be positive, got %v", p.Angle))
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
