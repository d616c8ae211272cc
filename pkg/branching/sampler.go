package branching

import (
	"math"
	"math/rand"
	"time"

	"github.com/0x0FACED/go-branching/pkg/logger"
	"github.com/jbeda/geom"
	"go.uber.org/zap"
)

// AngleRange bounds the directions, in radians, a sample may cast children in.
type AngleRange struct {
	Low  float64
	High float64
}

func (r AngleRange) center() float64 { return (r.Low + r.High) / 2 }

// ActiveSample is an accepted sample together with its expansion state.
type ActiveSample struct {
	Pos        geom.Coord
	Children   int
	AngleRange AngleRange
	// CenterAngle orders the active front.
	CenterAngle float64
	Depth       int
}

// Segment connects a parent sample to a child it spawned.
// Parent and Child index Samples().
type Segment struct {
	Parent    int
	Child     int
	From      geom.Coord
	To        geom.Coord
	Direction float64
}

// Stats counts what a run did.
type Stats struct {
	Pops           int
	Attempts       int
	Accepted       int
	Rejected       int
	Retired        int
	GridCollisions int
}

// Sampler grows a branching Poisson-disk pattern from the domain's center.
// It is not safe for concurrent use.
type Sampler struct {
	params  Params
	angle   float64 // child wedge width in radians
	retries int
	domain  geom.Rect

	grid  *grid
	front activeFront

	// nodes and samples share indexing; nodes is the arena the front
	// refers into.
	nodes    []ActiveSample
	samples  []geom.Coord
	segments []Segment

	stats Stats
	rng   *rand.Rand
	log   *logger.ZapLogger
}

// Option configures a Sampler.
type Option func(*Sampler)

// WithRand sets the random source. Runs are reproducible for a fixed seed.
func WithRand(rng *rand.Rand) Option {
	return func(s *Sampler) { s.rng = rng }
}

// WithLogger sets the logger, a no-op one by default.
func WithLogger(l *logger.ZapLogger) Option {
	return func(s *Sampler) { s.log = l }
}

// WithRetries overrides DefaultRetries.
func WithRetries(n int) Option {
	return func(s *Sampler) {
		if n > 0 {
			s.retries = n
		}
	}
}

// New validates params and seeds the root sample at the domain's center.
func New(params Params, opts ...Option) (*Sampler, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	s := &Sampler{
		params:  params,
		angle:   params.Angle / 180.0 * math.Pi,
		retries: DefaultRetries,
		domain:  geom.Rect{Max: geom.Coord{X: params.SizeX, Y: params.SizeY}},
		grid:    newGrid(params.SizeX, params.SizeY, params.Radius),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = logger.Nop()
	}

	root := geom.Coord{X: params.SizeX / 2, Y: params.SizeY / 2}
	s.accept(root, AngleRange{0, 2 * math.Pi}, 0)

	s.log.Info("[s] Sampler ready",
		zap.Float64("size_x", params.SizeX),
		zap.Float64("size_y", params.SizeY),
		zap.Float64("radius", params.Radius),
		zap.Int("children_limit", params.ChildrenLimit),
		zap.Float64("angle", params.Angle),
		zap.Float64("cell_size", s.grid.cellSize),
		zap.Int("cols", s.grid.cols),
		zap.Int("rows", s.grid.rows),
	)

	return s, nil
}

// Fill expands samples until the active front is empty. Calling it on a
// drained sampler does nothing.
func (s *Sampler) Fill() {
	start := time.Now()

	for !s.front.empty() {
		s.generateNewSample()
	}

	s.log.Info("[s] Fill finished",
		zap.Int("samples", len(s.samples)),
		zap.Int("segments", len(s.segments)),
		zap.Int("pops", s.stats.Pops),
		zap.Int("attempts", s.stats.Attempts),
		zap.Int("retired", s.stats.Retired),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func (s *Sampler) generateNewSample() {
	idx := s.front.pop()
	s.stats.Pops++
	current := &s.nodes[idx]

	for try := 0; try < s.retries; try++ {
		s.stats.Attempts++

		// Samples thin out towards larger x.
		factor := (current.Pos.X/densityReference)*2 + 1
		distance := s.uniform(1, factor) * s.params.Radius

		direction := s.uniform(current.AngleRange.Low, current.AngleRange.High)

		// Not a pure rotation: the unit offset is sheared by 45° and
		// scaled by √2. The branching look depends on it.
		offset := geom.Coord{
			X: math.Cos(direction) - math.Sin(direction),
			Y: math.Sin(direction) + math.Cos(direction),
		}
		candidate := current.Pos.Plus(offset.Times(distance))

		if !s.inDomain(candidate) || !s.grid.farEnough(candidate) {
			s.stats.Rejected++
			continue
		}

		current.Children++
		if s.params.ChildrenLimit == 0 || current.Children < s.params.ChildrenLimit {
			s.front.push(idx, current.CenterAngle)
		}

		wedge := AngleRange{direction - s.angle/2, direction + s.angle/2}
		child := s.accept(candidate, wedge, current.Depth+1)

		// accept may grow the arena; current is stale from here on.
		parent := s.nodes[idx]
		s.segments = append(s.segments, Segment{
			Parent:    idx,
			Child:     child,
			From:      parent.Pos,
			To:        candidate,
			Direction: direction,
		})
		s.stats.Accepted++

		if s.log.Enabled(zap.DebugLevel) {
			s.log.Debug("[s-gen] Accepted",
				zap.Int("parent", idx),
				zap.Int("child", child),
				zap.Int("try", try),
				zap.Float64("x", candidate.X),
				zap.Float64("y", candidate.Y),
				zap.Int("depth", parent.Depth+1),
			)
		}
		return
	}

	s.stats.Retired++
	if s.log.Enabled(zap.DebugLevel) {
		s.log.Debug("[s-gen] Retired", zap.Int("sample", idx), zap.Int("children", current.Children))
	}
}

// accept registers p everywhere and makes it active.
func (s *Sampler) accept(p geom.Coord, r AngleRange, depth int) int {
	idx := len(s.nodes)
	s.nodes = append(s.nodes, ActiveSample{
		Pos:         p,
		AngleRange:  r,
		CenterAngle: r.center(),
		Depth:       depth,
	})
	s.samples = append(s.samples, p)

	if !s.grid.insert(p) {
		s.stats.GridCollisions++
		s.log.Warn("[s] Grid cell already taken", zap.Float64("x", p.X), zap.Float64("y", p.Y))
	}

	s.front.push(idx, r.center())
	return idx
}

// inDomain checks the half-open domain [0, SizeX) × [0, SizeY).
func (s *Sampler) inDomain(p geom.Coord) bool {
	return p.X >= s.domain.Min.X && p.X < s.domain.Max.X &&
		p.Y >= s.domain.Min.Y && p.Y < s.domain.Max.Y
}

func (s *Sampler) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func (s *Sampler) Params() Params { return s.params }

// Samples returns every accepted point, the root first.
func (s *Sampler) Samples() []geom.Coord { return s.samples }

// Nodes returns the expansion state of every sample, indexed like Samples.
func (s *Sampler) Nodes() []ActiveSample { return s.nodes }

func (s *Sampler) Segments() []Segment { return s.segments }

func (s *Sampler) Stats() Stats { return s.stats }

// Active is the number of samples still waiting on the front.
func (s *Sampler) Active() int { return s.front.len() }
