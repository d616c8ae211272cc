package branching

import (
	"math"

	"github.com/jbeda/geom"
)

// neighbourReach is how many cells on each side of a point's own cell are
// searched, i.e. a 5x5 block.
const neighbourReach = 2

type cellKey struct {
	x, y int
}

// grid is the acceleration structure for separation tests. Its cells are at
// most radius/√2 wide, so a cell can never hold two valid samples. Storage
// is sparse: only occupied cells exist in the map.
type grid struct {
	cellSize float64
	cols     int
	rows     int
	radius   float64
	reach    int
	cells    map[cellKey]geom.Coord
}

func newGrid(sizeX, sizeY, radius float64) *grid {
	cellSize := math.Floor(radius / math.Sqrt2)

	// Flooring can shrink cells enough that two cells no longer cover the
	// radius (2 < r < 2√2); widen the block for those.
	reach := neighbourReach
	if r := int(math.Ceil(radius / cellSize)); r > reach {
		reach = r
	}

	return &grid{
		cellSize: cellSize,
		cols:     int(math.Ceil(sizeX / cellSize)),
		rows:     int(math.Ceil(sizeY / cellSize)),
		radius:   radius,
		reach:    reach,
		cells:    make(map[cellKey]geom.Coord),
	}
}

func (g *grid) keyFor(p geom.Coord) cellKey {
	return cellKey{
		x: int(math.Floor(p.X / g.cellSize)),
		y: int(math.Floor(p.Y / g.cellSize)),
	}
}

func (g *grid) inBounds(k cellKey) bool {
	return k.x >= 0 && k.y >= 0 && k.x < g.cols && k.y < g.rows
}

// insert stores p in its cell. An occupied or out-of-range cell leaves the
// grid untouched and reports false.
func (g *grid) insert(p geom.Coord) bool {
	k := g.keyFor(p)
	if !g.inBounds(k) {
		return false
	}
	if _, taken := g.cells[k]; taken {
		return false
	}

	g.cells[k] = p
	return true
}

func (g *grid) neighbours(p geom.Coord) []geom.Coord {
	k := g.keyFor(p)

	var res []geom.Coord
	for dx := -g.reach; dx <= g.reach; dx++ {
		for dy := -g.reach; dy <= g.reach; dy++ {
			n := cellKey{k.x + dx, k.y + dy}
			if !g.inBounds(n) {
				continue
			}
			if q, ok := g.cells[n]; ok {
				res = append(res, q)
			}
		}
	}

	return res
}

func (g *grid) farEnough(p geom.Coord) bool {
	for _, n := range g.neighbours(p) {
		if p.DistanceFrom(n) <= g.radius {
			return false
		}
	}
	return true
}
