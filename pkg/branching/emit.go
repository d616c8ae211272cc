package branching

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/jbeda/geom"
)

// WriteLines writes one "L 1 x1,y1;x2,y2" record per segment, coordinates
// rounded half away from zero.
func WriteLines(w io.Writer, segments []Segment) error {
	bw := bufio.NewWriter(w)
	for _, seg := range segments {
		if _, err := fmt.Fprintf(bw, "L 1 %d,%d;%d,%d\n",
			round(seg.From.X), round(seg.From.Y), round(seg.To.X), round(seg.To.Y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteCircles writes one "C 1 1 r x,y" record per sample.
func WriteCircles(w io.Writer, samples []geom.Coord, r int) error {
	bw := bufio.NewWriter(w)
	for _, p := range samples {
		if _, err := fmt.Fprintf(bw, "C 1 1 %d %d,%d\n", r, round(p.X), round(p.Y)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
