package branching

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/jbeda/geom"
)

func TestWriteLines(t *testing.T) {
	segments := []Segment{
		{From: geom.Coord{X: 5400, Y: 3600}, To: geom.Coord{X: 5440.5, Y: 3571.49}},
		{From: geom.Coord{X: 0.5, Y: -0.5}, To: geom.Coord{X: 2.4999, Y: 1.5}},
	}

	var buf bytes.Buffer
	if err := WriteLines(&buf, segments); err != nil {
		t.Fatal(err)
	}

	want := "L 1 5400,3600;5441,3571\n" +
		"L 1 1,-1;2,2\n"
	if buf.String() != want {
		t.Errorf("WriteLines =\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestWriteLinesEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLines(&buf, nil); err != nil || buf.Len() != 0 {
		t.Errorf("WriteLines(nil) = %q, %v", buf.String(), err)
	}
}

func TestWriteLinesIdempotent(t *testing.T) {
	s := newTestSampler(t, Params{SizeX: 120, SizeY: 80, Radius: 6, ChildrenLimit: 3, Angle: 90}, 8)
	s.Fill()

	var first, second bytes.Buffer
	if err := WriteLines(&first, s.Segments()); err != nil {
		t.Fatal(err)
	}
	if err := WriteLines(&second, s.Segments()); err != nil {
		t.Fatal(err)
	}

	if first.String() != second.String() {
		t.Error("emitting twice produced different output")
	}
	if n := strings.Count(first.String(), "\n"); n != len(s.Segments()) {
		t.Errorf("%d lines for %d segments", n, len(s.Segments()))
	}
}

func TestWriteCircles(t *testing.T) {
	var buf bytes.Buffer
	samples := []geom.Coord{{X: 50, Y: 50}, {X: 12.5, Y: 99.49}}
	if err := WriteCircles(&buf, samples, 5); err != nil {
		t.Fatal(err)
	}

	want := "C 1 1 5 50,50\nC 1 1 5 13,99\n"
	if buf.String() != want {
		t.Errorf("WriteCircles = %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteLinesPropagatesErrors(t *testing.T) {
	segments := []Segment{{From: geom.Coord{X: 1, Y: 1}, To: geom.Coord{X: 2, Y: 2}}}
	if err := WriteLines(failingWriter{}, segments); err == nil {
		t.Error("expected the writer error")
	}
}
