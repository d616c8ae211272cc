// Package preview turns a filled sampler into an echarts page fragment.
package preview

import (
	"github.com/0x0FACED/go-branching/pkg/branching"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// gap breaks the segment series between two segments.
var gap = opts.LineData{Value: "-"}

func prepareScatter(scatter *charts.Scatter, p branching.Params) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Branching blue noise",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			Min:  0,
			Max:  p.SizeX,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			Min:  0,
			Max:  p.SizeY,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Chart plots the samples of a filled sampler and overlays its segments.
func Chart(s *branching.Sampler) *charts.Scatter {
	scatter := charts.NewScatter()
	prepareScatter(scatter, s.Params())

	points := make([]opts.ScatterData, 0, len(s.Samples()))
	for _, p := range s.Samples() {
		points = append(points, opts.ScatterData{
			Value:      []float64{p.X, p.Y},
			SymbolSize: 3,
		})
	}

	scatter.AddSeries("Samples", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)
	line.AddSeries("Segments", segmentData(s.Segments())).
		SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 1,
			}),
		)

	scatter.Overlap(line)

	return scatter
}

// segmentData flattens segments into one series, each pair of endpoints
// followed by a gap so consecutive segments are not joined.
func segmentData(segments []branching.Segment) []opts.LineData {
	data := make([]opts.LineData, 0, len(segments)*3)
	for _, seg := range segments {
		data = append(data,
			opts.LineData{Value: []float64{seg.From.X, seg.From.Y}},
			opts.LineData{Value: []float64{seg.To.X, seg.To.Y}},
			gap,
		)
	}
	return data
}
