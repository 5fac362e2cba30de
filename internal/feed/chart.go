package feed

import (
	"fmt"
	"image"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	chartStroke = drawing.ColorFromHex("00ffff")
	chartFill   = drawing.Color{R: 0, G: 255, B: 255, A: 25}
)

// RenderChart draws the energy series as a filled line without axes or
// legend, with the y range fixed to [0,100].
func RenderChart(samples []float64, width, height int) (image.Image, error) {
	if len(samples) < 2 {
		return nil, fmt.Errorf("chart needs at least two samples, got %d", len(samples))
	}

	xs := make([]float64, len(samples))
	for i := range xs {
		xs[i] = float64(i)
	}

	graph := chart.Chart{
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding:   chart.Box{Top: 4, Left: 4, Right: 4, Bottom: 4},
			FillColor: drawing.ColorTransparent,
		},
		Canvas: chart.Style{
			FillColor: drawing.ColorTransparent,
		},
		XAxis: chart.XAxis{
			Style: chart.Style{Hidden: true},
		},
		YAxis: chart.YAxis{
			Style: chart.Style{Hidden: true},
			Range: &chart.ContinuousRange{Min: 0, Max: EnergyMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Energy Flux",
				XValues: xs,
				YValues: samples,
				Style: chart.Style{
					StrokeColor: chartStroke,
					StrokeWidth: 2,
					FillColor:   chartFill,
				},
			},
		},
	}

	w := &chart.ImageWriter{}
	if err := graph.Render(chart.PNG, w); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	img, err := w.Image()
	if err != nil {
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	return img, nil
}
