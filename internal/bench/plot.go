// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package bench

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot renders the median throughput of each (target, producers) pair in s
// as a bar chart. The image format follows the extension of path.
func Plot(s Session, path string) error {
	summaries := Summarize(s.Results)
	if len(summaries) == 0 {
		return errors.New("plot: no results")
	}

	values := make(plotter.Values, len(summaries))
	labels := make([]string, len(summaries))
	for i, sum := range summaries {
		values[i] = sum.Median / 1e6
		labels[i] = fmt.Sprintf("%s/p%d", sum.Target, sum.Producers)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Median throughput, %d CPUs (%s)", s.SystemInfo.NumCPU, s.SessionTime)
	p.Y.Label.Text = "Million msgs/sec"
	p.Add(plotter.NewGrid())

	bars, err := plotter.NewBarChart(values, vg.Points(18))
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	bars.Color = color.RGBA{R: 66, G: 133, B: 244, A: 255}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(labels...)

	width := vg.Length(len(summaries))*0.8*vg.Inch + 2*vg.Inch
	if err := p.Save(width, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}
