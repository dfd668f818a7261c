// Package chart draws Gantt charts of scheduling results with gonum/plot.
package chart

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/jar0582/procsched/internal/sched"
)

const barHeight = 0.8

var (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// Gantt builds a chart with one row per process, first process at the
// bottom, and one bar per execution segment.
func Gantt(r sched.Result) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Gantt chart - " + r.Heading()
	p.X.Label.Text = "Time"

	names := make([]string, len(r.Entries))
	rows := make(map[string]int, len(r.Entries))
	for i, e := range r.Entries {
		names[i] = e.ID
		rows[e.ID] = i
	}

	var end int64
	for _, s := range r.Segments {
		row := rows[s.ID]
		y := float64(row)
		bar, err := plotter.NewPolygon(plotter.XYs{
			{X: float64(s.Start), Y: y - barHeight/2},
			{X: float64(s.End), Y: y - barHeight/2},
			{X: float64(s.End), Y: y + barHeight/2},
			{X: float64(s.Start), Y: y + barHeight/2},
		})
		if err != nil {
			return nil, fmt.Errorf("segment %s [%d,%d): %w", s.ID, s.Start, s.End, err)
		}
		bar.Color = plotutil.Color(row)
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)
		end = max(end, s.End)
	}

	grid := plotter.NewGrid()
	grid.Horizontal.Color = nil
	p.Add(grid)

	p.NominalY(names...)
	p.Y.Min = -0.5
	p.Y.Max = float64(len(names)) - 0.5
	p.X.Min = 0
	p.X.Max = float64(end + 1)
	return p, nil
}

// WriteGantts saves one chart per result into dir as <algorithm>.<format>
// and returns the written paths. format is any extension plot.Save knows,
// such as png or svg.
func WriteGantts(dir, format string, results ...sched.Result) ([]string, error) {
	format = strings.TrimPrefix(strings.ToLower(format), ".")
	if format == "" {
		format = "png"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating chart directory: %w", err)
	}

	paths := make([]string, 0, len(results))
	for _, r := range results {
		p, err := Gantt(r)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(dir, string(r.Algorithm)+"."+format)
		if err := p.Save(chartWidth, chartHeight, path); err != nil {
			return nil, fmt.Errorf("saving %s chart: %w", r.Algorithm, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
