package ui

import (
	"fmt"
	"math"
	"strings"
)

// Chart viewport padding, in SVG user units.
const (
	padLeft   = 40.0
	padRight  = 16.0
	padTop    = 16.0
	padBottom = 32.0
)

// Series is one named line of a line chart.
type Series struct {
	Name   string
	Color  string
	Values []float64
}

// Tick is a labelled position on an axis.
type Tick struct {
	Label string
	X     float64
	Y     float64
}

// Polyline is a rendered line chart series.
type Polyline struct {
	Name   string
	Color  string
	Points string
}

// LineChart is the precomputed geometry of a multi-series line chart.
type LineChart struct {
	Width  int
	Height int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	XTicks []Tick
	YTicks []Tick
	Lines  []Polyline
}

// NewLineChart lays out series over evenly spaced x labels. Values beyond the
// label count are ignored.
func NewLineChart(labels []string, series []Series, width, height int) LineChart {
	lc := LineChart{
		Width:  width,
		Height: height,
		Left:   padLeft,
		Right:  float64(width) - padRight,
		Top:    padTop,
		Bottom: float64(height) - padBottom,
	}

	var max float64
	for _, s := range series {
		for i, v := range s.Values {
			if i < len(labels) && v > max {
				max = v
			}
		}
	}
	top, step := niceScale(max)
	lc.YTicks = yTicks(lc.Left, lc.Top, lc.Bottom, top, step)

	xAt := func(i int) float64 {
		if len(labels) <= 1 {
			return (lc.Left + lc.Right) / 2
		}
		return lc.Left + float64(i)*(lc.Right-lc.Left)/float64(len(labels)-1)
	}
	for i, l := range labels {
		lc.XTicks = append(lc.XTicks, Tick{Label: l, X: xAt(i), Y: lc.Bottom + 18})
	}

	for _, s := range series {
		pts := make([]string, 0, len(s.Values))
		for i, v := range s.Values {
			if i >= len(labels) {
				break
			}
			if v < 0 {
				v = 0
			}
			pts = append(pts, fmt.Sprintf("%s,%s", Coord(xAt(i)), Coord(scaleY(lc.Top, lc.Bottom, v, top))))
		}
		lc.Lines = append(lc.Lines, Polyline{Name: s.Name, Color: s.Color, Points: strings.Join(pts, " ")})
	}
	return lc
}

// Bar is one rendered bar.
type Bar struct {
	Label  string
	Value  float64
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BarChart is the precomputed geometry of a single-series bar chart.
type BarChart struct {
	Width  int
	Height int
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
	Color  string
	YTicks []Tick
	Bars   []Bar
}

// NewBarChart lays out one bar per label.
func NewBarChart(labels []string, values []float64, color string, width, height int) BarChart {
	bc := BarChart{
		Width:  width,
		Height: height,
		Left:   padLeft,
		Right:  float64(width) - padRight,
		Top:    padTop,
		Bottom: float64(height) - padBottom,
		Color:  color,
	}

	n := len(labels)
	if len(values) < n {
		n = len(values)
	}
	var max float64
	for _, v := range values[:n] {
		if v > max {
			max = v
		}
	}
	top, step := niceScale(max)
	bc.YTicks = yTicks(bc.Left, bc.Top, bc.Bottom, top, step)

	if n == 0 {
		return bc
	}
	slot := (bc.Right - bc.Left) / float64(n)
	bw := slot * 0.7
	for i := 0; i < n; i++ {
		v := values[i]
		if v < 0 {
			v = 0
		}
		y := scaleY(bc.Top, bc.Bottom, v, top)
		bc.Bars = append(bc.Bars, Bar{
			Label:  labels[i],
			Value:  values[i],
			X:      bc.Left + float64(i)*slot + (slot-bw)/2,
			Y:      y,
			Width:  bw,
			Height: bc.Bottom - y,
		})
	}
	return bc
}

// Slice is a single wedge of a pie chart.
type Slice struct {
	Label  string
	Color  string
	Value  float64
	Path   string
	LabelX float64
	LabelY float64
}

// PieChart is the precomputed geometry of a pie chart.
type PieChart struct {
	Width  int
	Height int
	CX     float64
	CY     float64
	Radius float64
	Slices []Slice
}

// PieInput is one wedge before layout.
type PieInput struct {
	Label string
	Color string
	Value float64
}

// NewPieChart lays out wedges clockwise from twelve o'clock. Non-positive
// values are skipped.
func NewPieChart(in []PieInput, radius float64, width, height int) PieChart {
	pc := PieChart{
		Width:  width,
		Height: height,
		CX:     float64(width) / 2,
		CY:     float64(height) / 2,
		Radius: radius,
	}

	var total float64
	for _, p := range in {
		if p.Value > 0 {
			total += p.Value
		}
	}
	if total == 0 {
		return pc
	}

	angle := -math.Pi / 2
	for _, p := range in {
		if p.Value <= 0 {
			continue
		}
		sweep := 2 * math.Pi * p.Value / total
		mid := angle + sweep/2
		pc.Slices = append(pc.Slices, Slice{
			Label:  fmt.Sprintf("%s: %g%%", p.Label, p.Value),
			Color:  p.Color,
			Value:  p.Value,
			Path:   arcPath(pc.CX, pc.CY, radius, angle, sweep),
			LabelX: pc.CX + (radius+24)*math.Cos(mid),
			LabelY: pc.CY + (radius+24)*math.Sin(mid),
		})
		angle += sweep
	}
	return pc
}

// arcPath draws a wedge. A full circle is split into two half arcs because a
// single SVG arc cannot start and end on the same point.
func arcPath(cx, cy, r, start, sweep float64) string {
	if sweep >= 2*math.Pi-1e-9 {
		return fmt.Sprintf("M %s %s m -%s 0 a %s %s 0 1 1 %s 0 a %s %s 0 1 1 -%s 0 Z",
			Coord(cx), Coord(cy), Coord(r), Coord(r), Coord(r), Coord(2*r), Coord(r), Coord(r), Coord(2*r))
	}
	x1, y1 := cx+r*math.Cos(start), cy+r*math.Sin(start)
	x2, y2 := cx+r*math.Cos(start+sweep), cy+r*math.Sin(start+sweep)
	large := 0
	if sweep > math.Pi {
		large = 1
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		Coord(cx), Coord(cy), Coord(x1), Coord(y1), Coord(r), Coord(r), large, Coord(x2), Coord(y2))
}

// niceScale rounds max up to a readable axis top and returns the tick step.
func niceScale(max float64) (top, step float64) {
	if max <= 0 {
		return 1, 1
	}
	rough := max / 4
	mag := math.Pow(10, math.Floor(math.Log10(rough)))
	switch r := rough / mag; {
	case r <= 1:
		step = mag
	case r <= 2:
		step = 2 * mag
	case r <= 5:
		step = 5 * mag
	default:
		step = 10 * mag
	}
	return step * math.Ceil(max/step), step
}

func yTicks(left, plotTop, plotBottom, top, step float64) []Tick {
	var ticks []Tick
	for v := 0.0; v <= top+step/2; v += step {
		ticks = append(ticks, Tick{
			Label: fmt.Sprintf("%g", v),
			X:     left - 8,
			Y:     scaleY(plotTop, plotBottom, v, top),
		})
	}
	return ticks
}

func scaleY(top, bottom, v, max float64) float64 {
	return bottom - (bottom-top)*v/max
}

// Coord formats an SVG coordinate with one decimal.
func Coord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
