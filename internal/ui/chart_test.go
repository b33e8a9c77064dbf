package ui

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestNiceScale(t *testing.T) {
	tests := []struct {
		max, top, step float64
	}{
		{0, 1, 1},
		{-5, 1, 1},
		{100, 100, 50},
		{87, 100, 50},
		{52, 60, 20},
		{7, 8, 2},
		{1821, 2000, 500},
	}
	for _, tt := range tests {
		top, step := niceScale(tt.max)
		if top != tt.top || step != tt.step {
			t.Errorf("niceScale(%g) = (%g, %g), want (%g, %g)", tt.max, top, step, tt.top, tt.step)
		}
		if tt.max > 0 && top < tt.max {
			t.Errorf("niceScale(%g): top %g below max", tt.max, top)
		}
	}
}

func parsePoints(t *testing.T, s string) [][2]float64 {
	t.Helper()
	var out [][2]float64
	for _, p := range strings.Fields(s) {
		xy := strings.Split(p, ",")
		if len(xy) != 2 {
			t.Fatalf("bad point %q", p)
		}
		x, err1 := strconv.ParseFloat(xy[0], 64)
		y, err2 := strconv.ParseFloat(xy[1], 64)
		if err1 != nil || err2 != nil {
			t.Fatalf("bad point %q", p)
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}

func TestNewLineChart_StaysInPlotArea(t *testing.T) {
	labels := []string{"Jan 1", "Jan 2", "Jan 3"}
	series := []Series{
		{Name: "sms", Values: []float64{72, 75, 78}},
		{Name: "email", Values: []float64{0, 48, 99, 500}},
	}
	lc := NewLineChart(labels, series, 720, 300)

	if len(lc.XTicks) != 3 || len(lc.Lines) != 2 {
		t.Fatalf("unexpected chart: %d ticks, %d lines", len(lc.XTicks), len(lc.Lines))
	}
	for _, l := range lc.Lines {
		pts := parsePoints(t, l.Points)
		if len(pts) != 3 {
			t.Errorf("%s: expected 3 points, got %d", l.Name, len(pts))
		}
		for _, p := range pts {
			if p[0] < lc.Left || p[0] > lc.Right || p[1] < lc.Top-0.1 || p[1] > lc.Bottom+0.1 {
				t.Errorf("%s: point %v outside plot area", l.Name, p)
			}
		}
	}
	if lc.XTicks[0].X != lc.Left || lc.XTicks[2].X != lc.Right {
		t.Errorf("x ticks should span the plot: %+v", lc.XTicks)
	}
	if lc.YTicks[0].Label != "0" || lc.YTicks[0].Y != lc.Bottom {
		t.Errorf("first y tick should be 0 at the bottom: %+v", lc.YTicks[0])
	}
}

func TestNewLineChart_NegativeValuesClampToBaseline(t *testing.T) {
	lc := NewLineChart([]string{"Jan 1", "Jan 2"}, []Series{{Name: "sms", Values: []float64{-40, 50}}}, 720, 300)

	pts := parsePoints(t, lc.Lines[0].Points)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
	if math.Abs(pts[0][1]-lc.Bottom) > 0.1 {
		t.Errorf("negative value should sit on the baseline %g, got %g", lc.Bottom, pts[0][1])
	}
	for _, p := range pts {
		if p[1] < lc.Top-0.1 || p[1] > lc.Bottom+0.1 {
			t.Errorf("point %v outside plot area", p)
		}
	}
}

func TestNewLineChart_SingleLabel(t *testing.T) {
	lc := NewLineChart([]string{"Jan 1"}, []Series{{Values: []float64{10}}}, 100, 100)
	pts := parsePoints(t, lc.Lines[0].Points)
	if len(pts) != 1 || pts[0][0] != (lc.Left+lc.Right)/2 {
		t.Errorf("single point should be centred: %v", pts)
	}
}

func TestNewBarChart(t *testing.T) {
	bc := NewBarChart([]string{"9AM", "10AM", "11AM"}, []float64{45, 52, -3}, "#3B82F6", 720, 300)

	if len(bc.Bars) != 3 {
		t.Fatalf("expected 3 bars, got %d", len(bc.Bars))
	}
	for _, b := range bc.Bars {
		if b.Height < 0 || b.Y < bc.Top || b.Y+b.Height > bc.Bottom+1e-9 {
			t.Errorf("bar %s outside plot: %+v", b.Label, b)
		}
		if b.X < bc.Left || b.X+b.Width > bc.Right+1e-9 {
			t.Errorf("bar %s outside plot horizontally: %+v", b.Label, b)
		}
	}
	if bc.Bars[1].Height <= bc.Bars[0].Height {
		t.Error("taller value should give a taller bar")
	}
	if bc.Bars[2].Height != 0 {
		t.Errorf("negative value should draw no bar, got %g", bc.Bars[2].Height)
	}
}

func TestNewBarChart_MismatchedInput(t *testing.T) {
	bc := NewBarChart([]string{"a", "b"}, []float64{1}, "", 100, 100)
	if len(bc.Bars) != 1 {
		t.Errorf("expected 1 bar, got %d", len(bc.Bars))
	}
	if empty := NewBarChart(nil, nil, "", 100, 100); len(empty.Bars) != 0 {
		t.Error("expected no bars")
	}
}

func TestNewPieChart(t *testing.T) {
	pc := NewPieChart([]PieInput{
		{Label: "SMS", Value: 35},
		{Label: "Email", Value: 28},
		{Label: "Zero", Value: 0},
		{Label: "WhatsApp", Value: 22},
		{Label: "Phone", Value: 15},
	}, 80, 360, 300)

	if len(pc.Slices) != 4 {
		t.Fatalf("expected 4 slices, got %d", len(pc.Slices))
	}
	if pc.Slices[0].Label != "SMS: 35%" {
		t.Errorf("unexpected label %q", pc.Slices[0].Label)
	}
	for _, s := range pc.Slices {
		if !strings.HasPrefix(s.Path, "M ") || !strings.HasSuffix(s.Path, " Z") {
			t.Errorf("bad path %q", s.Path)
		}
		d := math.Hypot(s.LabelX-pc.CX, s.LabelY-pc.CY)
		if math.Abs(d-(pc.Radius+24)) > 1e-6 {
			t.Errorf("label %s not on the label ring", s.Label)
		}
	}
}

func TestNewPieChart_SingleAndEmpty(t *testing.T) {
	full := NewPieChart([]PieInput{{Label: "All", Value: 100}}, 50, 200, 200)
	if len(full.Slices) != 1 || !strings.Contains(full.Slices[0].Path, " a ") {
		t.Errorf("full circle should use two arcs: %+v", full.Slices)
	}
	if empty := NewPieChart([]PieInput{{Value: 0}}, 50, 200, 200); len(empty.Slices) != 0 {
		t.Error("expected no slices")
	}
}

func TestCoord(t *testing.T) {
	if got := Coord(12.345); got != "12.3" {
		t.Errorf("Coord = %q", got)
	}
}
