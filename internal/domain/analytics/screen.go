package analytics

import (
	"fmt"

	"github.com/track247/track247/internal/ui"
)

// ScreenName is the template the analytics dashboard renders with.
const ScreenName = "analytics"

// Chart viewports.
const (
	chartWidth  = 720
	chartHeight = 300
	pieRadius   = 80
)

type ModeButton struct {
	Mode   ViewMode
	Label  string
	Active bool
	Class  string
}

type TabButton struct {
	Tab    Tab
	Label  string
	Active bool
}

// ScoreView carries the classes derived from a score's tone.
type ScoreView struct {
	Score
	Container  string
	ValueClass string
	LabelClass string
	NoteClass  string
}

type InsightView struct {
	Insight
	Container string
	Dot       string
}

type FocusView struct {
	FocusArea
	Container  string
	BadgeClass string
}

// View is the analytics dashboard view model. Only the section selected by
// the state is filled in.
type View struct {
	Header     ui.Header
	State      State
	Detailed   bool
	ModeAction string
	TabAction  string
	Modes      []ModeButton
	Tabs       []TabButton

	KeyMetrics    []KeyMetric
	ResponseChart ui.LineChart
	Legend        []ui.Series
	ShareChart    ui.PieChart
	Performance   []ChannelPerformance
	HourlyChart   ui.BarChart
	Funnel        []FunnelStage
	Categories    []ResponseCategory

	Scores       []ScoreView
	Improvements []InsightView
	FocusAreas   []FocusView
}

// Screen renders the analytics dashboard from a fixed dataset.
type Screen struct {
	data Data
}

func NewScreen(data Data) *Screen {
	return &Screen{data: data}
}

// View builds the page for the given state.
func (s *Screen) View(st State) View {
	v := View{
		Header: ui.Header{
			Title:    "Analytics Dashboard",
			Subtitle: "Comprehensive insights into your patient engagement performance",
			Actions:  []string{"Filter", "Export"},
		},
		State:      st,
		Detailed:   st.Mode == ModeDetailed,
		ModeAction: Path + "/view",
		TabAction:  Path + "/tab",
	}
	for _, m := range Modes() {
		b := ModeButton{Mode: m, Label: m.Label(), Active: m == st.Mode}
		if b.Active {
			b.Class = ui.BadgeClass(ui.VariantDefault)
		} else {
			b.Class = ui.BadgeClass(ui.VariantOutline)
		}
		v.Modes = append(v.Modes, b)
	}

	if !v.Detailed {
		s.fillSimplified(&v)
		return v
	}

	for _, t := range Tabs() {
		v.Tabs = append(v.Tabs, TabButton{Tab: t, Label: t.Label(), Active: t == st.Tab})
	}
	switch st.Tab {
	case TabChannels:
		v.ShareChart = s.shareChart()
		v.Performance = append([]ChannelPerformance(nil), s.data.Performance...)
	case TabTiming:
		v.HourlyChart = s.hourlyChart()
	case TabConversion:
		v.Funnel = append([]FunnelStage(nil), s.data.Funnel...)
		v.Categories = append([]ResponseCategory(nil), s.data.Categories...)
	default:
		v.KeyMetrics = append([]KeyMetric(nil), s.data.KeyMetrics...)
		v.Legend = s.responseSeries()
		v.ResponseChart = s.responseChart(v.Legend)
	}
	return v
}

func (s *Screen) fillSimplified(v *View) {
	for _, sc := range s.data.Scores {
		v.Scores = append(v.Scores, ScoreView{
			Score:      sc,
			Container:  fmt.Sprintf("bg-gradient-to-br from-%s-50 to-%s-100", sc.Tone, sc.Tone),
			ValueClass: fmt.Sprintf("text-%s-600", sc.Tone),
			LabelClass: fmt.Sprintf("text-%s-800", sc.Tone),
			NoteClass:  fmt.Sprintf("text-%s-600", sc.Tone),
		})
	}
	for _, in := range s.data.Improvements {
		v.Improvements = append(v.Improvements, InsightView{
			Insight:   in,
			Container: fmt.Sprintf("bg-%s-50", in.Tone),
			Dot:       fmt.Sprintf("bg-%s-500", in.Tone),
		})
	}
	for _, f := range s.data.FocusAreas {
		v.FocusAreas = append(v.FocusAreas, FocusView{
			FocusArea:  f,
			Container:  fmt.Sprintf("bg-%s-50", f.Tone),
			BadgeClass: ui.BadgeClass(f.Variant),
		})
	}
}

func (s *Screen) responseSeries() []ui.Series {
	sms := ui.Series{Name: "sms", Color: ColorSMS}
	email := ui.Series{Name: "email", Color: ColorEmail}
	whatsapp := ui.Series{Name: "whatsapp", Color: ColorWhatsApp}
	phone := ui.Series{Name: "phone", Color: ColorPhone}
	for _, p := range s.data.Responses {
		sms.Values = append(sms.Values, p.SMS)
		email.Values = append(email.Values, p.Email)
		whatsapp.Values = append(whatsapp.Values, p.WhatsApp)
		phone.Values = append(phone.Values, p.Phone)
	}
	return []ui.Series{sms, email, whatsapp, phone}
}

func (s *Screen) responseChart(series []ui.Series) ui.LineChart {
	labels := make([]string, 0, len(s.data.Responses))
	for _, p := range s.data.Responses {
		labels = append(labels, p.Date)
	}
	return ui.NewLineChart(labels, series, chartWidth, chartHeight)
}

func (s *Screen) shareChart() ui.PieChart {
	in := make([]ui.PieInput, 0, len(s.data.Shares))
	for _, sh := range s.data.Shares {
		in = append(in, ui.PieInput{Label: sh.Name, Color: sh.Color, Value: sh.Value})
	}
	return ui.NewPieChart(in, pieRadius, chartWidth/2, chartHeight)
}

func (s *Screen) hourlyChart() ui.BarChart {
	labels := make([]string, 0, len(s.data.Hourly))
	values := make([]float64, 0, len(s.data.Hourly))
	for _, h := range s.data.Hourly {
		labels = append(labels, h.Hour)
		values = append(values, float64(h.Conversions))
	}
	return ui.NewBarChart(labels, values, ColorEmail, chartWidth, chartHeight)
}
