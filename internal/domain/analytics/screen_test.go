package analytics

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/track247/track247/internal/platform/session"
)

func testData() Data {
	return Data{
		KeyMetrics: []KeyMetric{{Label: "Overall Response Rate", Value: "73.2%"}},
		Responses: []ResponsePoint{
			{Date: "Jan 1", SMS: 72, Email: 45, WhatsApp: 85, Phone: 58},
			{Date: "Jan 2", SMS: 75, Email: 48, WhatsApp: 87, Phone: 61},
		},
		Shares:      []ChannelShare{{Name: "SMS", Value: 35, Color: ColorSMS}, {Name: "Email", Value: 65, Color: ColorEmail}},
		Hourly:      []HourlyConversion{{Hour: "9AM", Conversions: 45}, {Hour: "10AM", Conversions: 52}},
		Performance: []ChannelPerformance{{Channel: "SMS", Rate: 72}},
		Funnel:      []FunnelStage{{Stage: "Messages Sent", Count: 4000, Percentage: 100}},
		Categories:  []ResponseCategory{{Category: "Confirmed", Count: 10}},
		Scores:      []Score{{Value: 87, Label: "Overall Engagement Score", Tone: "blue"}},
		Improvements: []Insight{{Text: "WhatsApp engagement increased 15%", Tone: "green"}},
		FocusAreas:  []FocusArea{{Area: "Email response rates", Badge: "Medium Priority", Variant: "outline", Tone: "yellow"}},
	}
}

func TestScreenView_Simplified(t *testing.T) {
	v := NewScreen(testData()).View(State{Mode: ModeSimplified, Tab: TabOverview})

	if v.Detailed || len(v.Tabs) != 0 {
		t.Errorf("simplified view has tabs: %+v", v.Tabs)
	}
	if len(v.Scores) != 1 || v.Scores[0].Value != 87 {
		t.Fatalf("unexpected scores: %+v", v.Scores)
	}
	if v.Scores[0].Container != "bg-gradient-to-br from-blue-50 to-blue-100" {
		t.Errorf("unexpected container %q", v.Scores[0].Container)
	}
	if v.Improvements[0].Dot != "bg-green-500" {
		t.Errorf("unexpected dot %q", v.Improvements[0].Dot)
	}
	if len(v.KeyMetrics) != 0 || len(v.ResponseChart.Lines) != 0 {
		t.Error("simplified view should not carry detailed sections")
	}
}

func TestScreenView_ModeButtons(t *testing.T) {
	v := NewScreen(testData()).View(InitialState())
	if len(v.Modes) != 2 {
		t.Fatalf("expected 2 mode buttons, got %d", len(v.Modes))
	}
	if !v.Modes[0].Active || v.Modes[1].Active {
		t.Errorf("expected detailed active: %+v", v.Modes)
	}
	if v.ModeAction != "/analytics/view" || v.TabAction != "/analytics/tab" {
		t.Errorf("unexpected actions %s %s", v.ModeAction, v.TabAction)
	}
}

func TestScreenView_DetailedTabs(t *testing.T) {
	s := NewScreen(testData())

	t.Run("overview", func(t *testing.T) {
		v := s.View(State{Mode: ModeDetailed, Tab: TabOverview})
		if len(v.Tabs) != 4 || !v.Tabs[0].Active {
			t.Errorf("unexpected tabs: %+v", v.Tabs)
		}
		if len(v.KeyMetrics) != 1 || len(v.ResponseChart.Lines) != 4 || len(v.Legend) != 4 {
			t.Errorf("overview incomplete: metrics=%d lines=%d", len(v.KeyMetrics), len(v.ResponseChart.Lines))
		}
		if len(v.Scores) != 0 {
			t.Error("detailed view should not carry scores")
		}
	})

	t.Run("channels", func(t *testing.T) {
		v := s.View(State{Mode: ModeDetailed, Tab: TabChannels})
		if len(v.ShareChart.Slices) != 2 || len(v.Performance) != 1 {
			t.Errorf("channels incomplete: %+v", v.ShareChart)
		}
		if len(v.KeyMetrics) != 0 {
			t.Error("only the active tab should be filled")
		}
	})

	t.Run("timing", func(t *testing.T) {
		v := s.View(State{Mode: ModeDetailed, Tab: TabTiming})
		if len(v.HourlyChart.Bars) != 2 {
			t.Errorf("expected 2 bars, got %d", len(v.HourlyChart.Bars))
		}
	})

	t.Run("conversion", func(t *testing.T) {
		v := s.View(State{Mode: ModeDetailed, Tab: TabConversion})
		if len(v.Funnel) != 1 || len(v.Categories) != 1 {
			t.Errorf("conversion incomplete: %+v %+v", v.Funnel, v.Categories)
		}
	})
}

type recordingPages struct {
	data any
}

func (r *recordingPages) RenderPage(c echo.Context, status int, screen string, data any) error {
	r.data = data
	return c.NoContent(status)
}

func postForm(e *echo.Echo, target string, form url.Values, sid string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(session.ContextKey, sid)
	return c, rec
}

func TestHandler_SetViewAndTab(t *testing.T) {
	states := session.NewStore(0, InitialState)
	h := NewHandler(NewScreen(testData()), &recordingPages{}, states, zerolog.Nop())
	e := echo.New()

	c, rec := postForm(e, "/analytics/tab", url.Values{"tab": {"timing"}}, "s1")
	if err := h.SetTab(c); err != nil {
		t.Fatalf("SetTab: %v", err)
	}
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != Path {
		t.Errorf("expected 303 to %s, got %d", Path, rec.Code)
	}
	if states.Get("s1").Tab != TabTiming {
		t.Errorf("tab not stored: %+v", states.Get("s1"))
	}

	c, _ = postForm(e, "/analytics/view", url.Values{"mode": {"simplified"}}, "s1")
	if err := h.SetView(c); err != nil {
		t.Fatalf("SetView: %v", err)
	}
	if got := states.Get("s1"); got != (State{Mode: ModeSimplified, Tab: TabOverview}) {
		t.Errorf("unexpected state: %+v", got)
	}
	if got := states.Get("s2"); got != InitialState() {
		t.Errorf("other session changed: %+v", got)
	}
}

func TestHandler_RejectsUnknownValues(t *testing.T) {
	states := session.NewStore(0, InitialState)
	h := NewHandler(NewScreen(testData()), &recordingPages{}, states, zerolog.Nop())
	e := echo.New()

	c, _ := postForm(e, "/analytics/view", url.Values{"mode": {"fancy"}}, "s1")
	if he, ok := h.SetView(c).(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Error("expected 400 for unknown mode")
	}
	c, _ = postForm(e, "/analytics/tab", url.Values{}, "s1")
	if he, ok := h.SetTab(c).(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Error("expected 400 for missing tab")
	}
	if states.Get("s1") != InitialState() {
		t.Error("rejected request changed state")
	}
}

func TestHandler_Show(t *testing.T) {
	pages := &recordingPages{}
	states := session.NewStore(0, InitialState)
	states.Update("s1", func(State) State { return State{Mode: ModeSimplified, Tab: TabOverview} })
	h := NewHandler(NewScreen(testData()), pages, states, zerolog.Nop())

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, Path, nil), httptest.NewRecorder())
	c.Set(session.ContextKey, "s1")
	if err := h.Show(c); err != nil {
		t.Fatalf("Show: %v", err)
	}
	v, ok := pages.data.(View)
	if !ok || v.Detailed {
		t.Errorf("expected simplified view, got %+v", pages.data)
	}
}
