package dashboard

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/track247/track247/internal/ui"
)

// ScreenName is the template the dashboard renders with.
const ScreenName = "dashboard"

type StatView struct {
	StatCard
	Badge ui.Token
}

type ChannelView struct {
	ChannelMetric
	Style ui.Token
}

type ActivityView struct {
	Activity
	Style ui.Token
}

// View is the dashboard view model.
type View struct {
	Header       ui.Header
	Stats        []StatView
	Channels     []ChannelView
	Activities   []ActivityView
	QuickActions []QuickAction
}

// Screen renders the overview dashboard from a fixed dataset.
type Screen struct {
	data Data
}

func NewScreen(data Data) *Screen {
	return &Screen{data: data}
}

func (s *Screen) View() View {
	v := View{
		Header: ui.Header{
			Title:    "Dashboard",
			Subtitle: "Real-time insights into your patient follow-up performance",
			Actions:  []string{"Export Report", "New Campaign"},
		},
		QuickActions: append([]QuickAction(nil), s.data.QuickActions...),
	}
	for _, st := range s.data.Stats {
		v.Stats = append(v.Stats, StatView{StatCard: st, Badge: TrendToken(st.Trend)})
	}
	for _, ch := range s.data.Channels {
		v.Channels = append(v.Channels, ChannelView{ChannelMetric: ch, Style: ChannelToken(ch.Channel)})
	}
	for _, a := range s.data.Activities {
		v.Activities = append(v.Activities, ActivityView{Activity: a, Style: ActivityToken(a.Status)})
	}
	return v
}

type Handler struct {
	screen *Screen
	pages  ui.PageRenderer
}

func NewHandler(screen *Screen, pages ui.PageRenderer) *Handler {
	return &Handler{screen: screen, pages: pages}
}

// Show renders the dashboard.
func (h *Handler) Show(c echo.Context) error {
	return h.pages.RenderPage(c, http.StatusOK, ScreenName, h.screen.View())
}
