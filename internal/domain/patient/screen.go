package patient

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/track247/track247/internal/ui"
)

// ScreenName is the template the patient list renders with.
const ScreenName = "patients"

// Row is a queue row with its display tokens resolved.
type Row struct {
	Record
	StatusStyle   ui.Token
	PriorityStyle ui.Token
	ChannelStyle  ui.Token
}

// View is the patient list view model.
type View struct {
	Header            ui.Header
	SearchPlaceholder string
	Filters           []string
	Rows              []Row
	QuickStats        []QuickStat
}

// Screen renders the follow-up queue from a fixed dataset.
type Screen struct {
	data Data
}

func NewScreen(data Data) *Screen {
	return &Screen{data: data}
}

// View builds the view model. The search box and filter buttons are inert:
// the queue is always shown in dataset order.
func (s *Screen) View() View {
	rows := make([]Row, 0, len(s.data.Patients))
	for _, p := range s.data.Patients {
		rows = append(rows, Row{
			Record:        p,
			StatusStyle:   StatusToken(p.Status),
			PriorityStyle: PriorityToken(p.Priority),
			ChannelStyle:  ChannelToken(p.Channel),
		})
	}
	return View{
		Header: ui.Header{
			Title:    "Patient Management",
			Subtitle: "Track and manage patient follow-ups across all channels",
			Actions:  []string{"Add Patient"},
		},
		SearchPlaceholder: "Search patients by ID, name, or contact...",
		Filters:           []string{"Filter by Status", "Filter by Priority", "Export List"},
		Rows:              rows,
		QuickStats:        append([]QuickStat(nil), s.data.QuickStats...),
	}
}

type Handler struct {
	screen *Screen
	pages  ui.PageRenderer
}

func NewHandler(screen *Screen, pages ui.PageRenderer) *Handler {
	return &Handler{screen: screen, pages: pages}
}

// Show renders the patient list.
func (h *Handler) Show(c echo.Context) error {
	return h.pages.RenderPage(c, http.StatusOK, ScreenName, h.screen.View())
}
