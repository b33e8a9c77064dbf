package compliance

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/track247/track247/internal/ui"
)

// ScreenName is the template the compliance dashboard renders with.
const ScreenName = "compliance"

type CheckView struct {
	Check
	Style ui.Token
}

type CategoryView struct {
	Name   string
	Status Status
	Score  int
	Style  ui.Token
	Checks []CheckView
}

// View is the compliance dashboard view model.
type View struct {
	Header      ui.Header
	Summary     []Summary
	Categories  []CategoryView
	AuditLog    []AuditEntry
	Protections []ProtectionCard
}

// Screen renders the compliance dashboard from a fixed dataset.
type Screen struct {
	data Data
}

func NewScreen(data Data) *Screen {
	return &Screen{data: data}
}

func (s *Screen) View() View {
	v := View{
		Header: ui.Header{
			Title:    "Compliance Dashboard",
			Subtitle: "HIPAA/GDPR compliance monitoring and audit trails",
			Actions:  []string{"Export Audit Log", "Compliance Settings"},
		},
		Summary:     append([]Summary(nil), s.data.Summary...),
		AuditLog:    append([]AuditEntry(nil), s.data.AuditLog...),
		Protections: append([]ProtectionCard(nil), s.data.Protections...),
	}
	for _, c := range s.data.Categories {
		cv := CategoryView{Name: c.Name, Status: c.Status, Score: c.Score, Style: StatusToken(c.Status)}
		for _, ch := range c.Checks {
			cv.Checks = append(cv.Checks, CheckView{Check: ch, Style: CheckToken(ch.Status)})
		}
		v.Categories = append(v.Categories, cv)
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

// Show renders the compliance dashboard.
func (h *Handler) Show(c echo.Context) error {
	return h.pages.RenderPage(c, http.StatusOK, ScreenName, h.screen.View())
}
