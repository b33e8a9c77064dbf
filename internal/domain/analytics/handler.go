package analytics

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/track247/track247/internal/platform/session"
	"github.com/track247/track247/internal/ui"
)

type Handler struct {
	screen *Screen
	pages  ui.PageRenderer
	states *session.Store[State]
	logger zerolog.Logger
}

func NewHandler(screen *Screen, pages ui.PageRenderer, states *session.Store[State], logger zerolog.Logger) *Handler {
	return &Handler{screen: screen, pages: pages, states: states, logger: logger}
}

// RegisterActions mounts the view-mode and tab endpoints.
func (h *Handler) RegisterActions(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.POST(Path+"/view", h.SetView, m...)
	g.POST(Path+"/tab", h.SetTab, m...)
}

// Show renders the dashboard in the session's current mode and tab.
func (h *Handler) Show(c echo.Context) error {
	st := h.states.Get(session.ID(c))
	return h.pages.RenderPage(c, http.StatusOK, ScreenName, h.screen.View(st))
}

// SetView switches between the detailed and simplified presentations.
func (h *Handler) SetView(c echo.Context) error {
	mode, err := ParseViewMode(c.FormValue("mode"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid := session.ID(c)
	st := h.states.Update(sid, func(cur State) State { return cur.WithMode(mode) })
	h.logger.Debug().Str("session_id", sid).Str("mode", string(st.Mode)).Msg("analytics view changed")

	return c.Redirect(http.StatusSeeOther, Path)
}

// SetTab selects a tab of the detailed view.
func (h *Handler) SetTab(c echo.Context) error {
	tab, err := ParseTab(c.FormValue("tab"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sid := session.ID(c)
	st := h.states.Update(sid, func(cur State) State { return cur.WithTab(tab) })
	h.logger.Debug().Str("session_id", sid).Str("tab", string(st.Tab)).Msg("analytics tab changed")

	return c.Redirect(http.StatusSeeOther, Path)
}
