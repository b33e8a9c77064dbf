package workflow

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/track247/track247/internal/platform/session"
	"github.com/track247/track247/internal/ui"
)

type Handler struct {
	screen *Screen
	pages  ui.PageRenderer
	states *session.Store[[]Definition]
	logger zerolog.Logger
}

func NewHandler(screen *Screen, pages ui.PageRenderer, states *session.Store[[]Definition], logger zerolog.Logger) *Handler {
	return &Handler{screen: screen, pages: pages, states: states, logger: logger}
}

// RegisterActions mounts the workflow switch endpoint.
func (h *Handler) RegisterActions(g *echo.Group, m ...echo.MiddlewareFunc) {
	g.POST(Path+"/:id/toggle", h.Toggle, m...)
}

// Show renders the builder with the session's workflow list.
func (h *Handler) Show(c echo.Context) error {
	list := h.states.Get(session.ID(c))
	return h.pages.RenderPage(c, http.StatusOK, ScreenName, h.screen.View(list))
}

// Toggle flips one workflow between Active and Paused for this session and
// sends the browser back to the builder.
func (h *Handler) Toggle(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid workflow id")
	}

	sid := session.ID(c)
	list := h.states.Update(sid, func(cur []Definition) []Definition {
		return Toggle(cur, id)
	})

	evt := h.logger.Debug().Str("session_id", sid).Int("workflow_id", id)
	for _, w := range list {
		if w.ID == id {
			evt = evt.Str("status", string(w.Status))
		}
	}
	evt.Msg("workflow toggled")

	return c.Redirect(http.StatusSeeOther, Path)
}
