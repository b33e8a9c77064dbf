package app

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/track247/track247/internal/ui"
)

// Shell wraps screen view models in the navigation layout.
type Shell struct {
	logger zerolog.Logger
}

func NewShell(logger zerolog.Logger) *Shell {
	return &Shell{logger: logger}
}

// RenderPage implements ui.PageRenderer. The active navigation entry follows
// the screen, so a screen rendered from any path highlights its own tab.
func (s *Shell) RenderPage(c echo.Context, status int, screen string, data any) error {
	page := ui.Page{Title: Brand, Screen: screen, Data: data}
	if r, ok := routeForScreen(screen); ok {
		page.Title = r.Label + " · " + Brand
		page.Nav = NavItems(r.Path)
	} else {
		page.Nav = NavItems("")
	}
	return c.Render(status, screen, page)
}

// HandleError is the echo HTTPErrorHandler. A GET for a path outside the route
// table gets the shell with an empty content region and a 404; everything else
// answers in plain text.
func (s *Shell) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		} else {
			msg = http.StatusText(code)
		}
	}

	method := c.Request().Method
	navigable := method == http.MethodGet || method == http.MethodHead
	if navigable && (code == http.StatusNotFound || code == http.StatusMethodNotAllowed) {
		if method == http.MethodHead {
			err = c.NoContent(http.StatusNotFound)
		} else {
			err = s.RenderPage(c, http.StatusNotFound, ui.BlankScreen, nil)
		}
		if err != nil {
			s.logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("render blank page")
		}
		return
	}

	if code >= http.StatusInternalServerError {
		msg = http.StatusText(code)
	}
	if method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.String(code, msg)
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("write error response")
	}
}
