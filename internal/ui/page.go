package ui

import "github.com/labstack/echo/v4"

// NavItem is one entry of the navigation bar.
type NavItem struct {
	Path   string
	Label  string
	Icon   string
	Active bool
}

// Page is the envelope every screen template is executed with.
type Page struct {
	Title  string
	Nav    []NavItem
	Screen string
	Data   any
}

// PageRenderer wraps a screen's view model in the application shell and
// writes it to the response.
type PageRenderer interface {
	RenderPage(c echo.Context, status int, screen string, data any) error
}

// Header is the title row at the top of a screen. Actions are rendered as
// inert buttons.
type Header struct {
	Title    string
	Subtitle string
	Actions  []string
}
