// Package app assembles the screens into one echo server: the static route
// table, the application shell around every page and the middleware chain.
package app

import (
	"github.com/track247/track247/internal/domain/analytics"
	"github.com/track247/track247/internal/domain/compliance"
	"github.com/track247/track247/internal/domain/dashboard"
	"github.com/track247/track247/internal/domain/patient"
	"github.com/track247/track247/internal/domain/workflow"
	"github.com/track247/track247/internal/ui"
)

// Brand is appended to every page title.
const Brand = "247 TRACK"

// Route binds a navigable path to its screen.
type Route struct {
	Path   string
	Label  string
	Icon   string
	Screen string
}

// routes is in navigation order.
var routes = []Route{
	{Path: dashboard.Path, Label: "Dashboard", Icon: "activity", Screen: dashboard.ScreenName},
	{Path: patient.Path, Label: "Patients", Icon: "users", Screen: patient.ScreenName},
	{Path: workflow.Path, Label: "Workflows", Icon: "workflow", Screen: workflow.ScreenName},
	{Path: analytics.Path, Label: "Analytics", Icon: "bar-chart-3", Screen: analytics.ScreenName},
	{Path: compliance.Path, Label: "Compliance", Icon: "shield", Screen: compliance.ScreenName},
}

// Routes returns the route table in navigation order.
func Routes() []Route {
	return append([]Route(nil), routes...)
}

// Match finds the route for path by exact comparison.
func Match(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

// ScreenFor resolves the screen rendered at path.
func ScreenFor(path string) (string, bool) {
	r, ok := Match(path)
	return r.Screen, ok
}

func routeForScreen(screen string) (Route, bool) {
	for _, r := range routes {
		if r.Screen == screen {
			return r, true
		}
	}
	return Route{}, false
}

// NavItems returns every route as a navigation entry, marking the one whose
// path equals current.
func NavItems(current string) []ui.NavItem {
	items := make([]ui.NavItem, 0, len(routes))
	for _, r := range routes {
		items = append(items, ui.NavItem{
			Path:   r.Path,
			Label:  r.Label,
			Icon:   r.Icon,
			Active: r.Path == current,
		})
	}
	return items
}
