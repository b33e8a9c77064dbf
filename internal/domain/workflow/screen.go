package workflow

import (
	"fmt"

	"github.com/track247/track247/internal/ui"
)

// ScreenName is the template the workflow builder renders with.
const ScreenName = "workflows"

// StepView is a step label with its channel icon.
type StepView struct {
	Label string
	Style ui.Token
}

// Card is one workflow as rendered in the builder.
type Card struct {
	Definition
	Style        ui.Token
	Checked      bool
	Steps        []StepView
	ToggleAction string
}

// View is the workflow builder view model.
type View struct {
	Header    ui.Header
	Templates []Template
	Cards     []Card
}

// Screen renders the workflow builder. The templates are fixed; the workflow
// list comes from the caller's view state.
type Screen struct {
	data Data
}

func NewScreen(data Data) *Screen {
	return &Screen{data: data}
}

// Initial returns a fresh copy of the seeded workflow list, the starting view
// state of every session.
func (s *Screen) Initial() []Definition {
	return Clone(s.data.Workflows)
}

// View builds the view model for the given workflow list.
func (s *Screen) View(workflows []Definition) View {
	cards := make([]Card, 0, len(workflows))
	for _, w := range workflows {
		steps := make([]StepView, 0, len(w.Steps))
		for _, st := range w.Steps {
			label := st.Label()
			steps = append(steps, StepView{Label: label, Style: StepToken(label)})
		}
		cards = append(cards, Card{
			Definition:   w,
			Style:        StatusToken(w.Status),
			Checked:      w.Status == StatusActive,
			Steps:        steps,
			ToggleAction: fmt.Sprintf("%s/%d/toggle", Path, w.ID),
		})
	}
	return View{
		Header: ui.Header{
			Title:    "Workflow Builder",
			Subtitle: "Create and manage automated patient follow-up sequences",
			Actions:  []string{"Create Workflow"},
		},
		Templates: append([]Template(nil), s.data.Templates...),
		Cards:     cards,
	}
}
