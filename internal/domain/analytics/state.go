package analytics

import "fmt"

// ViewMode selects between the two analytics presentations.
type ViewMode string

const (
	ModeDetailed   ViewMode = "detailed"
	ModeSimplified ViewMode = "simplified"
)

// Tab is a section of the detailed view.
type Tab string

const (
	TabOverview   Tab = "overview"
	TabChannels   Tab = "channels"
	TabTiming     Tab = "timing"
	TabConversion Tab = "conversion"
)

// Modes lists the view modes in display order.
func Modes() []ViewMode {
	return []ViewMode{ModeDetailed, ModeSimplified}
}

// Tabs lists the detailed-view tabs in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabChannels, TabTiming, TabConversion}
}

// Label is the button caption for a mode.
func (m ViewMode) Label() string {
	switch m {
	case ModeDetailed:
		return "Detailed Graphs (Version A)"
	case ModeSimplified:
		return "Simplified Scores (Version B)"
	}
	return string(m)
}

func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "Overview"
	case TabChannels:
		return "Channels"
	case TabTiming:
		return "Timing"
	case TabConversion:
		return "Conversion"
	}
	return string(t)
}

func ParseViewMode(s string) (ViewMode, error) {
	for _, m := range Modes() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown view mode %q", s)
}

func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown tab %q", s)
}

// State is a session's analytics view state.
type State struct {
	Mode ViewMode
	Tab  Tab
}

// InitialState is the state every new session starts with.
func InitialState() State {
	return State{Mode: ModeDetailed, Tab: TabOverview}
}

// WithMode switches the presentation. Leaving and re-entering the detailed
// view starts again at the overview tab; selecting the current mode changes
// nothing.
func (s State) WithMode(m ViewMode) State {
	if s.Mode == m {
		return s
	}
	return State{Mode: m, Tab: TabOverview}
}

// WithTab selects a detailed-view tab.
func (s State) WithTab(t Tab) State {
	s.Tab = t
	return s
}
