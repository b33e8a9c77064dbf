package analytics

import "testing"

func TestInitialState(t *testing.T) {
	st := InitialState()
	if st.Mode != ModeDetailed || st.Tab != TabOverview {
		t.Errorf("unexpected initial state: %+v", st)
	}
}

func TestParseViewMode(t *testing.T) {
	for _, m := range Modes() {
		got, err := ParseViewMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseViewMode(%q) = %q, %v", m, got, err)
		}
	}
	for _, bad := range []string{"", "Detailed", "graphs"} {
		if _, err := ParseViewMode(bad); err == nil {
			t.Errorf("ParseViewMode(%q): expected error", bad)
		}
	}
}

func TestParseTab(t *testing.T) {
	for _, tab := range Tabs() {
		got, err := ParseTab(string(tab))
		if err != nil || got != tab {
			t.Errorf("ParseTab(%q) = %q, %v", tab, got, err)
		}
	}
	if _, err := ParseTab("billing"); err == nil {
		t.Error("expected error for unknown tab")
	}
}

func TestWithMode(t *testing.T) {
	tests := []struct {
		name string
		from State
		mode ViewMode
		want State
	}{
		{"same mode keeps tab", State{ModeDetailed, TabTiming}, ModeDetailed, State{ModeDetailed, TabTiming}},
		{"to simplified", State{ModeDetailed, TabTiming}, ModeSimplified, State{ModeSimplified, TabOverview}},
		{"back to detailed resets tab", State{ModeSimplified, TabChannels}, ModeDetailed, State{ModeDetailed, TabOverview}},
		{"simplified twice", State{ModeSimplified, TabOverview}, ModeSimplified, State{ModeSimplified, TabOverview}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.WithMode(tt.mode); got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWithMode_Idempotent(t *testing.T) {
	for _, m := range Modes() {
		once := InitialState().WithTab(TabConversion).WithMode(m)
		if twice := once.WithMode(m); twice != once {
			t.Errorf("WithMode(%s) not idempotent: %+v then %+v", m, once, twice)
		}
	}
}

func TestWithTab(t *testing.T) {
	st := InitialState().WithTab(TabConversion)
	if st.Tab != TabConversion || st.Mode != ModeDetailed {
		t.Errorf("unexpected state: %+v", st)
	}
}

func TestLabels(t *testing.T) {
	if ModeDetailed.Label() != "Detailed Graphs (Version A)" {
		t.Errorf("unexpected label %q", ModeDetailed.Label())
	}
	if ModeSimplified.Label() != "Simplified Scores (Version B)" {
		t.Errorf("unexpected label %q", ModeSimplified.Label())
	}
	if TabTiming.Label() != "Timing" {
		t.Errorf("unexpected label %q", TabTiming.Label())
	}
}
