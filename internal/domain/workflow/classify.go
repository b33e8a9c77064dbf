package workflow

import (
	"strings"

	"github.com/track247/track247/internal/ui"
)

var statusTokens = map[Status]ui.Token{
	StatusActive: {Class: "bg-green-100", Icon: "play", IconClass: "text-green-600", Variant: ui.VariantDefault},
	StatusPaused: {Class: "bg-yellow-100", Icon: "pause", IconClass: "text-yellow-600", Variant: ui.VariantSecondary},
	StatusDraft:  {Class: "bg-gray-100", Icon: "settings", IconClass: "text-gray-600", Variant: ui.VariantOutline},
}

// defaultStatus is a dimmed Draft style for statuses the builder does not know.
var defaultStatus = ui.Token{Class: "bg-gray-100", Icon: "settings", IconClass: "text-gray-400", Variant: ui.VariantOutline}

// StatusToken returns the icon tile and badge style for a workflow status.
func StatusToken(s Status) ui.Token {
	if t, ok := statusTokens[s]; ok {
		return t
	}
	return defaultStatus
}

// stepChannels is checked in order; the first channel named in a step label wins.
var stepChannels = []struct {
	name  string
	token ui.Token
}{
	{"SMS", ui.Token{Icon: "message-square", IconClass: "text-green-600"}},
	{"Email", ui.Token{Icon: "mail", IconClass: "text-blue-600"}},
	{"WhatsApp", ui.Token{Icon: "message-square", IconClass: "text-green-500"}},
	{"Phone", ui.Token{Icon: "phone", IconClass: "text-orange-600"}},
}

// StepToken returns the channel icon for a step label such as
// "Phone Call (48 hours)". Labels naming no known channel get no icon.
func StepToken(label string) ui.Token {
	for _, c := range stepChannels {
		if strings.Contains(label, c.name) {
			return c.token
		}
	}
	return ui.Token{}
}

// Statuses lists every status the builder knows.
func Statuses() []Status {
	return []Status{StatusActive, StatusPaused, StatusDraft}
}
