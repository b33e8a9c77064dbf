package dashboard

import "github.com/track247/track247/internal/ui"

var activityTokens = map[ActivityStatus]ui.Token{
	ActivitySuccess: {Class: "bg-green-100", Icon: "check-circle", IconClass: "text-green-600"},
	ActivityWarning: {Class: "bg-yellow-100", Icon: "alert-triangle", IconClass: "text-yellow-600"},
	ActivityPending: {Class: "bg-blue-100", Icon: "clock", IconClass: "text-blue-600"},
}

// ActivityToken returns the icon bubble for an activity. Unknown statuses get
// the blue bubble with no icon.
func ActivityToken(s ActivityStatus) ui.Token {
	if t, ok := activityTokens[s]; ok {
		return t
	}
	return ui.Token{Class: "bg-blue-100"}
}

// TrendToken returns the change badge for a stat card.
func TrendToken(t Trend) ui.Token {
	if t == TrendUp {
		return ui.Token{Variant: ui.VariantDefault}
	}
	return ui.Token{Variant: ui.VariantSecondary}
}

var channelTokens = map[string]ui.Token{
	"SMS":      {Icon: "message-square", IconClass: "text-green-600"},
	"Email":    {Icon: "mail", IconClass: "text-blue-600"},
	"WhatsApp": {Icon: "message-square", IconClass: "text-green-500"},
	"Phone":    {Icon: "phone", IconClass: "text-orange-600"},
}

// ChannelToken returns the icon for a channel name; unknown names get none.
func ChannelToken(channel string) ui.Token {
	return channelTokens[channel]
}

// ActivityStatuses lists every activity status with a dedicated style.
func ActivityStatuses() []ActivityStatus {
	return []ActivityStatus{ActivitySuccess, ActivityWarning, ActivityPending}
}
