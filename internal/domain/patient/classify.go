package patient

import "github.com/track247/track247/internal/ui"

var statusTokens = map[Status]ui.Token{
	StatusResponded:  {Class: "bg-green-100 text-green-800"},
	StatusScheduled:  {Class: "bg-blue-100 text-blue-800"},
	StatusPending:    {Class: "bg-yellow-100 text-yellow-800"},
	StatusNoResponse: {Class: "bg-red-100 text-red-800"},
}

var priorityTokens = map[Priority]ui.Token{
	PriorityHigh:   {Class: "bg-red-100 text-red-800"},
	PriorityMedium: {Class: "bg-yellow-100 text-yellow-800"},
	PriorityLow:    {Class: "bg-green-100 text-green-800"},
}

var channelTokens = map[Channel]ui.Token{
	ChannelSMS:      {Icon: "message-square", IconClass: "text-green-600"},
	ChannelEmail:    {Icon: "mail", IconClass: "text-blue-600"},
	ChannelWhatsApp: {Icon: "message-square", IconClass: "text-green-500"},
	ChannelPhone:    {Icon: "phone", IconClass: "text-orange-600"},
}

// StatusToken returns the badge style for a follow-up status.
func StatusToken(s Status) ui.Token {
	if t, ok := statusTokens[s]; ok {
		return t
	}
	return ui.Neutral
}

// PriorityToken returns the badge style for a priority.
func PriorityToken(p Priority) ui.Token {
	if t, ok := priorityTokens[p]; ok {
		return t
	}
	return ui.Neutral
}

// ChannelToken returns the icon for a contact channel. Unknown channels get
// no icon.
func ChannelToken(c Channel) ui.Token {
	return channelTokens[c]
}

// Statuses lists every status the list knows how to colour.
func Statuses() []Status {
	return []Status{StatusResponded, StatusPending, StatusScheduled, StatusNoResponse}
}

// Priorities lists every known priority.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// Channels lists every known contact channel.
func Channels() []Channel {
	return []Channel{ChannelSMS, ChannelEmail, ChannelWhatsApp, ChannelPhone}
}
