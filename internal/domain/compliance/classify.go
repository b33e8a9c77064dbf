package compliance

import "github.com/track247/track247/internal/ui"

var statusTokens = map[Status]ui.Token{
	StatusCompliant:    {Class: "bg-green-100 text-green-800"},
	StatusWarning:      {Class: "bg-yellow-100 text-yellow-800"},
	StatusNonCompliant: {Class: "bg-red-100 text-red-800"},
}

var checkTokens = map[CheckStatus]ui.Token{
	CheckPass:    {Icon: "check-circle", IconClass: "text-green-600"},
	CheckWarning: {Icon: "alert-triangle", IconClass: "text-yellow-600"},
	CheckFail:    {Icon: "alert-triangle", IconClass: "text-red-600"},
}

var defaultCheck = ui.Token{Icon: "clock", IconClass: "text-gray-600"}

// StatusToken returns the badge style for a category status.
func StatusToken(s Status) ui.Token {
	if t, ok := statusTokens[s]; ok {
		return t
	}
	return ui.Neutral
}

// CheckToken returns the icon for a check result. Unknown results show a
// gray clock.
func CheckToken(s CheckStatus) ui.Token {
	if t, ok := checkTokens[s]; ok {
		return t
	}
	return defaultCheck
}

// Statuses lists every known category status.
func Statuses() []Status {
	return []Status{StatusCompliant, StatusWarning, StatusNonCompliant}
}

// CheckStatuses lists every known check result.
func CheckStatuses() []CheckStatus {
	return []CheckStatus{CheckPass, CheckWarning, CheckFail}
}
