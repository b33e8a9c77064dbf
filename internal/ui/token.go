// Package ui holds the presentation primitives shared by every screen: display
// tokens, the page envelope, navigation items, SVG chart geometry and the
// html/template renderer plugged into echo.
package ui

// Token is the presentation a classifier picks for a status or priority label.
// Screens own their own label-to-token tables; only the shape is shared.
type Token struct {
	// Class is applied to the badge or container that carries the label.
	Class string
	// Icon is a lucide icon name. Empty means no icon is drawn.
	Icon string
	// IconClass colours the icon.
	IconClass string
	// Variant is the badge variant (default, secondary, outline, destructive).
	Variant string
}

// HasIcon reports whether the token draws an icon.
func (t Token) HasIcon() bool { return t.Icon != "" }

// Neutral is the gray badge style most screens fall back to.
var Neutral = Token{Class: "bg-gray-100 text-gray-800"}

// Badge variants.
const (
	VariantDefault     = "default"
	VariantSecondary   = "secondary"
	VariantOutline     = "outline"
	VariantDestructive = "destructive"
)

// BadgeClass returns the CSS classes for a badge variant. Unknown variants
// render like the default badge.
func BadgeClass(variant string) string {
	switch variant {
	case VariantSecondary:
		return "bg-gray-100 text-gray-900 border-transparent"
	case VariantOutline:
		return "bg-transparent text-gray-700 border-gray-300"
	case VariantDestructive:
		return "bg-red-600 text-white border-transparent"
	default:
		return "bg-blue-600 text-white border-transparent"
	}
}
