package models

import "strings"

// Template is a read-only branded preset. When a card's label matches a
// template (case-insensitive) the UI inherits the template color and logo
// instead of the user-chosen color.
type Template struct {
	Label string
	Color string
	Logo  string
}

// Templates is the static preset catalog. Not mutated at runtime.
var Templates = []Template{
	{Label: "spar", Color: "#FFFFFF", Logo: "logo_spar"},
	{Label: "ikea", Color: "#0057AD", Logo: "logo_ikea"},
	{Label: "lidl", Color: "#0050AA", Logo: "logo_lidl"},
	{Label: "dm", Color: "#FFFFFF", Logo: "logo_dm"},
	{Label: "muller", Color: "#FFFFFF", Logo: "logo_muller"},
	{Label: "agraria koper", Color: "#FFFFFF", Logo: "logo_agrariakoper"},
	{Label: "bauhaus", Color: "#FFFFFF", Logo: "logo_bauhaus"},
	{Label: "hervis", Color: "#FFFFFF", Logo: "logo_hervis"},
	{Label: "merkur", Color: "#FFDF01", Logo: "logo_merkur"},
	{Label: "obi", Color: "#FFFFFF", Logo: "logo_obi"},
	{Label: "tus", Color: "#00803B", Logo: "logo_tus"},
}

// MatchTemplate finds the preset whose label equals label, ignoring case.
func MatchTemplate(label string) (Template, bool) {
	for _, t := range Templates {
		if strings.EqualFold(t.Label, label) {
			return t, true
		}
	}
	return Template{}, false
}
