package models

// Card is a single loyalty/membership card record. The JSON field names are
// the wire format shared with the sync server and with exported card files,
// so they must stay stable.
type Card struct {
	// ID uniquely identifies the card inside the local collection and is
	// the merge key during sync. Immutable once created.
	ID string `json:"id"`

	// Number is the text payload encoded into the barcode. It is not
	// restricted to digits.
	Number string `json:"number"`

	// Name is the card holder's display name.
	Name string `json:"name"`

	// Label is the free-text card label (e.g. shop name). Matched against
	// Templates for display styling.
	Label string `json:"nameOfCard"`

	// Code selects the barcode symbology used to render Number.
	Code Symbology `json:"codeType"`

	// Picture is the absolute path of the generated barcode image, or empty
	// when the image still needs to be generated. The file name is always
	// prefixed with ID so stale images can be purged on regeneration.
	Picture string `json:"picture,omitempty"`

	// Color is the display color, "#RRGGBB" or "#AARRGGBB".
	Color string `json:"color"`
}

// SameID reports whether other refers to the same card.
func (c Card) SameID(other Card) bool {
	return c.ID == other.ID
}
