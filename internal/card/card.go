package card

// Card represents a tarot card
type Card struct {
	ID      string // Canonical ID (e.g., major_arcana.00, minor_arcana.wands.ace)
	Name    string // Localized name
	Type    string // major_arcana or minor_arcana
	Number  string // For major arcana (00-21)
	Suit    string // For minor arcana (wands, cups, swords, pentacles)
	Rank    string // For minor arcana (ace, two, ..., king)
	AltText string // Descriptive alt text

	ImagePath  string // Source of the card face as seen by the display surface
	IsReversed bool   // Card is shown upside-down
}

// Reversed returns a copy of the card in reversed orientation
func (c Card) Reversed() Card {
	c.IsReversed = true
	return c
}

// IsMinor reports whether the card belongs to the minor arcana
func (c Card) IsMinor() bool {
	return c.Type == "minor_arcana"
}

// Orientation returns a human label for the card's orientation
func (c Card) Orientation() string {
	if c.IsReversed {
		return "reversed"
	}
	return "upright"
}
