package deck

// DeckConfig mirrors deck.toml
type DeckConfig struct {
	Deck      DeckSection      `toml:"deck"`
	CardBacks *CardBackSection `toml:"card_backs"`
}

type DeckSection struct {
	ID            string   `toml:"id"`
	Name          string   `toml:"name"`
	Version       string   `toml:"version"`
	SchemaVersion string   `toml:"schema_version"`
	Author        string   `toml:"author"`
	License       string   `toml:"license"`
	AspectRatio   float64  `toml:"aspect_ratio"`
	Description   string   `toml:"description"`
	Tags          []string `toml:"tags"`
}

type CardBackSection struct {
	Default  string                     `toml:"default"`
	Variants map[string]CardBackVariant `toml:"variants"`
}

type CardBackVariant struct {
	Name    string `toml:"name"`
	Image   string `toml:"image"`
	AltText string `toml:"alt_text"`
}

// NameConfig mirrors names/<lang>.toml
type NameConfig struct {
	MajorArcana        map[string]string            `toml:"major_arcana"`
	MajorArcanaAltText map[string]string            `toml:"major_arcana_alt_text"`
	MinorArcana        map[string]map[string]string `toml:"minor_arcana"`
	MinorArcanaAltText map[string]map[string]string `toml:"minor_arcana_alt_text"`
}
