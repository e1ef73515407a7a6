package validator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arcanaland/arcanaview/internal/deck"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	DeckPath string
	Results  ValidationResults
}

func NewValidator(deckPath string) *Validator {
	return &Validator{DeckPath: deckPath}
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// Validate checks deck.toml, the directory layout, and that every card
// resolves to an upright image. Missing reversed variants are warnings.
func (v *Validator) Validate() (ValidationResults, error) {
	config, err := deck.LoadDeckConfig(v.DeckPath)
	if err != nil {
		return v.Results, err
	}

	v.validateDeckToml(config)
	v.validateDirectoryStructure()

	d, err := deck.LoadDeck(v.DeckPath)
	if err != nil {
		v.errorf("%v", err)
		return v.Results, nil
	}
	v.validateCards(d)

	return v.Results, nil
}

func (v *Validator) validateDeckToml(config *deck.DeckConfig) {
	if config.Deck.ID == "" {
		v.errorf("deck.id is required in deck.toml")
	}
	if config.Deck.Name == "" {
		v.errorf("deck.name is required in deck.toml")
	}
	if config.Deck.Version == "" {
		v.errorf("deck.version is required in deck.toml")
	}

	switch config.Deck.SchemaVersion {
	case "":
		v.errorf("deck.schema_version is required in deck.toml")
	case "1.0":
	default:
		v.errorf("unsupported schema_version: %s (supported: 1.0)", config.Deck.SchemaVersion)
	}

	if config.CardBacks == nil {
		return
	}
	if len(config.CardBacks.Variants) > 1 && config.CardBacks.Default == "" {
		v.errorf("card_backs.default is required when multiple card back variants are defined")
	}
	for name, variant := range config.CardBacks.Variants {
		if variant.Image == "" {
			v.errorf("card_backs.variants.%s.image is required", name)
			continue
		}
		if _, err := os.Stat(filepath.Join(v.DeckPath, variant.Image)); os.IsNotExist(err) {
			v.errorf("card back image not found: %s", variant.Image)
		}
	}
}

func (v *Validator) validateDirectoryStructure() {
	if _, err := os.Stat(filepath.Join(v.DeckPath, "card_backs")); os.IsNotExist(err) {
		v.warnf("card_backs directory not found")
	}
	if _, err := os.Stat(filepath.Join(v.DeckPath, "names")); os.IsNotExist(err) {
		v.warnf("names directory not found")
	}

	entries, err := os.ReadDir(v.DeckPath)
	if err != nil {
		v.errorf("error reading deck directory: %v", err)
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if entry.Name() == "scalable" {
			return
		}
		if _, err := fmt.Sscanf(entry.Name(), "h%d", new(int)); err == nil {
			return
		}
	}
	v.errorf("no image directories found (expecting scalable/ or h*/ directories)")
}

func (v *Validator) validateCards(d *deck.Deck) {
	var missing, unreversed []string
	for _, c := range d.Cards() {
		if _, err := d.ImagePath(c.ID); err != nil {
			missing = append(missing, c.ID)
			continue
		}
		if _, err := d.ReversedImagePath(c.ID); err != nil {
			unreversed = append(unreversed, c.ID)
		}
	}

	if len(missing) > 0 {
		v.errorf("missing card images: %s", strings.Join(missing, ", "))
	}
	if len(unreversed) > 0 {
		v.warnf("%d cards have no reversed variant (run 'arcanaview reverse' to generate them)", len(unreversed))
	}
}
