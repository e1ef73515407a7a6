package deck

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/arcanaview/internal/card"
)

var (
	// Suits in canonical order
	Suits = []string{"wands", "cups", "swords", "pentacles"}
	// Ranks in canonical order
	Ranks = []string{
		"ace", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten",
		"page", "knight", "queen", "king",
	}
	// ImageDirs are searched in priority order before any other directory
	ImageDirs = []string{"scalable", "h2400", "h1200", "h750"}
	// ImageExtensions are the card image formats a deck may ship
	ImageExtensions = []string{".svg", ".png", ".jpg", ".jpeg", ".webp"}
)

// ReversedSuffix marks a pre-rotated card image, e.g. 00-r.png
const ReversedSuffix = "-r"

// Deck represents a tarot deck
type Deck struct {
	ID          string
	Name        string
	Version     string
	Author      string
	Description string
	Path        string

	MajorArcana map[string]*card.Card
	MinorArcana map[string]map[string]*card.Card

	Config *DeckConfig
}

// LoadDeck loads a tarot deck from a directory
func LoadDeck(deckPath string) (*Deck, error) {
	config, err := LoadDeckConfig(deckPath)
	if err != nil {
		return nil, err
	}

	d := &Deck{
		ID:          config.Deck.ID,
		Name:        config.Deck.Name,
		Version:     config.Deck.Version,
		Author:      config.Deck.Author,
		Description: config.Deck.Description,
		Path:        deckPath,
		MajorArcana: make(map[string]*card.Card),
		MinorArcana: make(map[string]map[string]*card.Card),
		Config:      config,
	}

	d.createCards()
	if err := d.loadNames(); err != nil {
		return nil, fmt.Errorf("error loading card info: %w", err)
	}

	return d, nil
}

// LoadDeckConfig decodes deck.toml in deckPath
func LoadDeckConfig(deckPath string) (*DeckConfig, error) {
	deckTomlPath := filepath.Join(deckPath, "deck.toml")
	if _, err := os.Stat(deckTomlPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck.toml not found in %s", deckPath)
	}

	var config DeckConfig
	if _, err := toml.DecodeFile(deckTomlPath, &config); err != nil {
		return nil, fmt.Errorf("error parsing deck.toml: %w", err)
	}
	return &config, nil
}

func (d *Deck) createCards() {
	for i := 0; i <= 21; i++ {
		number := fmt.Sprintf("%02d", i)
		d.MajorArcana[number] = &card.Card{
			ID:     "major_arcana." + number,
			Type:   "major_arcana",
			Number: number,
			Name:   defaultMajorArcanaName(number),
		}
	}

	for _, suit := range Suits {
		d.MinorArcana[suit] = make(map[string]*card.Card)
		for _, rank := range Ranks {
			d.MinorArcana[suit][rank] = &card.Card{
				ID:   fmt.Sprintf("minor_arcana.%s.%s", suit, rank),
				Type: "minor_arcana",
				Suit: suit,
				Rank: rank,
				Name: defaultMinorArcanaName(rank, suit),
			}
		}
	}
}

// loadNames applies localized names and alt text, preferring names/en.toml
func (d *Deck) loadNames() error {
	namesDir := filepath.Join(d.Path, "names")
	entries, err := os.ReadDir(namesDir)
	if err != nil {
		// No names directory, keep default names
		return nil
	}

	langPath := ""
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		if entry.Name() == "en.toml" {
			langPath = filepath.Join(namesDir, entry.Name())
			break
		}
		if langPath == "" {
			langPath = filepath.Join(namesDir, entry.Name())
		}
	}
	if langPath == "" {
		return nil
	}

	var names NameConfig
	if _, err := toml.DecodeFile(langPath, &names); err != nil {
		return fmt.Errorf("error parsing language file: %w", err)
	}

	for num, name := range names.MajorArcana {
		if c, ok := d.MajorArcana[num]; ok && name != "" {
			c.Name = name
		}
	}
	for num, alt := range names.MajorArcanaAltText {
		if c, ok := d.MajorArcana[num]; ok {
			c.AltText = alt
		}
	}
	for suit, ranks := range names.MinorArcana {
		for rank, name := range ranks {
			if c, ok := d.MinorArcana[suit][rank]; ok && name != "" {
				c.Name = name
			}
		}
	}
	for suit, ranks := range names.MinorArcanaAltText {
		for rank, alt := range ranks {
			if c, ok := d.MinorArcana[suit][rank]; ok {
				c.AltText = alt
			}
		}
	}

	return nil
}

// GetCard gets a card by its canonical ID
func (d *Deck) GetCard(cardID string) (*card.Card, error) {
	parts := strings.Split(cardID, ".")

	switch {
	case parts[0] == "major_arcana" && len(parts) == 2:
		c, ok := d.MajorArcana[parts[1]]
		if !ok {
			return nil, fmt.Errorf("card not found: %s", cardID)
		}
		return c, nil
	case parts[0] == "minor_arcana" && len(parts) == 3:
		suitMap, ok := d.MinorArcana[parts[1]]
		if !ok {
			return nil, fmt.Errorf("suit not found: %s", parts[1])
		}
		c, ok := suitMap[parts[2]]
		if !ok {
			return nil, fmt.Errorf("card not found: %s", cardID)
		}
		return c, nil
	}

	return nil, fmt.Errorf("invalid card ID format: %s", cardID)
}

// Cards returns every card of the deck in canonical order
func (d *Deck) Cards() []*card.Card {
	cards := make([]*card.Card, 0, 78)
	for i := 0; i <= 21; i++ {
		cards = append(cards, d.MajorArcana[fmt.Sprintf("%02d", i)])
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, d.MinorArcana[suit][rank])
		}
	}
	return cards
}

// CardRelPath builds the path of a card file below an image directory
func CardRelPath(cardID, ext string) (string, error) {
	parts := strings.Split(cardID, ".")
	switch {
	case parts[0] == "major_arcana" && len(parts) == 2:
		return filepath.Join("major_arcana", parts[1]+ext), nil
	case parts[0] == "minor_arcana" && len(parts) == 3:
		return filepath.Join("minor_arcana", parts[1], parts[2]+ext), nil
	case parts[0] == "custom_cards" && (len(parts) == 3 || len(parts) == 4):
		parts[len(parts)-1] += ext
		return filepath.Join(parts...), nil
	}
	return "", fmt.Errorf("invalid card ID format: %s", cardID)
}

// ImagePath finds the image file for a card, returned relative to the deck root
func (d *Deck) ImagePath(cardID string) (string, error) {
	return d.findImage(cardID, "")
}

// ReversedImagePath finds the pre-rotated image for a card, relative to the deck root
func (d *Deck) ReversedImagePath(cardID string) (string, error) {
	return d.findImage(cardID, ReversedSuffix)
}

func (d *Deck) findImage(cardID, suffix string) (string, error) {
	if _, err := CardRelPath(cardID, ""); err != nil {
		return "", err
	}

	dirs := append([]string{}, ImageDirs...)
	if entries, err := os.ReadDir(d.Path); err == nil {
		for _, entry := range entries {
			name := entry.Name()
			if !entry.IsDir() || contains(dirs, name) || skipDir(name) {
				continue
			}
			dirs = append(dirs, name)
		}
	}

	for _, dir := range dirs {
		for _, ext := range ImageExtensions {
			rel, _ := CardRelPath(cardID, suffix+ext)
			rel = filepath.Join(dir, rel)
			if _, err := os.Stat(filepath.Join(d.Path, rel)); err == nil {
				return rel, nil
			}
		}
	}

	return "", fmt.Errorf("no image found for card: %s", cardID)
}

// Draw deals n distinct cards that have an image, each reversed with probability 1/2.
// ImagePath of the returned cards is relative to the deck root, slash separated.
func (d *Deck) Draw(rng *rand.Rand, n int) ([]card.Card, error) {
	if n < 1 || n > 78 {
		return nil, fmt.Errorf("cannot draw %d cards: must be between 1 and 78", n)
	}

	var pool []card.Card
	for _, c := range d.Cards() {
		rel, err := d.ImagePath(c.ID)
		if err != nil {
			continue
		}
		drawn := *c
		drawn.ImagePath = filepath.ToSlash(rel)
		pool = append(pool, drawn)
	}
	if len(pool) < n {
		return nil, fmt.Errorf("cannot draw %d cards: only %d cards have images", n, len(pool))
	}

	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	hand := pool[:n]
	for i := range hand {
		hand[i].IsReversed = rng.Intn(2) == 1
	}
	return hand, nil
}

func skipDir(name string) bool {
	switch name {
	case "ansi32", "ansi256", "card_backs", "names":
		return true
	}
	return strings.HasPrefix(name, ".")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func defaultMajorArcanaName(number string) string {
	names := map[string]string{
		"00": "The Fool",
		"01": "The Magician",
		"02": "The High Priestess",
		"03": "The Empress",
		"04": "The Emperor",
		"05": "The Hierophant",
		"06": "The Lovers",
		"07": "The Chariot",
		"08": "Strength",
		"09": "The Hermit",
		"10": "Wheel of Fortune",
		"11": "Justice",
		"12": "The Hanged Man",
		"13": "Death",
		"14": "Temperance",
		"15": "The Devil",
		"16": "The Tower",
		"17": "The Star",
		"18": "The Moon",
		"19": "The Sun",
		"20": "Judgement",
		"21": "The World",
	}

	if name, ok := names[number]; ok {
		return name
	}
	return "Major Arcana " + number
}

func defaultMinorArcanaName(rank, suit string) string {
	return fmt.Sprintf("%s of %s", capitalize(rank), capitalize(suit))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
