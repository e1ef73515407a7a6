package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/arcanaview/internal/ansi"
	"github.com/arcanaland/arcanaview/internal/card"
	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/deck"
)

var showCmd = &cobra.Command{
	Use:   "show [card_id]",
	Short: "Display a card in the terminal with ANSI art",
	Long: `Show displays a tarot card with ANSI terminal art next to its details.
Use canonical card IDs like 'major_arcana.00' or 'minor_arcana.wands.ace'.

With --reversed the card is shown upside-down. A pre-rotated image (00-r.png)
is used when the deck has one, otherwise the upright image is rotated.

Examples:
  arcanaview show major_arcana.00
  arcanaview show --reversed --deck rider-waite-smith minor_arcana.wands.ace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		reversed, _ := cmd.Flags().GetBool("reversed")

		d, c, err := loadCard(deckFlag, args[0])
		if err != nil {
			return err
		}
		c.IsReversed = reversed

		artPath, err := findAnsiArt(d, c)
		if err != nil {
			return fmt.Errorf("error finding ANSI art: %w", err)
		}
		art, err := os.ReadFile(artPath)
		if err != nil {
			return fmt.Errorf("error loading ANSI art: %w", err)
		}

		displayCard(c, string(art), d.Name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	showCmd.Flags().BoolP("reversed", "r", false, "Show the card in reversed orientation")
}

// loadCard resolves the deck and looks up cardID in it
func loadCard(deckName, cardID string) (*deck.Deck, card.Card, error) {
	deckPath, err := config.ResolveDeckPath(deckName)
	if err != nil {
		return nil, card.Card{}, err
	}

	d, err := deck.LoadDeck(deckPath)
	if err != nil {
		return nil, card.Card{}, fmt.Errorf("error loading deck: %w", err)
	}

	c, err := d.GetCard(cardID)
	if err != nil {
		return nil, card.Card{}, fmt.Errorf("error getting card: %w", err)
	}
	return d, *c, nil
}

// findAnsiArt prefers art shipped with the deck, then converts a card image
func findAnsiArt(d *deck.Deck, c card.Card) (string, error) {
	cacheDir := filepath.Join(config.GetCacheDir(), "ansi_cache")

	if c.IsReversed {
		if rel, err := d.ReversedImagePath(c.ID); err == nil {
			return ansi.Cached(cacheDir, filepath.Join(d.Path, rel), false)
		}
	} else {
		for _, dir := range []string{"ansi32", "ansi256"} {
			rel, err := deck.CardRelPath(c.ID, ".ansi")
			if err != nil {
				return "", err
			}
			path := filepath.Join(d.Path, dir, rel)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	rel, err := d.ImagePath(c.ID)
	if err != nil {
		return "", fmt.Errorf("no ANSI art or convertible images found for card: %s", c.ID)
	}
	return ansi.Cached(cacheDir, filepath.Join(d.Path, rel), c.IsReversed)
}

func suitSymbol(suit string) string {
	switch suit {
	case "wands":
		return ""
	case "cups":
		return ""
	case "swords":
		return "󰞇"
	case "pentacles":
		return "󱙧"
	}
	return "•"
}

func arcanaSymbol(isMinor bool) string {
	if isMinor {
		return "󱀝"
	}
	return ""
}

// wrapText wraps text to width columns, never splitting words
func wrapText(text string, width int) []string {
	if width < 10 {
		width = 40
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

func infoLines(c card.Card, deckName string, width int) []string {
	label := colorize.CyanString
	value := colorize.HiWhiteString

	lines := []string{
		label("Card: ") + value("%s", c.Name),
		label("Deck: ") + value("%s", deckName),
		label("ID:   ") + value("%s", c.ID),
	}

	if c.IsMinor() {
		lines = append(lines,
			label("Type: ")+value("Minor Arcana · %s", arcanaSymbol(true)),
			label("Suit: ")+value("%s · %s", c.Suit, suitSymbol(c.Suit)),
			label("Rank: ")+value("%s", c.Rank))
	} else {
		lines = append(lines, label("Type: ")+value("Major Arcana · %s", arcanaSymbol(false)))
	}

	orientation := value("%s", c.Orientation())
	if c.IsReversed {
		orientation = colorize.HiMagentaString("%s", c.Orientation())
	}
	lines = append(lines, label("Pose: ")+orientation)

	if c.AltText != "" {
		lines = append(lines, "", label("Description:"))
		lines = append(lines, wrapText(c.AltText, width)...)
	}
	return lines
}

// displayCard prints the ANSI art with the card details to its right
func displayCard(c card.Card, art, deckName string) {
	artLines := strings.Split(art, "\n")
	artWidth := ansi.Width(art)

	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80
	}

	infoStart := artWidth + 4
	info := infoLines(c, deckName, max(termWidth-infoStart-2, 20))

	fmt.Println()
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Print("  ")
		if i < len(artLines) {
			fmt.Print(artLines[i])
			fmt.Print(strings.Repeat(" ", infoStart-len([]rune(ansi.Strip(artLines[i])))))
		} else {
			fmt.Print(strings.Repeat(" ", infoStart))
		}
		if i < len(info) {
			fmt.Print(info[i])
		}
		fmt.Println()
	}
	fmt.Println()
}
