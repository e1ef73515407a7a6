package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/deck"
)

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage tarot decks in your deck library",
}

var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks and how many of their cards can be rendered",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'arcanaview deck init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			// Stat follows symlinked decks
			info, err := os.Stat(filepath.Join(libraryPath, entry.Name()))
			if err != nil || !info.IsDir() {
				continue
			}

			d, err := deck.LoadDeck(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				continue
			}
			found++

			renderable := 0
			for _, c := range d.Cards() {
				if _, err := d.ImagePath(c.ID); err == nil {
					renderable++
				}
			}

			marker, suffix := "  ", ""
			if entry.Name() == cfg.DefaultDeck {
				marker, suffix = "* ", color.CyanString(" [DEFAULT]")
			}
			fmt.Fprintf(out, "%s%s (%s) %d/78 cards%s\n", marker, entry.Name(), d.Name, renderable, suffix)
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}
		if _, err := deck.LoadDeck(deckPath); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}
		if err := config.SetDefaultDeck(args[0]); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", args[0])
		return nil
	},
}

var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library and config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}
		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}
