package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/validator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [deck]",
	Short: "Validate a tarot deck before rendering it",
	Long: `Validate checks that a deck has a well-formed deck.toml and that every card
resolves to an image. Cards without a reversed variant are reported as warnings.

The deck may be a name from your deck library or a path. Without an argument
the default deck is validated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		deckPath, err := config.ResolveDeckPath(name)
		if err != nil {
			return err
		}

		results, err := validator.NewValidator(deckPath).Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if len(results.Errors) > 0 {
			color.New(color.FgRed).Fprintf(out, "❌ Deck '%s' has %d validation errors:\n", deckPath, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
			return fmt.Errorf("validation failed")
		}
		color.New(color.FgGreen).Fprintf(out, "✅ Deck '%s' is ready to render.\n", deckPath)

		if len(results.Warnings) > 0 {
			color.New(color.FgYellow).Fprintln(out, "\nWarnings:")
			for i, w := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, w)
			}
		}
		return nil
	},
}

