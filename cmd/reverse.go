package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/reverse"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Generate reversed variants of a deck's card images",
	Long: `Reverse writes an upside-down copy (00.png -> 00-r.png) of every raster card
image in a deck. The caption band between --top and --bottom stays upright
so card names remain readable. Existing reversed images are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		deckFlag, _ := cmd.Flags().GetString("deck")
		band := reverse.Band{Top: cfg.Reverse.TextTop, Bottom: cfg.Reverse.TextBottom}
		if cmd.Flags().Changed("top") {
			band.Top, _ = cmd.Flags().GetInt("top")
		}
		if cmd.Flags().Changed("bottom") {
			band.Bottom, _ = cmd.Flags().GetInt("bottom")
		}

		deckPath, err := config.ResolveDeckPath(deckFlag)
		if err != nil {
			return err
		}

		res, err := reverse.Deck(deckPath, band)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, path := range res.Created {
			fmt.Fprintln(out, "created", path)
		}
		for _, e := range res.Errors {
			color.New(color.FgRed).Fprintln(cmd.ErrOrStderr(), e)
		}
		fmt.Fprintf(out, "%d created, %d already reversed, %d failed\n",
			len(res.Created), res.Skipped, len(res.Errors))

		if len(res.Errors) > 0 {
			return fmt.Errorf("%d images could not be reversed", len(res.Errors))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(reverseCmd)

	reverseCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	reverseCmd.Flags().Int("top", config.DefaultTextTop, "First row of the caption band")
	reverseCmd.Flags().Int("bottom", config.DefaultTextBottom, "Row after the caption band")
}
