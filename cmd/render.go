package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/render"
)

var renderCmd = &cobra.Command{
	Use:   "render [card_id]",
	Short: "Print the HTML image element for a card",
	Long: `Render prints the <img> element for a card. Its src is the card image,
relative to the deck root unless --base is given. Reversed cards carry the
reversed class from your config ("reversed" by default).

Examples:
  arcanaview render major_arcana.16
  arcanaview render --reversed --base /static/cards major_arcana.16`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deckFlag, _ := cmd.Flags().GetString("deck")
		reversed, _ := cmd.Flags().GetBool("reversed")
		base, _ := cmd.Flags().GetString("base")
		class, _ := cmd.Flags().GetString("class")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		if class == "" {
			class = cfg.Render.ReversedClass
		}

		d, c, err := loadCard(deckFlag, args[0])
		if err != nil {
			return err
		}

		rel, err := d.ImagePath(c.ID)
		if err != nil {
			return err
		}
		c.ImagePath = filepath.ToSlash(rel)
		if base != "" {
			c.ImagePath = strings.TrimSuffix(base, "/") + "/" + c.ImagePath
		}
		c.IsReversed = reversed

		fmt.Fprintln(cmd.OutOrStdout(), render.New(class).RenderString(c))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	renderCmd.Flags().BoolP("reversed", "r", false, "Render the card in reversed orientation")
	renderCmd.Flags().String("base", "", "URL prefix for the image source")
	renderCmd.Flags().String("class", "", "Class marking reversed cards (overrides config)")
}
