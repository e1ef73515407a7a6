package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/net/html"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/logging"
	"github.com/arcanaland/arcanaview/internal/page"
	"github.com/arcanaland/arcanaview/internal/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Report reversed cards in an HTML page",
	Long: `Scan loads an HTML document (stdin when no file is given) and, once it is
loaded, logs every card image carrying the reversed class to stderr.
Card images are matched with the card selector from your config (".card img").`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		var in io.Reader = cmd.InOrStdin()
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("error opening document: %w", err)
			}
			defer f.Close()
			in = f
		}

		doc, err := page.Parse(in)
		if err != nil {
			return err
		}

		sc, err := scanner.New(scanner.Options{
			Selector:      cfg.Render.CardSelector,
			ReversedClass: cfg.Render.ReversedClass,
			Label:         cfg.Render.DiagnosticLabel,
		}, logging.New(cmd.ErrOrStderr(), "scan"))
		if err != nil {
			return err
		}

		var found int
		doc.OnLoaded(func(root *html.Node) { found = len(sc.Report(root)) })
		doc.Loaded()

		fmt.Fprintf(cmd.OutOrStdout(), "%d reversed cards\n", found)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scanCmd)
}
