package cmd

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/deck"
	"github.com/arcanaland/arcanaview/internal/logging"
	"github.com/arcanaland/arcanaview/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve tarot readings over HTTP",
	Long: `Serve starts a web server drawing readings from a deck.

  GET  /                 reading page (?seed=, ?count=)
  POST /api/reading      {"question": "...", "count": 3}
  GET  /api/card/:id     card details
  GET  /api/qr           QR code linking to a reading (?seed=)
  GET  /deck/...         deck images`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		deckFlag, _ := cmd.Flags().GetString("deck")
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}
		if debug, _ := cmd.Flags().GetBool("debug"); !debug {
			gin.SetMode(gin.ReleaseMode)
		}

		deckPath, err := config.ResolveDeckPath(deckFlag)
		if err != nil {
			return err
		}
		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		srv, err := server.New(d, cfg, logging.New(cmd.ErrOrStderr(), "serve"))
		if err != nil {
			return err
		}
		return srv.Run(cfg.Server.Addr)
	},
}

func init() {
	RootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("deck", "d", "", "Specify a deck from your deck library or a path to a deck")
	serveCmd.Flags().String("addr", "", "Address to listen on (default from config, "+config.DefaultAddr+")")
	serveCmd.Flags().Bool("debug", false, "Run gin in debug mode")
}
