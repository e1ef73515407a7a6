// Package server serves tarot readings as HTML pages and JSON.
package server

import (
	"bytes"
	"fmt"
	"log"
	"math/rand"
	"path"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/html"

	"github.com/arcanaland/arcanaview/internal/card"
	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/deck"
	"github.com/arcanaland/arcanaview/internal/page"
	"github.com/arcanaland/arcanaview/internal/render"
	"github.com/arcanaland/arcanaview/internal/scanner"
)

// ImagePrefix is the URL prefix deck files are served under
const ImagePrefix = "/deck"

type Server struct {
	deck       *deck.Deck
	spreadSize int
	renderer   *render.Renderer
	scanner    *scanner.Scanner
	logger     *log.Logger

	// newSeed picks the seed of readings requested without one
	newSeed func() int64
}

// New creates a server for d. The scanner reports reversed cards of every
// rendered reading page on logger.
func New(d *deck.Deck, cfg *config.Config, logger *log.Logger) (*Server, error) {
	sc, err := scanner.New(scanner.Options{
		Selector:      cfg.Render.CardSelector,
		ReversedClass: cfg.Render.ReversedClass,
		Label:         cfg.Render.DiagnosticLabel,
	}, logger)
	if err != nil {
		return nil, err
	}

	spreadSize := cfg.Server.SpreadSize
	if spreadSize <= 0 {
		spreadSize = config.DefaultSpreadSize
	}

	return &Server{
		deck:       d,
		spreadSize: spreadSize,
		renderer:   render.New(cfg.Render.ReversedClass),
		scanner:    sc,
		logger:     logger,
		newSeed:    func() int64 { return time.Now().UnixNano() },
	}, nil
}

// Reading is a drawn spread
type Reading struct {
	Seed  int64
	Cards []card.Card
}

// Draw deals count cards deterministically from seed. Card image paths are
// rewritten to the URLs the server serves them under.
func (s *Server) Draw(seed int64, count int) (*Reading, error) {
	if count == 0 {
		count = s.spreadSize
	}

	cards, err := s.deck.Draw(rand.New(rand.NewSource(seed)), count)
	if err != nil {
		return nil, err
	}
	for i := range cards {
		cards[i].ImagePath = path.Join(ImagePrefix, cards[i].ImagePath)
	}
	return &Reading{Seed: seed, Cards: cards}, nil
}

// Page builds the HTML document of a reading and fires its loaded
// lifecycle, which runs the reversed card scanner once.
func (s *Server) Page(r *Reading) ([]byte, error) {
	doc := page.New(fmt.Sprintf("%s reading", s.deck.Name), s.renderer.ReversedClass)
	for _, c := range r.Cards {
		doc.AppendCard(s.renderer.Render(c))
	}

	doc.OnLoaded(func(root *html.Node) { s.scanner.Report(root) })
	doc.Loaded()

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("error rendering page: %w", err)
	}
	return buf.Bytes(), nil
}

// Router returns the gin engine serving every route
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithWriter(s.logger.Writer()), gin.Recovery())
	s.RegisterRoutes(r)
	return r
}

// Run serves on addr until the listener fails
func (s *Server) Run(addr string) error {
	s.logger.Printf("serving deck %q on http://%s", s.deck.Name, addr)
	return s.Router().Run(addr)
}
