// Package scanner finds card images marked as reversed in a rendered document.
package scanner

import (
	"fmt"
	"log"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/dom"
	"github.com/arcanaland/arcanaview/internal/logging"
)

// Options configures a Scanner. Empty fields take the config defaults.
type Options struct {
	Selector      string
	ReversedClass string
	Label         string
}

// Scanner reports reversed card images on a diagnostic logger.
// It keeps no state between calls.
type Scanner struct {
	selector      cascadia.SelectorGroup
	reversedClass string
	label         string
	logger        *log.Logger
}

// New compiles the card selector. A nil logger discards diagnostics.
func New(opts Options, logger *log.Logger) (*Scanner, error) {
	if opts.Selector == "" {
		opts.Selector = config.DefaultCardSelector
	}
	if opts.ReversedClass == "" {
		opts.ReversedClass = config.DefaultReversedClass
	}
	if opts.Label == "" {
		opts.Label = config.DefaultDiagnosticLabel
	}
	if logger == nil {
		logger = logging.Discard()
	}

	sel, err := cascadia.ParseGroup(opts.Selector)
	if err != nil {
		return nil, fmt.Errorf("invalid card selector %q: %w", opts.Selector, err)
	}

	return &Scanner{
		selector:      sel,
		reversedClass: opts.ReversedClass,
		label:         opts.Label,
		logger:        logger,
	}, nil
}

// Scan returns the card images under doc carrying the reversed class, in document order
func (s *Scanner) Scan(doc *html.Node) []*html.Node {
	var reversed []*html.Node
	for _, img := range cascadia.QueryAll(doc, s.selector) {
		if dom.HasClass(img, s.reversedClass) {
			reversed = append(reversed, img)
		}
	}
	return reversed
}

// Report logs one diagnostic line per reversed card image and returns them
func (s *Scanner) Report(doc *html.Node) []*html.Node {
	found := s.Scan(doc)
	for _, img := range found {
		s.logger.Print(s.Message(img))
	}
	return found
}

// Message formats the diagnostic line for a matched element
func (s *Scanner) Message(img *html.Node) string {
	return s.label + " " + dom.OuterHTML(img)
}
