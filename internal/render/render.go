// Package render turns cards into image elements for a display surface.
package render

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/arcanaland/arcanaview/internal/card"
	"github.com/arcanaland/arcanaview/internal/config"
	"github.com/arcanaland/arcanaview/internal/dom"
)

// Renderer creates card image elements
type Renderer struct {
	ReversedClass string
}

// New returns a Renderer tagging reversed cards with class,
// or with the default class when class is empty
func New(class string) *Renderer {
	if class == "" {
		class = config.DefaultReversedClass
	}
	return &Renderer{ReversedClass: class}
}

// Render builds a new detached <img> element for c. Its src is c.ImagePath
// verbatim, and it carries the reversed class exactly when c.IsReversed.
func (r *Renderer) Render(c card.Card) *html.Node {
	img := dom.Element(atom.Img, html.Attribute{Key: "src", Val: c.ImagePath})
	if c.Name != "" {
		dom.SetAttr(img, "alt", c.Name)
	}
	if c.ID != "" {
		dom.SetAttr(img, "data-card-id", c.ID)
	}
	if c.IsReversed {
		dom.AddClass(img, r.ReversedClass)
	}
	return img
}

// RenderString renders c and serializes the element
func (r *Renderer) RenderString(c card.Card) string {
	return dom.OuterHTML(r.Render(c))
}
