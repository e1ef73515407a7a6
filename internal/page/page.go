// Package page models the document that card images are attached to,
// including its one-shot "loaded" lifecycle.
package page

import (
	"fmt"
	"io"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/arcanaland/arcanaview/internal/dom"
)

// SpreadID is the id of the element card images are attached to
const SpreadID = "spread"

// Document is an HTML document with a card attachment point
type Document struct {
	Root *html.Node

	spread *html.Node

	mu       sync.Mutex
	handlers []func(*html.Node)
	loaded   bool
}

// New builds an empty document titled title whose stylesheet
// rotates images carrying reversedClass
func New(title, reversedClass string) *Document {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlEl := dom.Element(atom.Html)
	head := dom.Element(atom.Head)
	titleEl := dom.Element(atom.Title)
	titleEl.AppendChild(&html.Node{Type: html.TextNode, Data: title})
	head.AppendChild(titleEl)
	head.AppendChild(dom.Element(atom.Style))
	head.LastChild.AppendChild(&html.Node{Type: html.TextNode, Data: Stylesheet(reversedClass)})

	body := dom.Element(atom.Body)
	spread := dom.Element(atom.Main, html.Attribute{Key: "id", Val: SpreadID})
	body.AppendChild(spread)

	htmlEl.AppendChild(head)
	htmlEl.AppendChild(body)
	root.AppendChild(htmlEl)

	return &Document{Root: root, spread: spread}
}

// Parse reads an existing HTML document. Its attachment point is the element
// with id "spread", or the body when there is none.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing document: %w", err)
	}

	d := &Document{Root: root}
	d.spread = find(root, func(n *html.Node) bool {
		id, _ := dom.Attr(n, "id")
		return n.Type == html.ElementNode && id == SpreadID
	})
	if d.spread == nil {
		d.spread = find(root, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.DataAtom == atom.Body
		})
	}
	return d, nil
}

// AppendCard wraps img in a <div class="card"> and attaches it to the spread
func (d *Document) AppendCard(img *html.Node) *html.Node {
	wrapper := dom.Element(atom.Div, html.Attribute{Key: "class", Val: "card"})
	wrapper.AppendChild(img)
	d.spread.AppendChild(wrapper)
	return wrapper
}

// OnLoaded registers fn to run when the document finishes loading.
// Handlers registered after loading never run.
func (d *Document) OnLoaded(fn func(*html.Node)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.loaded {
		return
	}
	d.handlers = append(d.handlers, fn)
}

// Loaded marks structural construction as complete and runs every
// registered handler once, in registration order. Later calls do nothing.
func (d *Document) Loaded() {
	d.mu.Lock()
	if d.loaded {
		d.mu.Unlock()
		return
	}
	d.loaded = true
	handlers := d.handlers
	d.handlers = nil
	d.mu.Unlock()

	for _, fn := range handlers {
		fn(d.Root)
	}
}

// Render writes the document as HTML
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root)
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := find(c, match); found != nil {
			return found
		}
	}
	return nil
}

// Stylesheet lays out the spread and rotates reversed cards
func Stylesheet(reversedClass string) string {
	return `
#spread { display: flex; gap: 1rem; flex-wrap: wrap; }
.card img { max-height: 60vh; transition: transform .3s; }
.card img.` + reversedClass + ` { transform: rotate(180deg); }
`
}
