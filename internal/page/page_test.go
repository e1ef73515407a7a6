package page_test

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/arcanaland/arcanaview/internal/card"
	"github.com/arcanaland/arcanaview/internal/page"
	"github.com/arcanaland/arcanaview/internal/render"
	"github.com/arcanaland/arcanaview/internal/scanner"
)

func TestLoadedFiresOnce(t *testing.T) {
	doc := page.New("reading", "reversed")

	calls := 0
	doc.OnLoaded(func(*html.Node) { calls++ })

	doc.Loaded()
	doc.Loaded()
	require.Equal(t, 1, calls)

	doc.OnLoaded(func(*html.Node) { calls++ })
	doc.Loaded()
	require.Equal(t, 1, calls)
}

func TestLoadedRunsHandlersInOrder(t *testing.T) {
	doc := page.New("reading", "reversed")

	var order []string
	doc.OnLoaded(func(*html.Node) { order = append(order, "first") })
	doc.OnLoaded(func(*html.Node) { order = append(order, "second") })
	doc.Loaded()

	require.Equal(t, []string{"first", "second"}, order)
}

func TestSpreadScannedAfterLoad(t *testing.T) {
	r := render.New("")
	doc := page.New("reading", r.ReversedClass)

	for _, c := range []card.Card{
		{ImagePath: "/img/ace.png"},
		{ImagePath: "/img/king.png", IsReversed: true},
		{ImagePath: "/img/queen.png"},
	} {
		doc.AppendCard(r.Render(c))
	}

	var buf bytes.Buffer
	s, err := scanner.New(scanner.Options{}, log.New(&buf, "", 0))
	require.NoError(t, err)
	doc.OnLoaded(func(root *html.Node) { s.Report(root) })

	require.Empty(t, buf.String())
	doc.Loaded()
	require.Equal(t, "Found reversed card: <img src=\"/img/king.png\" class=\"reversed\"/>\n", buf.String())
}

func TestRender(t *testing.T) {
	r := render.New("")
	doc := page.New("Three card spread", r.ReversedClass)
	doc.AppendCard(r.Render(card.Card{ImagePath: "/img/star.png", IsReversed: true}))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	require.Contains(t, out, "<title>Three card spread</title>")
	require.Contains(t, out, `<main id="spread"><div class="card"><img src="/img/star.png" class="reversed"/></div></main>`)
	require.Contains(t, out, ".card img.reversed { transform: rotate(180deg); }")
}

func TestParseAttachesToSpreadOrBody(t *testing.T) {
	r := render.New("")

	doc, err := page.Parse(strings.NewReader(`<html><body><header></header><section id="spread"></section></body></html>`))
	require.NoError(t, err)
	doc.AppendCard(r.Render(card.Card{ImagePath: "/a.png"}))

	var buf bytes.Buffer
	require.NoError(t, doc.Render(&buf))
	require.Contains(t, buf.String(), `<section id="spread"><div class="card"><img src="/a.png"/></div></section>`)

	doc, err = page.Parse(strings.NewReader(`<p>hello</p>`))
	require.NoError(t, err)
	doc.AppendCard(r.Render(card.Card{ImagePath: "/b.png"}))

	buf.Reset()
	require.NoError(t, doc.Render(&buf))
	require.Contains(t, buf.String(), `<p>hello</p><div class="card"><img src="/b.png"/></div></body>`)
}
