package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/arcanaview/internal/card"
	"github.com/arcanaland/arcanaview/internal/dom"
)

func TestRender(t *testing.T) {
	r := New("")

	tests := []struct {
		name     string
		card     card.Card
		reversed bool
	}{
		{"upright ace", card.Card{ImagePath: "/img/ace.png"}, false},
		{"reversed king", card.Card{ImagePath: "/img/king.png", IsReversed: true}, true},
		{"path with spaces", card.Card{ImagePath: "cards/Major Arcana/00 fool.jpg"}, false},
		{"empty path", card.Card{IsReversed: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := r.Render(tt.card)

			require.Equal(t, "img", img.Data)
			src, ok := dom.Attr(img, "src")
			require.True(t, ok)
			require.Equal(t, tt.card.ImagePath, src)
			require.Equal(t, tt.reversed, dom.HasClass(img, "reversed"))
			if !tt.reversed {
				_, hasClass := dom.Attr(img, "class")
				require.False(t, hasClass)
			} else {
				require.Equal(t, []string{"reversed"}, dom.Classes(img))
			}
		})
	}
}

func TestRenderReturnsFreshElements(t *testing.T) {
	r := New("")
	c := card.Card{ImagePath: "/img/king.png", IsReversed: true}

	a, b := r.Render(c), r.Render(c)
	require.NotSame(t, a, b)
	require.Nil(t, a.Parent)
}

func TestRenderCustomClass(t *testing.T) {
	r := New("card-reversed")

	img := r.Render(card.Card{ImagePath: "/img/tower.png", IsReversed: true})
	require.True(t, dom.HasClass(img, "card-reversed"))
	require.False(t, dom.HasClass(img, "reversed"))
}

func TestRenderString(t *testing.T) {
	r := New("")

	out := r.RenderString(card.Card{
		ID:         "major_arcana.16",
		Name:       "The Tower",
		ImagePath:  "/deck/h750/major_arcana/16.png",
		IsReversed: true,
	})
	require.Equal(t,
		`<img src="/deck/h750/major_arcana/16.png" alt="The Tower" data-card-id="major_arcana.16" class="reversed"/>`,
		out)
}
