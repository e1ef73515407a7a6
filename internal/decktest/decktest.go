// Package decktest writes small on-disk decks for tests.
package decktest

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arcanaland/arcanaview/internal/deck"
)

const deckToml = `[deck]
id = "test-deck"
name = "Test Deck"
version = "1.0.0"
schema_version = "1.0"
author = "Arcana Land"
`

// Write creates a deck at dir with one png per card ID in the h750 directory.
// Each image is a 4x8 picture whose top half is red and bottom half is blue.
func Write(t *testing.T, dir string, cardIDs ...string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "deck.toml"), []byte(deckToml), 0644))

	for _, id := range cardIDs {
		rel, err := deck.CardRelPath(id, ".png")
		require.NoError(t, err)
		WritePNG(t, filepath.Join(dir, "h750", rel), Picture(4, 8))
	}
	return dir
}

// AllCardIDs returns the canonical IDs of the 78 standard cards
func AllCardIDs() []string {
	var ids []string
	for i := 0; i <= 21; i++ {
		ids = append(ids, "major_arcana."+twoDigits(i))
	}
	for _, suit := range deck.Suits {
		for _, rank := range deck.Ranks {
			ids = append(ids, "minor_arcana."+suit+"."+rank)
		}
	}
	return ids
}

// Picture returns an image whose top half is red and bottom half is blue
func Picture(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, A: 255}
			if y >= h/2 {
				c = color.NRGBA{B: 255, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// WritePNG encodes img to path, creating parent directories
func WritePNG(t *testing.T, path string, img image.Image) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func twoDigits(i int) string {
	return string([]byte{byte('0' + i/10), byte('0' + i%10)})
}
