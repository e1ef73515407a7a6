// Package reverse produces upside-down variants of card images whose caption
// stays readable.
package reverse

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/arcanaland/arcanaview/internal/deck"
)

// Band is the row range [Top, Bottom) of a card image holding its caption
type Band struct {
	Top    int
	Bottom int
}

// Image rotates src by 180 degrees and pastes the caption band, upright,
// at row height-Bottom. A zero band only rotates.
func Image(src image.Image, band Band) *image.NRGBA {
	rotated := imaging.Rotate180(src)

	b := src.Bounds()
	top, bottom := clamp(band.Top, 0, b.Dy()), clamp(band.Bottom, 0, b.Dy())
	if bottom <= top {
		return rotated
	}

	caption := imaging.Crop(src, image.Rect(b.Min.X, b.Min.Y+top, b.Max.X, b.Min.Y+bottom))
	return imaging.Paste(rotated, caption, image.Pt(0, b.Dy()-bottom))
}

// File writes the reversed variant of the image at in to out.
// The output format follows out's extension.
func File(in, out string, band Band) error {
	src, err := imaging.Open(in)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	if err := imaging.Save(Image(src, band), out); err != nil {
		return fmt.Errorf("failed to save reversed image: %w", err)
	}
	return nil
}

// Name returns the file name of the reversed variant, e.g. 00.png -> 00-r.png
func Name(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + deck.ReversedSuffix + ext
}

// IsReversedName reports whether path already names a reversed variant
func IsReversedName(path string) bool {
	ext := filepath.Ext(path)
	return strings.HasSuffix(strings.TrimSuffix(path, ext), deck.ReversedSuffix)
}

// Result summarizes a Deck run
type Result struct {
	Created []string
	Skipped int
	Errors  []error
}

// Deck writes a reversed variant next to every raster card image in the
// deck's image directories. Existing variants are left alone and a failing
// file does not stop the walk.
func Deck(deckPath string, band Band) (Result, error) {
	var res Result

	entries, err := os.ReadDir(deckPath)
	if err != nil {
		return res, fmt.Errorf("error reading deck directory: %w", err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !isImageDir(entry.Name()) {
			continue
		}

		root := filepath.Join(deckPath, entry.Name())
		err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				res.Errors = append(res.Errors, err)
				return nil
			}
			if d.IsDir() || !isRaster(path) || IsReversedName(path) {
				return nil
			}

			out := Name(path)
			if _, err := os.Stat(out); err == nil {
				res.Skipped++
				return nil
			}
			if err := File(path, out, band); err != nil {
				res.Errors = append(res.Errors, fmt.Errorf("%s: %w", path, err))
				return nil
			}
			res.Created = append(res.Created, out)
			return nil
		})
		if err != nil {
			return res, err
		}
	}

	return res, nil
}

func isImageDir(name string) bool {
	switch name {
	case "ansi32", "ansi256", "names", "card_backs", "scalable":
		return false
	}
	return !strings.HasPrefix(name, ".")
}

func isRaster(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return true
	}
	return false
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
