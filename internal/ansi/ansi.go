// Package ansi converts card images to truecolor half-block terminal art.
package ansi

import (
	"crypto/md5"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

const (
	DefaultWidth  = 40
	DefaultHeight = 32
)

// FromImage renders img as width x height cells. Each cell is an upper half
// block whose foreground and background average two pixel pairs.
func FromImage(img image.Image, width, height int, reversed bool) string {
	if reversed {
		img = imaging.Rotate180(img)
	}
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buf strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			fg := average(colorAt(resized, x, y), colorAt(resized, x+1, y))
			bg := average(colorAt(resized, x, y+1), colorAt(resized, x+1, y+1))
			buf.WriteString(cell('▀', fg, bg))
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// Cached returns the path of the ANSI art for imagePath in cacheDir,
// generating it on first use. Orientations are cached separately.
func Cached(cacheDir, imagePath string, reversed bool) (string, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create ANSI cache directory: %w", err)
	}

	key := imagePath
	if reversed {
		key += "#reversed"
	}
	cachePath := filepath.Join(cacheDir, fmt.Sprintf("%x.ansi", md5.Sum([]byte(key))))
	if _, err := os.Stat(cachePath); err == nil {
		return cachePath, nil
	}

	file, err := os.Open(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	art := FromImage(img, DefaultWidth, DefaultHeight, reversed)
	if err := os.WriteFile(cachePath, []byte(art), 0644); err != nil {
		return "", fmt.Errorf("failed to write ANSI art to file: %w", err)
	}
	return cachePath, nil
}

// Strip removes ANSI escape sequences from s
func Strip(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		switch {
		case inEscape:
			inEscape = c != 'm'
		case c == '\033':
			inEscape = true
		default:
			result.WriteRune(c)
		}
	}
	return result.String()
}

// Width returns the widest visible line of art
func Width(art string) int {
	widest := 0
	for _, line := range strings.Split(art, "\n") {
		if w := len([]rune(Strip(line))); w > widest {
			widest = w
		}
	}
	return widest
}

func colorAt(img image.Image, x, y int) colorful.Color {
	var c color.Color = color.RGBA{A: 255}
	if (image.Point{X: x, Y: y}).In(img.Bounds()) {
		c = img.At(x, y)
	}
	cf, _ := colorful.MakeColor(c)
	return cf
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}
}

func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m", r1, g1, b1, r2, g2, b2, char)
}
