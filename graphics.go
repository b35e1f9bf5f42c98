package main

import (
	"bytes"
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"
)

const errorCardFontSize = 22.0

var cardFontSource *text.GoTextFaceSource

// InitGraphics prepares the font used on error cards. Must run before the
// game loop starts.
func InitGraphics() error {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}
	cardFontSource = s
	return nil
}

// newErrorCard renders a screen-sized placeholder naming the file that could
// not be shown and the reason.
func newErrorCard(width, height int, path, reason string) *ebiten.Image {
	if width <= 0 || height <= 0 {
		width, height = 640, 480
	}

	card := ebiten.NewImage(width, height)
	card.Fill(color.RGBA{24, 24, 28, 255})

	// Accent stripe along the top edge.
	vector.DrawFilledRect(card, 0, 0, float32(width), 6,
		color.RGBA{170, 40, 40, 255}, false)

	if cardFontSource == nil {
		return card
	}

	face := &text.GoTextFace{Source: cardFontSource, Size: errorCardFontSize}
	lines := []string{
		"Cannot display image",
		filepath.Base(path),
		reason,
	}
	maxChars := width/12 - 2
	y := float64(height)/2 - 3*errorCardFontSize
	for _, line := range lines {
		if maxChars > 3 && len(line) > maxChars {
			line = line[:maxChars-3] + "..."
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(width)/8, y)
		op.ColorScale.ScaleWithColor(color.RGBA{220, 220, 220, 255})
		text.Draw(card, line, face, op)
		y += errorCardFontSize * 2
	}

	return card
}
