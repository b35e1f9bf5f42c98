package main

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"time"

	"github.com/disintegration/imaging"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// blurSampleWidth is the width images are crushed down to before being
// stretched back over the screen. The resampling loss is the blur.
const blurSampleWidth = 32

// slideSurface is one live full-screen layer: the composed image plus its
// current opacity.
type slideSurface struct {
	layer    *ebiten.Image
	opacity  float64
	disposed bool
}

func (s *slideSurface) SetOpacity(v float64) {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	s.opacity = v
}

func (s *slideSurface) Opacity() float64 { return s.opacity }

func (s *slideSurface) Draw(screen *ebiten.Image) {
	if s.disposed || s.opacity == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(s.opacity))
	screen.DrawImage(s.layer, op)
}

func (s *slideSurface) Dispose() {
	if s.disposed {
		return
	}
	s.layer.Deallocate()
	s.disposed = true
}

// SlideBuilder turns an image file into a screen-sized surface: a blurred
// screen-filling background with the sharp, aspect-fitted image centered on
// top, so slides never show letterbox bars.
type SlideBuilder struct {
	fs      afero.Fs
	logger  *zap.Logger
	screenW int
	screenH int
	clock   Clock
}

func NewSlideBuilder(fs afero.Fs, logger *zap.Logger, screenW, screenH int, clock Clock) *SlideBuilder {
	return &SlideBuilder{
		fs:      fs,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		clock:   clock,
	}
}

// Build decodes and composes the file at path. The returned surface starts
// fully transparent; the build time is reported for dynamic pacing.
func (b *SlideBuilder) Build(path string) (Surface, time.Duration, error) {
	start := b.clock.Now()

	f, err := b.fs.Open(path)
	if err != nil {
		return nil, b.clock.Now().Sub(start), errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, b.clock.Now().Sub(start), errors.Wrapf(err, "decoding %s", path)
	}

	composed := b.compose(img)
	surface := &slideSurface{layer: ebiten.NewImageFromImage(composed)}
	build := b.clock.Now().Sub(start)

	b.logger.Debug("slide built",
		zap.String("path", path),
		zap.Duration("build", build))
	return surface, build, nil
}

// ErrorCard builds a surface showing why a slide could not be loaded, so a
// single bad file never terminates the slideshow.
func (b *SlideBuilder) ErrorCard(path string, cause error) Surface {
	card := newErrorCard(b.screenW, b.screenH, path, cause.Error())
	return &slideSurface{layer: card}
}

func (b *SlideBuilder) compose(img image.Image) *image.NRGBA {
	// Background: heavy downscale, then stretch to cover the whole screen.
	small := imaging.Resize(img, blurSampleWidth, 0, imaging.Box)
	background := imaging.Fill(small, b.screenW, b.screenH, imaging.Center, imaging.Linear)

	// Foreground: aspect-preserving fit, centered.
	bounds := img.Bounds()
	h, w := FitBounds(bounds.Dy(), bounds.Dx(), b.screenH, b.screenW)
	foreground := imaging.Resize(img, w, h, imaging.Lanczos)

	return imaging.Paste(background, foreground,
		image.Pt((b.screenW-w)/2, (b.screenH-h)/2))
}
