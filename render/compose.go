package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/yalue/image_utils"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/katalvlaran/gridpath/grid"
)

// captionPad is the margin around caption text, in pixels.
const captionPad = 4

// Compose rasterizes snap and, if caption is non-empty, stacks a caption
// band under it. The result is an opaque RGBA image.
func Compose(snap *grid.Snapshot, caption string, opts ...Option) (*image.RGBA, error) {
	board, err := NewImage(snap, opts...)
	if err != nil {
		return nil, err
	}
	composite := image_utils.NewCompositeImage()
	if e := composite.AddImage(image_utils.ToRGBA(board), image.Pt(0, 0)); e != nil {
		return nil, fmt.Errorf("render: set base image: %w", e)
	}
	if caption != "" {
		band := captionBand(caption, board.Bounds().Dx(), board.opts.Palette)
		if e := composite.AddImage(band, image.Pt(0, board.Bounds().Dy())); e != nil {
			return nil, fmt.Errorf("render: add caption: %w", e)
		}
	}

	return image_utils.ToRGBA(composite), nil
}

// captionBand draws text on a solid band at least width pixels wide.
func captionBand(text string, width int, pal Palette) *image.RGBA {
	face := basicfont.Face7x13
	advance := font.MeasureString(face, text).Ceil()
	if w := advance + 2*captionPad; w > width {
		width = w
	}
	metrics := face.Metrics()
	height := metrics.Height.Ceil() + 2*captionPad

	band := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(band, band.Bounds(), image.NewUniform(pal.CaptionBack), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  band,
		Src:  image.NewUniform(pal.CaptionInk),
		Face: face,
		Dot:  fixed.P(captionPad, captionPad+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	return band
}

// WritePNG encodes Compose(snap, caption, opts...) to w.
func WritePNG(w io.Writer, snap *grid.Snapshot, caption string, opts ...Option) error {
	pic, err := Compose(snap, caption, opts...)
	if err != nil {
		return err
	}
	if err = png.Encode(w, pic); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}
