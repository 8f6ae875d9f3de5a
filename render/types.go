package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors for rendering.
var (
	// ErrNilSnapshot indicates a nil *grid.Snapshot was passed.
	ErrNilSnapshot = errors.New("render: snapshot is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("render: invalid option supplied")
)

// Palette assigns a color to every cell kind, plus grid lines and the caption band.
type Palette struct {
	Open, Wall, Start, End    color.RGBA
	Frontier, Visited, OnPath color.RGBA
	GridLine                  color.RGBA
	CaptionBack, CaptionInk   color.RGBA
}

// DefaultPalette: black walls on white with gray grid lines, green Start,
// red End, and blue shades for the search.
func DefaultPalette() Palette {
	return Palette{
		Open:        color.RGBA{255, 255, 255, 255},
		Wall:        color.RGBA{0, 0, 0, 255},
		Start:       color.RGBA{40, 180, 70, 255},
		End:         color.RGBA{220, 50, 50, 255},
		Frontier:    color.RGBA{100, 120, 255, 255},
		Visited:     color.RGBA{0xA6, 0xCC, 0xFF, 255},
		OnPath:      color.RGBA{255, 200, 0, 255},
		GridLine:    color.RGBA{128, 128, 128, 255},
		CaptionBack: color.RGBA{23, 23, 23, 255},
		CaptionInk:  color.RGBA{255, 255, 255, 255},
	}
}

// Color returns the fill color for cells of kind k.
func (p Palette) Color(k grid.Kind) color.RGBA {
	switch k {
	case grid.Wall:
		return p.Wall
	case grid.Start:
		return p.Start
	case grid.End:
		return p.End
	case grid.Frontier:
		return p.Frontier
	case grid.Visited:
		return p.Visited
	case grid.OnPath:
		return p.OnPath
	}
	return p.Open
}

// Options controls rasterization.
type Options struct {
	// CellPixels is the side of one square cell in pixels (≥ 1).
	CellPixels int

	// GridLines draws a one-pixel line on the top and left edge of every
	// cell when CellPixels ≥ 3.
	GridLines bool

	Palette Palette

	err error
}

// Option configures rendering.
type Option func(*Options)

// DefaultOptions returns 8-pixel cells, grid lines on, DefaultPalette.
func DefaultOptions() Options {
	return Options{
		CellPixels: 8,
		GridLines:  true,
		Palette:    DefaultPalette(),
	}
}

// WithCellPixels sets the cell size in pixels.
func WithCellPixels(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: CellPixels must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.CellPixels = n
	}
}

// WithGridLines toggles grid lines.
func WithGridLines(on bool) Option {
	return func(o *Options) {
		o.GridLines = on
	}
}

// WithPalette replaces the palette.
func WithPalette(p Palette) Option {
	return func(o *Options) {
		o.Palette = p
	}
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg, cfg.err
}
