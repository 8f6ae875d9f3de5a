package render

import (
	"image"
	"image/color"

	"github.com/katalvlaran/gridpath/grid"
)

// Image is a lazily evaluated image.Image of a grid snapshot: each pixel is
// resolved to its cell on demand, so no raster is allocated until a caller
// draws or encodes it.
type Image struct {
	snap *grid.Snapshot
	opts Options
}

// NewImage wraps snap as an image.Image.
func NewImage(snap *grid.Snapshot, opts ...Option) (*Image, error) {
	if snap == nil {
		return nil, ErrNilSnapshot
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &Image{snap: snap, opts: cfg}, nil
}

// ColorModel implements image.Image; every pixel is color.RGBA.
func (m *Image) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds spans CellPixels pixels per cell, anchored at the origin.
func (m *Image) Bounds() image.Rectangle {
	px := m.opts.CellPixels
	return image.Rect(0, 0, m.snap.Cols()*px, m.snap.Rows()*px)
}

// At returns the colour of the cell under (x, y), the grid line colour on
// cell borders when grid lines are on, and transparent outside Bounds.
func (m *Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(m.Bounds()) {
		return color.Transparent
	}
	px := m.opts.CellPixels
	if m.opts.GridLines && px >= 3 && (x%px == 0 || y%px == 0) {
		return m.opts.Palette.GridLine
	}
	p := grid.Pos{Row: y / px, Col: x / px}
	return m.opts.Palette.Color(m.snap.At(p).Kind)
}

// CellBounds returns the pixel rectangle covered by cell p.
func (m *Image) CellBounds(p grid.Pos) image.Rectangle {
	r := grid.CellRect(p, grid.Size{Width: float64(m.opts.CellPixels), Height: float64(m.opts.CellPixels)})
	return image.Rect(int(r.Min.X), int(r.Min.Y),
		int(r.Min.X+r.Size.Width), int(r.Min.Y+r.Size.Height))
}
