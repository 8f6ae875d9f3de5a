package render_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// board returns a 3×4 snapshot: Start (0,0), End (2,3), wall (1,1).
func board(t *testing.T) *grid.Snapshot {
	t.Helper()
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 2, Col: 3}))
	g.SetWall(grid.Pos{Row: 1, Col: 1}, true)
	return g.Snapshot()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

//------------------------------------------------------------------------//
// Image
//------------------------------------------------------------------------//

func TestImage_BoundsAndColors(t *testing.T) {
	pal := render.DefaultPalette()
	img, err := render.NewImage(board(t), render.WithCellPixels(10))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())

	cases := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"start", 5, 5, pal.Start},
		{"wall", 15, 15, pal.Wall},
		{"end", 35, 25, pal.End},
		{"open", 25, 5, pal.Open},
		{"grid line", 10, 4, pal.GridLine},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, rgba(img.At(tc.x, tc.y)))
		})
	}
	assert.Equal(t, color.RGBA{}, rgba(img.At(-1, 0)))
	assert.Equal(t, color.RGBA{}, rgba(img.At(40, 0)))
}

func TestImage_NoGridLines(t *testing.T) {
	pal := render.DefaultPalette()
	img, err := render.NewImage(board(t), render.WithCellPixels(10), render.WithGridLines(false))
	require.NoError(t, err)
	assert.Equal(t, pal.Open, rgba(img.At(20, 0)))
	assert.Equal(t, image.Rect(10, 10, 20, 20), img.CellBounds(grid.Pos{Row: 1, Col: 1}))
}

func TestImage_Errors(t *testing.T) {
	_, err := render.NewImage(nil)
	require.ErrorIs(t, err, render.ErrNilSnapshot)
	_, err = render.NewImage(board(t), render.WithCellPixels(0))
	require.ErrorIs(t, err, render.ErrOptionViolation)
}

//------------------------------------------------------------------------//
// Compose / PNG
//------------------------------------------------------------------------//

func TestCompose(t *testing.T) {
	snap := board(t)
	plain, err := render.Compose(snap, "", render.WithCellPixels(4))
	require.NoError(t, err)
	assert.Equal(t, 16, plain.Bounds().Dx())
	assert.Equal(t, 12, plain.Bounds().Dy())

	captioned, err := render.Compose(snap, "astar: found", render.WithCellPixels(4))
	require.NoError(t, err)
	assert.Greater(t, captioned.Bounds().Dy(), 12, "caption band sits below the board")
	assert.GreaterOrEqual(t, captioned.Bounds().Dx(), 16)

	pal := render.DefaultPalette()
	assert.Equal(t, pal.Wall, captioned.RGBAAt(6, 6), "board pixels are kept")
	assert.Equal(t, pal.CaptionBack, captioned.RGBAAt(1, 13))
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.WritePNG(&buf, board(t), "demo", render.WithCellPixels(6)))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, decoded.Bounds().Dx(), 24)
	assert.Greater(t, decoded.Bounds().Dy(), 18)

	require.ErrorIs(t, render.WritePNG(&buf, nil, ""), render.ErrNilSnapshot)
}

//------------------------------------------------------------------------//
// Text
//------------------------------------------------------------------------//

func TestText(t *testing.T) {
	g, err := grid.New(3, 4)
	require.NoError(t, err)
	require.NoError(t, g.SetStart(grid.Pos{Row: 0, Col: 0}))
	require.NoError(t, g.SetEnd(grid.Pos{Row: 0, Col: 3}))
	g.SetWall(grid.Pos{Row: 0, Col: 1}, true)
	g.SetWall(grid.Pos{Row: 0, Col: 2}, true)

	trace, res, err := search.Run(search.Dijkstra, g.Snapshot())
	require.NoError(t, err)
	require.Equal(t, search.Found, res.Outcome)
	trace.Final(g)

	want := "S##E\n" +
		"****\n" +
		"...o\n"
	assert.Equal(t, want, render.Text(g.Snapshot()))
	assert.Empty(t, render.Text(nil))
}

func TestGlyph(t *testing.T) {
	seen := map[rune]grid.Kind{}
	for _, k := range []grid.Kind{grid.Open, grid.Wall, grid.Start, grid.End, grid.Frontier, grid.Visited, grid.OnPath} {
		r := render.Glyph(k)
		_, dup := seen[r]
		assert.False(t, dup, "glyph %q reused for %v", r, k)
		seen[r] = k
	}
}
