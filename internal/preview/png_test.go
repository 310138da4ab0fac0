package preview

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilebrush/internal/geom"
	"tilebrush/internal/track"
)

func TestRender_Empty(t *testing.T) {
	_, err := Render(track.Materialize([]track.Branch{{}}), DefaultOptions())
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRender_SizeAndColors(t *testing.T) {
	table := track.Materialize([]track.Branch{{Angles: []float64{90, 90}}})
	opts := DefaultOptions()
	opts.Labels = false

	img, err := Render(table, opts)
	require.NoError(t, err)
	b := img.Bounds()
	// Two units of track plus one unit of padding per side.
	assert.Equal(t, 4*32, b.Dx())
	assert.Equal(t, 2*32, b.Dy())

	r, g, bl, _ := img.At(2, 2).RGBA()
	assert.Equal(t, [3]uint32{0, 0, 0}, [3]uint32{r, g, bl}, "corner is background")

	want := color.RGBAModel.Convert(opts.Track).(color.RGBA)
	got := color.RGBAModel.Convert(img.At(48, 32)).(color.RGBA)
	assert.Equal(t, want, got, "track passes through the middle row")
}

func TestSavePNG(t *testing.T) {
	table := track.Materialize([]track.Branch{
		track.Seed(),
		{Anchor: geom.Vec{X: 2, Y: 3}, Angles: []float64{45, 45, 180}},
	})
	path := filepath.Join(t.TempDir(), "preview.png")
	require.NoError(t, SavePNG(path, table, DefaultOptions()))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 6*32)
}

func TestRender_CapsImageSize(t *testing.T) {
	table := track.Materialize([]track.Branch{
		{Angles: []float64{90}},
		{Anchor: geom.Vec{X: 900, Y: 300}, Angles: []float64{180}},
	})
	opts := DefaultOptions()
	opts.Labels = false

	img, err := Render(table, opts)
	require.NoError(t, err)
	b := img.Bounds()
	assert.LessOrEqual(t, b.Dx(), opts.MaxSidePx)
	assert.LessOrEqual(t, b.Dy(), opts.MaxSidePx)
	assert.Greater(t, b.Dx(), b.Dy())
}
