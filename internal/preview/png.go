// Package preview renders a drawing to a PNG image so an export can be
// checked without opening the game.
package preview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"tilebrush/internal/geom"
	"tilebrush/internal/track"
)

// ErrEmpty is returned when there are no tiles to draw.
var ErrEmpty = errors.New("nothing to preview")

// Options controls the image layout.
type Options struct {
	UnitPx     float64 // pixels per grid unit
	MaxSidePx  int     // UnitPx shrinks so neither side exceeds this
	Padding    float64 // grid units of margin around the track
	Background color.Color
	Track      color.Color
	Labels     bool // number each branch at its anchor
}

// DefaultOptions matches the level's default colors.
func DefaultOptions() Options {
	return Options{
		UnitPx:     32,
		MaxSidePx:  8192,
		Padding:    1,
		Background: color.RGBA{0x00, 0x00, 0x00, 0xff},
		Track:      color.RGBA{0xde, 0xbb, 0x7b, 0xff},
		Labels:     true,
	}
}

// Render draws every tile of table.
func Render(table track.Table, opts Options) (image.Image, error) {
	box, ok := table.Bounds()
	if !ok {
		return nil, ErrEmpty
	}
	box = box.Pad(opts.Padding)
	lo := box.Min()
	u := opts.UnitPx
	longest := max(box.Width(), box.Height())
	if opts.MaxSidePx > 0 && longest*u > float64(opts.MaxSidePx) {
		u = float64(opts.MaxSidePx) / longest
	}
	w := int(math.Ceil(box.Width() * u))
	h := int(math.Ceil(box.Height() * u))
	if opts.MaxSidePx > 0 {
		w, h = min(w, opts.MaxSidePx), min(h, opts.MaxSidePx)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(opts.Background)
	dc.Clear()
	dc.SetColor(opts.Track)
	dc.SetLineWidth(u / 2)
	dc.SetLineCap(gg.LineCapRound)

	px := func(p geom.Vec) (float64, float64) {
		return (p.X - lo.X) * u, (p.Y - lo.Y) * u
	}

	for _, tiles := range table {
		for _, t := range tiles {
			x0, y0 := px(t.Pos)
			x1, y1 := px(t.End())
			dc.DrawLine(x0, y0, x1, y1)
			dc.Stroke()
		}
	}
	// Markers go on top of the strokes, at the joint each tile leads into.
	for _, tiles := range table {
		for _, t := range tiles {
			x, y := px(t.End())
			if t.Kind == track.Corner {
				dc.DrawCircle(x, y, u/4)
			} else {
				dc.DrawRectangle(x-u/4, y-u/4, u/2, u/2)
			}
			dc.Fill()
		}
	}

	if opts.Labels {
		face, err := labelFace(u / 2)
		if err != nil {
			return nil, err
		}
		dc.SetFontFace(face)
		dc.SetColor(color.White)
		for i, tiles := range table {
			if len(tiles) == 0 {
				continue
			}
			x, y := px(tiles[0].Pos)
			dc.DrawStringAnchored(strconv.Itoa(i+1), x, y-u/2, 0.5, 0)
		}
	}
	return dc.Image(), nil
}

// SavePNG renders table and writes it to path.
func SavePNG(path string, table track.Table, opts Options) error {
	img, err := Render(table, opts)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("failed to save preview: %w", err)
	}
	return nil
}

func labelFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
