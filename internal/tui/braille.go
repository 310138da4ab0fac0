package tui

// brailleBuf is a canvas of w×h terminal cells, each holding a 2×4 grid of
// braille dots.
type brailleBuf struct {
	w, h int       // in cells
	m    [][]uint8 // per-cell 8-bit mask
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	for i := range m {
		m[i] = make([]uint8, w)
	}
	return &brailleBuf{w: w, h: h, m: m}
}

// dotBits maps a dot's (column, row) inside its cell to the braille bit.
var dotBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets the dot at (mx, my); dots outside the canvas are ignored.
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= dotBits[mx%2][my%4]
}

// drawLineMicro draws a line between two dots using Bresenham
func (b *brailleBuf) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillRect sets every dot in the inclusive box.
func (b *brailleBuf) fillRect(x0, y0, x1, y1 int) {
	for y := max(0, y0); y <= min(y1, b.h*4-1); y++ {
		for x := max(0, x0); x <= min(x1, b.w*2-1); x++ {
			b.setPixel(x, y)
		}
	}
}

// fillDisc sets every dot within r of (cx, cy).
func (b *brailleBuf) fillDisc(cx, cy, r int) {
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y <= r*r {
				b.setPixel(cx+x, cy+y)
			}
		}
	}
}

func (b *brailleBuf) row(y int) []rune {
	row := make([]rune, b.w)
	for x := 0; x < b.w; x++ {
		mask := b.m[y][x]
		if mask == 0 {
			row[x] = ' '
		} else {
			row[x] = rune(0x2800 + int(mask))
		}
	}
	return row
}

func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		out[y] = string(b.row(y))
	}
	return out
}
