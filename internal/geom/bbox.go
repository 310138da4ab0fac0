package geom

// BBox is an axis-aligned box in grid units.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Point returns the degenerate box holding only p.
func Point(p Vec) BBox { return BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y} }

// Extend grows b to include p.
func (b BBox) Extend(p Vec) BBox {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// Pad grows b by d on every side.
func (b BBox) Pad(d float64) BBox {
	return BBox{MinX: b.MinX - d, MinY: b.MinY - d, MaxX: b.MaxX + d, MaxY: b.MaxY + d}
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Min is the top-left corner.
func (b BBox) Min() Vec { return Vec{X: b.MinX, Y: b.MinY} }
