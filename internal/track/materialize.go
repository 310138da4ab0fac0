package track

import "tilebrush/internal/geom"

// TileKind classifies a tile for drawing.
type TileKind int

const (
	// Straight tiles sit between two right-angle steps.
	Straight TileKind = iota
	// Corner tiles touch at least one step that is not a multiple of 90.
	Corner
)

// Tile is one unit step of a branch.
type Tile struct {
	// Pos is where the tile starts, in grid units.
	Pos geom.Vec
	// Angle is the direction the tile departs at.
	Angle float64
	// Next is the angle of the following tile, or Angle on the last tile.
	Next float64
	Kind TileKind
}

// End is the position reached after taking the tile's step.
func (t Tile) End() geom.Vec { return t.Pos.Add(geom.StepDelta(t.Angle, 1)) }

// Table holds the materialized tiles of every branch, indexed like the
// store's branches. It is derived data; rebuild it rather than edit it.
type Table [][]Tile

// Materialize walks each branch from its anchor and records every tile at
// the position it starts from.
func Materialize(branches []Branch) Table {
	table := make(Table, len(branches))
	for i, b := range branches {
		tiles := make([]Tile, len(b.Angles))
		pos := b.Anchor
		for j, deg := range b.Angles {
			next := deg
			if j+1 < len(b.Angles) {
				next = b.Angles[j+1]
			}
			tiles[j] = Tile{Pos: pos, Angle: deg, Next: next, Kind: kindOf(deg, next)}
			pos = pos.Add(geom.StepDelta(deg, 1))
		}
		table[i] = tiles
	}
	return table
}

func kindOf(deg, next float64) TileKind {
	if !geom.IsRightAngle(deg) || !geom.IsRightAngle(next) {
		return Corner
	}
	return Straight
}

// Positions returns only the tile start positions of each branch.
func (t Table) Positions() [][]geom.Vec {
	out := make([][]geom.Vec, len(t))
	for i, tiles := range t {
		ps := make([]geom.Vec, len(tiles))
		for j, tile := range tiles {
			ps[j] = tile.Pos
		}
		out[i] = ps
	}
	return out
}

// Count is the total number of tiles in the table.
func (t Table) Count() int {
	n := 0
	for _, tiles := range t {
		n += len(tiles)
	}
	return n
}

// Bounds returns the smallest box holding every tile start and end point.
// ok is false for an empty table.
func (t Table) Bounds() (box geom.BBox, ok bool) {
	for _, tiles := range t {
		for _, tile := range tiles {
			if !ok {
				box, ok = geom.Point(tile.Pos), true
			}
			box = box.Extend(tile.Pos).Extend(tile.End())
		}
	}
	return box, ok
}
