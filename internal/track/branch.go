package track

import (
	"slices"

	"tilebrush/internal/geom"
)

// Branch is one continuously drawn path segment: an anchor followed by the
// angle of each unit tile, in drawing order.
type Branch struct {
	Anchor geom.Vec
	Angles []float64
}

// Tiles is the number of tiles on the branch.
func (b Branch) Tiles() int { return len(b.Angles) }

// LastAngle returns the angle of the final tile. ok is false for a branch
// that has no tiles yet.
func (b Branch) LastAngle() (deg float64, ok bool) {
	if len(b.Angles) == 0 {
		return 0, false
	}
	return b.Angles[len(b.Angles)-1], true
}

// Clone returns a deep copy of b.
func (b Branch) Clone() Branch {
	return Branch{Anchor: b.Anchor, Angles: slices.Clone(b.Angles)}
}

// Seed returns the branch the editor opens with: six tiles heading +X from
// the origin.
func Seed() Branch {
	return Branch{Angles: []float64{90, 90, 90, 90, 90, 90}}
}
