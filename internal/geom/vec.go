package geom

import "math"

// Vec is a 2D coordinate or displacement in grid units.
// Y grows downward, matching screen space.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec) Scale(k float64) Vec { return Vec{X: v.X * k, Y: v.Y * k} }

// Len returns the euclidean length of v.
func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// FlipY mirrors v vertically. The level engine's Y axis points up.
func (v Vec) FlipY() Vec { return Vec{X: v.X, Y: -v.Y} }

// Pair returns v as an [x, y] array for JSON documents.
func (v Vec) Pair() [2]float64 { return [2]float64{v.X, v.Y} }
