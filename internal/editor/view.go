package editor

import "tilebrush/internal/geom"

// View is the camera. Screen positions are in dots (braille micro-pixels);
// the camera offset is measured in dots at the current scale.
type View struct {
	Camera geom.Vec
	Scale  float64 // dots per grid unit
}

// ToScreen projects grid position p into a viewport of the given size.
func (v View) ToScreen(p geom.Vec, size geom.Vec) geom.Vec {
	return p.Scale(v.Scale).Sub(v.Camera).Add(size.Scale(0.5))
}

// ToGrid maps a screen dot back to grid units.
func (v View) ToGrid(dot geom.Vec, size geom.Vec) geom.Vec {
	return dot.Sub(size.Scale(0.5)).Add(v.Camera).Scale(1 / v.Scale)
}
