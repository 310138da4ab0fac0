package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestQuantizeStep_Cardinal(t *testing.T) {
	tests := []struct {
		name  string
		d     Vec
		steps int
		deg   float64
	}{
		{"right", Vec{X: 1}, 1, 90},
		{"down", Vec{Y: 2.5}, 2, 180},
		{"left", Vec{X: -3.9}, 3, 270},
		{"up", Vec{Y: -1}, 1, 0},
		{"diagonal", Vec{X: 2, Y: -2}, 2, 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			steps, deg := QuantizeStep(tt.d)
			assert.Equal(t, tt.steps, steps)
			assert.InDelta(t, tt.deg, deg, tol)
		})
	}
}

func TestQuantizeStep_Properties(t *testing.T) {
	for i := 0; i < 500; i++ {
		theta := float64(i) * 0.731
		m := 1.0001 + float64(i%17)*0.37
		d := Vec{X: math.Cos(theta) * m, Y: math.Sin(theta) * m}

		steps, deg := QuantizeStep(d)
		require.Equal(t, int(math.Floor(d.Len())), steps)
		require.GreaterOrEqual(t, deg, 0.0)
		require.Less(t, deg, 360.0)

		// Walking the run reproduces the drag direction.
		var p Vec
		for s := 0; s < steps; s++ {
			p = p.Add(StepDelta(deg, 1))
		}
		assert.InDelta(t, float64(steps), p.Len(), 1e-6)
		assert.InDelta(t, 0, p.X*d.Y-p.Y*d.X, 1e-6, "run must be parallel to the drag")
		assert.Greater(t, p.X*d.X+p.Y*d.Y, 0.0)
	}
}

func TestQuantizeStep_UnitMagnitude(t *testing.T) {
	for i := 0; i < 500; i++ {
		theta := float64(i) * 0.731
		d := Vec{X: math.Cos(theta), Y: math.Sin(theta)}
		steps, _ := QuantizeStep(d)
		// Rounding can land just under one unit; callers only quantize |d| >= 1.
		assert.LessOrEqual(t, steps, 1)
		if d.Len() >= 1 {
			assert.Equal(t, 1, steps)
		}
	}
}

func TestStepDelta_RoundTrip(t *testing.T) {
	for deg := 0.0; deg < 360; deg += 0.25 {
		steps, got := QuantizeStep(StepDelta(deg, 1))
		// |delta| is 1 up to rounding, so floor may land on 0.
		assert.LessOrEqual(t, steps, 1)
		diff := math.Abs(got - deg)
		if diff > 180 {
			diff = 360 - diff
		}
		assert.InDelta(t, 0, diff, 1e-9, "deg=%v", deg)
	}
}

func TestStepDelta_Count(t *testing.T) {
	d := StepDelta(90, 3)
	assert.InDelta(t, 3, d.X, tol)
	assert.InDelta(t, 0, d.Y, tol)

	d = StepDelta(0, 2)
	assert.InDelta(t, 0, d.X, tol)
	assert.InDelta(t, -2, d.Y, tol)
}

func TestNormalizeDegrees(t *testing.T) {
	assert.Equal(t, 0.0, NormalizeDegrees(360))
	assert.Equal(t, 0.0, NormalizeDegrees(-360))
	assert.Equal(t, 0.0, NormalizeDegrees(math.Copysign(0, -1)))
	assert.InDelta(t, 270, NormalizeDegrees(-90), tol)
	assert.InDelta(t, 90, NormalizeDegrees(810), tol)
	assert.Equal(t, 0.0, NormalizeDegrees(-1e-15))
}

func TestEngineAngle(t *testing.T) {
	assert.Equal(t, 0.0, EngineAngle(90))
	assert.Equal(t, 90.0, EngineAngle(0))
	assert.Equal(t, 180.0, EngineAngle(270))
	assert.Equal(t, 270.0, EngineAngle(180))

	seen := make(map[float64]bool)
	for a := 0.0; a < 360; a += 0.5 {
		out := EngineAngle(a)
		require.GreaterOrEqual(t, out, 0.0)
		require.Less(t, out, 360.0)
		require.False(t, seen[out], "EngineAngle(%v) collides", a)
		seen[out] = true
		// The transform is its own inverse.
		assert.InDelta(t, a, EngineAngle(out), tol)
	}
}

func TestIsRightAngle(t *testing.T) {
	assert.True(t, IsRightAngle(0))
	assert.True(t, IsRightAngle(270))
	assert.False(t, IsRightAngle(45))
	assert.False(t, IsRightAngle(90.5))
}

func TestVec(t *testing.T) {
	v := Vec{X: 3, Y: 4}
	assert.Equal(t, 5.0, v.Len())
	assert.Equal(t, Vec{X: 4, Y: 6}, v.Add(Vec{X: 1, Y: 2}))
	assert.Equal(t, Vec{X: 2, Y: 2}, v.Sub(Vec{X: 1, Y: 2}))
	assert.Equal(t, Vec{X: 6, Y: 8}, v.Scale(2))
	assert.Equal(t, [2]float64{3, -4}, v.FlipY().Pair())
}

func TestBBox(t *testing.T) {
	b := Point(Vec{X: 1, Y: 1}).Extend(Vec{X: -2, Y: 3}).Extend(Vec{X: 0, Y: 0})
	assert.Equal(t, BBox{MinX: -2, MinY: 0, MaxX: 1, MaxY: 3}, b)
	assert.Equal(t, 3.0, b.Width())
	assert.Equal(t, 3.0, b.Height())

	p := b.Pad(1)
	assert.Equal(t, Vec{X: -3, Y: -1}, p.Min())
	assert.Equal(t, 5.0, p.Width())
}
