package track

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilebrush/internal/geom"
)

func assertVec(t *testing.T, want, got geom.Vec) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9)
	assert.InDelta(t, want.Y, got.Y, 1e-9)
}

func TestMaterialize_StartPositions(t *testing.T) {
	table := Materialize([]Branch{{Anchor: geom.Vec{}, Angles: []float64{90, 90}}})
	require.Len(t, table, 1)
	require.Len(t, table[0], 2)
	assertVec(t, geom.Vec{X: 0, Y: 0}, table[0][0].Pos)
	assertVec(t, geom.Vec{X: 1, Y: 0}, table[0][1].Pos)
	assertVec(t, geom.Vec{X: 2, Y: 0}, table[0][1].End())
}

func TestMaterialize_Turns(t *testing.T) {
	b := Branch{Anchor: geom.Vec{X: 1, Y: 1}, Angles: []float64{90, 180, 270, 0}}
	ps := Materialize([]Branch{b}).Positions()[0]
	want := []geom.Vec{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}}
	for i := range want {
		assertVec(t, want[i], ps[i])
	}
}

func TestMaterialize_TileCountInvariant(t *testing.T) {
	branches := []Branch{
		{},
		Seed(),
		{Anchor: geom.Vec{X: -3}, Angles: []float64{45, 45, 300}},
	}
	table := Materialize(branches)
	require.Len(t, table, len(branches))
	for i, b := range branches {
		assert.Len(t, table[i], b.Tiles())
	}
	assert.Equal(t, 9, table.Count())
}

func TestMaterialize_Idempotent(t *testing.T) {
	branches := []Branch{Seed(), {Anchor: geom.Vec{X: 2, Y: 2}, Angles: []float64{30, 60}}}
	assert.Equal(t, Materialize(branches), Materialize(branches))
}

func TestMaterialize_Kinds(t *testing.T) {
	b := Branch{Angles: []float64{90, 90, 45, 180, 180}}
	tiles := Materialize([]Branch{b})[0]
	kinds := make([]TileKind, len(tiles))
	for i, tile := range tiles {
		kinds[i] = tile.Kind
	}
	assert.Equal(t, []TileKind{Straight, Corner, Corner, Straight, Straight}, kinds)
	assert.Equal(t, 180.0, tiles[4].Next)
}

func TestTable_Bounds(t *testing.T) {
	_, ok := Table{}.Bounds()
	assert.False(t, ok)

	table := Materialize([]Branch{{Anchor: geom.Vec{X: 1, Y: 1}, Angles: []float64{90, 180}}})
	box, ok := table.Bounds()
	require.True(t, ok)
	assertVec(t, geom.Vec{X: 1, Y: 1}, box.Min())
	assertVec(t, geom.Vec{X: 2, Y: 2}, geom.Vec{X: box.MaxX, Y: box.MaxY})
}
