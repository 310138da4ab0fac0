package level

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tilebrush/internal/geom"
	"tilebrush/internal/track"
)

func serialize(branches ...track.Branch) Document {
	return Serialize(branches, track.Materialize(branches), DefaultSettings())
}

func TestSerialize_SingleBranch(t *testing.T) {
	doc := serialize(track.Branch{Angles: []float64{90, 90}})
	assert.Equal(t, []float64{0, 0}, doc.AngleData)
	assert.Empty(t, doc.Actions)
	assert.NotNil(t, doc.Actions)
}

func TestSerialize_ConvertsEveryAngle(t *testing.T) {
	doc := serialize(
		track.Branch{Angles: []float64{0, 90, 180}},
		track.Branch{Anchor: geom.Vec{X: 4}, Angles: []float64{270, 45}},
	)
	assert.Equal(t, []float64{90, 0, 270, 180, 45}, doc.AngleData)
}

func TestSerialize_CorrectionBetweenBranches(t *testing.T) {
	doc := serialize(
		track.Branch{Angles: []float64{90, 90, 90}},
		track.Branch{Anchor: geom.Vec{X: 5, Y: 3}, Angles: []float64{180}},
	)
	require.Len(t, doc.Actions, 1)
	a := doc.Actions[0]
	assert.Equal(t, 4, a.Floor)
	assert.Equal(t, EventPositionTrack, a.EventType)
	assert.Equal(t, "Disabled", a.EditorOnly)
	assert.InDelta(t, 2, a.PositionOffset[0], 1e-9)
	assert.InDelta(t, -3, a.PositionOffset[1], 1e-9)
}

func TestSerialize_ContinuousBranchesNeedNoOffset(t *testing.T) {
	doc := serialize(
		track.Branch{Angles: []float64{90, 90}},
		track.Branch{Anchor: geom.Vec{X: 2}, Angles: []float64{90, 180}},
		track.Branch{Anchor: geom.Vec{X: 3, Y: 1}, Angles: []float64{0}},
	)
	require.Len(t, doc.Actions, 2)
	assert.Equal(t, 3, doc.Actions[0].Floor)
	assert.Equal(t, 5, doc.Actions[1].Floor)
	for _, a := range doc.Actions {
		assert.InDelta(t, 0, a.PositionOffset[0], 1e-9)
		assert.InDelta(t, 0, a.PositionOffset[1], 1e-9)
	}
}

func TestSerialize_SkipsEmptyBranches(t *testing.T) {
	doc := serialize(
		track.Branch{},
		track.Branch{Angles: []float64{90, 90, 90}},
		track.Branch{Anchor: geom.Vec{X: 50, Y: 50}},
		track.Branch{Anchor: geom.Vec{X: 5, Y: 3}, Angles: []float64{180}},
	)
	require.Len(t, doc.Actions, 1)
	assert.Equal(t, 4, doc.Actions[0].Floor)
	assert.InDelta(t, 2, doc.Actions[0].PositionOffset[0], 1e-9)
	assert.InDelta(t, -3, doc.Actions[0].PositionOffset[1], 1e-9)
}

func TestCorrection_NoNegativeZero(t *testing.T) {
	last := track.Tile{Pos: geom.Vec{}, Angle: 0}
	c := Correction(last, geom.Vec{Y: -1})
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(c.Pair()))
	assert.Equal(t, "[0,0]\n", buf.String())
}

func TestEncode_Layout(t *testing.T) {
	doc := serialize(
		track.Branch{Angles: []float64{90}},
		track.Branch{Anchor: geom.Vec{X: 5, Y: 3}, Angles: []float64{90}},
	)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, doc))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "{\n  \"angleData\": ["))
	assert.Contains(t, out, `"artist": "작곡가"`)
	assert.Contains(t, out, `"eventType": "PositionTrack"`)

	// Top-level and settings keys keep their document order.
	order := []string{`"angleData"`, `"settings"`, `"version"`, `"legacySpriteTiles"`, `"actions"`}
	last := -1
	for _, k := range order {
		i := strings.Index(out, k)
		require.Greater(t, i, last, k)
		last = i
	}

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	settings, ok := raw["settings"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, settings, 58)
	assert.Equal(t, false, settings["legacyFlash"])
	assert.Equal(t, []any{100.0, 100.0}, settings["parallax"])

	actions, ok := raw["actions"].([]any)
	require.True(t, ok)
	require.Len(t, actions, 1)
	action := actions[0].(map[string]any)
	assert.Equal(t, 2.0, action["floor"])
	assert.Equal(t, []any{4.0, -3.0}, action["positionOffset"])
}

func TestFilename(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	assert.Equal(t, "ADOFAI_Paintbrush_1700000000123.adofai", Filename(at))
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "levels")
	at := time.UnixMilli(42)
	doc := serialize(track.Seed())

	path, err := Write(dir, doc, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ADOFAI_Paintbrush_42.adofai"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Document
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, doc, back)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file must not be left behind")
}
