package level

import (
	"tilebrush/internal/geom"
	"tilebrush/internal/track"
)

// EventPositionTrack moves the track so the following floor starts at an
// offset from where the path would otherwise continue.
const EventPositionTrack = "PositionTrack"

// Document is a level file as read by the rhythm game.
type Document struct {
	AngleData []float64 `json:"angleData"`
	Settings  Settings  `json:"settings"`
	Actions   []Action  `json:"actions"`
}

// Action is a floor event. Floors are numbered from 1 across all branches.
type Action struct {
	Floor          int        `json:"floor"`
	EventType      string     `json:"eventType"`
	PositionOffset [2]float64 `json:"positionOffset"`
	EditorOnly     string     `json:"editorOnly"`
}

// Serialize flattens the branches into one angle list and emits a
// PositionTrack action at the first floor of every branch after the first,
// so each branch reappears where it was drawn. table must be the
// materialized form of branches.
//
// Branches without tiles contribute nothing: the next non-empty branch is
// reconnected to the last non-empty one before it.
func Serialize(branches []track.Branch, table track.Table, settings Settings) Document {
	doc := Document{
		AngleData: make([]float64, 0, table.Count()),
		Settings:  settings,
		Actions:   []Action{},
	}
	for _, b := range branches {
		for _, deg := range b.Angles {
			doc.AngleData = append(doc.AngleData, geom.EngineAngle(deg))
		}
	}

	floors := 0
	var last track.Tile
	havePrev := false
	for i := range branches {
		tiles := table[i]
		if len(tiles) == 0 {
			continue
		}
		if havePrev {
			doc.Actions = append(doc.Actions, Action{
				Floor:          floors + 1,
				EventType:      EventPositionTrack,
				PositionOffset: Correction(last, tiles[0].Pos).Pair(),
				EditorOnly:     "Disabled",
			})
		}
		floors += len(tiles)
		last = tiles[len(tiles)-1]
		havePrev = true
	}
	return doc
}

// Correction is the offset, in the level's Y-up space, between start and
// the point reached by one more step past last.
func Correction(last track.Tile, start geom.Vec) geom.Vec {
	d := start.Sub(last.End()).FlipY()
	// Keep -0 out of the document.
	if d.X == 0 {
		d.X = 0
	}
	if d.Y == 0 {
		d.Y = 0
	}
	return d
}
