package tui

import (
	"fmt"

	table "github.com/charmbracelet/bubbles/table"
)

// refreshOffsets fills the table with the PositionTrack actions the next
// export would contain and returns a one-line summary.
func (m *Model) refreshOffsets() string {
	doc := m.ed.Document()
	rows := make([]table.Row, 0, len(doc.Actions))
	for _, a := range doc.Actions {
		rows = append(rows, table.Row{
			fmt.Sprint(a.Floor),
			fmt.Sprintf("%.3f", a.PositionOffset[0]),
			fmt.Sprintf("%.3f", a.PositionOffset[1]),
		})
	}
	m.tbl.SetRows(rows)
	if len(rows) == 0 {
		return "no offsets: drawing is a single branch"
	}
	return fmt.Sprintf("offsets: %d", len(rows))
}
