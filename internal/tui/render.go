package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tilebrush/internal/geom"
	"tilebrush/internal/track"
)

// armRatio is how far each half segment reaches from a joint, in tiles.
const armRatio = 1 / 2.1

// renderCanvas draws the tile table into a w×h cell canvas.
func (m Model) renderCanvas(w, h int) string {
	br := newBrailleBuf(w, h)
	view := m.ed.View()
	size := geom.Vec{X: float64(w * 2), Y: float64(h * 4)}
	marker := max(1, int(math.Round(view.Scale/4)))

	for _, tiles := range m.ed.Table() {
		for _, t := range tiles {
			joint := view.ToScreen(t.End(), size)
			back := joint.Sub(geom.StepDelta(t.Angle, 1).Scale(view.Scale * armRatio))
			fwd := joint.Add(geom.StepDelta(t.Next, 1).Scale(view.Scale * armRatio))
			jx, jy := dot(joint)
			bx, by := dot(back)
			fx, fy := dot(fwd)
			br.drawLineMicro(jx, jy, bx, by)
			br.drawLineMicro(jx, jy, fx, fy)
			if t.Kind == track.Corner {
				br.fillDisc(jx, jy, marker)
			} else {
				br.fillRect(jx-marker, jy-marker, jx+marker, jy+marker)
			}
		}
	}
	lines := br.toLines()
	for y := range lines {
		lines[y] = trackStyle.Render(lines[y])
	}

	// Pointer highlight: an orange ring on the hovered cell
	if m.hovering {
		cx, cy := m.hoverX/2, m.hoverY/4
		if cy >= 0 && cy < h && cx >= 0 && cx < w {
			r := br.row(cy)
			ring := lipgloss.NewStyle().Foreground(pointerFg).Render("◯")
			lines[cy] = trackStyle.Render(string(r[:cx])) + ring + trackStyle.Render(string(r[cx+1:]))
		}
	}
	return strings.Join(lines, "\n")
}

func dot(p geom.Vec) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y))
}
