package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"tilebrush/internal/geom"
)

// layout is the placement of the canvas inside the window, in cells.
type layout struct {
	contentW int
	contentH int
	originX  int
	originY  int
	mapW     int
	mapH     int
}

// dots is the canvas size in braille dots.
func (l layout) dots() geom.Vec {
	return geom.Vec{X: float64(l.mapW * 2), Y: float64(l.mapH * 4)}
}

// layout must agree with View.
func (m Model) layout() layout {
	sw := 0
	if m.showSidebar {
		sw = sidebarWidth
	}
	contentHeight := max(4, m.height-headerHeight-footerHeight)
	contentWidth := max(10, m.width)
	mapWidth := max(10, contentWidth-sw-1)
	originX := 0
	if m.showSidebar {
		originX = sw + 1
	}
	return layout{
		contentW: contentWidth,
		contentH: contentHeight,
		originX:  originX,
		originY:  headerHeight,
		mapW:     mapWidth,
		mapH:     contentHeight,
	}
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lay := m.layout()

	// Header
	header := titleStyle.Render(" tilebrush ─ freehand track painter ")
	header = lipgloss.NewStyle().Width(lay.contentW).Padding(0).Render(header)

	// Canvas or offsets table
	var mapView string
	if m.showOffsets {
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lay.mapW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lay.mapH-2, 20))
		box := boxStyle.Width(maxW).Render(m.tbl.View())
		mapView = lipgloss.Place(lay.mapW, lay.mapH, lipgloss.Center, lipgloss.Center, box)
	} else {
		canvas := m.renderCanvas(lay.mapW, lay.mapH)
		mapView = lipgloss.NewStyle().Width(lay.mapW).Height(lay.mapH).Render(canvas)
	}

	body := mapView
	if m.showSidebar {
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)
	}

	// Footer / help
	st := m.ed.Stats()
	stats := dimStyle.Render(fmt.Sprintf(" branches %d  tiles %d  %.1f/s ", st.Branches, st.Tiles, st.TickRate))
	status := dimStyle.Render(" " + m.status + " ")
	coords := ""
	if m.hovering {
		coords = dimStyle.Render(fmt.Sprintf("  x=%.2f y=%.2f  ", m.hoverPos.X, m.hoverPos.Y))
	}
	left := lipgloss.JoinHorizontal(lipgloss.Bottom, stats, status)
	spacerW := max(0, lay.contentW-lipgloss.Width(left)-lipgloss.Width(coords))
	right := lipgloss.Place(spacerW+lipgloss.Width(coords), 1, lipgloss.Right, lipgloss.Center, coords)
	footer := lipgloss.NewStyle().Width(lay.contentW).Render(lipgloss.JoinHorizontal(lipgloss.Bottom, left, right))
	footer = lipgloss.JoinVertical(lipgloss.Left, footer, m.renderHelp())

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lay.contentW).Height(m.height).Render(ui)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	m.help.Width = m.width
	return " " + m.help.View(m.keys)
}
