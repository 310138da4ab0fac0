package tui

import (
	"fmt"
	"path/filepath"
	"time"

	key "github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tilebrush/internal/geom"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().mapH-2)
		}
	case tickMsg:
		m.ed.Tick(time.Time(msg))
		if st := m.ed.Stats(); st.Branches != m.lastStats.Branches || st.Tiles != m.lastStats.Tiles {
			m.refreshBranches()
			if m.showOffsets {
				m.refreshOffsets()
			}
		}
		return m, tick(m.cfg.TickRate)
	case exportedMsg:
		switch {
		case msg.err != nil:
			m.status = "export error: " + msg.err.Error()
		case msg.warning != "":
			m.status = fmt.Sprintf("exported %s (%d floors)  warning: %s", filepath.Base(msg.path), msg.floors, msg.warning)
		default:
			m.status = fmt.Sprintf("exported %s (%d floors)", filepath.Base(msg.path), msg.floors)
		}
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy error: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("copied level to clipboard (%d bytes)", msg.bytes)
		}
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.showSidebar {
			break
		}
		m.ed.Pan(0, -1)
	case key.Matches(msg, m.keys.Down):
		if m.showSidebar {
			break
		}
		m.ed.Pan(0, 1)
	case key.Matches(msg, m.keys.Left):
		if m.showSidebar {
			break
		}
		m.ed.Pan(-1, 0)
	case key.Matches(msg, m.keys.Right):
		if m.showSidebar {
			break
		}
		m.ed.Pan(1, 0)
	case key.Matches(msg, m.keys.ZoomIn):
		m.ed.Zoom(true)
		m.status = fmt.Sprintf("zoom: %.1f", m.ed.View().Scale)
	case key.Matches(msg, m.keys.ZoomOut):
		m.ed.Zoom(false)
		m.status = fmt.Sprintf("zoom: %.1f", m.ed.View().Scale)
	case key.Matches(msg, m.keys.Undo):
		if m.ed.Undo() {
			m.status = "undo"
		} else {
			m.status = "nothing to undo"
		}
		m.refreshBranches()
		m.refreshOffsetsIfShown()
	case key.Matches(msg, m.keys.Redo):
		if m.ed.Redo() {
			m.status = "redo"
		} else {
			m.status = "nothing to redo"
		}
		m.refreshBranches()
		m.refreshOffsetsIfShown()
	case key.Matches(msg, m.keys.Export):
		m.status = "exporting..."
		return m, exportCmd(m.cfg, m.log, m.ed.Export(), m.ed.Table(), time.Now())
	case key.Matches(msg, m.keys.Copy):
		return m, copyCmd(m.log, m.ed.Document())
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshBranches()
			m.l.SetSize(sidebarWidth-2, m.layout().mapH-2)
		}
	case key.Matches(msg, m.keys.Offsets):
		m.showOffsets = !m.showOffsets
		if m.showOffsets {
			m.status = m.refreshOffsets()
		}
	case key.Matches(msg, m.keys.Jump):
		if m.showSidebar {
			m.jumpToSelected()
		}
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	}
	// Pass navigation to the list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) refreshOffsetsIfShown() {
	if m.showOffsets {
		m.refreshOffsets()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	lay := m.layout()
	// dot at the center of the hovered cell
	dx := (msg.X-lay.originX)*2 + 1
	dy := (msg.Y-lay.originY)*4 + 2
	inside := msg.X >= lay.originX && msg.X < lay.originX+lay.mapW && msg.Y >= lay.originY && msg.Y < lay.originY+lay.mapH
	pos := m.ed.View().ToGrid(geom.Vec{X: float64(dx), Y: float64(dy)}, lay.dots())

	m.hovering = inside
	if inside {
		m.hoverX, m.hoverY, m.hoverPos = dx, dy, pos
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.ed.Zoom(true)
	case msg.Button == tea.MouseButtonWheelDown:
		m.ed.Zoom(false)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if !inside || m.showOffsets {
			return
		}
		m.ed.PointerDown(pos)
		m.status = "drawing"
	case msg.Action == tea.MouseActionMotion:
		m.ed.PointerMove(pos)
	case msg.Action == tea.MouseActionRelease:
		if m.ed.Drawing() {
			m.ed.PointerUp()
			st := m.ed.Stats()
			m.status = fmt.Sprintf("branches: %d  tiles: %d", st.Branches, st.Tiles)
		}
	}
}
