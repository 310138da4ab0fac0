package tui

import (
	"fmt"

	list "github.com/charmbracelet/bubbles/list"

	"tilebrush/internal/geom"
)

type branchItem struct {
	title, desc string
	index       int
	anchor      geom.Vec
}

func (b branchItem) Title() string       { return b.title }
func (b branchItem) Description() string { return b.desc }
func (b branchItem) FilterValue() string { return b.title }

// refreshBranches rebuilds the sidebar from the editor's branches.
func (m *Model) refreshBranches() {
	branches := m.ed.Branches()
	items := make([]list.Item, 0, len(branches))
	for i, b := range branches {
		items = append(items, branchItem{
			title:  fmt.Sprintf("#%d  %d tiles", i+1, b.Tiles()),
			desc:   fmt.Sprintf("at %.1f, %.1f", b.Anchor.X, b.Anchor.Y),
			index:  i,
			anchor: b.Anchor,
		})
	}
	m.l.SetItems(items)
	m.lastStats = m.ed.Stats()
}

// jumpToSelected centers the canvas on the highlighted branch.
func (m *Model) jumpToSelected() {
	it, ok := m.l.SelectedItem().(branchItem)
	if !ok {
		m.status = "no branch selected"
		return
	}
	m.ed.CenterOn(it.anchor)
	m.status = fmt.Sprintf("branch #%d", it.index+1)
}
