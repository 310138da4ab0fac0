package tui

import (
	"log/slog"
	"time"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"tilebrush/internal/config"
	"tilebrush/internal/editor"
	"tilebrush/internal/geom"
)

const (
	sidebarWidth = 28
	headerHeight = 1
	footerHeight = 2
)

type Model struct {
	width  int
	height int

	showSidebar bool
	helpVisible bool

	status string

	cfg config.Config
	log *slog.Logger
	ed  *editor.Editor

	// Branch list
	l         list.Model
	lastStats editor.Stats

	// floor offsets table
	showOffsets bool
	tbl         table.Model

	keys keyMap
	help help.Model

	// hover state
	hovering bool
	hoverX   int // dots inside the canvas
	hoverY   int
	hoverPos geom.Vec
}

// New builds the UI around a fresh editor configured from cfg.
func New(cfg config.Config, log *slog.Logger) (Model, error) {
	settings, err := cfg.LevelSettings()
	if err != nil {
		return Model{}, err
	}
	ed := editor.New(editor.Options{
		Scale:       cfg.Scale.Initial,
		ScaleMin:    cfg.Scale.Min,
		ScaleMax:    cfg.Scale.Max,
		ScaleStep:   cfg.Scale.Step,
		PanFraction: cfg.PanFraction,
		TickRate:    cfg.TickRate,
		Settings:    settings,
		Seed:        cfg.Seed,
	}, log)
	return newModel(cfg, log, ed), nil
}

func newModel(cfg config.Config, log *slog.Logger, ed *editor.Editor) Model {
	m := Model{
		helpVisible: true,
		status:      "tilebrush ready",
		cfg:         cfg,
		log:         log,
		ed:          ed,
		keys:        defaultKeys(),
		help:        help.New(),
	}
	// list setup
	d := list.NewDefaultDelegate()
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Branches"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)
	// offsets table setup
	m.tbl = table.New(
		table.WithColumns([]table.Column{
			{Title: "floor", Width: 7},
			{Title: "dx", Width: 10},
			{Title: "dy", Width: 10},
		}),
		table.WithFocused(true),
	)
	m.tbl.SetHeight(12)
	m.refreshBranches()
	return m
}

type tickMsg time.Time

func tick(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(rate), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return tick(m.cfg.TickRate) }
