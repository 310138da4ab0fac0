package editor

import (
	"log/slog"
	"time"

	"tilebrush/internal/geom"
	"tilebrush/internal/level"
	"tilebrush/internal/logging"
	"tilebrush/internal/track"
)

// frameWindow is how many frame intervals the tick rate is averaged over.
const frameWindow = 10

// Options configures an Editor.
type Options struct {
	Scale       float64
	ScaleMin    float64
	ScaleMax    float64
	ScaleStep   float64
	PanFraction float64
	TickRate    int
	Settings    level.Settings
	Seed        bool
}

// Stats summarizes the drawing for the status bar.
type Stats struct {
	Branches int
	Tiles    int
	TickRate float64 // frames per second
}

// Editor owns all drawing state. It is not safe for concurrent use; the
// UI drives it from a single goroutine.
type Editor struct {
	opts  Options
	log   *slog.Logger
	store *track.Store
	table track.Table
	view  View

	drawing bool
	last    geom.Vec // pointer position the active branch has caught up to
	pointer geom.Vec

	prevTick time.Time
	frames   [frameWindow]time.Duration
	frameIdx int
}

// New creates an editor. With opts.Seed the drawing starts with the seed
// branch.
func New(opts Options, log *slog.Logger) *Editor {
	if log == nil {
		log = logging.NewNop()
	}
	var initial []track.Branch
	if opts.Seed {
		initial = append(initial, track.Seed())
	}
	e := &Editor{
		opts:  opts,
		log:   log,
		store: track.NewStore(initial...),
		view:  View{Scale: opts.Scale},
	}
	rate := opts.TickRate
	if rate <= 0 {
		rate = 60
	}
	for i := range e.frames {
		e.frames[i] = time.Second / time.Duration(rate)
	}
	e.refresh()
	return e
}

// PointerDown starts a new branch anchored at p.
func (e *Editor) PointerDown(p geom.Vec) {
	e.drawing = true
	e.pointer = p
	e.last = p
	idx := e.store.Begin(p)
	e.refresh()
	e.log.Debug("branch started", "branch", idx, "x", p.X, "y", p.Y)
}

// PointerMove records the latest pointer position. It is consumed by the
// next Tick.
func (e *Editor) PointerMove(p geom.Vec) { e.pointer = p }

// PointerUp finishes the active branch.
func (e *Editor) PointerUp() {
	if !e.drawing {
		return
	}
	if idx, ok := e.store.Active(); ok {
		e.log.Debug("branch finished", "branch", idx, "tiles", e.store.Branch(idx).Tiles())
	}
	e.drawing = false
	e.store.End()
}

// Drawing reports whether a branch is being drawn.
func (e *Editor) Drawing() bool { return e.drawing }

// Tick advances one frame: pending pointer motion becomes tiles and the
// tile table is rebuilt.
func (e *Editor) Tick(now time.Time) {
	if !e.prevTick.IsZero() {
		e.frames[e.frameIdx] = now.Sub(e.prevTick)
		e.frameIdx = (e.frameIdx + 1) % frameWindow
	}
	e.prevTick = now

	if e.drawing {
		d := e.pointer.Sub(e.last)
		if d.Len() >= 1 {
			steps, deg := geom.QuantizeStep(d)
			e.store.Extend(deg, steps)
			e.last = e.last.Add(geom.StepDelta(deg, steps))
		}
	}
	e.refresh()
}

func (e *Editor) refresh() { e.table = track.Materialize(e.store.Snapshot()) }

// Undo removes the most recent branch.
func (e *Editor) Undo() bool {
	if !e.store.Undo() {
		return false
	}
	if _, ok := e.store.Active(); !ok {
		e.drawing = false
	}
	e.refresh()
	e.log.Info("undo", "branches", e.store.Len())
	return true
}

// Redo restores the most recently undone branch.
func (e *Editor) Redo() bool {
	if !e.store.Redo() {
		return false
	}
	e.refresh()
	e.log.Info("redo", "branches", e.store.Len())
	return true
}

// Zoom scales the view by one step, in or out, within the configured bounds.
func (e *Editor) Zoom(in bool) {
	s := e.view.Scale
	if in {
		s *= e.opts.ScaleStep
	} else {
		s /= e.opts.ScaleStep
	}
	e.view.Scale = max(e.opts.ScaleMin, min(e.opts.ScaleMax, s))
}

// Pan moves the camera by dx, dy steps of PanFraction grid units.
func (e *Editor) Pan(dx, dy int) {
	d := e.view.Scale * e.opts.PanFraction
	e.view.Camera = e.view.Camera.Add(geom.Vec{X: float64(dx) * d, Y: float64(dy) * d})
}

// CenterOn moves the camera so p is in the middle of the viewport.
func (e *Editor) CenterOn(p geom.Vec) { e.view.Camera = p.Scale(e.view.Scale) }

// View returns the current camera.
func (e *Editor) View() View { return e.view }

// Table returns the tiles as of the last refresh. Treat it as read-only.
func (e *Editor) Table() track.Table { return e.table }

// Branches returns a copy of every branch.
func (e *Editor) Branches() []track.Branch { return e.store.Branches() }

// Stats reports counts and the averaged tick rate.
func (e *Editor) Stats() Stats {
	var total time.Duration
	for _, d := range e.frames {
		total += d
	}
	rate := 0.0
	if total > 0 {
		rate = float64(frameWindow) / total.Seconds()
	}
	return Stats{Branches: e.store.Len(), Tiles: e.store.Tiles(), TickRate: rate}
}

// Document builds the level document for the current drawing.
func (e *Editor) Document() level.Document {
	branches := e.store.Snapshot()
	return level.Serialize(branches, track.Materialize(branches), e.opts.Settings)
}

// Export is Document for an export the user asked for; it is logged.
func (e *Editor) Export() level.Document {
	doc := e.Document()
	e.log.Info("level exported", "floors", len(doc.AngleData), "corrections", len(doc.Actions))
	return doc
}
