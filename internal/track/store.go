package track

import "tilebrush/internal/geom"

// Store owns every branch plus the bin of branches removed by Undo.
//
// Undo may remove every branch, the seed included; an empty store is valid.
// The bin is a stack: consecutive undos are redone newest first, and any
// new branch empties it.
type Store struct {
	branches []Branch
	bin      []Branch
	active   int // index of the branch being drawn, -1 when idle
}

// NewStore returns a store holding copies of the given branches.
func NewStore(initial ...Branch) *Store {
	s := &Store{active: -1}
	for _, b := range initial {
		s.branches = append(s.branches, b.Clone())
	}
	return s
}

// Begin starts a new branch at anchor with a single tile pointing up and
// makes it the active branch. Redo history is discarded.
func (s *Store) Begin(anchor geom.Vec) int {
	s.branches = append(s.branches, Branch{Anchor: anchor, Angles: []float64{geom.StartAngle}})
	s.active = len(s.branches) - 1
	s.bin = s.bin[:0]
	return s.active
}

// Extend appends count tiles at deg to the active branch. It does nothing
// when no branch is being drawn.
func (s *Store) Extend(deg float64, count int) {
	if s.active < 0 {
		return
	}
	b := &s.branches[s.active]
	for i := 0; i < count; i++ {
		b.Angles = append(b.Angles, deg)
	}
}

// End finishes the active branch.
func (s *Store) End() { s.active = -1 }

// Active returns the index of the branch being drawn.
func (s *Store) Active() (int, bool) { return s.active, s.active >= 0 }

// Undo moves the last branch into the bin. It reports whether anything was
// removed.
func (s *Store) Undo() bool {
	n := len(s.branches)
	if n == 0 {
		return false
	}
	s.bin = append(s.bin, s.branches[n-1])
	s.branches = s.branches[:n-1]
	if s.active >= len(s.branches) {
		s.active = -1
	}
	return true
}

// Redo restores the most recently undone branch. It reports whether
// anything was restored.
func (s *Store) Redo() bool {
	n := len(s.bin)
	if n == 0 {
		return false
	}
	s.branches = append(s.branches, s.bin[n-1])
	s.bin = s.bin[:n-1]
	return true
}

// CanRedo reports whether the bin holds a branch.
func (s *Store) CanRedo() bool { return len(s.bin) > 0 }

// Len is the number of branches.
func (s *Store) Len() int { return len(s.branches) }

// Tiles is the total tile count across all branches.
func (s *Store) Tiles() int {
	n := 0
	for _, b := range s.branches {
		n += b.Tiles()
	}
	return n
}

// Branch returns a copy of branch i.
func (s *Store) Branch(i int) Branch { return s.branches[i].Clone() }

// Branches returns a deep copy of every branch in order.
func (s *Store) Branches() []Branch {
	out := make([]Branch, len(s.branches))
	for i, b := range s.branches {
		out[i] = b.Clone()
	}
	return out
}

// Snapshot exposes the branches without copying. Callers must not modify
// the result or keep it past the next mutation.
func (s *Store) Snapshot() []Branch { return s.branches }
