package model

import (
	"errors"
	"time"
)

// MaxSplits bounds the number of splits in one session.
const MaxSplits = 100

var (
	ErrCapacity      = errors.New("split limit reached")
	ErrNoActiveSplit = errors.New("no active split")
)

// Split is a named timed interval, possibly nested inside another.
// Start/End offsets are measured against the session's paused-aware
// elapsed total, not wall or monotonic time, so split durations stay
// correct across pause/resume cycles. Wall timestamps are kept only
// for the log's human-readable clock range.
type Split struct {
	Name        string
	StartOffset time.Duration
	EndOffset   time.Duration
	Closed      bool
	StartWall   time.Time
	EndWall     time.Time
	Parent      int // index of parent split, -1 for top-level
	Level       int // 0 for top-level, else parent level + 1
}

// Duration returns the closed split's length, zero while still open.
func (s Split) Duration() time.Duration {
	if !s.Closed {
		return 0
	}
	d := s.EndOffset - s.StartOffset
	if d < 0 {
		d = 0
	}
	return d
}

// Tree holds the session's splits in insertion order plus the active
// pointer (the innermost open split). Splits are never removed or
// reordered, so index-based parent links stay valid for the whole
// session. Tree is not safe for concurrent use; all mutation must
// happen on the event loop.
type Tree struct {
	splits []Split
	active int // index of active split, -1 when none
}

func NewTree() *Tree {
	return &Tree{active: -1}
}

// Open appends a new split under the current active split (top-level
// when nothing is active) and makes it the active one. total is the
// session's elapsed at this instant, wall the matching wall clock.
func (t *Tree) Open(name string, total time.Duration, wall time.Time) (int, error) {
	if len(t.splits) >= MaxSplits {
		return 0, ErrCapacity
	}
	parent := t.active
	level := 0
	if parent >= 0 {
		level = t.splits[parent].Level + 1
	}
	t.splits = append(t.splits, Split{
		Name:        name,
		StartOffset: total,
		StartWall:   wall,
		Parent:      parent,
		Level:       level,
	})
	t.active = len(t.splits) - 1
	return t.active, nil
}

// OpenNested is Open with the explicit precondition that a parent
// exists: it refuses to create a top-level split.
func (t *Tree) OpenNested(name string, total time.Duration, wall time.Time) (int, error) {
	if t.active < 0 {
		return 0, ErrNoActiveSplit
	}
	return t.Open(name, total, wall)
}

// CloseActive stamps the active split's end exactly once and moves the
// active pointer to its parent. Returns the closed index, or false when
// nothing was active (calling it then is a no-op).
func (t *Tree) CloseActive(total time.Duration, wall time.Time) (int, bool) {
	if t.active < 0 {
		return 0, false
	}
	idx := t.active
	s := &t.splits[idx]
	if total < s.StartOffset {
		// clock jitter; a split never ends before it starts
		total = s.StartOffset
	}
	s.EndOffset = total
	s.EndWall = wall
	s.Closed = true
	t.active = s.Parent
	return idx, true
}

// Ascend moves the active pointer to its parent without closing the
// current split, leaving its timer running. Returns the index it moved
// away from, or false when nothing was active.
func (t *Tree) Ascend() (int, bool) {
	if t.active < 0 {
		return 0, false
	}
	idx := t.active
	t.active = t.splits[idx].Parent
	return idx, true
}

// Active returns the index of the innermost open split.
func (t *Tree) Active() (int, bool) {
	if t.active < 0 {
		return 0, false
	}
	return t.active, true
}

func (t *Tree) Len() int {
	return len(t.splits)
}

// Splits returns the splits in insertion order. The slice is shared;
// callers must not mutate it.
func (t *Tree) Splits() []Split {
	return t.splits
}

// Reset discards all splits and clears the active pointer.
func (t *Tree) Reset() {
	t.splits = nil
	t.active = -1
}
