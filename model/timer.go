package model

import "time"

// State is the session timer's run state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// Timer tracks the main goal's run state and accumulated elapsed time,
// independent of individual splits. Elapsed excludes paused intervals:
// while running the current segment is measured from segmentStart and
// folded into elapsed on stop. Timer is not safe for concurrent use.
type Timer struct {
	goal         string
	state        State
	elapsed      time.Duration
	segmentStart time.Time
	startedAt    time.Time // wall instant of session start, for the log
}

// Start begins a fresh session: it sets the goal, zeroes the elapsed
// accumulator and starts running. Calling it while running or paused
// silently discards the previous session.
func (t *Timer) Start(goal string, now time.Time) {
	t.goal = goal
	t.state = StateRunning
	t.elapsed = 0
	t.segmentStart = now
	t.startedAt = now
}

// Stop pauses the timer, folding the current segment into elapsed.
// No-op unless running.
func (t *Timer) Stop(now time.Time) {
	if t.state != StateRunning {
		return
	}
	t.elapsed += now.Sub(t.segmentStart)
	t.state = StatePaused
}

// Resume continues a paused session. No-op unless paused, so repeated
// resumes never double-count a segment.
func (t *Timer) Resume(now time.Time) {
	if t.state != StatePaused {
		return
	}
	t.segmentStart = now
	t.state = StateRunning
}

// Reset returns the timer to idle and clears the goal.
func (t *Timer) Reset() {
	*t = Timer{}
}

// TotalElapsed reports accumulated running time at now, excluding
// paused intervals. Pure query.
func (t *Timer) TotalElapsed(now time.Time) time.Duration {
	if t.state == StateRunning {
		return t.elapsed + now.Sub(t.segmentStart)
	}
	return t.elapsed
}

func (t *Timer) State() State { return t.state }

func (t *Timer) Goal() string { return t.goal }

func (t *Timer) Started() bool { return t.state != StateIdle }

// StartedAt is the wall instant of the session start, kept for the
// log's top-level clock range.
func (t *Timer) StartedAt() time.Time { return t.startedAt }
