package model

import (
	"testing"
	"time"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)

func TestTimerLifecycle(t *testing.T) {
	var tm Timer

	if tm.State() != StateIdle {
		t.Fatalf("new timer should be idle, got %v", tm.State())
	}
	if got := tm.TotalElapsed(base); got != 0 {
		t.Fatalf("idle elapsed = %v, want 0", got)
	}

	tm.Start("write report", base)
	if tm.State() != StateRunning {
		t.Fatalf("expected running after start, got %v", tm.State())
	}
	if tm.Goal() != "write report" {
		t.Fatalf("unexpected goal: %q", tm.Goal())
	}
	if !tm.StartedAt().Equal(base) {
		t.Fatalf("unexpected start instant: %v", tm.StartedAt())
	}

	now := base.Add(3 * time.Second)
	if got := tm.TotalElapsed(now); got != 3*time.Second {
		t.Fatalf("running elapsed = %v, want 3s", got)
	}

	tm.Stop(now)
	if tm.State() != StatePaused {
		t.Fatalf("expected paused after stop, got %v", tm.State())
	}

	tm.Reset()
	if tm.State() != StateIdle || tm.Goal() != "" || tm.TotalElapsed(now) != 0 {
		t.Fatalf("reset did not return timer to idle")
	}
}

func TestTimerPauseExcludesWallTime(t *testing.T) {
	var tm Timer
	now := base

	tm.Start("goal", now)
	now = now.Add(3 * time.Second)
	tm.Stop(now)

	// a minute passes on the wall while paused
	now = now.Add(60 * time.Second)
	if got := tm.TotalElapsed(now); got != 3*time.Second {
		t.Fatalf("paused elapsed = %v, want frozen 3s", got)
	}

	tm.Resume(now)
	now = now.Add(2 * time.Second)
	tm.Stop(now)

	if got := tm.TotalElapsed(now); got != 5*time.Second {
		t.Fatalf("total = %v, want 5s", got)
	}
}

func TestTimerResumeIsIdempotent(t *testing.T) {
	var tm Timer
	now := base

	tm.Start("goal", now)
	now = now.Add(time.Second)

	// resume while running must not move the segment start
	tm.Resume(now)
	now = now.Add(time.Second)
	if got := tm.TotalElapsed(now); got != 2*time.Second {
		t.Fatalf("elapsed = %v, want 2s", got)
	}

	tm.Stop(now)
	tm.Stop(now.Add(time.Minute)) // second stop is a no-op
	if got := tm.TotalElapsed(now.Add(time.Minute)); got != 2*time.Second {
		t.Fatalf("elapsed after double stop = %v, want 2s", got)
	}

	// resume from idle is a no-op
	tm.Reset()
	tm.Resume(now)
	if tm.State() != StateIdle {
		t.Fatalf("resume from idle should stay idle, got %v", tm.State())
	}
}

func TestTimerMonotoneWhileRunning(t *testing.T) {
	var tm Timer
	tm.Start("goal", base)

	prev := time.Duration(-1)
	for i := 0; i < 50; i++ {
		now := base.Add(time.Duration(i) * 17 * time.Millisecond)
		got := tm.TotalElapsed(now)
		if got < prev {
			t.Fatalf("elapsed went backwards: %v after %v", got, prev)
		}
		prev = got
	}
}

func TestTimerStartDiscardsPreviousSession(t *testing.T) {
	var tm Timer
	tm.Start("first", base)
	tm.Stop(base.Add(10 * time.Second))

	now := base.Add(time.Minute)
	tm.Start("second", now)
	if tm.Goal() != "second" || tm.State() != StateRunning {
		t.Fatalf("restart did not begin a fresh session")
	}
	if got := tm.TotalElapsed(now); got != 0 {
		t.Fatalf("fresh session elapsed = %v, want 0", got)
	}
}
