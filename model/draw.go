package model

import (
	"fmt"
	"time"
)

// controlsLegend is the static key help shown under the split list.
const controlsLegend = "s start/stop  c resume  r reset  g subgoal  n nested  h close  u up  d redraw  t save  q quit"

// SplitRow is one drawable split line.
type SplitRow struct {
	Indent int // leading columns, level * 2
	Text   string
	Open   bool // still running, end/duration are live values
	Active bool
}

// DrawModel is the snapshot handed to the renderer. Building it has no
// side effects; it is re-derived on every tick and state change.
type DrawModel struct {
	Goal     string // "(none)" before the first start
	Total    string
	Count    int
	Rows     []SplitRow
	Controls string
}

// BuildDrawModel derives a drawable snapshot from the session state.
// total is the paused-aware elapsed at this instant; open splits show a
// live end and duration measured against it, closed splits show their
// frozen values. Rows keep insertion order, nesting shows as indent.
func BuildDrawModel(goal string, total time.Duration, splits []Split, active int) DrawModel {
	dm := DrawModel{
		Goal:     goal,
		Total:    FormatDuration(total),
		Count:    len(splits),
		Controls: controlsLegend,
	}
	if goal == "" {
		dm.Goal = "(none)"
	}
	for i, s := range splits {
		end := s.EndOffset
		dur := s.Duration()
		if !s.Closed {
			end = total
			dur = total - s.StartOffset
			if dur < 0 {
				dur = 0
			}
		}
		row := SplitRow{
			Indent: s.Level * 2,
			Open:   !s.Closed,
			Active: i == active,
		}
		row.Text = fmt.Sprintf("%2d) %s -> %s = %s %s",
			i+1, FormatDuration(s.StartOffset), FormatDuration(end), FormatDuration(dur), s.Name)
		dm.Rows = append(dm.Rows, row)
	}
	return dm
}
