// Package orglog converts a finished session into org-mode outline
// entries and appends them to the log file.
package orglog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jdearmas/stopwatch/model"
)

const wallFormat = "2006-01-02 15:04"

// Record is one outline entry: a heading plus its LOGBOOK clock line.
type Record struct {
	Stars      int
	Title      string
	ClockStart string
	ClockEnd   string
	Duration   string
}

// Export produces the records for one session: a top-level record for
// the goal (wall-clock range, paused-aware total) followed by one
// record per closed split in insertion order, nested by heading depth
// level+2. Splits still open at export time contribute nothing.
func Export(goal string, startWall, endWall time.Time, total time.Duration, splits []model.Split) []Record {
	recs := []Record{{
		Stars:      1,
		Title:      goal,
		ClockStart: startWall.Format(wallFormat),
		ClockEnd:   endWall.Format(wallFormat),
		Duration:   model.FormatDuration(total),
	}}
	for _, s := range splits {
		if !s.Closed {
			continue
		}
		recs = append(recs, Record{
			Stars:      s.Level + 2,
			Title:      s.Name,
			ClockStart: model.FormatDuration(s.StartOffset),
			ClockEnd:   model.FormatDuration(s.EndOffset),
			Duration:   model.FormatDuration(s.Duration()),
		})
	}
	return recs
}

// Write renders records as org outline entries.
func Write(w io.Writer, recs []Record) error {
	for _, r := range recs {
		_, err := fmt.Fprintf(w, "%s %s\n  :LOGBOOK:\n  CLOCK: [%s]--[%s] => %s\n  :END:\n\n",
			strings.Repeat("*", r.Stars), r.Title, r.ClockStart, r.ClockEnd, r.Duration)
		if err != nil {
			return err
		}
	}
	return nil
}

// Append writes records to the end of the file at path, creating it if
// absent. Concurrent writers are not coordinated.
func Append(path string, recs []Record) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if err := Write(f, recs); err != nil {
		return fmt.Errorf("append log: %w", err)
	}
	return nil
}
