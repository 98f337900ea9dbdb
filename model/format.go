package model

import (
	"fmt"
	"time"
)

// FormatDuration renders d as HH:MM:SS.mmm, zero-padded. Hours widen
// past two digits rather than wrap. Negative durations clamp to zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	ms := d.Milliseconds() % 1000
	secs := int64(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d.%03d", secs/3600, (secs/60)%60, secs%60, ms)
}
