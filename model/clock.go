package model

import "time"

// Clock supplies the current instant. Production code passes time.Now,
// whose monotonic reading drives duration math while its wall reading is
// captured for log timestamps. Tests substitute a stepped fake.
type Clock func() time.Time
