package greeter

import (
	"time"

	"github.com/tartampluch/go-greeting/internal/config"
)

// FormatTimestamp renders t using the fixed display layout (zero-padded,
// 24-hour clock, four-digit year). Sub-second precision is truncated, never
// rounded, matching strftime-style formatting.
func FormatTimestamp(t time.Time) string {
	return t.Format(config.TimestampLayout)
}
