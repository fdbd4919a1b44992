package utils

import (
	"time"
)

// outputTimestampLayout matches the file-name timestamp format of the output sink.
const outputTimestampLayout = "2006-01-02_15-04-05"

// FormatOutputTimestamp returns the provided time formatted for embedding in
// an output file name (local time zone, second resolution).
func FormatOutputTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(outputTimestampLayout)
}
