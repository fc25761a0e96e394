// Package utils provides shared utility functions
package utils

import "fmt"

// FormatFileSize converts an object size in bytes to a human-readable
// binary-unit string (e.g. "1.5 GB"). Negative sizes render as "0 B".
func FormatFileSize(size int64) string {
	if size < 0 {
		size = 0
	}
	const unit = int64(1024)
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := unit, 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
