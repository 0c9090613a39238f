// Package util holds formatting helpers for log lines and error messages.
package util

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

// FormatSize renders a byte count in the decimal units size limits are
// configured in, with at most one decimal: "512 B", "1.5 KB", "5 MB".
func FormatSize(n int64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	const prefixes = "KMGTPE"
	value := float64(n) / unit
	exp := 0
	for value >= unit && exp < len(prefixes)-1 {
		value /= unit
		exp++
	}

	formatted := strings.TrimSuffix(strconv.FormatFloat(value, 'f', 1, 64), ".0")

	return fmt.Sprintf("%s %cB", formatted, prefixes[exp])
}

// FormatTTL renders a lifetime rounded to the second, listing only the
// non-zero units: "7d", "1d12h", "2h30m", "45s".
func FormatTTL(d time.Duration) string {
	d = d.Round(time.Second)
	if d <= 0 {
		return "0s"
	}

	var b strings.Builder
	for _, u := range []struct {
		size   time.Duration
		suffix string
	}{
		{day, "d"},
		{time.Hour, "h"},
		{time.Minute, "m"},
		{time.Second, "s"},
	} {
		if n := d / u.size; n > 0 {
			b.WriteString(strconv.FormatInt(int64(n), 10))
			b.WriteString(u.suffix)
			d -= n * u.size
		}
	}

	return b.String()
}
