package util

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date wire format.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time. Blank input yields nil.
func ParseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	t, err := time.ParseInLocation(DateLayout, value, time.UTC)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid date %q, expected YYYY-MM-DD", value)
	}

	return &t, nil
}

// FormatDate renders t as YYYY-MM-DD, nil stays nil.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.UTC().Format(DateLayout)

	return &s
}

// Money rounds a decimal to cents.
func Money(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// MoneyFloat converts a decimal amount into a float64 with two decimal places.
func MoneyFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()

	return f
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		m := int(duration.Minutes())
		s := int(duration.Seconds()) % 60

		return fmt.Sprintf("%dm%ds", m, s)
	}

	h := int(duration.Hours())
	m := int(duration.Minutes()) % 60

	return fmt.Sprintf("%dh%dm", h, m)
}
