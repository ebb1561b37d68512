// Package cli provides the command-line interface for the wheel journal.
package cli

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the canonical calendar-date format used on flags and output.
const dateLayout = "2006-01-02"

// FormatIndianCurrency formats a number in Indian currency format.
func FormatIndianCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := parts[1]

	result := "₹" + formatIndianNumber(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// formatIndianNumber formats an integer string in the Indian numbering
// system: 1,00,00,000 (1 crore) vs Western 10,000,000.
func formatIndianNumber(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	// First group of 3 from the right, then groups of 2.
	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 0 {
		if len(s) >= 2 {
			result = s[len(s)-2:] + "," + result
			s = s[:len(s)-2]
		} else {
			result = s + "," + result
			s = ""
		}
	}
	return result
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatPrice formats a price with two decimal places.
func FormatPrice(price float64) string {
	return fmt.Sprintf("%.2f", price)
}

// FormatOptionalPrice formats a price that may be absent.
func FormatOptionalPrice(price *float64) string {
	if price == nil {
		return "-"
	}
	return FormatPrice(*price)
}

// FormatDate formats a calendar date.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// FormatOptionalDate formats a date that may be absent.
func FormatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return FormatDate(*t)
}

// ParseDate parses a YYYY-MM-DD date in the local calendar.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, s, time.Local)
}

// ParseMonth parses a YYYY-MM month selector.
func ParseMonth(s string) (int, time.Month, error) {
	t, err := time.ParseInLocation("2006-01", s, time.Local)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month %q, want YYYY-MM", s)
	}
	return t.Year(), t.Month(), nil
}

// TruncateString truncates a string to max length with ellipsis.
func TruncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
