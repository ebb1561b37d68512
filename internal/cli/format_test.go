package cli

import (
	"testing"
	"time"

	"wheel-journal/internal/models"
)

func TestFormatIndianCurrencyExamples(t *testing.T) {
	testCases := []struct {
		amount   float64
		expected string
	}{
		{0, "₹0.00"},
		{1, "₹1.00"},
		{100, "₹100.00"},
		{1000, "₹1,000.00"},
		{10000, "₹10,000.00"},
		{100000, "₹1,00,000.00"},      // 1 lakh
		{1000000, "₹10,00,000.00"},    // 10 lakhs
		{10000000, "₹1,00,00,000.00"}, // 1 crore
		{-1234.56, "-₹1,234.56"},
		{12345678.90, "₹1,23,45,678.90"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatIndianCurrency(tc.amount)
			if result != tc.expected {
				t.Errorf("FormatIndianCurrency(%f) = %s, want %s", tc.amount, result, tc.expected)
			}
		})
	}
}

func TestFormatPercentExamples(t *testing.T) {
	testCases := []struct {
		value    float64
		expected string
	}{
		{0, "0.00%"},
		{1.5, "+1.50%"},
		{-2.5, "-2.50%"},
		{100, "+100.00%"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			result := FormatPercent(tc.value)
			if result != tc.expected {
				t.Errorf("FormatPercent(%f) = %s, want %s", tc.value, result, tc.expected)
			}
		})
	}
}

func TestFormatOptionalPrice(t *testing.T) {
	if got := FormatOptionalPrice(nil); got != "-" {
		t.Errorf("FormatOptionalPrice(nil) = %s, want -", got)
	}
	if got := FormatOptionalPrice(models.Float64Ptr(0)); got != "0.00" {
		t.Errorf("FormatOptionalPrice(0) = %s, want 0.00", got)
	}
	if got := FormatOptionalPrice(models.Float64Ptr(2500.5)); got != "2500.50" {
		t.Errorf("FormatOptionalPrice(2500.5) = %s, want 2500.50", got)
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-08-15")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year() != 2026 || d.Month() != time.August || d.Day() != 15 {
		t.Errorf("ParseDate(2026-08-15) = %v", d)
	}

	if _, err := ParseDate("15/08/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("expected error for empty date")
	}
}

func TestParseMonth(t *testing.T) {
	year, month, err := ParseMonth("2026-08")
	if err != nil {
		t.Fatalf("ParseMonth failed: %v", err)
	}
	if year != 2026 || month != time.August {
		t.Errorf("ParseMonth(2026-08) = %d, %v", year, month)
	}

	for _, bad := range []string{"2026", "August 2026", "2026-13", ""} {
		if _, _, err := ParseMonth(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestTruncateString(t *testing.T) {
	if got := TruncateString("short", 10); got != "short" {
		t.Errorf("TruncateString(short, 10) = %s", got)
	}
	if got := TruncateString("a long note about rolling", 10); got != "a long ..." {
		t.Errorf("TruncateString = %q", got)
	}
}
