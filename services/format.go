package services

import (
	"fmt"
	"strings"
)

// FormatAmount formats a currency-like value with Indian digit grouping and
// exactly two decimal places (e.g. 1234567.89 -> "12,34,567.89"). Quantity,
// rate and amount cells in the exported documents all use this format.
func FormatAmount(value float64) string {
	negative := false
	if value < 0 {
		negative = true
		value = -value
	}

	raw := fmt.Sprintf("%.2f", value)

	parts := strings.SplitN(raw, ".", 2)
	result := groupIndian(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndian inserts commas using the Indian numbering system: the rightmost
// three digits form the first group, every two digits after that.
func groupIndian(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 2 {
		result = remaining[len(remaining)-2:] + "," + result
		remaining = remaining[:len(remaining)-2]
	}
	if len(remaining) > 0 {
		result = remaining + "," + result
	}

	return result
}
