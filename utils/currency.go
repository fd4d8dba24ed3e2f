package utils

import "fmt"

// FormatMMK renders a minor-unit-free kyat amount with thousands separators.
// MMK has no commonly-used minor units in retail presentation.
// Example: 181000 -> "MMK 181,000"
func FormatMMK(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := fmt.Sprintf("%d", amount)
	out := ""
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(d)
	}

	if neg {
		return "MMK -" + out
	}
	return "MMK " + out
}
