package components

import "fmt"

// FormatNumber renders an integer with comma separators (1234567 -> "1,234,567").
func FormatNumber(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	if n < 1000 {
		return sign + s
	}
	var out []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, s[i])
	}
	return sign + string(out)
}

// FormatCompact renders a count with a K/M suffix (12345 -> "12.3K").
func FormatCompact(n int) string {
	switch {
	case n < 1000:
		return fmt.Sprintf("%d", n)
	case n < 1_000_000:
		return fmt.Sprintf("%.1fK", float64(n)/1000)
	default:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	}
}

// FormatPercent renders a percentage with two decimals (4.7619 -> "4.76%").
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.2f%%", p)
}
