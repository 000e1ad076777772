// Package cli provides the command-line interface for the strategist.
package cli

import (
	"fmt"
	"strings"
)

// FormatPrice formats a dollar amount with two decimal places.
func FormatPrice(amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-$%.2f", -amount)
	}
	return fmt.Sprintf("$%.2f", amount)
}

// FormatPnL formats a P&L value with an explicit sign.
func FormatPnL(pnl float64) string {
	if pnl > 0 {
		return "+" + FormatPrice(pnl)
	}
	return FormatPrice(pnl)
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatBreakevens renders a breakeven list for display.
func FormatBreakevens(breakevens []float64) string {
	if len(breakevens) == 0 {
		return "none"
	}
	parts := make([]string, len(breakevens))
	for i, be := range breakevens {
		parts[i] = fmt.Sprintf("%.2f", be)
	}
	return strings.Join(parts, ", ")
}

// FormatVolume formats a contract volume with thousands separators.
func FormatVolume(vol float64) string {
	n := int64(vol)
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	pre := len(s) % 3
	if pre > 0 {
		sb.WriteString(s[:pre])
	}
	for i := pre; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
