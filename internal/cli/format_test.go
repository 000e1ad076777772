package cli

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{5, "$5.00"},
		{1234.5, "$1234.50"},
		{-6, "-$6.00"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPnL(t *testing.T) {
	if got := FormatPnL(9); got != "+$9.00" {
		t.Errorf("FormatPnL(9) = %q, want +$9.00", got)
	}
	if got := FormatPnL(-6); got != "-$6.00" {
		t.Errorf("FormatPnL(-6) = %q, want -$6.00", got)
	}
	if got := FormatPnL(0); got != "$0.00" {
		t.Errorf("FormatPnL(0) = %q, want $0.00", got)
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(32.5); got != "+32.50%" {
		t.Errorf("FormatPercent(32.5) = %q", got)
	}
	if got := FormatPercent(-1.2); got != "-1.20%" {
		t.Errorf("FormatPercent(-1.2) = %q", got)
	}
}

func TestFormatBreakevens(t *testing.T) {
	if got := FormatBreakevens(nil); got != "none" {
		t.Errorf("FormatBreakevens(nil) = %q, want none", got)
	}
	if got := FormatBreakevens([]float64{90, 110.5}); got != "90.00, 110.50" {
		t.Errorf("FormatBreakevens = %q", got)
	}
}

func TestFormatVolume(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := FormatVolume(tt.in); got != tt.want {
			t.Errorf("FormatVolume(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
