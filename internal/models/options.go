package models

import (
	"strings"

	"option-strategist/internal/errors"
)

// OptionType identifies a call or put contract.
type OptionType string

const (
	Call OptionType = "call"
	Put  OptionType = "put"
)

// Valid reports whether the option type is a recognized value.
func (t OptionType) Valid() bool {
	return t == Call || t == Put
}

// ParseOptionType parses a case-insensitive option type string.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return "", errors.Wrapf(errors.ErrUnknownOptionType, "%q", s)
}

// Position identifies the side of an option position.
type Position string

const (
	Long  Position = "long"
	Short Position = "short"
)

// Valid reports whether the position is a recognized value.
func (p Position) Valid() bool {
	return p == Long || p == Short
}

// ParsePosition parses a case-insensitive position string.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "buy":
		return Long, nil
	case "short", "sell":
		return Short, nil
	}
	return "", errors.Wrapf(errors.ErrUnknownPosition, "%q", s)
}

// Greeks represents option price sensitivities.
type Greeks struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
	Rho   float64 `json:"rho"`
}

// PricingSummary bundles a theoretical price with its Greeks.
type PricingSummary struct {
	Price  float64 `json:"price"`
	Greeks Greeks  `json:"greeks"`
}
