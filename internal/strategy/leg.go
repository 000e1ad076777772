// Package strategy models multi-leg option strategies and their expiration
// profit/loss profiles.
package strategy

import (
	"math"

	"option-strategist/internal/errors"
	"option-strategist/internal/models"
)

// Leg is a single option position within a strategy. Legs are only
// constructed through NewLeg, so an existing Leg is always valid.
type Leg struct {
	OptionType models.OptionType
	Strike     float64
	Position   models.Position
	Premium    float64
	Quantity   int
}

// NewLeg validates and constructs a leg. Quantity must be at least 1.
func NewLeg(optionType models.OptionType, strike float64, position models.Position, premium float64, quantity int) (Leg, error) {
	if !optionType.Valid() {
		return Leg{}, errors.NewValidationError("option_type", optionType, "must be call or put")
	}
	if !position.Valid() {
		return Leg{}, errors.NewValidationError("position", position, "must be long or short")
	}
	if quantity < 1 {
		return Leg{}, errors.NewValidationError("quantity", quantity, "must be >= 1")
	}
	return Leg{
		OptionType: optionType,
		Strike:     strike,
		Position:   position,
		Premium:    premium,
		Quantity:   quantity,
	}, nil
}

// mustLeg is used by the preset constructors, whose inputs are closed enums.
func mustLeg(optionType models.OptionType, strike float64, position models.Position, premium float64, quantity int) Leg {
	leg, err := NewLeg(optionType, strike, position, premium, quantity)
	if err != nil {
		panic(err)
	}
	return leg
}

// Direction returns +1 for long positions and -1 for short positions.
func (l Leg) Direction() float64 {
	if l.Position == models.Long {
		return 1
	}
	return -1
}

// intrinsic returns the exercise value of the contract at the given spot.
func (l Leg) intrinsic(spot float64) float64 {
	if l.OptionType == models.Call {
		return math.Max(spot-l.Strike, 0)
	}
	return math.Max(l.Strike-spot, 0)
}

// PayoffAtExpiry returns the terminal payoff of this leg at the given spot,
// net of premium and scaled by quantity.
func (l Leg) PayoffAtExpiry(spot float64) float64 {
	return l.Direction() * (l.intrinsic(spot) - l.Premium) * float64(l.Quantity)
}

// PayoffOverGrid returns the terminal payoff at each spot in the grid. The
// result is element-for-element identical to calling PayoffAtExpiry on each
// spot.
func (l Leg) PayoffOverGrid(spots []float64) []float64 {
	payoffs := make([]float64, len(spots))
	for i, spot := range spots {
		payoffs[i] = l.PayoffAtExpiry(spot)
	}
	return payoffs
}
