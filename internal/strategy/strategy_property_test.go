package strategy

import (
	"sort"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"option-strategist/internal/models"
)

func genOptionType() gopter.Gen {
	return gen.OneConstOf(models.Call, models.Put)
}

func genPosition() gopter.Gen {
	return gen.OneConstOf(models.Long, models.Short)
}

// The vectorized payoff path must agree exactly with the scalar path for any
// leg over any grid.
func TestPropertyGridScalarEquivalence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("PayoffOverGrid equals pointwise PayoffAtExpiry", prop.ForAll(
		func(optionType models.OptionType, position models.Position, strike, premium float64, quantity int, spots []float64) bool {
			leg, err := NewLeg(optionType, strike, position, premium, quantity)
			if err != nil {
				return false
			}

			grid := leg.PayoffOverGrid(spots)
			if len(grid) != len(spots) {
				return false
			}
			for i, spot := range spots {
				if grid[i] != leg.PayoffAtExpiry(spot) {
					return false
				}
			}
			return true
		},
		genOptionType(),
		genPosition(),
		gen.Float64Range(1, 1000),
		gen.Float64Range(0, 100),
		gen.IntRange(1, 10),
		gen.SliceOf(gen.Float64Range(0, 2000)),
	))

	properties.TestingRun(t)
}

// A short leg is the exact negation of the matching long leg at every spot.
func TestPropertyShortNegatesLong(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("short payoff == -long payoff", prop.ForAll(
		func(optionType models.OptionType, strike, premium, spot float64, quantity int) bool {
			long, err := NewLeg(optionType, strike, models.Long, premium, quantity)
			if err != nil {
				return false
			}
			short, err := NewLeg(optionType, strike, models.Short, premium, quantity)
			if err != nil {
				return false
			}
			return short.PayoffAtExpiry(spot) == -long.PayoffAtExpiry(spot)
		},
		genOptionType(),
		gen.Float64Range(1, 1000),
		gen.Float64Range(0, 100),
		gen.Float64Range(0, 2000),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// Breakevens always come back ascending and inside the sampled window.
func TestPropertyBreakevenOrdering(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("breakevens ascending and within range", prop.ForAll(
		func(strike, callPrem, putPrem float64) bool {
			s := Straddle(strike, callPrem, putPrem)

			result, err := s.Evaluate(nil, 0)
			if err != nil {
				return false
			}

			if !sort.Float64sAreSorted(result.Breakevens) {
				return false
			}
			lo := result.Spots[0]
			hi := result.Spots[len(result.Spots)-1]
			for _, be := range result.Breakevens {
				// Rounded to 2dp, so allow half a cent of slack at the edges.
				if be < lo-0.005 || be > hi+0.005 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(10, 500),
		gen.Float64Range(0.5, 50),
		gen.Float64Range(0.5, 50),
	))

	properties.Property("extrema bound every grid sample", prop.ForAll(
		func(lower float64, width, lowerPrem, upperPrem float64) bool {
			s := BullCallSpread(lower, lower+width, lowerPrem, upperPrem)

			result, err := s.Evaluate(nil, 0)
			if err != nil {
				return false
			}
			for _, v := range result.PnL {
				if v > result.MaxProfit || v < result.MaxLoss {
					return false
				}
			}
			return true
		},
		gen.Float64Range(10, 500),
		gen.Float64Range(1, 100),
		gen.Float64Range(0, 50),
		gen.Float64Range(0, 50),
	))

	properties.TestingRun(t)
}
