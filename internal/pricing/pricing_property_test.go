package pricing

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"option-strategist/internal/models"
)

// Put-call parity: callPrice - putPrice == spot - strike*exp(-rate*t) for any
// positive time to expiry.
func TestPropertyPutCallParity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("call - put equals forward discount", prop.ForAll(
		func(spot, strike, days, vol, rate float64) bool {
			bs := New(spot, strike, days, vol, rate)
			t := bs.TimeToExpiry()

			lhs := bs.CallPrice() - bs.PutPrice()
			rhs := spot - strike*math.Exp(-rate*t)

			return math.Abs(lhs-rhs) < 1e-8
		},
		gen.Float64Range(10, 200),
		gen.Float64Range(10, 200),
		gen.Float64Range(1, 730),
		gen.Float64Range(0.05, 1.5),
		gen.Float64Range(0.0, 0.10),
	))

	properties.TestingRun(t)
}

// Greek range invariants: call delta in (0,1), put delta in (-1,0), gamma and
// vega non-negative.
func TestPropertyGreekRanges(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	properties.Property("call delta in (0,1), put delta in (-1,0)", prop.ForAll(
		func(spot, strike, days, vol, rate float64) bool {
			bs := New(spot, strike, days, vol, rate)

			callDelta, err := bs.Delta(models.Call)
			if err != nil {
				return false
			}
			putDelta, err := bs.Delta(models.Put)
			if err != nil {
				return false
			}

			// Deep moneyness can underflow the CDF to exactly 0 or 1; the
			// open interval only holds where the tails have not underflowed.
			if callDelta < 0 || callDelta > 1 {
				return false
			}
			if putDelta < -1 || putDelta > 0 {
				return false
			}
			// Delta identity: callDelta - putDelta == 1
			return math.Abs(callDelta-putDelta-1) < 1e-12
		},
		gen.Float64Range(50, 150),
		gen.Float64Range(50, 150),
		gen.Float64Range(1, 365),
		gen.Float64Range(0.10, 1.0),
		gen.Float64Range(0.0, 0.10),
	))

	properties.Property("gamma and vega are non-negative", prop.ForAll(
		func(spot, strike, days, vol, rate float64) bool {
			bs := New(spot, strike, days, vol, rate)
			return bs.Gamma() >= 0 && bs.Vega() >= 0
		},
		gen.Float64Range(10, 500),
		gen.Float64Range(10, 500),
		gen.Float64Range(0, 730),
		gen.Float64Range(0.05, 2.0),
		gen.Float64Range(0.0, 0.15),
	))

	properties.TestingRun(t)
}

// Price monotonicity: a call is worth no less at a lower strike, a put no
// less at a higher strike.
func TestPropertyStrikeMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("call price decreases in strike", prop.ForAll(
		func(spot, strikeLo, bump, days, vol float64) bool {
			lo := New(spot, strikeLo, days, vol, 0.05)
			hi := New(spot, strikeLo+bump, days, vol, 0.05)
			return lo.CallPrice() >= hi.CallPrice()-1e-10
		},
		gen.Float64Range(50, 150),
		gen.Float64Range(50, 150),
		gen.Float64Range(0.1, 50),
		gen.Float64Range(1, 365),
		gen.Float64Range(0.10, 1.0),
	))

	properties.TestingRun(t)
}
