// Package pricing implements the Black-Scholes closed-form option pricing
// model with Greeks.
package pricing

import (
	"math"

	"option-strategist/internal/errors"
	"option-strategist/internal/models"
)

const sqrt2Pi = 2.5066282746310002

// daysPerYear converts calendar days to the annualized time used by the model.
const daysPerYear = 365.0

// BlackScholes prices a European option. It is an immutable value object: all
// prices and Greeks are pure functions of the five fields.
type BlackScholes struct {
	Spot       float64 // current price of the underlying
	Strike     float64 // strike price
	ExpiryDays float64 // calendar days until expiration
	Volatility float64 // annualized, e.g. 0.25 for 25%
	Rate       float64 // risk-free rate, e.g. 0.05 for 5%
}

// New constructs a model with the given market parameters.
func New(spot, strike, expiryDays, volatility, rate float64) BlackScholes {
	return BlackScholes{
		Spot:       spot,
		Strike:     strike,
		ExpiryDays: expiryDays,
		Volatility: volatility,
		Rate:       rate,
	}
}

// TimeToExpiry returns the time to expiration in years.
func (b BlackScholes) TimeToExpiry() float64 {
	return b.ExpiryDays / daysPerYear
}

// expired reports whether the model is at its terminal boundary. Zero or
// negative volatility is folded into the same branch: the diffusion term
// vanishes and only intrinsic value remains.
func (b BlackScholes) expired() bool {
	return b.TimeToExpiry() <= 0 || b.Volatility <= 0
}

// d1 returns the standard Black-Scholes d1 term. At the terminal boundary the
// sign of spot-strike determines the limit; the infinity is only ever used for
// boundary branching, never for further arithmetic.
func (b BlackScholes) d1() float64 {
	if b.expired() {
		if b.Spot > b.Strike {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}
	t := b.TimeToExpiry()
	return (math.Log(b.Spot/b.Strike) + (b.Rate+0.5*b.Volatility*b.Volatility)*t) /
		(b.Volatility * math.Sqrt(t))
}

func (b BlackScholes) d2() float64 {
	if b.expired() {
		return b.d1()
	}
	return b.d1() - b.Volatility*math.Sqrt(b.TimeToExpiry())
}

// CallPrice returns the theoretical call option price.
func (b BlackScholes) CallPrice() float64 {
	if b.expired() {
		return math.Max(b.Spot-b.Strike, 0)
	}
	t := b.TimeToExpiry()
	return b.Spot*normCDF(b.d1()) - b.Strike*math.Exp(-b.Rate*t)*normCDF(b.d2())
}

// PutPrice returns the theoretical put option price.
func (b BlackScholes) PutPrice() float64 {
	if b.expired() {
		return math.Max(b.Strike-b.Spot, 0)
	}
	t := b.TimeToExpiry()
	return b.Strike*math.Exp(-b.Rate*t)*normCDF(-b.d2()) - b.Spot*normCDF(-b.d1())
}

// Price returns the theoretical price for the given option type.
func (b BlackScholes) Price(optionType models.OptionType) (float64, error) {
	switch optionType {
	case models.Call:
		return b.CallPrice(), nil
	case models.Put:
		return b.PutPrice(), nil
	}
	return 0, errors.NewPricingError("price", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
}

// Delta returns the sensitivity of the option price to the spot price. At the
// terminal boundary delta collapses to the in-the-money indicator.
func (b BlackScholes) Delta(optionType models.OptionType) (float64, error) {
	if b.expired() {
		switch optionType {
		case models.Call:
			if b.Spot > b.Strike {
				return 1, nil
			}
			return 0, nil
		case models.Put:
			if b.Spot < b.Strike {
				return -1, nil
			}
			return 0, nil
		}
		return 0, errors.NewPricingError("delta", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
	}
	switch optionType {
	case models.Call:
		return normCDF(b.d1()), nil
	case models.Put:
		return normCDF(b.d1()) - 1, nil
	}
	return 0, errors.NewPricingError("delta", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
}

// Gamma returns the rate of change of delta. Identical for calls and puts.
func (b BlackScholes) Gamma() float64 {
	if b.expired() {
		return 0
	}
	return normPDF(b.d1()) / (b.Spot * b.Volatility * math.Sqrt(b.TimeToExpiry()))
}

// Theta returns time decay per calendar day.
func (b BlackScholes) Theta(optionType models.OptionType) (float64, error) {
	if b.expired() {
		if !optionType.Valid() {
			return 0, errors.NewPricingError("theta", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
		}
		return 0, nil
	}
	t := b.TimeToExpiry()
	common := -(b.Spot * normPDF(b.d1()) * b.Volatility) / (2 * math.Sqrt(t))

	var annual float64
	switch optionType {
	case models.Call:
		annual = common - b.Rate*b.Strike*math.Exp(-b.Rate*t)*normCDF(b.d2())
	case models.Put:
		annual = common + b.Rate*b.Strike*math.Exp(-b.Rate*t)*normCDF(-b.d2())
	default:
		return 0, errors.NewPricingError("theta", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
	}
	return annual / daysPerYear, nil
}

// Vega returns the sensitivity to volatility per one percentage point change.
// Identical for calls and puts.
func (b BlackScholes) Vega() float64 {
	if b.expired() {
		return 0
	}
	t := b.TimeToExpiry()
	return b.Spot * normPDF(b.d1()) * math.Sqrt(t) / 100
}

// Rho returns the sensitivity to the risk-free rate per one percentage point
// change.
func (b BlackScholes) Rho(optionType models.OptionType) (float64, error) {
	if b.expired() {
		if !optionType.Valid() {
			return 0, errors.NewPricingError("rho", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
		}
		return 0, nil
	}
	t := b.TimeToExpiry()
	switch optionType {
	case models.Call:
		return b.Strike * t * math.Exp(-b.Rate*t) * normCDF(b.d2()) / 100, nil
	case models.Put:
		return -b.Strike * t * math.Exp(-b.Rate*t) * normCDF(-b.d2()) / 100, nil
	}
	return 0, errors.NewPricingError("rho", errors.Wrapf(errors.ErrUnknownOptionType, "%q", optionType))
}

// Greeks returns all Greeks for the given option type.
func (b BlackScholes) Greeks(optionType models.OptionType) (models.Greeks, error) {
	delta, err := b.Delta(optionType)
	if err != nil {
		return models.Greeks{}, err
	}
	theta, err := b.Theta(optionType)
	if err != nil {
		return models.Greeks{}, err
	}
	rho, err := b.Rho(optionType)
	if err != nil {
		return models.Greeks{}, err
	}
	return models.Greeks{
		Delta: delta,
		Gamma: b.Gamma(),
		Theta: theta,
		Vega:  b.Vega(),
		Rho:   rho,
	}, nil
}

// Summary returns the full pricing summary including price and all Greeks.
func (b BlackScholes) Summary(optionType models.OptionType) (models.PricingSummary, error) {
	price, err := b.Price(optionType)
	if err != nil {
		return models.PricingSummary{}, err
	}
	greeks, err := b.Greeks(optionType)
	if err != nil {
		return models.PricingSummary{}, err
	}
	return models.PricingSummary{Price: price, Greeks: greeks}, nil
}

// normPDF is the standard normal probability density function.
func normPDF(x float64) float64 {
	return math.Exp(-0.5*x*x) / sqrt2Pi
}

// normCDF is the standard normal cumulative distribution function, computed
// via the error function. Deep tails underflow to exactly 0 or 1, which is the
// expected behavior for far out-of-the-money contracts.
func normCDF(x float64) float64 {
	return 0.5 * (1.0 + math.Erf(x/math.Sqrt2))
}
