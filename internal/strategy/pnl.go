package strategy

import (
	"fmt"
	"math"
	"strings"

	"option-strategist/internal/errors"
)

// DefaultGridPoints is the default sample density for P&L evaluation.
const DefaultGridPoints = 500

// SpotRange is an inclusive interval of spot prices to evaluate over.
type SpotRange struct {
	Min float64
	Max float64
}

// PnLResult is an immutable snapshot of a P&L evaluation. MaxProfit and
// MaxLoss are extrema over the sampled grid, not analytic extrema; with the
// default grid density the interpolation error at strikes is negligible.
type PnLResult struct {
	Spots      []float64 `json:"spots"`
	PnL        []float64 `json:"pnl"`
	MaxProfit  float64   `json:"max_profit"`
	MaxLoss    float64   `json:"max_loss"`
	Breakevens []float64 `json:"breakevens"`
}

// String renders the result summary for human-facing reports.
func (r *PnLResult) String() string {
	bes := make([]string, len(r.Breakevens))
	for i, be := range r.Breakevens {
		bes[i] = fmt.Sprintf("%.2f", be)
	}
	return fmt.Sprintf("Max Profit: %.2f\nMax Loss:   %.2f\nBreakevens: [%s]",
		r.MaxProfit, r.MaxLoss, strings.Join(bes, ", "))
}

// Evaluate computes the P&L profile at expiration over the given spot range.
// If spotRange is nil the range is derived from the leg strikes: centered on
// their mean with a margin of at least 20% of the center, so a single-strike
// strategy still gets a usable window. numPoints <= 1 falls back to the
// default density.
//
// Evaluation never mutates the strategy, so a strategy shared read-only
// across goroutines may be evaluated concurrently.
func (s *Strategy) Evaluate(spotRange *SpotRange, numPoints int) (*PnLResult, error) {
	if len(s.legs) == 0 {
		return nil, errors.ErrNoLegs
	}
	if numPoints <= 1 {
		numPoints = DefaultGridPoints
	}

	if spotRange == nil {
		var sum, lo, hi float64
		lo = s.legs[0].Strike
		hi = s.legs[0].Strike
		for _, leg := range s.legs {
			sum += leg.Strike
			lo = math.Min(lo, leg.Strike)
			hi = math.Max(hi, leg.Strike)
		}
		center := sum / float64(len(s.legs))
		margin := math.Max(hi-lo, center*0.2)
		spotRange = &SpotRange{Min: center - margin, Max: center + margin}
	}

	spots := linspace(spotRange.Min, spotRange.Max, numPoints)

	// Sum leg payoffs in insertion order for reproducible rounding.
	pnl := make([]float64, len(spots))
	for _, leg := range s.legs {
		for i, payoff := range leg.PayoffOverGrid(spots) {
			pnl[i] += payoff
		}
	}

	maxProfit := pnl[0]
	maxLoss := pnl[0]
	for _, v := range pnl[1:] {
		maxProfit = math.Max(maxProfit, v)
		maxLoss = math.Min(maxLoss, v)
	}

	return &PnLResult{
		Spots:      spots,
		PnL:        pnl,
		MaxProfit:  maxProfit,
		MaxLoss:    maxLoss,
		Breakevens: findBreakevens(spots, pnl),
	}, nil
}

// linspace returns n evenly spaced values spanning [min, max] inclusive.
func linspace(min, max float64, n int) []float64 {
	out := make([]float64, n)
	step := (max - min) / float64(n-1)
	for i := range out {
		out[i] = min + float64(i)*step
	}
	out[n-1] = max
	return out
}

// findBreakevens locates zero crossings of the sampled P&L curve by linear
// interpolation between adjacent samples of strictly opposite sign. A sample
// landing exactly on zero is not a crossing under the strict product test.
// Results are ascending because the grid is scanned left to right.
func findBreakevens(spots, pnl []float64) []float64 {
	var breakevens []float64
	for i := 0; i < len(pnl)-1; i++ {
		if pnl[i]*pnl[i+1] < 0 {
			fraction := math.Abs(pnl[i]) / (math.Abs(pnl[i]) + math.Abs(pnl[i+1]))
			be := spots[i] + fraction*(spots[i+1]-spots[i])
			breakevens = append(breakevens, math.Round(be*100)/100)
		}
	}
	return breakevens
}
