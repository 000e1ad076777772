// Package cli provides the command-line interface for the strategist.
package cli

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"option-strategist/internal/errors"
	"option-strategist/internal/models"
	"option-strategist/internal/pricing"
	"option-strategist/internal/store"
	"option-strategist/internal/strategy"
)

// strikeCounts maps each strategy kind to the number of strikes it needs.
var strikeCounts = map[string]int{
	"long_call":        1,
	"long_put":         1,
	"bull_call_spread": 2,
	"bear_put_spread":  2,
	"straddle":         1,
	"strangle":         2,
	"iron_condor":      4,
	"butterfly":        3,
}

// strategyKinds returns the supported kinds in stable order for help text.
func strategyKinds() []string {
	kinds := make([]string, 0, len(strikeCounts))
	for k := range strikeCounts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func newAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a multi-leg option strategy",
		Long: `Analyze a named option strategy at the given spot and strikes.

Premiums are computed with the Black-Scholes model, one pricing model per
strike. The report shows each leg, the net premium, and the P&L profile at
expiration: max profit, max loss, and breakeven prices.

Strike order matters for multi-leg strategies:
  bull_call_spread  lower upper
  bear_put_spread   lower upper
  strangle          put_strike call_strike
  butterfly         lower middle upper
  iron_condor       put_lower put_upper call_lower call_upper`,
		Example: `  strategist analyze -s long_call --spot 100 --strikes 105 --expiry 30
  strategist analyze -s straddle --spot 100 --strikes 100 --expiry 45 -v 0.30
  strategist analyze -s iron_condor --spot 100 --strikes 85,90,110,115 --expiry 30 --greeks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			kind, _ := cmd.Flags().GetString("strategy")
			spot, _ := cmd.Flags().GetFloat64("spot")
			strikes, _ := cmd.Flags().GetFloat64Slice("strikes")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			volatility, _ := cmd.Flags().GetFloat64("volatility")
			rate, _ := cmd.Flags().GetFloat64("rate")
			points, _ := cmd.Flags().GetInt("points")
			showGreeks, _ := cmd.Flags().GetBool("greeks")
			save, _ := cmd.Flags().GetBool("save")
			ticker, _ := cmd.Flags().GetString("ticker")

			want, ok := strikeCounts[kind]
			if !ok {
				output.Error("Unknown strategy %q. Available: %s", kind, strings.Join(strategyKinds(), ", "))
				return errors.Wrapf(errors.ErrUnknownStrategy, "%q", kind)
			}
			if len(strikes) < want {
				output.Error("%s requires %d strike(s), got %d", kind, want, len(strikes))
				return errors.Wrapf(errors.ErrStrikeCount, "%s needs %d, got %d", kind, want, len(strikes))
			}

			strat, err := buildStrategy(kind, spot, strikes, expiry, volatility, rate)
			if err != nil {
				output.Error("Failed to build strategy: %v", err)
				return err
			}

			result, err := strat.Evaluate(nil, points)
			if err != nil {
				output.Error("Failed to evaluate strategy: %v", err)
				return err
			}

			app.Logger.Debug().
				Str("strategy", kind).
				Float64("spot", spot).
				Floats64("strikes", strikes).
				Msg("Strategy evaluated")

			if save {
				if err := saveEvaluation(app, ticker, strat, spot, result); err != nil {
					output.Warning("Could not save evaluation: %v", err)
				} else {
					output.Dim("Evaluation saved")
				}
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"strategy":    strat.Name,
					"legs":        strat.Legs(),
					"net_premium": strat.NetPremium(),
					"max_profit":  result.MaxProfit,
					"max_loss":    result.MaxLoss,
					"breakevens":  result.Breakevens,
				})
			}

			displayStrategy(output, strat, result)

			if showGreeks {
				displayLegGreeks(output, strat, spot, expiry, volatility, rate)
			}

			return nil
		},
	}

	cmd.Flags().StringP("strategy", "s", "", "Strategy kind: "+strings.Join(strategyKinds(), ", "))
	cmd.Flags().Float64("spot", 0, "Current spot price of the underlying")
	cmd.Flags().Float64Slice("strikes", nil, "Strike price(s), order per strategy kind")
	cmd.Flags().Float64("expiry", 0, "Days until expiration")
	cmd.Flags().Float64P("volatility", "v", app.Config.Pricing.Volatility, "Annualized volatility")
	cmd.Flags().Float64P("rate", "r", app.Config.Pricing.Rate, "Risk-free interest rate")
	cmd.Flags().Int("points", app.Config.PnL.GridPoints, "Number of P&L grid points")
	cmd.Flags().Bool("greeks", false, "Show Greeks for each leg")
	cmd.Flags().Bool("save", false, "Persist the evaluation to the local database")
	cmd.Flags().String("ticker", "", "Ticker to tag a saved evaluation with")
	cmd.MarkFlagRequired("strategy")
	cmd.MarkFlagRequired("spot")
	cmd.MarkFlagRequired("strikes")
	cmd.MarkFlagRequired("expiry")

	return cmd
}

// buildStrategy assembles the named strategy, pricing one Black-Scholes model
// per strike to obtain leg premiums.
func buildStrategy(kind string, spot float64, strikes []float64, expiryDays, volatility, rate float64) (*strategy.Strategy, error) {
	model := func(strike float64) pricing.BlackScholes {
		return pricing.New(spot, strike, expiryDays, volatility, rate)
	}

	switch kind {
	case "long_call":
		return strategy.LongCall(strikes[0], model(strikes[0]).CallPrice()), nil

	case "long_put":
		return strategy.LongPut(strikes[0], model(strikes[0]).PutPrice()), nil

	case "bull_call_spread":
		return strategy.BullCallSpread(strikes[0], strikes[1],
			model(strikes[0]).CallPrice(), model(strikes[1]).CallPrice()), nil

	case "bear_put_spread":
		return strategy.BearPutSpread(strikes[0], strikes[1],
			model(strikes[0]).PutPrice(), model(strikes[1]).PutPrice()), nil

	case "straddle":
		m := model(strikes[0])
		return strategy.Straddle(strikes[0], m.CallPrice(), m.PutPrice()), nil

	case "strangle":
		// strikes: put below, call above
		return strategy.Strangle(strikes[1], strikes[0],
			model(strikes[1]).CallPrice(), model(strikes[0]).PutPrice()), nil

	case "iron_condor":
		return strategy.IronCondor(strikes[0], strikes[1], strikes[2], strikes[3],
			model(strikes[0]).PutPrice(), model(strikes[1]).PutPrice(),
			model(strikes[2]).CallPrice(), model(strikes[3]).CallPrice()), nil

	case "butterfly":
		return strategy.Butterfly(strikes[0], strikes[1], strikes[2],
			model(strikes[0]).CallPrice(), model(strikes[1]).CallPrice(),
			model(strikes[2]).CallPrice()), nil
	}

	return nil, errors.Wrapf(errors.ErrUnknownStrategy, "%q", kind)
}

func displayStrategy(output *Output, strat *strategy.Strategy, result *strategy.PnLResult) {
	output.Println(strings.Repeat("=", 50))
	output.Println(strat.String())
	output.Println(strings.Repeat("=", 50))
	output.Println()
	output.Bold("P&L at Expiry:")
	output.Printf("  Max Profit: %s\n", output.Green(FormatPnL(result.MaxProfit)))
	output.Printf("  Max Loss:   %s\n", output.Red(FormatPnL(result.MaxLoss)))
	output.Printf("  Breakevens: [%s]\n", FormatBreakevens(result.Breakevens))
}

func displayLegGreeks(output *Output, strat *strategy.Strategy, spot, expiryDays, volatility, rate float64) {
	output.Println()
	output.Bold("Greeks per leg:")
	for i, leg := range strat.Legs() {
		bs := pricing.New(spot, leg.Strike, expiryDays, volatility, rate)
		greeks, err := bs.Greeks(leg.OptionType)
		if err != nil {
			output.Warning("  Leg %d: %v", i+1, err)
			continue
		}
		sign := "+"
		if leg.Position == models.Short {
			sign = "-"
		}
		output.Printf("  Leg %d (%s%s @ %.2f):\n", i+1, sign, strings.ToUpper(string(leg.OptionType)), leg.Strike)
		output.Printf("    delta: %+.4f\n", greeks.Delta)
		output.Printf("    gamma: %+.4f\n", greeks.Gamma)
		output.Printf("    theta: %+.4f\n", greeks.Theta)
		output.Printf("     vega: %+.4f\n", greeks.Vega)
		output.Printf("      rho: %+.4f\n", greeks.Rho)
	}
}

func saveEvaluation(app *App, ticker string, strat *strategy.Strategy, spot float64, result *strategy.PnLResult) error {
	s, err := app.openStore()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return s.SaveEvaluation(ctx, &store.Evaluation{
		Ticker:     ticker,
		Strategy:   strat.Name,
		Spot:       spot,
		NetPremium: strat.NetPremium(),
		MaxProfit:  result.MaxProfit,
		MaxLoss:    result.MaxLoss,
		Breakevens: result.Breakevens,
	})
}
