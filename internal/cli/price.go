// Package cli provides the command-line interface for the strategist.
package cli

import (
	"github.com/spf13/cobra"

	"option-strategist/internal/models"
	"option-strategist/internal/pricing"
)

func newPriceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price <call|put>",
		Short: "Price a single option contract",
		Long: `Price a single option contract under the Black-Scholes model and show
its Greeks.`,
		Example: `  strategist price call --spot 100 --strike 105 --expiry 30
  strategist price put --spot 100 --strike 95 --expiry 45 -v 0.30 -r 0.04`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			optionType, err := models.ParseOptionType(args[0])
			if err != nil {
				output.Error("Invalid option type %q: use call or put", args[0])
				return err
			}

			spot, _ := cmd.Flags().GetFloat64("spot")
			strike, _ := cmd.Flags().GetFloat64("strike")
			expiry, _ := cmd.Flags().GetFloat64("expiry")
			volatility, _ := cmd.Flags().GetFloat64("volatility")
			rate, _ := cmd.Flags().GetFloat64("rate")

			bs := pricing.New(spot, strike, expiry, volatility, rate)
			summary, err := bs.Summary(optionType)
			if err != nil {
				output.Error("Pricing failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(summary)
			}

			output.Bold("%s  spot %.2f  strike %.2f  %g days",
				string(optionType), spot, strike, expiry)
			output.Printf("  Price: %s\n", FormatPrice(summary.Price))
			output.Printf("  delta: %+.4f\n", summary.Greeks.Delta)
			output.Printf("  gamma: %+.4f\n", summary.Greeks.Gamma)
			output.Printf("  theta: %+.4f\n", summary.Greeks.Theta)
			output.Printf("   vega: %+.4f\n", summary.Greeks.Vega)
			output.Printf("    rho: %+.4f\n", summary.Greeks.Rho)
			return nil
		},
	}

	cmd.Flags().Float64("spot", 0, "Current spot price of the underlying")
	cmd.Flags().Float64("strike", 0, "Strike price")
	cmd.Flags().Float64("expiry", 0, "Days until expiration")
	cmd.Flags().Float64P("volatility", "v", app.Config.Pricing.Volatility, "Annualized volatility")
	cmd.Flags().Float64P("rate", "r", app.Config.Pricing.Rate, "Risk-free interest rate")
	cmd.MarkFlagRequired("spot")
	cmd.MarkFlagRequired("strike")
	cmd.MarkFlagRequired("expiry")

	return cmd
}
