// Package cli provides the command-line interface for the strategist.
package cli

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"option-strategist/internal/errors"
	"option-strategist/internal/scan"
	"option-strategist/internal/store"
	"option-strategist/internal/strategy"
)

func newScanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Work with screener scan results",
		Long: `Import and review scan results produced by the external screener scraper.

The scraper is a separate process that emits JSON to stdout; pipe that
output into 'strategist scan import -'.`,
	}

	cmd.AddCommand(newScanImportCmd(app))
	cmd.AddCommand(newScanListCmd(app))
	cmd.AddCommand(newScanAnalyzeCmd(app))

	return cmd
}

func newScanImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file|->",
		Short: "Import screener JSON output",
		Example: `  strategist scan import results.json
  scrape-screener --scan-name "bi-weekly income all" | strategist scan import -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)

			var reader io.Reader
			if args[0] == "-" {
				reader = cmd.InOrStdin()
			} else {
				f, err := os.Open(args[0])
				if err != nil {
					output.Error("Cannot open %s: %v", args[0], err)
					return err
				}
				defer f.Close()
				reader = f
			}

			records, err := scan.DecodeRecords(reader)
			if err != nil {
				output.Error("Import failed: %v", err)
				return err
			}

			s, err := app.openStore()
			if err != nil {
				output.Error("Cannot open store: %v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := s.SaveScanRecords(ctx, records); err != nil {
				output.Error("Saving records failed: %v", err)
				return err
			}

			app.Logger.Info().Int("count", len(records)).Msg("Scan records imported")
			output.Success("Imported %d scan record(s)", len(records))
			return nil
		},
	}
}

func newScanListCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List imported scan records",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ticker, _ := cmd.Flags().GetString("ticker")
			limit, _ := cmd.Flags().GetInt("limit")

			s, err := app.openStore()
			if err != nil {
				output.Error("Cannot open store: %v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			records, err := s.GetScanRecords(ctx, store.ScanFilter{Ticker: strings.ToUpper(ticker), Limit: limit})
			if err != nil {
				output.Error("Query failed: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(records)
			}

			if len(records) == 0 {
				output.Warning("No scan records found")
				return nil
			}

			output.Printf("%-8s %-10s %-10s %-8s %-6s %-10s %-8s\n",
				"Ticker", "Price", "Strike", "DTE", "IVR", "Volume", "Return")
			output.Println(strings.Repeat("-", 66))
			for _, r := range records {
				output.Printf("%-8s %-10s %-10s %-8.0f %-6.0f %-10s %-8s\n",
					r.Ticker,
					FormatPrice(float64(r.Price)),
					FormatPrice(float64(r.Strike)),
					float64(r.DaysToExp),
					float64(r.IVRank),
					FormatVolume(float64(r.TotalOptVol)),
					FormatPercent(float64(r.ReturnPercent)),
				)
			}
			return nil
		},
	}

	cmd.Flags().String("ticker", "", "Filter by ticker")
	cmd.Flags().Int("limit", 20, "Maximum records to show")

	return cmd
}

func newScanAnalyzeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <ticker>",
		Short: "Analyze a strategy built from the latest scan record",
		Long: `Build a single-strike strategy from the most recent scan record for a
ticker, using the record's price, strike, and days to expiry as pricing
inputs.`,
		Example: `  strategist scan analyze AAPL
  strategist scan analyze AAPL -s long_call -v 0.35`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			ticker := strings.ToUpper(args[0])
			kind, _ := cmd.Flags().GetString("strategy")
			volatility, _ := cmd.Flags().GetFloat64("volatility")
			rate, _ := cmd.Flags().GetFloat64("rate")
			points, _ := cmd.Flags().GetInt("points")

			s, err := app.openStore()
			if err != nil {
				output.Error("Cannot open store: %v", err)
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			records, err := s.GetScanRecords(ctx, store.ScanFilter{Ticker: ticker, Limit: 1})
			if err != nil {
				output.Error("Query failed: %v", err)
				return err
			}
			if len(records) == 0 {
				output.Error("No scan records for %s", ticker)
				return errors.Wrapf(errors.ErrDataNotFound, "ticker %s", ticker)
			}

			record := records[0]
			bs := record.Model(volatility, rate)

			var strat *strategy.Strategy
			switch kind {
			case "long_call":
				strat = strategy.LongCall(bs.Strike, bs.CallPrice())
			case "long_put":
				strat = strategy.LongPut(bs.Strike, bs.PutPrice())
			case "straddle":
				strat = strategy.Straddle(bs.Strike, bs.CallPrice(), bs.PutPrice())
			default:
				output.Error("Unknown single-strike strategy %q: use long_call, long_put, or straddle", kind)
				return errors.Wrapf(errors.ErrUnknownStrategy, "%q", kind)
			}

			result, err := strat.Evaluate(nil, points)
			if err != nil {
				output.Error("Failed to evaluate strategy: %v", err)
				return err
			}

			if output.IsJSON() {
				return output.JSON(map[string]interface{}{
					"ticker":      ticker,
					"record":      record,
					"strategy":    strat.Name,
					"net_premium": strat.NetPremium(),
					"max_profit":  result.MaxProfit,
					"max_loss":    result.MaxLoss,
					"breakevens":  result.Breakevens,
				})
			}

			output.Bold("%s (%s)  spot %s  strike %s  %g days",
				ticker, record.CompanyName,
				FormatPrice(float64(record.Price)),
				FormatPrice(float64(record.Strike)),
				float64(record.DaysToExp))
			output.Println()
			displayStrategy(output, strat, result)
			return nil
		},
	}

	cmd.Flags().StringP("strategy", "s", "straddle", "Strategy kind: long_call, long_put, straddle")
	cmd.Flags().Float64P("volatility", "v", app.Config.Pricing.Volatility, "Annualized volatility")
	cmd.Flags().Float64P("rate", "r", app.Config.Pricing.Rate, "Risk-free interest rate")
	cmd.Flags().Int("points", app.Config.PnL.GridPoints, "Number of P&L grid points")

	return cmd
}
