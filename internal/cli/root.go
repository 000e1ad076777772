// Package cli provides the command-line interface for the strategist.
package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"option-strategist/internal/config"
	"option-strategist/internal/logging"
	"option-strategist/internal/store"
)

// Version information
const (
	Version = "0.1.0"
)

// App holds the application dependencies.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
	Store  store.DataStore
}

// NewRootCmd creates the root command for the CLI.
func NewRootCmd(cfg *config.Config, logger zerolog.Logger) *cobra.Command {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// The store is lazy so pure pricing commands never touch the database.

	rootCmd := &cobra.Command{
		Use:   "strategist",
		Short: "Option Strategist - multi-leg options strategy analysis CLI",
		Long: `Option Strategist prices option contracts under the Black-Scholes model,
assembles them into multi-leg strategies, and reports the profit/loss
profile at expiration: max profit, max loss, and breakeven prices.

Use 'strategist analyze' to evaluate a strategy and 'strategist price'
to price a single contract.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			debug, _ := cmd.Flags().GetBool("debug")
			if debug {
				logging.SetDebugLevel()
				app.Logger = app.Logger.Level(zerolog.DebugLevel)
			}
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "output in JSON format")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd(app))
	rootCmd.AddCommand(newPriceCmd(app))
	rootCmd.AddCommand(newAnalyzeCmd(app))
	rootCmd.AddCommand(newScanCmd(app))
	rootCmd.AddCommand(newHistoryCmd(app))

	return rootCmd
}

// openStore opens the SQLite store on first use.
func (app *App) openStore() (store.DataStore, error) {
	if app.Store != nil {
		return app.Store, nil
	}
	s, err := store.NewSQLiteStore(app.Config.Storage.DatabasePath)
	if err != nil {
		return nil, err
	}
	app.Store = s
	return s, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"version": Version})
			} else {
				output.Printf("Option Strategist v%s\n", Version)
			}
		},
	}
}

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
		Long:  "View and manage application configuration.",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			output := NewOutput(cmd)
			if output.IsJSON() {
				return output.JSON(app.Config)
			}
			output.Bold("Pricing defaults")
			output.Printf("  Volatility: %.2f\n", app.Config.Pricing.Volatility)
			output.Printf("  Rate:       %.2f\n", app.Config.Pricing.Rate)
			output.Bold("P&L")
			output.Printf("  Grid points: %d\n", app.Config.PnL.GridPoints)
			output.Bold("Storage")
			output.Printf("  Database: %s\n", app.Config.Storage.DatabasePath)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Show configuration directory path",
		Run: func(cmd *cobra.Command, args []string) {
			output := NewOutput(cmd)
			if output.IsJSON() {
				output.JSON(map[string]string{"path": config.DefaultConfigDir()})
			} else {
				output.Println(config.DefaultConfigDir())
			}
		},
	})

	return cmd
}
