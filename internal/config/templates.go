package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configTemplate = `# Option Strategist Configuration

[pricing]
# Default annualized volatility used when none is supplied
volatility = 0.25
# Default risk-free interest rate
rate = 0.05

[pnl]
# Number of spot samples in the P&L grid
grid_points = 500

[storage]
# Path to the SQLite database for scan results and saved evaluations
# database_path = "~/.config/option-strategist/strategist.db"

[logging]
# Log level: debug, info, warn, error
level = "info"
# Log to the console
console = true
# Log to a rotated file
file = true

[ui]
# Enable colored output
color_enabled = true
`

// createTemplateConfig writes a commented config template so a first run
// leaves something editable behind.
func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	return os.WriteFile(path, []byte(configTemplate), 0o644)
}
