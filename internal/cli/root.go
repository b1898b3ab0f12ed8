package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"logistics_dashboard/internal/bootstrap"
	"logistics_dashboard/internal/config"
	"logistics_dashboard/internal/repository"

	"github.com/spf13/cobra"
)

var (
	asJSON    bool
	mockDelay time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "dashctl",
	Short: "Query the logistics dashboard data from the terminal",
	Long: `dashctl reads orders, inventory and routes from the configured data
backend (DATA_BACKEND=memory or postgres) and applies the same filters as
the dashboard API.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print results as JSON")
	rootCmd.PersistentFlags().DurationVar(&mockDelay, "delay", 0, "Simulated latency for the memory backend")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openRepositories loads config and opens the backend. The mock delay
// defaults to zero here; the API server keeps MOCK_DELAY_MS.
func openRepositories(ctx context.Context) (repository.Set, func(), error) {
	cfg := config.Load()
	cfg.MockDelay = mockDelay
	return bootstrap.OpenRepositories(ctx, cfg)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
