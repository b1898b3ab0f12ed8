package cli

import (
	"fmt"
	"strconv"

	"logistics_dashboard/internal/compliance"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/services"

	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard summary",
	RunE:  runDashboard,
}

var checkTempCmd = &cobra.Command{
	Use:   "check-temp <value> <min> <max>",
	Short: "Check a temperature reading against an inclusive range",
	Args:  cobra.ExactArgs(3),
	RunE:  runCheckTemp,
}

func init() {
	rootCmd.AddCommand(dashboardCmd, checkTempCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	repos, cleanup, err := openRepositories(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	summary, err := services.NewDashboardService(repos).Summary(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, summary)
	}

	fmt.Fprintf(out, "Active orders:       %d\n", summary.ActiveOrders)
	fmt.Fprintf(out, "Routes:              %d (%d in transit)\n", summary.TotalRoutes, summary.RoutesInTransit)
	fmt.Fprintf(out, "On-time rate:        %s%%\n", summary.OnTimeRate.String())
	fmt.Fprintf(out, "Temperature alerts:  %d\n", summary.TemperatureAlerts)
	fmt.Fprintf(out, "Total distance:      %s miles\n", summary.TotalDistanceMiles.String())

	fmt.Fprintln(out, "\nNeeds attention:")
	for _, item := range summary.AttentionItems {
		fmt.Fprintf(out, "  %s (%s) %s\n", item.Name, item.SKU, item.TemperatureStatus)
	}

	fmt.Fprintln(out, "\nRecent orders:")
	for _, o := range summary.RecentOrders {
		fmt.Fprintf(out, "  %s %s %s\n", o.OrderNumber, o.CustomerName, o.Status)
	}
	return nil
}

func runCheckTemp(cmd *cobra.Command, args []string) error {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("invalid number %q", arg)
		}
		values[i] = v
	}

	status := compliance.Check(&values[0], &models.TemperatureRange{Min: values[1], Max: values[2]})
	fmt.Fprintln(cmd.OutOrStdout(), status)
	return nil
}
