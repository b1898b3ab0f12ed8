package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"logistics_dashboard/internal/filter"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/services"

	"github.com/spf13/cobra"
)

var (
	query      string
	status     string
	category   string
	alertsOnly bool
)

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List orders matching a search and status",
	RunE:  runOrders,
}

var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "List inventory items with their temperature status",
	RunE:  runInventory,
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List delivery routes matching a search and status",
	RunE:  runRoutes,
}

func init() {
	rootCmd.AddCommand(ordersCmd, inventoryCmd, routesCmd)

	for _, cmd := range []*cobra.Command{ordersCmd, inventoryCmd, routesCmd} {
		cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive search text")
	}
	ordersCmd.Flags().StringVar(&status, "status", filter.AllCategories, "Order status, e.g. \"In Transit\" or in-transit")
	routesCmd.Flags().StringVar(&status, "status", filter.AllCategories, "Route status")
	inventoryCmd.Flags().StringVar(&category, "category", filter.AllCategories, "Inventory category")
	inventoryCmd.Flags().BoolVar(&alertsOnly, "alerts", false, "Only items that need attention")
}

func runOrders(cmd *cobra.Command, args []string) error {
	repos, cleanup, err := openRepositories(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	orders, err := services.NewOrderService(repos.Orders, nil, 0).
		ListOrders(cmd.Context(), filter.Criteria{Query: query, Category: status})
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), orders)
	}
	return printOrders(cmd.OutOrStdout(), orders)
}

func runInventory(cmd *cobra.Command, args []string) error {
	repos, cleanup, err := openRepositories(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	items, err := services.NewInventoryService(repos.Inventory, nil, 0).
		ListItems(cmd.Context(), filter.Criteria{Query: query, Category: category, FlagOnly: alertsOnly})
	if err != nil {
		return err
	}

	details := services.DescribeAll(items)
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), details)
	}
	return printInventory(cmd.OutOrStdout(), details)
}

func runRoutes(cmd *cobra.Command, args []string) error {
	repos, cleanup, err := openRepositories(cmd.Context())
	if err != nil {
		return err
	}
	defer cleanup()

	routes, err := services.NewRouteService(repos.Routes, repos.Orders, nil, 0).
		ListRoutes(cmd.Context(), filter.Criteria{Query: query, Category: status})
	if err != nil {
		return err
	}

	if asJSON {
		return writeJSON(cmd.OutOrStdout(), routes)
	}
	return printRoutes(cmd.OutOrStdout(), routes)
}

func printOrders(out io.Writer, orders []models.Order) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tORDER\tCUSTOMER\tDELIVERY\tSTATUS\tITEMS")
	for _, o := range orders {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s %s\t%s\t%d\n",
			o.ID, o.OrderNumber, o.CustomerName, o.DeliveryDate.Format("2006-01-02"), o.DeliveryTime, o.Status, len(o.Items))
	}
	return w.Flush()
}

func printInventory(out io.Writer, items []services.ItemDetail) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSKU\tNAME\tCATEGORY\tQTY\tTEMP\tRANGE\tSTATUS\tATTENTION")
	for _, item := range items {
		temp, rng := "-", "-"
		if item.Temperature != nil {
			temp = fmt.Sprintf("%.1f°C", *item.Temperature)
		}
		if item.TemperatureRange != nil {
			rng = fmt.Sprintf("%.1f..%.1f", item.TemperatureRange.Min, item.TemperatureRange.Max)
		}
		attention := ""
		if item.NeedsAttention {
			attention = "!"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d %s\t%s\t%s\t%s\t%s\n",
			item.ID, item.SKU, item.Name, item.Category, item.Quantity, item.Unit, temp, rng, item.TemperatureStatus, attention)
	}
	return w.Flush()
}

func printRoutes(out io.Writer, routes []models.Route) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tROUTE\tDRIVER\tVEHICLE\tSTATUS\tSTOPS\tDISTANCE\tORDERS")
	for _, r := range routes {
		ids := make([]string, len(r.Orders))
		for i, id := range r.Orders {
			ids[i] = fmt.Sprint(id)
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\t%s\t%s\n",
			r.ID, r.RouteNumber, r.DriverName, r.VehicleInfo, r.Status, r.Stops, r.Distance, strings.Join(ids, ","))
	}
	return w.Flush()
}
