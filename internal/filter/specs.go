package filter

import "logistics_dashboard/internal/models"

// OrderSpec searches order number, customer and address, and filters on status.
var OrderSpec = Spec[models.Order]{
	Fields: func(o models.Order) []string {
		return []string{o.OrderNumber, o.CustomerName, o.DeliveryAddress}
	},
	Category:  func(o models.Order) string { return string(o.Status) },
	Normalize: StatusFromLabel,
}

// InventorySpec searches name, SKU, category and location, filters on category
// and flags items that need attention.
var InventorySpec = Spec[models.InventoryItem]{
	Fields: func(i models.InventoryItem) []string {
		return []string{i.Name, i.SKU, i.Category, i.LocationCode}
	},
	Category: func(i models.InventoryItem) string { return i.Category },
	Flag:     func(i models.InventoryItem) bool { return i.NeedsAttention },
}

// RouteSpec searches route number, driver and vehicle, and filters on status.
var RouteSpec = Spec[models.Route]{
	Fields: func(r models.Route) []string {
		return []string{r.RouteNumber, r.DriverName, r.VehicleInfo}
	},
	Category:  func(r models.Route) string { return string(r.Status) },
	Normalize: StatusFromLabel,
}

// Orders applies c to orders with OrderSpec.
func Orders(orders []models.Order, c Criteria) []models.Order {
	return Apply(orders, c, OrderSpec)
}

// Inventory applies c to items with InventorySpec.
func Inventory(items []models.InventoryItem, c Criteria) []models.InventoryItem {
	return Apply(items, c, InventorySpec)
}

// Routes applies c to routes with RouteSpec.
func Routes(routes []models.Route, c Criteria) []models.Route {
	return Apply(routes, c, RouteSpec)
}
