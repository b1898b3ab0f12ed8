// Package fixtures holds the mock logistics data served by the dashboard.
// Every call builds fresh values, so callers may modify what they receive.
package fixtures

import (
	"time"

	"logistics_dashboard/internal/models"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2025, month, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(month time.Month, d int) *time.Time {
	t := day(month, d)
	return &t
}

func celsius(v float64) *float64 { return &v }

func Orders() []models.Order {
	return []models.Order{
		{
			ID:              1,
			OrderNumber:     "ORD-2025-001",
			CustomerName:    "City Fresh Market",
			DeliveryAddress: "123 Market St, Chicago, IL 60601",
			DeliveryDate:    day(time.January, 15),
			DeliveryTime:    "08:00 - 10:00",
			Status:          models.OrderPending,
			Items: []models.OrderItem{
				{ID: 101, OrderID: 1, Name: "Organic Apples", Quantity: 25},
				{ID: 102, OrderID: 1, Name: "Fresh Milk", Quantity: 50, Temperature: "2-4°C"},
				{ID: 103, OrderID: 1, Name: "Artisan Bread", Quantity: 30},
			},
		},
		{
			ID:              2,
			OrderNumber:     "ORD-2025-002",
			CustomerName:    "Gourmet Bistro",
			DeliveryAddress: "456 Culinary Ave, Chicago, IL 60607",
			DeliveryDate:    day(time.January, 15),
			DeliveryTime:    "10:30 - 12:30",
			Status:          models.OrderInTransit,
			Items: []models.OrderItem{
				{ID: 201, OrderID: 2, Name: "Premium Beef Cuts", Quantity: 15, Temperature: "-18°C"},
				{ID: 202, OrderID: 2, Name: "Imported Cheese", Quantity: 10, Temperature: "2-4°C"},
				{ID: 203, OrderID: 2, Name: "Organic Vegetables", Quantity: 20},
			},
		},
		{
			ID:              3,
			OrderNumber:     "ORD-2025-003",
			CustomerName:    "Healthy Eats Café",
			DeliveryAddress: "789 Wellness Blvd, Chicago, IL 60614",
			DeliveryDate:    day(time.January, 15),
			DeliveryTime:    "13:00 - 15:00",
			Status:          models.OrderDelivered,
			Items: []models.OrderItem{
				{ID: 301, OrderID: 3, Name: "Greek Yogurt", Quantity: 40, Temperature: "2-4°C"},
				{ID: 302, OrderID: 3, Name: "Organic Granola", Quantity: 25},
				{ID: 303, OrderID: 3, Name: "Fresh Berries", Quantity: 30, Temperature: "2-4°C"},
			},
		},
		{
			ID:              4,
			OrderNumber:     "ORD-2025-004",
			CustomerName:    "School District #42",
			DeliveryAddress: "101 Education Dr, Chicago, IL 60618",
			DeliveryDate:    day(time.January, 16),
			DeliveryTime:    "06:00 - 08:00",
			Status:          models.OrderPending,
			Items: []models.OrderItem{
				{ID: 401, OrderID: 4, Name: "Whole Grain Bread", Quantity: 100},
				{ID: 402, OrderID: 4, Name: "Fresh Fruit Cups", Quantity: 500},
				{ID: 403, OrderID: 4, Name: "Milk Cartons", Quantity: 500, Temperature: "2-4°C"},
			},
		},
		{
			ID:              5,
			OrderNumber:     "ORD-2025-005",
			CustomerName:    "Harbor Hotel",
			DeliveryAddress: "555 Lakeview Dr, Chicago, IL 60611",
			DeliveryDate:    day(time.January, 15),
			DeliveryTime:    "15:30 - 17:30",
			Status:          models.OrderDelayed,
			Items: []models.OrderItem{
				{ID: 501, OrderID: 5, Name: "Premium Seafood", Quantity: 20, Temperature: "-18°C"},
				{ID: 502, OrderID: 5, Name: "Fine Wines", Quantity: 30},
				{ID: 503, OrderID: 5, Name: "Gourmet Chocolates", Quantity: 50},
			},
		},
		{
			ID:              6,
			OrderNumber:     "ORD-2025-006",
			CustomerName:    "Quick Stop Convenience",
			DeliveryAddress: "222 Corner St, Chicago, IL 60622",
			DeliveryDate:    day(time.January, 15),
			DeliveryTime:    "18:00 - 20:00",
			Status:          models.OrderCancelled,
			Items: []models.OrderItem{
				{ID: 601, OrderID: 6, Name: "Bottled Water", Quantity: 100},
				{ID: 602, OrderID: 6, Name: "Snack Items", Quantity: 150},
				{ID: 603, OrderID: 6, Name: "Prepared Sandwiches", Quantity: 50, Temperature: "2-4°C"},
			},
		},
	}
}

func InventoryItems() []models.InventoryItem {
	return []models.InventoryItem{
		{
			ID: 1, Name: "Organic Apples", SKU: "PROD-F001", Category: models.CategoryFresh,
			Quantity: 1250, Unit: "kg", LocationCode: "A-12-03",
		},
		{
			ID: 2, Name: "Fresh Milk", SKU: "PROD-D001", Category: models.CategoryDairy,
			Quantity: 500, Unit: "liters",
			Temperature: celsius(3.5), TemperatureRange: &models.TemperatureRange{Min: 2, Max: 4},
			ExpiryDate: dayPtr(time.February, 1), LocationCode: "C-05-02",
		},
		{
			ID: 3, Name: "Premium Beef Cuts", SKU: "PROD-M001", Category: models.CategoryFrozen,
			Quantity: 350, Unit: "kg",
			Temperature: celsius(-15.2), TemperatureRange: &models.TemperatureRange{Min: -20, Max: -18},
			ExpiryDate: dayPtr(time.June, 15), LocationCode: "F-02-01", NeedsAttention: true,
		},
		{
			ID: 4, Name: "Artisan Bread", SKU: "PROD-B001", Category: models.CategoryBakery,
			Quantity: 120, Unit: "units",
			ExpiryDate: dayPtr(time.January, 17), LocationCode: "B-03-04",
		},
		{
			ID: 5, Name: "Imported Cheese", SKU: "PROD-D002", Category: models.CategoryDairy,
			Quantity: 85, Unit: "kg",
			Temperature: celsius(5.8), TemperatureRange: &models.TemperatureRange{Min: 2, Max: 4},
			ExpiryDate: dayPtr(time.March, 10), LocationCode: "C-06-03", NeedsAttention: true,
		},
		{
			ID: 6, Name: "Organic Vegetables", SKU: "PROD-F002", Category: models.CategoryFresh,
			Quantity: 430, Unit: "kg",
			Temperature: celsius(7.2), TemperatureRange: &models.TemperatureRange{Min: 4, Max: 8},
			LocationCode: "A-08-02",
		},
		{
			ID: 7, Name: "Frozen Seafood", SKU: "PROD-S001", Category: models.CategoryFrozen,
			Quantity: 210, Unit: "kg",
			Temperature: celsius(-19.5), TemperatureRange: &models.TemperatureRange{Min: -22, Max: -18},
			ExpiryDate: dayPtr(time.August, 20), LocationCode: "F-04-01",
		},
		{
			// Shares its SKU with Artisan Bread.
			ID: 8, Name: "Craft Beer", SKU: "PROD-B001", Category: models.CategoryBeverages,
			Quantity: 310, Unit: "bottles", LocationCode: "D-09-05",
		},
		{
			ID: 9, Name: "Gluten-Free Pasta", SKU: "PROD-P001", Category: models.CategoryDry,
			Quantity: 520, Unit: "packages",
			ExpiryDate: dayPtr(time.December, 31), LocationCode: "E-11-03",
		},
		{
			ID: 10, Name: "Ice Cream", SKU: "PROD-D003", Category: models.CategoryFrozen,
			Quantity: 150, Unit: "liters",
			Temperature: celsius(-14.2), TemperatureRange: &models.TemperatureRange{Min: -23, Max: -18},
			ExpiryDate: dayPtr(time.April, 15), LocationCode: "F-01-04", NeedsAttention: true,
		},
	}
}

func Routes() []models.Route {
	return []models.Route{
		{
			ID: 1, RouteNumber: "RT101", DriverName: "Michael Johnson", VehicleInfo: "Refrigerated Truck #T-15",
			StartTime: "08:00 AM", EstimatedEndTime: "12:30 PM", Status: models.RouteInTransit,
			Stops: 4, Distance: "45 miles", Orders: []uint{1, 2, 3, 4},
		},
		{
			ID: 2, RouteNumber: "RT102", DriverName: "Sarah Williams", VehicleInfo: "Delivery Van #V-08",
			StartTime: "09:15 AM", EstimatedEndTime: "02:00 PM", Status: models.RoutePending,
			Stops: 6, Distance: "38 miles", Orders: []uint{5, 6},
		},
		{
			ID: 3, RouteNumber: "RT103", DriverName: "Robert Chen", VehicleInfo: "Refrigerated Truck #T-22",
			StartTime: "07:30 AM", EstimatedEndTime: "11:45 AM", ActualEndTime: "11:30 AM", Status: models.RouteCompleted,
			Stops: 5, Distance: "32 miles", Orders: []uint{1, 2, 3},
		},
		{
			ID: 4, RouteNumber: "RT104", DriverName: "Amanda Garcia", VehicleInfo: "Box Truck #B-05",
			StartTime: "10:00 AM", EstimatedEndTime: "03:30 PM", Status: models.RouteDelayed,
			Stops: 8, Distance: "52 miles", Orders: []uint{4, 5, 6},
		},
		{
			ID: 5, RouteNumber: "RT105", DriverName: "David Thompson", VehicleInfo: "Refrigerated Truck #T-17",
			StartTime: "06:45 AM", EstimatedEndTime: "11:15 AM", Status: models.RoutePending,
			Stops: 3, Distance: "28 miles", Orders: []uint{1, 2},
		},
		{
			ID: 6, RouteNumber: "RT106", DriverName: "Sophia Martinez", VehicleInfo: "Box Truck #B-09",
			StartTime: "08:30 AM", EstimatedEndTime: "01:00 PM", Status: models.RouteCancelled,
			Stops: 4, Distance: "36 miles", Orders: []uint{3, 4},
		},
	}
}

// DefaultUser is the profile shown before anyone signs up. Its password is
// DefaultUserPassword.
func DefaultUser() models.User {
	return models.User{
		FullName:     "John Smith",
		Email:        "john.smith@example.com",
		Phone:        "+1 312 555 0100",
		Role:         models.RoleWarehouseManager,
		Company:      "FreshFoods Logistics",
		LocationName: "Chicago Warehouse",
	}
}

const DefaultUserPassword = "freshfoods123"
