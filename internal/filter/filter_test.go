package filter

import (
	"slices"
	"testing"

	"logistics_dashboard/internal/fixtures"
	"logistics_dashboard/internal/models"
)

func orderIDs(orders []models.Order) []uint {
	ids := make([]uint, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	return ids
}

func itemIDs(items []models.InventoryItem) []uint {
	ids := make([]uint, 0, len(items))
	for _, i := range items {
		ids = append(ids, i.ID)
	}
	return ids
}

func routeIDs(routes []models.Route) []uint {
	ids := make([]uint, 0, len(routes))
	for _, r := range routes {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestOrders(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []uint
	}{
		{"zero criteria keeps everything", Criteria{}, []uint{1, 2, 3, 4, 5, 6}},
		{"All keeps everything", Criteria{Category: AllCategories}, []uint{1, 2, 3, 4, 5, 6}},
		{"search by customer", Criteria{Query: "harbor"}, []uint{5}},
		{"search is case-insensitive", Criteria{Query: "CITY FRESH"}, []uint{1}},
		{"search by order number", Criteria{Query: "ord-2025-00"}, []uint{1, 2, 3, 4, 5, 6}},
		{"search by address", Criteria{Query: "Lakeview"}, []uint{5}},
		{"status label", Criteria{Category: "Delayed"}, []uint{5}},
		{"multi-word status label", Criteria{Category: "In Transit"}, []uint{2}},
		{"status value", Criteria{Category: "pending"}, []uint{1, 4}},
		{"search and status combine", Criteria{Query: "school", Category: "Delivered"}, []uint{}},
		{"flag is ignored for orders", Criteria{FlagOnly: true}, []uint{1, 2, 3, 4, 5, 6}},
		{"no match", Criteria{Query: "zzz"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderIDs(Orders(fixtures.Orders(), tt.criteria))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestInventory(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []uint
	}{
		{"flag only", Criteria{FlagOnly: true}, []uint{3, 5, 10}},
		{"category", Criteria{Category: models.CategoryFrozen}, []uint{3, 7, 10}},
		{"category and flag", Criteria{Category: models.CategoryFrozen, FlagOnly: true}, []uint{3, 10}},
		{"search by sku", Criteria{Query: "prod-d"}, []uint{2, 5, 10}},
		{"search by location", Criteria{Query: "f-0"}, []uint{3, 7, 10}},
		{"search matches category text", Criteria{Query: "bever"}, []uint{8}},
		{"category is exact", Criteria{Category: "frozen"}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itemIDs(Inventory(fixtures.InventoryItems(), tt.criteria))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoutes(t *testing.T) {
	tests := []struct {
		name     string
		criteria Criteria
		want     []uint
	}{
		{"search by vehicle", Criteria{Query: "truck"}, []uint{1, 3, 4, 5, 6}},
		{"search by driver", Criteria{Query: "chen"}, []uint{3}},
		{"status label", Criteria{Category: "In Transit"}, []uint{1}},
		{"status pending", Criteria{Category: "Pending"}, []uint{2, 5}},
		{"flag is ignored for routes", Criteria{FlagOnly: true}, []uint{1, 2, 3, 4, 5, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := routeIDs(Routes(fixtures.Routes(), tt.criteria))
			if !slices.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	items := fixtures.InventoryItems()
	before := itemIDs(items)

	got := Inventory(items, Criteria{FlagOnly: true})
	got[0].Name = "changed"

	if !slices.Equal(itemIDs(items), before) {
		t.Errorf("input reordered: %v", itemIDs(items))
	}
	if items[2].Name != "Premium Beef Cuts" {
		t.Errorf("input element modified: %q", items[2].Name)
	}
}

func TestApply_EmptyInput(t *testing.T) {
	got := Orders(nil, Criteria{Query: "x"})
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

var (
	inventoryQueries    = []string{"", "milk", "prod-d", "f-0", "organic", "zzz"}
	inventoryCategories = []string{"", AllCategories, models.CategoryFresh, models.CategoryFrozen, models.CategoryDairy, models.CategoryBakery, "Unknown"}
)

func TestInventory_CategoryAndFlagNarrowQuery(t *testing.T) {
	items := fixtures.InventoryItems()

	for _, q := range inventoryQueries {
		byQuery := itemIDs(Inventory(items, Criteria{Query: q}))
		for _, category := range inventoryCategories {
			for _, flagOnly := range []bool{false, true} {
				narrowed := itemIDs(Inventory(items, Criteria{Query: q, Category: category, FlagOnly: flagOnly}))
				for _, id := range narrowed {
					if !slices.Contains(byQuery, id) {
						t.Errorf("q=%q category=%q flag=%v: item %d not in query-only result %v", q, category, flagOnly, id, byQuery)
					}
				}
			}
		}
	}
}

func TestInventory_CriteriaCommute(t *testing.T) {
	items := fixtures.InventoryItems()

	for _, q := range inventoryQueries {
		for _, category := range inventoryCategories {
			for _, flagOnly := range []bool{false, true} {
				combined := itemIDs(Inventory(items, Criteria{Query: q, Category: category, FlagOnly: flagOnly}))

				flagFirst := Inventory(items, Criteria{FlagOnly: flagOnly})
				flagFirst = Inventory(flagFirst, Criteria{Category: category})
				flagFirst = Inventory(flagFirst, Criteria{Query: q})

				queryFirst := Inventory(items, Criteria{Query: q})
				queryFirst = Inventory(queryFirst, Criteria{Category: category})
				queryFirst = Inventory(queryFirst, Criteria{FlagOnly: flagOnly})

				if got := itemIDs(flagFirst); !slices.Equal(got, combined) {
					t.Errorf("q=%q category=%q flag=%v: flag, category, query = %v, combined = %v", q, category, flagOnly, got, combined)
				}
				if got := itemIDs(queryFirst); !slices.Equal(got, combined) {
					t.Errorf("q=%q category=%q flag=%v: query, category, flag = %v, combined = %v", q, category, flagOnly, got, combined)
				}
			}
		}
	}
}

func TestApply_QueryCaseInsensitive(t *testing.T) {
	items := fixtures.InventoryItems()

	lower := itemIDs(Inventory(items, Criteria{Query: "milk"}))
	upper := itemIDs(Inventory(items, Criteria{Query: "MILK"}))
	if !slices.Equal(lower, upper) || !slices.Equal(lower, []uint{2}) {
		t.Errorf("milk = %v, MILK = %v, want [2] for both", lower, upper)
	}

	orders := fixtures.Orders()
	if a, b := orderIDs(Orders(orders, Criteria{Query: "bistro"})), orderIDs(Orders(orders, Criteria{Query: "BiStRo"})); !slices.Equal(a, b) {
		t.Errorf("bistro = %v, BiStRo = %v", a, b)
	}
}

func TestStatusFromLabel(t *testing.T) {
	tests := map[string]string{
		"In Transit": "in-transit",
		"in-transit": "in-transit",
		" Delayed ":  "delayed",
		"Pending":    "pending",
		"COMPLETED":  "completed",
	}

	for label, want := range tests {
		if got := StatusFromLabel(label); got != want {
			t.Errorf("StatusFromLabel(%q) = %q, want %q", label, got, want)
		}
	}
}

func TestCriteria_Key(t *testing.T) {
	a := Criteria{Query: "Harbor", Category: "Delayed"}
	b := Criteria{Query: "harbor", Category: "Delayed"}
	if a.Key() != b.Key() {
		t.Errorf("keys differ for case-only change: %q vs %q", a.Key(), b.Key())
	}

	c := Criteria{Query: "harbor ", Category: "Delayed"}
	if a.Key() == c.Key() {
		t.Errorf("keys collide for different queries: %q", a.Key())
	}

	d := Criteria{Query: "harbor", Category: "Delayed", FlagOnly: true}
	if b.Key() == d.Key() {
		t.Errorf("flag not part of key: %q", b.Key())
	}

	e := Criteria{Query: "|a", Category: "b"}
	f := Criteria{Category: "a|b"}
	if e.Key() == f.Key() {
		t.Errorf("keys collide across fields: %q", e.Key())
	}
}
