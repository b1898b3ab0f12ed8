// Package compliance checks measured values against inclusive ranges.
package compliance

import "logistics_dashboard/internal/models"

// Status is the outcome of a range check.
type Status string

const (
	StatusInRange       Status = "in_range"
	StatusOutOfRange    Status = "out_of_range"
	StatusNotApplicable Status = "not_applicable"
)

// InRange reports whether value lies within rng, both ends inclusive.
// applicable is false when value or rng is missing.
func InRange(value *float64, rng *models.TemperatureRange) (inRange, applicable bool) {
	if value == nil || rng == nil {
		return false, false
	}
	return rng.Min <= *value && *value <= rng.Max, true
}

// Check is InRange reduced to a Status.
func Check(value *float64, rng *models.TemperatureRange) Status {
	ok, applicable := InRange(value, rng)
	switch {
	case !applicable:
		return StatusNotApplicable
	case ok:
		return StatusInRange
	default:
		return StatusOutOfRange
	}
}

// ItemStatus checks an inventory item's current temperature against its
// required range.
func ItemStatus(item models.InventoryItem) Status {
	return Check(item.Temperature, item.TemperatureRange)
}

// Alert reports whether the item has a temperature reading outside its range.
func (s Status) Alert() bool { return s == StatusOutOfRange }
