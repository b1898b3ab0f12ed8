package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Route struct {
	ID               uint        `json:"id" gorm:"primaryKey"`
	RouteNumber      string      `json:"route_number" gorm:"unique;not null"`
	DriverName       string      `json:"driver_name"`
	VehicleInfo      string      `json:"vehicle_info"`
	StartTime        string      `json:"start_time"`
	EstimatedEndTime string      `json:"estimated_end_time"`
	ActualEndTime    string      `json:"actual_end_time,omitempty"`
	Status           RouteStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
	Stops            int         `json:"stops"`
	Distance         string      `json:"distance"` // display string, e.g. "45 miles"
	Orders           []uint      `json:"orders" gorm:"serializer:json"`
	CreatedAt        time.Time   `json:"-"`
	UpdatedAt        time.Time   `json:"-"`
}

type RouteStatus string

const (
	RoutePending   RouteStatus = "pending"
	RouteInTransit RouteStatus = "in-transit"
	RouteCompleted RouteStatus = "completed"
	RouteCancelled RouteStatus = "cancelled"
	RouteDelayed   RouteStatus = "delayed"
)

// DistanceMiles parses the leading number of the Distance display string.
func (r *Route) DistanceMiles() (decimal.Decimal, error) {
	fields := strings.Fields(r.Distance)
	if len(fields) == 0 {
		return decimal.Zero, fmt.Errorf("route %s: empty distance", r.RouteNumber)
	}
	if len(fields) > 1 && !strings.HasPrefix(strings.ToLower(fields[1]), "mi") {
		return decimal.Zero, fmt.Errorf("route %s: unsupported distance unit %q", r.RouteNumber, fields[1])
	}

	d, err := decimal.NewFromString(fields[0])
	if err != nil {
		return decimal.Zero, fmt.Errorf("route %s: parse distance %q: %w", r.RouteNumber, r.Distance, err)
	}
	return d, nil
}
