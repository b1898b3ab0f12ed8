package models

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestRoute_DistanceMiles(t *testing.T) {
	tests := []struct {
		distance string
		want     string
		wantErr  bool
	}{
		{"45 miles", "45", false},
		{"12.5 mi", "12.5", false},
		{"38", "38", false},
		{"", "", true},
		{"10 km", "", true},
		{"far miles", "", true},
	}

	for _, tt := range tests {
		r := Route{RouteNumber: "RT1", Distance: tt.distance}
		got, err := r.DistanceMiles()
		if tt.wantErr {
			if err == nil {
				t.Errorf("DistanceMiles(%q): expected error, got %s", tt.distance, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("DistanceMiles(%q): %v", tt.distance, err)
			continue
		}
		if !got.Equal(decimal.RequireFromString(tt.want)) {
			t.Errorf("DistanceMiles(%q) = %s, want %s", tt.distance, got, tt.want)
		}
	}
}

func TestOrderStatus_Active(t *testing.T) {
	active := map[OrderStatus]bool{
		OrderPending:   true,
		OrderInTransit: true,
		OrderDelayed:   true,
		OrderDelivered: false,
		OrderCancelled: false,
	}

	for status, want := range active {
		if got := status.Active(); got != want {
			t.Errorf("%s.Active() = %v, want %v", status, got, want)
		}
	}
}
