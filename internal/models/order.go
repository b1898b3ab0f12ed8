package models

import (
	"time"
)

type Order struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	OrderNumber     string      `json:"order_number" gorm:"unique;not null"`
	CustomerName    string      `json:"customer_name" gorm:"not null"`
	DeliveryAddress string      `json:"delivery_address" gorm:"not null"`
	DeliveryDate    time.Time   `json:"delivery_date" gorm:"type:date"`
	DeliveryTime    string      `json:"delivery_time"` // window, e.g. "08:00 - 10:00"
	Status          OrderStatus `json:"status" gorm:"type:varchar(16);default:'pending'"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time   `json:"-"`
	UpdatedAt       time.Time   `json:"-"`
}

type OrderItem struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrderID     uint   `json:"order_id" gorm:"not null;index"`
	Name        string `json:"name" gorm:"not null"`
	Quantity    int    `json:"quantity" gorm:"not null"`
	Temperature string `json:"temperature,omitempty"` // storage label, e.g. "2-4°C"
}

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderInTransit OrderStatus = "in-transit"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
	OrderDelayed   OrderStatus = "delayed"
)

// Active reports whether the order still needs to be delivered.
func (s OrderStatus) Active() bool {
	return s == OrderPending || s == OrderInTransit || s == OrderDelayed
}
