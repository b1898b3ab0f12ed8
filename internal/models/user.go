package models

import (
	"time"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Phone        string    `json:"phone"`
	Role         string    `json:"role" gorm:"default:'Dispatcher'"`
	Company      string    `json:"company"`
	LocationName string    `json:"location_name"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	RoleWarehouseManager = "Warehouse Manager"
	RoleDispatcher       = "Dispatcher"
)
