package repository

import (
	"context"
	"logistics_dashboard/internal/models"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	Create(ctx context.Context, item *models.InventoryItem) error
	GetByID(ctx context.Context, id uint) (*models.InventoryItem, error)
	GetAll(ctx context.Context) ([]models.InventoryItem, error)
}

type inventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, item *models.InventoryItem) error {
	return translate(r.db.WithContext(ctx).Create(item).Error)
}

func (r *inventoryRepository) GetByID(ctx context.Context, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.db.WithContext(ctx).First(&item, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *inventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	err := r.db.WithContext(ctx).Order("id").Find(&items).Error
	return items, err
}
