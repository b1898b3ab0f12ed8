package repository

import (
	"context"
	"logistics_dashboard/internal/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByIDs(ctx context.Context, ids []uint) ([]models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	return translate(r.db.WithContext(ctx).Create(order).Error)
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

// GetByIDs returns the orders that exist among ids, ordered by id. Missing ids
// are skipped.
func (r *orderRepository) GetByIDs(ctx context.Context, ids []uint) ([]models.Order, error) {
	var orders []models.Order
	if len(ids) == 0 {
		return orders, nil
	}
	err := r.db.WithContext(ctx).Preload("Items").Where("id IN ?", ids).Order("id").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.WithContext(ctx).Preload("Items").Order("id").Find(&orders).Error
	return orders, err
}
