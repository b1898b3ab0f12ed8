package repository

import (
	"context"
	"logistics_dashboard/internal/models"

	"gorm.io/gorm"
)

type RouteRepository interface {
	Create(ctx context.Context, route *models.Route) error
	GetByID(ctx context.Context, id uint) (*models.Route, error)
	GetAll(ctx context.Context) ([]models.Route, error)
}

type routeRepository struct {
	db *gorm.DB
}

func NewRouteRepository(db *gorm.DB) RouteRepository {
	return &routeRepository{db: db}
}

func (r *routeRepository) Create(ctx context.Context, route *models.Route) error {
	return translate(r.db.WithContext(ctx).Create(route).Error)
}

func (r *routeRepository) GetByID(ctx context.Context, id uint) (*models.Route, error) {
	var route models.Route
	err := r.db.WithContext(ctx).First(&route, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &route, nil
}

func (r *routeRepository) GetAll(ctx context.Context) ([]models.Route, error) {
	var routes []models.Route
	err := r.db.WithContext(ctx).Order("id").Find(&routes).Error
	return routes, err
}
