package services

import (
	"context"
	"fmt"
	"logistics_dashboard/internal/compliance"
	"logistics_dashboard/internal/filter"
	"logistics_dashboard/internal/models"
	"logistics_dashboard/internal/obs"
	"logistics_dashboard/internal/repository"
	"time"
)

// ItemDetail is an inventory item together with its temperature compliance.
type ItemDetail struct {
	models.InventoryItem
	TemperatureStatus compliance.Status `json:"temperature_status"`
}

func Describe(item models.InventoryItem) ItemDetail {
	return ItemDetail{InventoryItem: item, TemperatureStatus: compliance.ItemStatus(item)}
}

func DescribeAll(items []models.InventoryItem) []ItemDetail {
	out := make([]ItemDetail, 0, len(items))
	for _, item := range items {
		out = append(out, Describe(item))
	}
	return out
}

// DeriveAttention raises NeedsAttention when the item's temperature is out of
// range. A flag that is already set is never cleared.
func DeriveAttention(item *models.InventoryItem) {
	if compliance.ItemStatus(*item).Alert() {
		item.NeedsAttention = true
	}
}

type InventoryService interface {
	ListItems(ctx context.Context, criteria filter.Criteria) ([]models.InventoryItem, error)
	GetItem(ctx context.Context, id uint) (*ItemDetail, error)
}

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	cache         ListCache
	cacheTTL      time.Duration
}

// NewInventoryService builds the inventory service. cache may be nil.
func NewInventoryService(inventoryRepo repository.InventoryRepository, cache ListCache, cacheTTL time.Duration) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, cache: cache, cacheTTL: cacheTTL}
}

func (s *inventoryService) ListItems(ctx context.Context, criteria filter.Criteria) (_ []models.InventoryItem, err error) {
	defer obs.Time(ctx, "inventory.List")(&err)

	return cachedList(ctx, s.cache, s.cacheTTL, "inventory|"+criteria.Key(), func() ([]models.InventoryItem, error) {
		items, err := s.inventoryRepo.GetAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("list inventory: %w", err)
		}
		return filter.Inventory(items, criteria), nil
	})
}

func (s *inventoryService) GetItem(ctx context.Context, id uint) (*ItemDetail, error) {
	item, err := s.inventoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get inventory item %d: %w", id, err)
	}
	detail := Describe(*item)
	return &detail, nil
}
