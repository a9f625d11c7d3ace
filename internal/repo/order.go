package repo

import (
	"context"

	"github.com/nsemenov/wholesale_backend/internal/models"
)

func (r *GormRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Create(order).Error
}

func (r *GormRepo) SaveOrder(ctx context.Context, order *models.Order) error {
	return r.DB.WithContext(ctx).Save(order).Error
}

func (r *GormRepo) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	order := models.Order{}
	if err := r.DB.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *GormRepo) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	return r.DB.WithContext(ctx).Create(&items).Error
}

func (r *GormRepo) ListOrderItems(ctx context.Context, orderID int) ([]models.OrderItem, error) {
	var items []models.OrderItem
	if err := r.DB.WithContext(ctx).Where("order_id = ?", orderID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListActiveOrders returns non-deleted orders, newest first, optionally
// scoped to one retailer.
func (r *GormRepo) ListActiveOrders(ctx context.Context, retailerID *int) ([]models.Order, error) {
	q := r.DB.WithContext(ctx).Model(&models.Order{}).Where("status <> ?", models.OrderStatusDeleted)
	if retailerID != nil {
		q = q.Where("retailer_id = ?", *retailerID)
	}

	var orders []models.Order
	if err := q.Order("date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// ListAllOrders includes deleted orders, the export must keep them auditable.
func (r *GormRepo) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if err := r.DB.WithContext(ctx).Model(&models.Order{}).Order("date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
