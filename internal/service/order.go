package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nsemenov/wholesale_backend/internal/models"
	"github.com/nsemenov/wholesale_backend/internal/repo"
	"github.com/nsemenov/wholesale_backend/internal/transport"
)

type OrderService struct {
	Repo *repo.GormRepo
}

// PlaceOrder validates the request, decrements stock and persists the
// order with its line-item snapshots in one transaction. Nothing is
// written when any item fails validation.
func (s *OrderService) PlaceOrder(ctx context.Context, req transport.PlaceOrderRequest) (orderID int, err error) {
	if !present(req.RetailerID) {
		return 0, fmt.Errorf("%w: Retailer selection is required.", ErrValidation)
	}
	retailerID, err := intField(req.RetailerID)
	if err != nil {
		return 0, fmt.Errorf("%w: Invalid retailer ID format.", ErrValidation)
	}
	if len(req.Items) == 0 {
		return 0, fmt.Errorf("%w: Items required", ErrValidation)
	}

	txErr := s.Repo.Atomically(ctx, func(tx *repo.GormRepo) error {
		if _, err := tx.GetRetailer(ctx, retailerID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: Retailer not found", ErrNotFound)
			}
			return err
		}

		type hold struct {
			product *models.Product
			qty     int
		}
		holds := make(map[int]*hold, len(req.Items))
		seen := make([]int, 0, len(req.Items)) // first-seen order keeps inserts stable

		var grandTotal float64
		var totalItems int

		for _, it := range req.Items {
			if !present(it.ProductID) {
				return fmt.Errorf("%w: Invalid item data", ErrValidation)
			}
			pid, err := intField(it.ProductID)
			if err != nil {
				return fmt.Errorf("%w: Invalid item data", ErrValidation)
			}
			qty, err := intField(it.Qty)
			if err != nil {
				return fmt.Errorf("%w: Invalid item data", ErrValidation)
			}
			if qty <= 0 {
				return fmt.Errorf("%w: Invalid qty for product %d", ErrValidation, pid)
			}

			h, ok := holds[pid]
			if !ok {
				p, err := tx.GetProduct(ctx, pid)
				if err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return fmt.Errorf("%w: Product id %d not found", ErrNotFound, pid)
					}
					return err
				}
				h = &hold{product: p}
				holds[pid] = h
				seen = append(seen, pid)
			}

			// duplicate product ids accumulate, and the stock check runs
			// against the accumulated reservation, not each line alone
			h.qty += qty
			if h.qty > h.product.Stock {
				return fmt.Errorf("%w: Insufficient stock for %s (available %d)", ErrConflict, h.product.Name, h.product.Stock)
			}

			grandTotal += h.product.SP * float64(qty)
			totalItems += qty
		}

		order := &models.Order{
			RetailerID: &retailerID,
			Date:       time.Now().UTC(),
			GrandTotal: grandTotal,
			TotalItems: totalItems,
			Status:     models.OrderStatusPending,
		}
		if err := tx.CreateOrder(ctx, order); err != nil {
			return err
		}

		items := make([]models.OrderItem, 0, len(seen))
		for _, pid := range seen {
			h := holds[pid]
			h.product.Stock -= h.qty
			if err := tx.SaveProduct(ctx, h.product); err != nil {
				return err
			}
			items = append(items, models.OrderItem{
				OrderID:     order.ID,
				ProductID:   h.product.ID,
				ProductName: h.product.Name,
				CP:          h.product.CP,
				SP:          h.product.SP,
				MRP:         h.product.MRP,
				Qty:         h.qty,
				ItemTotal:   h.product.SP * float64(h.qty),
			})
		}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return err
		}

		orderID = order.ID
		return nil
	})
	if txErr != nil {
		return 0, txErr
	}
	return orderID, nil
}

func (s *OrderService) DeliverOrder(ctx context.Context, id int) error {
	return s.Repo.Atomically(ctx, func(tx *repo.GormRepo) error {
		order, err := tx.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: Order not found", ErrNotFound)
			}
			return err
		}
		if order.Status == models.OrderStatusDeleted {
			return fmt.Errorf("%w: Order already deleted", ErrConflict)
		}

		order.Status = models.OrderStatusDelivered
		return tx.SaveOrder(ctx, order)
	})
}

// DeleteOrder soft-deletes the order and restores each item's quantity to
// its product. The restore happens exactly once: a second delete is a
// conflict. A product removed since the order was placed is tolerated.
func (s *OrderService) DeleteOrder(ctx context.Context, id int) error {
	return s.Repo.Atomically(ctx, func(tx *repo.GormRepo) error {
		order, err := tx.GetOrder(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: Order not found", ErrNotFound)
			}
			return err
		}
		if order.Status == models.OrderStatusDeleted {
			return fmt.Errorf("%w: Already deleted", ErrConflict)
		}

		items, err := tx.ListOrderItems(ctx, id)
		if err != nil {
			return err
		}
		for _, it := range items {
			p, err := tx.GetProduct(ctx, it.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					continue
				}
				return err
			}
			p.Stock += it.Qty
			if err := tx.SaveProduct(ctx, p); err != nil {
				return err
			}
		}

		order.Status = models.OrderStatusDeleted
		return tx.SaveOrder(ctx, order)
	})
}

func (s *OrderService) ListOrders(ctx context.Context) ([]transport.OrderView, error) {
	return s.orderViews(ctx, nil)
}

func (s *OrderService) ListRetailerOrders(ctx context.Context, retailerID int) ([]transport.OrderView, error) {
	return s.orderViews(ctx, &retailerID)
}

func (s *OrderService) orderViews(ctx context.Context, retailerID *int) ([]transport.OrderView, error) {
	orders, err := s.Repo.ListActiveOrders(ctx, retailerID)
	if err != nil {
		return nil, err
	}

	views := make([]transport.OrderView, 0, len(orders))
	for i := range orders {
		o := &orders[i]

		var shopName *string
		if o.RetailerID != nil {
			ret, err := s.Repo.GetRetailer(ctx, *o.RetailerID)
			switch {
			case err == nil:
				shopName = &ret.ShopName
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
		}

		items, err := s.Repo.ListOrderItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		itemViews := make([]transport.OrderItemView, 0, len(items))
		for _, it := range items {
			itemViews = append(itemViews, transport.OrderItemView{
				ProductName: it.ProductName,
				Qty:         it.Qty,
				SP:          it.SP,
				ItemTotal:   it.ItemTotal,
			})
		}

		views = append(views, transport.OrderView{
			ID:         o.ID,
			Date:       o.Date.UTC().Format(time.RFC3339),
			RetailerID: o.RetailerID,
			Retailer:   shopName,
			GrandTotal: o.GrandTotal,
			TotalItems: o.TotalItems,
			Status:     o.Status,
			Items:      itemViews,
		})
	}
	return views, nil
}

// ExportRows flattens every order, deleted ones included, to one row per
// order item for the CSV backup.
func (s *OrderService) ExportRows(ctx context.Context) ([]transport.ExportRow, error) {
	orders, err := s.Repo.ListAllOrders(ctx)
	if err != nil {
		return nil, err
	}

	var rows []transport.ExportRow
	for i := range orders {
		o := &orders[i]

		var shopName string
		if o.RetailerID != nil {
			ret, err := s.Repo.GetRetailer(ctx, *o.RetailerID)
			switch {
			case err == nil:
				shopName = ret.ShopName
			case !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
		}

		items, err := s.Repo.ListOrderItems(ctx, o.ID)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			rows = append(rows, transport.ExportRow{
				OrderID:    o.ID,
				Date:       o.Date.UTC().Format(time.RFC3339),
				Retailer:   shopName,
				Product:    it.ProductName,
				Qty:        it.Qty,
				SP:         it.SP,
				CP:         it.CP,
				ItemTotal:  it.ItemTotal,
				GrandTotal: o.GrandTotal,
				Status:     o.Status,
			})
		}
	}
	return rows, nil
}
