package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/nsemenov/wholesale_backend/internal/models"
	"github.com/nsemenov/wholesale_backend/internal/repo"
	"github.com/nsemenov/wholesale_backend/internal/transport"
)

type CatalogService struct {
	Repo *repo.GormRepo
}

func (s *CatalogService) CreateProduct(ctx context.Context, req transport.CreateProductRequest) (*models.Product, error) {
	cp, err := floatField(req.CP)
	if err != nil {
		return nil, err
	}
	sp, err := floatField(req.SP)
	if err != nil {
		return nil, err
	}
	mrp, err := floatField(req.MRP)
	if err != nil {
		return nil, err
	}
	stock, err := intField(req.Stock)
	if err != nil {
		return nil, err
	}

	if req.Name == "" {
		return nil, fmt.Errorf("%w: Name required", ErrValidation)
	}
	if cp < 0 || sp < 0 || mrp < 0 || stock < 0 {
		return nil, fmt.Errorf("%w: negative values not allowed", ErrValidation)
	}

	prod := &models.Product{
		Name:  req.Name,
		CP:    cp,
		SP:    sp,
		MRP:   mrp,
		Stock: stock,
	}
	if err := s.Repo.CreateProduct(ctx, prod); err != nil {
		return nil, err
	}
	return prod, nil
}

// Restock updates the price fields unconditionally and adds stockToAdd to
// the stock when positive, a zero or negative addition changes prices only.
func (s *CatalogService) Restock(ctx context.Context, req transport.RestockProductRequest) (*models.Product, error) {
	if !present(req.ID) {
		return nil, fmt.Errorf("%w: Invalid ID, stock, or price data provided.", ErrValidation)
	}
	id, err := intField(req.ID)
	if err != nil {
		return nil, err
	}
	stockToAdd, err := intField(req.StockToAdd)
	if err != nil {
		return nil, err
	}
	cp, err := floatField(req.CP)
	if err != nil {
		return nil, err
	}
	sp, err := floatField(req.SP)
	if err != nil {
		return nil, err
	}
	mrp, err := floatField(req.MRP)
	if err != nil {
		return nil, err
	}

	var updated *models.Product
	txErr := s.Repo.Atomically(ctx, func(tx *repo.GormRepo) error {
		prod, err := tx.GetProduct(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: Product ID %d not found.", ErrNotFound, id)
			}
			return err
		}

		prod.CP = cp
		prod.SP = sp
		prod.MRP = mrp
		if stockToAdd > 0 {
			prod.Stock += stockToAdd
		}

		if err := tx.SaveProduct(ctx, prod); err != nil {
			return err
		}
		updated = prod
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return updated, nil
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.Repo.ListProducts(ctx)
}
