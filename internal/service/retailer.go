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

type RetailerService struct {
	Repo *repo.GormRepo
}

func (s *RetailerService) CreateRetailer(ctx context.Context, req transport.CreateRetailerRequest) (*models.Retailer, error) {
	if req.ShopName == "" {
		return nil, fmt.Errorf("%w: Shop name required", ErrValidation)
	}

	ret := &models.Retailer{
		ShopName: req.ShopName,
		Address:  req.Address,
		Phone:    req.Phone,
	}
	if err := s.Repo.CreateRetailer(ctx, ret); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *RetailerService) GetRetailer(ctx context.Context, id int) (*models.Retailer, error) {
	ret, err := s.Repo.GetRetailer(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: Retailer not found", ErrNotFound)
		}
		return nil, err
	}
	return ret, nil
}

func (s *RetailerService) ListRetailers(ctx context.Context) ([]models.Retailer, error) {
	return s.Repo.ListRetailers(ctx)
}
