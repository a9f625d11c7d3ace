package repo

import (
	"context"

	"github.com/nsemenov/wholesale_backend/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Create(prod).Error
}

func (r *GormRepo) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	product := models.Product{}
	if err := r.DB.WithContext(ctx).First(&product, id).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormRepo) SaveProduct(ctx context.Context, prod *models.Product) error {
	return r.DB.WithContext(ctx).Save(prod).Error
}

func (r *GormRepo) ListProducts(ctx context.Context) ([]models.Product, error) {
	var items []models.Product
	if err := r.DB.WithContext(ctx).Model(&models.Product{}).Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) CreateRetailer(ctx context.Context, ret *models.Retailer) error {
	return r.DB.WithContext(ctx).Create(ret).Error
}

func (r *GormRepo) GetRetailer(ctx context.Context, id int) (*models.Retailer, error) {
	retailer := models.Retailer{}
	if err := r.DB.WithContext(ctx).First(&retailer, id).Error; err != nil {
		return nil, err
	}
	return &retailer, nil
}

func (r *GormRepo) ListRetailers(ctx context.Context) ([]models.Retailer, error) {
	var items []models.Retailer
	if err := r.DB.WithContext(ctx).Model(&models.Retailer{}).Order("shop_name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
