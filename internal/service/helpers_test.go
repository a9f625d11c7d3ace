package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/nsemenov/wholesale_backend/internal/models"
	"github.com/nsemenov/wholesale_backend/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	// named shared-cache memory DB so every pooled connection sees the
	// same tables
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Retailer{}, &models.Order{}, &models.OrderItem{}))

	return repo.New(db)
}

func seedProduct(t *testing.T, r *repo.GormRepo, name string, cp, sp, mrp float64, stock int) *models.Product {
	t.Helper()

	p := &models.Product{Name: name, CP: cp, SP: sp, MRP: mrp, Stock: stock}
	require.NoError(t, r.DB.Create(p).Error)
	return p
}

func seedRetailer(t *testing.T, r *repo.GormRepo, shopName string) *models.Retailer {
	t.Helper()

	ret := &models.Retailer{ShopName: shopName}
	require.NoError(t, r.DB.Create(ret).Error)
	return ret
}
