package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsemenov/wholesale_backend/internal/transport"
)

func TestCreateProductRoundTrip(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	// form clients send numbers as strings, API clients as JSON numbers
	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{
		Name:  "Soap",
		CP:    "10.5",
		SP:    float64(15),
		MRP:   "20",
		Stock: "100",
	})
	require.NoError(t, err)
	require.NotZero(t, prod.ID)

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Equal(t, "Soap", got.Name)
	assert.Equal(t, 10.5, got.CP)
	assert.Equal(t, float64(15), got.SP)
	assert.Equal(t, float64(20), got.MRP)
	assert.Equal(t, 100, got.Stock)
}

func TestCreateProductOmittedNumbersDefaultToZero(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	prod, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Soap"})
	require.NoError(t, err)

	got, err := r.GetProduct(ctx, prod.ID)
	require.NoError(t, err)
	assert.Zero(t, got.CP)
	assert.Zero(t, got.SP)
	assert.Zero(t, got.MRP)
	assert.Zero(t, got.Stock)
}

func TestCreateProductValidation(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	_, err := svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Soap", CP: "abc"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{CP: "10"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.CreateProduct(ctx, transport.CreateProductRequest{Name: "Soap", SP: float64(-1)})
	assert.ErrorIs(t, err, ErrValidation)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestRestockUpdatesPricesAndAddsStock(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	p := seedProduct(t, r, "Soap", 10, 15, 20, 5)

	prod, err := svc.Restock(ctx, transport.RestockProductRequest{
		ID:         p.ID,
		StockToAdd: 10,
		CP:         "11",
		SP:         "16",
		MRP:        "21",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, prod.Stock)
	assert.Equal(t, float64(11), prod.CP)
	assert.Equal(t, float64(16), prod.SP)
	assert.Equal(t, float64(21), prod.MRP)
}

func TestRestockNonPositiveAdditionChangesPricesOnly(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	p := seedProduct(t, r, "Soap", 10, 15, 20, 5)

	prod, err := svc.Restock(ctx, transport.RestockProductRequest{
		ID:         p.ID,
		StockToAdd: -3,
		CP:         "12",
		SP:         "17",
		MRP:        "22",
	})
	require.NoError(t, err)
	assert.Equal(t, 5, prod.Stock)
	assert.Equal(t, float64(12), prod.CP)

	prod, err = svc.Restock(ctx, transport.RestockProductRequest{ID: p.ID, StockToAdd: 0, CP: "13"})
	require.NoError(t, err)
	assert.Equal(t, 5, prod.Stock)
	assert.Equal(t, float64(13), prod.CP)
}

func TestRestockErrors(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	_, err := svc.Restock(ctx, transport.RestockProductRequest{ID: 999, StockToAdd: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Restock(ctx, transport.RestockProductRequest{StockToAdd: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Restock(ctx, transport.RestockProductRequest{ID: "x"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListProductsSortedByName(t *testing.T) {
	ctx := context.Background()
	r := newTestRepo(t)
	svc := &CatalogService{Repo: r}

	seedProduct(t, r, "cherry", 1, 2, 3, 1)
	seedProduct(t, r, "apple", 1, 2, 3, 1)
	seedProduct(t, r, "banana", 1, 2, 3, 1)

	products, err := svc.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "apple", products[0].Name)
	assert.Equal(t, "banana", products[1].Name)
	assert.Equal(t, "cherry", products[2].Name)
}
