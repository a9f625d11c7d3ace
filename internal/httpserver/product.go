package httpserver

import (
	"errors"
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/nsemenov/wholesale_backend/internal/logging"
	"github.com/nsemenov/wholesale_backend/internal/models"
	"github.com/nsemenov/wholesale_backend/internal/mykafka"
	"github.com/nsemenov/wholesale_backend/internal/service"
	"github.com/nsemenov/wholesale_backend/internal/service/search"
	"github.com/nsemenov/wholesale_backend/internal/transport"
)

type ProductHTTP struct {
	Svc      *service.CatalogService
	Producer *mykafka.Producer
	ES       *elasticsearch.Client
	Index    string
}

func (h *ProductHTTP) index(c echo.Context, p *models.Product) {
	if h.ES == nil {
		return
	}
	ctx := c.Request().Context()
	if err := search.IndexProduct(ctx, h.ES, h.Index, p); err != nil {
		logging.FromContext(ctx).Warn("es index failed", "product_id", p.ID, "error", err)
	}
}

func (h *ProductHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.get_products")

	items, err := h.Svc.ListProducts(ctx)
	if err != nil {
		l.Error("get_products_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list products")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *ProductHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_product_error", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.CreateProduct(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_product_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, service.Reason(err))
		}
		l.Error("create_product_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot add product")
	}

	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_created",
		"productID": prod.ID,
		"name":      prod.Name,
		"stock":     prod.Stock,
	})
	h.index(c, prod)

	l.Info("create_product_success", "product_id", prod.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"ok":      true,
		"product": echo.Map{"id": prod.ID, "name": prod.Name},
	})
}

func (h *ProductHTTP) Restock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.restock")

	var req transport.RestockProductRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("restock_error", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	prod, err := h.Svc.Restock(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("restock_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, service.Reason(err))
		case errors.Is(err, service.ErrNotFound):
			l.Warn("restock_error", "status", 404, "error", err)
			return errorJSON(c, http.StatusNotFound, service.Reason(err))
		default:
			l.Error("restock_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "cannot update product")
		}
	}

	publish(c, h.Producer, "product_events", map[string]any{
		"type":      "product_restocked",
		"productID": prod.ID,
		"stock":     prod.Stock,
	})
	h.index(c, prod)

	l.Info("restock_success", "product_id", prod.ID, "new_stock", prod.Stock)
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "new_stock": prod.Stock})
}
