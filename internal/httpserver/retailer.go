package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nsemenov/wholesale_backend/internal/logging"
	"github.com/nsemenov/wholesale_backend/internal/mykafka"
	"github.com/nsemenov/wholesale_backend/internal/service"
	"github.com/nsemenov/wholesale_backend/internal/transport"
)

type RetailerHTTP struct {
	Svc      *service.RetailerService
	Producer *mykafka.Producer
}

func (h *RetailerHTTP) GetRetailers(c echo.Context) error {
	ctx := c.Request().Context()

	items, err := h.Svc.ListRetailers(ctx)
	if err != nil {
		logging.FromContext(ctx).Error("get_retailers_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list retailers")
	}

	return c.JSON(http.StatusOK, items)
}

func (h *RetailerHTTP) CreateRetailer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "retailer.create_retailer")

	var req transport.CreateRetailerRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_retailer_error", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	ret, err := h.Svc.CreateRetailer(ctx, req)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			l.Warn("create_retailer_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, service.Reason(err))
		}
		l.Error("create_retailer_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot add retailer")
	}

	publish(c, h.Producer, "retailer_events", map[string]any{
		"type":       "retailer_created",
		"retailerID": ret.ID,
		"shop_name":  ret.ShopName,
	})

	l.Info("create_retailer_success", "retailer_id", ret.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"ok":       true,
		"retailer": echo.Map{"id": ret.ID, "shop_name": ret.ShopName},
	})
}

func (h *RetailerHTTP) GetRetailer(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid id")
	}

	ret, err := h.Svc.GetRetailer(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return errorJSON(c, http.StatusNotFound, service.Reason(err))
		}
		logging.FromContext(ctx).Error("get_retailer_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot get retailer")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "retailer": ret})
}
