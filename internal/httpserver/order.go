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

type OrderHTTP struct {
	Svc      *service.OrderService
	Producer *mykafka.Producer
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_orders")

	views, err := h.Svc.ListOrders(ctx)
	if err != nil {
		l.Error("get_orders_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, views)
}

func (h *OrderHTTP) GetRetailerOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.get_retailer_orders")

	rid, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid id")
	}

	views, err := h.Svc.ListRetailerOrders(ctx, rid)
	if err != nil {
		l.Error("get_retailer_orders_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot list orders")
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true, "orders": views})
}

func (h *OrderHTTP) PlaceOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order.place_order")

	var req transport.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("place_order_error", "status", 400, "reason", "invalid body", "error", err)
		return errorJSON(c, http.StatusBadRequest, "invalid body")
	}

	orderID, err := h.Svc.PlaceOrder(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			l.Warn("place_order_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, service.Reason(err))
		case errors.Is(err, service.ErrNotFound):
			l.Warn("place_order_error", "status", 404, "error", err)
			return errorJSON(c, http.StatusNotFound, service.Reason(err))
		case errors.Is(err, service.ErrConflict):
			l.Warn("place_order_error", "status", 409, "error", err)
			return errorJSON(c, http.StatusConflict, service.Reason(err))
		default:
			l.Error("place_order_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "cannot place order")
		}
	}

	publish(c, h.Producer, "order_events", map[string]any{
		"type":    "order_placed",
		"orderID": orderID,
	})

	l.Info("place_order_success", "order_id", orderID)
	return c.JSON(http.StatusOK, echo.Map{"ok": true, "order_id": orderID})
}

// lifecycle transitions surface conflicts as 400, matching the original
// delete/deliver endpoints rather than 409.
func (h *OrderHTTP) transition(c echo.Context, op string, fn func(c echo.Context, id int) error) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "order."+op)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid id")
	}

	if err := fn(c, id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			l.Warn(op+"_error", "status", 404, "error", err)
			return errorJSON(c, http.StatusNotFound, service.Reason(err))
		case errors.Is(err, service.ErrConflict):
			l.Warn(op+"_error", "status", 400, "error", err)
			return errorJSON(c, http.StatusBadRequest, service.Reason(err))
		default:
			l.Error(op+"_error", "status", 500, "error", err)
			return errorJSON(c, http.StatusInternalServerError, "cannot update order")
		}
	}

	l.Info(op+"_success", "order_id", id)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	return h.transition(c, "delete_order", func(c echo.Context, id int) error {
		if err := h.Svc.DeleteOrder(c.Request().Context(), id); err != nil {
			return err
		}
		publish(c, h.Producer, "order_events", map[string]any{
			"type":    "order_deleted",
			"orderID": id,
		})
		return nil
	})
}

func (h *OrderHTTP) DeliverOrder(c echo.Context) error {
	return h.transition(c, "deliver_order", func(c echo.Context, id int) error {
		if err := h.Svc.DeliverOrder(c.Request().Context(), id); err != nil {
			return err
		}
		publish(c, h.Producer, "order_events", map[string]any{
			"type":    "order_delivered",
			"orderID": id,
		})
		return nil
	})
}
