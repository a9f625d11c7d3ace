package httpserver

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nsemenov/wholesale_backend/internal/logging"
	"github.com/nsemenov/wholesale_backend/internal/service"
)

type ExportHTTP struct {
	Svc *service.OrderService
}

// Export streams every order, deleted ones included, as a CSV attachment
// with one row per order item.
func (h *ExportHTTP) Export(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "export")

	rows, err := h.Svc.ExportRows(ctx)
	if err != nil {
		l.Error("export_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "cannot export orders")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"order_id", "date", "retailer", "product", "qty", "sp", "cp", "item_total", "grand_total", "status"}); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "cannot export orders")
	}
	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.OrderID),
			r.Date,
			r.Retailer,
			r.Product,
			strconv.Itoa(r.Qty),
			fmtFloat(r.SP),
			fmtFloat(r.CP),
			fmtFloat(r.ItemTotal),
			fmtFloat(r.GrandTotal),
			r.Status,
		}
		if err := w.Write(record); err != nil {
			return errorJSON(c, http.StatusInternalServerError, "cannot export orders")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "cannot export orders")
	}

	filename := fmt.Sprintf("backup_%s.csv", time.Now().UTC().Format("20060102_150405"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))

	l.Info("export_success", "rows", len(rows))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
