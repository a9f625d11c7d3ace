package httpserver

import (
	"net/http"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"

	"github.com/nsemenov/wholesale_backend/internal/logging"
	"github.com/nsemenov/wholesale_backend/internal/service/search"
	"github.com/nsemenov/wholesale_backend/internal/util"
)

type SearchHTTP struct {
	ES    *elasticsearch.Client
	Index string
}

func (h *SearchHTTP) Search(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return errorJSON(c, http.StatusBadRequest, "query required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	ctx := c.Request().Context()
	total, products, err := search.Search(ctx, h.ES, h.Index, q, from, size)
	if err != nil {
		logging.FromContext(ctx).Error("search_error", "status", 500, "error", err)
		return errorJSON(c, http.StatusInternalServerError, "search failed")
	}

	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
