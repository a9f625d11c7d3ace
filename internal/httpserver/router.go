package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	ProductHandler  *ProductHTTP
	RetailerHandler *RetailerHTTP
	OrderHandler    *OrderHTTP
	ExportHandler   *ExportHTTP
	SearchHandler   *SearchHTTP // nil when Elasticsearch is not configured
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	api := e.Group("/api")

	api.GET("/products", d.ProductHandler.GetProducts)
	api.POST("/add_product", d.ProductHandler.CreateProduct)
	api.POST("/update_product_stock", d.ProductHandler.Restock)

	api.GET("/retailers", d.RetailerHandler.GetRetailers)
	api.POST("/add_retailer", d.RetailerHandler.CreateRetailer)
	api.GET("/retailer/:id", d.RetailerHandler.GetRetailer)

	api.GET("/orders", d.OrderHandler.GetOrders)
	api.GET("/retailer_orders/:id", d.OrderHandler.GetRetailerOrders)
	api.POST("/place_order", d.OrderHandler.PlaceOrder)
	api.POST("/delete_order/:id", d.OrderHandler.DeleteOrder)
	api.POST("/deliver_order/:id", d.OrderHandler.DeliverOrder)

	if d.SearchHandler != nil {
		api.GET("/products/search", d.SearchHandler.Search)
	}

	e.GET("/export", d.ExportHandler.Export)
}
