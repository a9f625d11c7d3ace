package transport

// Numeric fields arrive as `any`: the web client sends form values as
// strings while API callers send JSON numbers, both must parse.

type CreateProductRequest struct {
	Name  string `json:"name"`
	CP    any    `json:"cp"`
	SP    any    `json:"sp"`
	MRP   any    `json:"mrp"`
	Stock any    `json:"stock"`
}

type RestockProductRequest struct {
	ID         any `json:"id"`
	StockToAdd any `json:"stock_to_add"`
	CP         any `json:"cp"`
	SP         any `json:"sp"`
	MRP        any `json:"mrp"`
}

type CreateRetailerRequest struct {
	ShopName string `json:"shop_name"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

type PlaceOrderItem struct {
	ProductID any `json:"product_id"`
	Qty       any `json:"qty"`
}

type PlaceOrderRequest struct {
	RetailerID any              `json:"retailer_id"`
	Items      []PlaceOrderItem `json:"items"`
}

type OrderItemView struct {
	ProductName string  `json:"product_name"`
	Qty         int     `json:"qty"`
	SP          float64 `json:"sp"`
	ItemTotal   float64 `json:"item_total"`
}

type OrderView struct {
	ID         int             `json:"id"`
	Date       string          `json:"date"`
	RetailerID *int            `json:"retailer_id"`
	Retailer   *string         `json:"retailer"`
	GrandTotal float64         `json:"grand_total"`
	TotalItems int             `json:"total_items"`
	Status     string          `json:"status"`
	Items      []OrderItemView `json:"items"`
}

// ExportRow is one order item flattened for the CSV backup.
type ExportRow struct {
	OrderID    int
	Date       string
	Retailer   string
	Product    string
	Qty        int
	SP         float64
	CP         float64
	ItemTotal  float64
	GrandTotal float64
	Status     string
}
