package models

import (
	"time"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusDelivered = "delivered"
	OrderStatusDeleted   = "deleted"
)

type Product struct {
	ID        int       `gorm:"primaryKey;autoIncrement"  json:"id"`
	Name      string    `gorm:"not null"                  json:"name"`
	CP        float64   `gorm:"column:cp;default:0"       json:"cp"`
	SP        float64   `gorm:"column:sp;default:0"       json:"sp"`
	MRP       float64   `gorm:"column:mrp;default:0"      json:"mrp"`
	Stock     int       `gorm:"default:0;check:stock>=0"  json:"stock"`
	CreatedAt time.Time `json:"-"`
}

type Retailer struct {
	ID        int       `gorm:"primaryKey;autoIncrement"  json:"id"`
	ShopName  string    `gorm:"not null"                  json:"shop_name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"-"`
}

type Order struct {
	ID         int       `gorm:"primaryKey;autoIncrement"  json:"id"`
	RetailerID *int      `gorm:"index"                     json:"retailer_id"`
	Date       time.Time `gorm:"not null"                  json:"date"`
	GrandTotal float64   `gorm:"default:0"                 json:"grand_total"`
	TotalItems int       `gorm:"default:0"                 json:"total_items"`
	Status     string    `gorm:"not null;default:pending"  json:"status"`
	CreatedAt  time.Time `json:"-"`
}

// OrderItem freezes the product's name and prices at order time, later
// product edits must not change historical orders.
type OrderItem struct {
	ID          int     `gorm:"primaryKey;autoIncrement"  json:"id"`
	OrderID     int     `gorm:"index;not null"            json:"order_id"`
	ProductID   int     `gorm:"not null"                  json:"product_id"`
	ProductName string  `gorm:"not null"                  json:"product_name"`
	CP          float64 `gorm:"column:cp;default:0"       json:"cp"`
	SP          float64 `gorm:"column:sp;default:0"       json:"sp"`
	MRP         float64 `gorm:"column:mrp;default:0"      json:"mrp"`
	Qty         int     `gorm:"check:qty>0"               json:"qty"`
	ItemTotal   float64 `gorm:"default:0"                 json:"item_total"`
}
