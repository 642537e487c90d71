package core

import (
	"time"

	"github.com/shopspring/decimal"
)

type UserType string

const (
	Customer UserType = "Customer"
	Employee UserType = "Employee"
	Manager  UserType = "Manager"
)

// User is a row of the Users table. Passwords are stored as entered.
type User struct {
	Login         string   `json:"login"`
	Password      string   `json:"-"`
	Phone         string   `json:"phone"`
	FavoriteItems string   `json:"fav_items"`
	Type          UserType `json:"type"`
}

// MenuCategory is the free-form Menu.type column. The known values are listed below,
// but any stored string is a valid category.
type MenuCategory string

const (
	Drinks MenuCategory = "Drinks"
	Sweets MenuCategory = "Sweets"
	Soup   MenuCategory = "Soup"
)

// BrowseCategories is the fixed order in which the catalog is browsed.
var BrowseCategories = []MenuCategory{Drinks, Sweets, Soup}

// MenuItem is a row of the Menu table.
type MenuItem struct {
	ItemName    string          `json:"item_name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Type        MenuCategory    `json:"type"`
}

// OrderIDSequence backs Orders.orderid.
const OrderIDSequence = "orders_orderid_seq"

// Order is a customer order header. No handler writes orders yet.
type Order struct {
	OrderID           int             `json:"order_id"`
	Login             string          `json:"login"`
	Paid              bool            `json:"paid"`
	TimeStampReceived time.Time       `json:"timestamp_received"`
	Total             decimal.Decimal `json:"total"`
}

type OrderItemStatus string

const (
	StatusPlaced    OrderItemStatus = "placed"
	StatusPreparing OrderItemStatus = "preparing"
	StatusReady     OrderItemStatus = "ready"
)

// ItemStatus tracks one menu item within an order.
type ItemStatus struct {
	OrderID     int             `json:"order_id"`
	ItemName    string          `json:"item_name"`
	LastUpdated time.Time       `json:"last_updated"`
	Status      OrderItemStatus `json:"status"`
	Comments    string          `json:"comments"`
}
