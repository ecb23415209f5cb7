package models

import "time"

// Invoice is the immutable record of a completed checkout. Items is a
// frozen snapshot of the purchased lines, independent of later product
// edits or deletions.
type Invoice struct {
	ID        int           `json:"id"`
	UserID    int           `json:"userId"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Items     []InvoiceItem `json:"items"`
	Total     int           `json:"total"`
	CreatedAt time.Time     `json:"createdAt"`
}

type InvoiceItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Total     int    `json:"total"`
}

// StockDeduction pairs a product with the quantity checkout removes
// from its stock.
type StockDeduction struct {
	ProductID int
	Quantity  int
}
