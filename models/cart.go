package models

import "time"

// CartItem is a per-user, per-product pending purchase line. Total is
// denormalized and recomputed from the current product price at every
// mutation.
type CartItem struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	Quantity  int       `json:"quantity"`
	Total     int       `json:"total"`
	Product   *Product  `json:"product,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CartList struct {
	Items      []CartItem `json:"items"`
	GrandTotal int        `json:"grandTotal"`
}
