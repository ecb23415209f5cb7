package models

import "time"

type Product struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Image       string     `json:"image"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	Price       int        `json:"price"`
	Stock       int        `json:"stock"`
	Description string     `json:"description"`
	InventoryID int        `json:"inventoryId"`
	Inventory   *Inventory `json:"inventory,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
