package services

import (
	"context"

	"simple-ecommerce/models"
)

type ProductFinder interface {
	FindByID(ctx context.Context, id int) (*models.Product, error)
}

type CartStore interface {
	ListWithProducts(ctx context.Context, userID int) ([]models.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID int) (*models.CartItem, error)
	FindByIDForUser(ctx context.Context, id, userID int) (*models.CartItem, error)
	Create(ctx context.Context, item *models.CartItem) error
	UpdateQuantity(ctx context.Context, id, quantity, total int) error
	Delete(ctx context.Context, id int) error
	DeleteAllForUser(ctx context.Context, userID int) error
}

type CartService struct {
	carts    CartStore
	products ProductFinder
}

func NewCartService(carts CartStore, products ProductFinder) *CartService {
	return &CartService{carts: carts, products: products}
}

// AddItem upserts a cart row for (user, product). The row total is
// always recomputed from the current product price, so price drift
// before checkout is reflected.
func (s *CartService) AddItem(ctx context.Context, userID, productID, quantity int) (*models.CartItem, error) {
	if productID == 0 || quantity == 0 {
		return nil, invalid("Product ID and quantity are required")
	}
	if quantity < 0 {
		return nil, invalid("Quantity must be greater than 0")
	}

	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("Product")
	}

	if product.Stock < quantity {
		return nil, &InsufficientStockError{Available: product.Stock}
	}

	existing, err := s.carts.FindByUserAndProduct(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if product.Stock < newQuantity {
			return nil, &InsufficientStockError{Available: product.Stock}
		}

		total := product.Price * newQuantity
		if err := s.carts.UpdateQuantity(ctx, existing.ID, newQuantity, total); err != nil {
			return nil, err
		}

		existing.Quantity = newQuantity
		existing.Total = total
		existing.Product = product
		return existing, nil
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Total:     product.Price * quantity,
	}
	if err := s.carts.Create(ctx, item); err != nil {
		return nil, err
	}
	item.Product = product
	return item, nil
}

// List returns the user's cart rows and the grand total across them.
func (s *CartService) List(ctx context.Context, userID int) (*models.CartList, error) {
	items, err := s.carts.ListWithProducts(ctx, userID)
	if err != nil {
		return nil, err
	}

	grandTotal := 0
	for _, item := range items {
		grandTotal += item.Total
	}

	return &models.CartList{Items: items, GrandTotal: grandTotal}, nil
}

func (s *CartService) UpdateItem(ctx context.Context, userID, cartID, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, invalid("Quantity must be greater than 0")
	}

	item, err := s.carts.FindByIDForUser(ctx, cartID, userID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound("Cart item")
	}

	if item.Product.Stock < quantity {
		return nil, &InsufficientStockError{Available: item.Product.Stock}
	}

	total := item.Product.Price * quantity
	if err := s.carts.UpdateQuantity(ctx, item.ID, quantity, total); err != nil {
		return nil, err
	}

	item.Quantity = quantity
	item.Total = total
	return item, nil
}

func (s *CartService) RemoveItem(ctx context.Context, userID, cartID int) error {
	item, err := s.carts.FindByIDForUser(ctx, cartID, userID)
	if err != nil {
		return err
	}
	if item == nil {
		return notFound("Cart item")
	}
	return s.carts.Delete(ctx, item.ID)
}

// Clear empties the user's cart; clearing an already-empty cart
// succeeds.
func (s *CartService) Clear(ctx context.Context, userID int) error {
	return s.carts.DeleteAllForUser(ctx, userID)
}
