package services

import (
	"context"

	"simple-ecommerce/models"
	"simple-ecommerce/repositories"
)

type ProductService struct {
	products    *repositories.ProductRepository
	inventories *repositories.InventoryRepository
}

func NewProductService(products *repositories.ProductRepository, inventories *repositories.InventoryRepository) *ProductService {
	return &ProductService{products: products, inventories: inventories}
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *ProductService) GetByID(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("Product")
	}
	return product, nil
}

func (s *ProductService) ListByInventory(ctx context.Context, inventoryID int) ([]models.Product, error) {
	return s.products.ListByInventory(ctx, inventoryID)
}

func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	inv, err := s.inventories.FindByID(ctx, product.InventoryID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound("Inventory")
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, err
	}
	product.Inventory = inv
	return product, nil
}

// Update applies the non-zero fields of req over the stored product.
// image replaces the stored reference when non-empty.
func (s *ProductService) Update(ctx context.Context, id int, req models.CreateProductRequest, image string) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("Product")
	}

	if req.InventoryID != 0 {
		inv, err := s.inventories.FindByID(ctx, req.InventoryID)
		if err != nil {
			return nil, err
		}
		if inv == nil {
			return nil, notFound("Inventory")
		}
		product.InventoryID = req.InventoryID
		product.Inventory = inv
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Price != 0 {
		product.Price = req.Price
	}
	if req.Stock != 0 {
		product.Stock = req.Stock
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	if image != "" {
		product.Image = image
	}

	if err := s.products.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes the product and returns it so the caller can clean
// up the stored image.
func (s *ProductService) Delete(ctx context.Context, id int) (*models.Product, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, notFound("Product")
	}
	if err := s.products.Delete(ctx, id); err != nil {
		return nil, err
	}
	return product, nil
}
