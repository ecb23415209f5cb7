package services

import (
	"context"

	"simple-ecommerce/models"
	"simple-ecommerce/repositories"
)

type InventoryService struct {
	inventories *repositories.InventoryRepository
}

func NewInventoryService(inventories *repositories.InventoryRepository) *InventoryService {
	return &InventoryService{inventories: inventories}
}

func (s *InventoryService) List(ctx context.Context) ([]models.Inventory, error) {
	return s.inventories.List(ctx)
}

func (s *InventoryService) GetByID(ctx context.Context, id int) (*models.Inventory, error) {
	inv, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound("Inventory")
	}
	return inv, nil
}

func (s *InventoryService) Create(ctx context.Context, req models.InventoryRequest) (*models.Inventory, error) {
	if req.Name == "" || req.Description == "" {
		return nil, invalid("Name and description are required")
	}

	inv := &models.Inventory{Name: req.Name, Description: req.Description}
	if err := s.inventories.Create(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InventoryService) Update(ctx context.Context, id int, req models.InventoryRequest) (*models.Inventory, error) {
	if req.Name == "" || req.Description == "" {
		return nil, invalid("Name and description are required")
	}

	inv, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound("Inventory")
	}

	inv.Name = req.Name
	inv.Description = req.Description
	if err := s.inventories.Update(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *InventoryService) Delete(ctx context.Context, id int) (*models.Inventory, error) {
	inv, err := s.inventories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound("Inventory")
	}
	if err := s.inventories.Delete(ctx, id); err != nil {
		return nil, err
	}
	return inv, nil
}
