package services

import (
	"context"
	"errors"
	"log"

	"simple-ecommerce/models"
	"simple-ecommerce/repositories"
)

type InvoiceStore interface {
	CreateCheckout(ctx context.Context, inv *models.Invoice, deductions []models.StockDeduction) error
	ListByUser(ctx context.Context, userID int) ([]models.Invoice, error)
	FindByIDForUser(ctx context.Context, id, userID int) (*models.Invoice, error)
	ListByEmail(ctx context.Context, email string) ([]models.Invoice, error)
}

type InvoiceService struct {
	invoices InvoiceStore
	carts    CartStore
	mailer   Mailer
}

// NewInvoiceService builds the checkout engine. mailer may be nil;
// receipts are then skipped.
func NewInvoiceService(invoices InvoiceStore, carts CartStore, mailer Mailer) *InvoiceService {
	return &InvoiceService{invoices: invoices, carts: carts, mailer: mailer}
}

// Checkout converts the user's cart into an immutable invoice. Stock
// is validated for every row before any mutation; the invoice insert,
// stock decrements, and cart clear are applied atomically by the
// store. The cart's stored totals are authoritative for the invoice
// total, while unit prices are snapshotted from the live product.
func (s *InvoiceService) Checkout(ctx context.Context, userID int, req models.CheckoutRequest) (*models.Invoice, error) {
	if req.Name == "" || req.Email == "" || req.Phone == "" {
		return nil, invalid("Name, email, and phone are required")
	}

	rows, err := s.carts.ListWithProducts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyCart
	}

	for _, row := range rows {
		if row.Product.Stock < row.Quantity {
			return nil, &InsufficientStockError{
				ProductName: row.Product.Name,
				Available:   row.Product.Stock,
			}
		}
	}

	total := 0
	items := make([]models.InvoiceItem, 0, len(rows))
	deductions := make([]models.StockDeduction, 0, len(rows))
	for _, row := range rows {
		total += row.Total
		items = append(items, models.InvoiceItem{
			ProductID: row.ProductID,
			Name:      row.Product.Name,
			Price:     row.Product.Price,
			Quantity:  row.Quantity,
			Total:     row.Total,
		})
		deductions = append(deductions, models.StockDeduction{
			ProductID: row.ProductID,
			Quantity:  row.Quantity,
		})
	}

	inv := &models.Invoice{
		UserID: userID,
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Items:  items,
		Total:  total,
	}

	if err := s.invoices.CreateCheckout(ctx, inv, deductions); err != nil {
		var conflict *repositories.StockConflictError
		if errors.As(err, &conflict) {
			return nil, &InsufficientStockError{
				ProductName: conflict.Name,
				Available:   conflict.Available,
			}
		}
		return nil, err
	}

	if s.mailer != nil {
		if err := s.mailer.SendReceipt(inv.Email, inv); err != nil {
			log.Println("Failed to send receipt email:", err)
		}
	}

	return inv, nil
}

func (s *InvoiceService) ListByUser(ctx context.Context, userID int) ([]models.Invoice, error) {
	return s.invoices.ListByUser(ctx, userID)
}

func (s *InvoiceService) GetByID(ctx context.Context, id, userID int) (*models.Invoice, error) {
	inv, err := s.invoices.FindByIDForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, notFound("Invoice")
	}
	return inv, nil
}

func (s *InvoiceService) ListByEmail(ctx context.Context, email string) ([]models.Invoice, error) {
	invoices, err := s.invoices.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, &NotFoundError{Message: "No invoices found for this email"}
	}
	return invoices, nil
}
