package services

import (
	"context"
	"sort"
	"time"

	"simple-ecommerce/models"
	"simple-ecommerce/repositories"
)

// memStore is an in-memory stand-in for the pgx repositories. Reads
// return copies so callers observe fresh state on every query, and
// CreateCheckout applies all three effects atomically or not at all.
type memStore struct {
	products      map[int]*models.Product
	carts         map[int]*models.CartItem
	invoices      []models.Invoice
	nextCartID    int
	nextInvoiceID int
	checkoutErr   error
	now           time.Time
}

func newMemStore() *memStore {
	return &memStore{
		products:      map[int]*models.Product{},
		carts:         map[int]*models.CartItem{},
		nextCartID:    1,
		nextInvoiceID: 1,
		now:           time.Now(),
	}
}

func (m *memStore) addProduct(id int, name string, price, stock int) {
	m.products[id] = &models.Product{
		ID: id, Name: name, Price: price, Stock: stock, InventoryID: 1,
	}
}

func (m *memStore) productCopy(id int) *models.Product {
	p, ok := m.products[id]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func (m *memStore) FindByID(ctx context.Context, id int) (*models.Product, error) {
	return m.productCopy(id), nil
}

func (m *memStore) cartCopy(item *models.CartItem) *models.CartItem {
	cp := *item
	cp.Product = m.productCopy(item.ProductID)
	return &cp
}

func (m *memStore) ListWithProducts(ctx context.Context, userID int) ([]models.CartItem, error) {
	items := []models.CartItem{}
	for _, item := range m.carts {
		if item.UserID == userID {
			items = append(items, *m.cartCopy(item))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (m *memStore) FindByUserAndProduct(ctx context.Context, userID, productID int) (*models.CartItem, error) {
	for _, item := range m.carts {
		if item.UserID == userID && item.ProductID == productID {
			return m.cartCopy(item), nil
		}
	}
	return nil, nil
}

func (m *memStore) FindByIDForUser(ctx context.Context, id, userID int) (*models.CartItem, error) {
	item, ok := m.carts[id]
	if !ok || item.UserID != userID {
		return nil, nil
	}
	return m.cartCopy(item), nil
}

func (m *memStore) Create(ctx context.Context, item *models.CartItem) error {
	item.ID = m.nextCartID
	m.nextCartID++
	item.CreatedAt = m.now
	item.UpdatedAt = m.now
	stored := *item
	stored.Product = nil
	m.carts[item.ID] = &stored
	return nil
}

func (m *memStore) UpdateQuantity(ctx context.Context, id, quantity, total int) error {
	item := m.carts[id]
	item.Quantity = quantity
	item.Total = total
	return nil
}

func (m *memStore) Delete(ctx context.Context, id int) error {
	delete(m.carts, id)
	return nil
}

func (m *memStore) DeleteAllForUser(ctx context.Context, userID int) error {
	for id, item := range m.carts {
		if item.UserID == userID {
			delete(m.carts, id)
		}
	}
	return nil
}

func (m *memStore) CreateCheckout(ctx context.Context, inv *models.Invoice, deductions []models.StockDeduction) error {
	if m.checkoutErr != nil {
		return m.checkoutErr
	}

	for _, d := range deductions {
		p := m.products[d.ProductID]
		if p == nil || p.Stock < d.Quantity {
			conflict := &repositories.StockConflictError{ProductID: d.ProductID}
			if p != nil {
				conflict.Name = p.Name
				conflict.Available = p.Stock
			}
			return conflict
		}
	}

	inv.ID = m.nextInvoiceID
	m.nextInvoiceID++
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = m.now
	}
	m.invoices = append(m.invoices, *inv)

	for _, d := range deductions {
		m.products[d.ProductID].Stock -= d.Quantity
	}
	return m.DeleteAllForUser(ctx, inv.UserID)
}

func (m *memStore) ListByUser(ctx context.Context, userID int) ([]models.Invoice, error) {
	out := []models.Invoice{}
	for _, inv := range m.invoices {
		if inv.UserID == userID {
			out = append(out, inv)
		}
	}
	sortInvoicesDesc(out)
	return out, nil
}

func (m *memStore) ListByEmail(ctx context.Context, email string) ([]models.Invoice, error) {
	out := []models.Invoice{}
	for _, inv := range m.invoices {
		if inv.Email == email {
			out = append(out, inv)
		}
	}
	sortInvoicesDesc(out)
	return out, nil
}

func (m *memStore) ListBetween(ctx context.Context, start, end time.Time) ([]models.Invoice, error) {
	out := []models.Invoice{}
	for _, inv := range m.invoices {
		if !inv.CreatedAt.Before(start) && !inv.CreatedAt.After(end) {
			out = append(out, inv)
		}
	}
	sortInvoicesDesc(out)
	return out, nil
}

// memInvoices exposes the invoice side of memStore. CartStore and
// InvoiceStore both declare FindByIDForUser with different result
// types, so the invoice variant lives on a wrapper.
type memInvoices struct{ *memStore }

func (m memInvoices) FindByIDForUser(ctx context.Context, id, userID int) (*models.Invoice, error) {
	for _, inv := range m.invoices {
		if inv.ID == id && inv.UserID == userID {
			cp := inv
			return &cp, nil
		}
	}
	return nil, nil
}

func sortInvoicesDesc(invoices []models.Invoice) {
	sort.Slice(invoices, func(i, j int) bool {
		return invoices[i].CreatedAt.After(invoices[j].CreatedAt)
	})
}
