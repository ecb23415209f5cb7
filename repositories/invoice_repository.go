package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simple-ecommerce/models"
)

// StockConflictError reports a checkout whose conditional stock
// decrement matched no row: another checkout consumed the stock after
// it was validated.
type StockConflictError struct {
	ProductID int
	Name      string
	Available int
}

func (e *StockConflictError) Error() string {
	return fmt.Sprintf("insufficient stock for %s. Available: %d", e.Name, e.Available)
}

type InvoiceRepository struct {
	db *pgxpool.Pool
}

func NewInvoiceRepository(db *pgxpool.Pool) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// CreateCheckout persists the invoice, decrements stock, and clears
// the user's cart in one transaction. Decrements are conditional on
// remaining stock, so racing checkouts cannot push stock below zero;
// a conflict rolls everything back.
func (r *InvoiceRepository) CreateCheckout(ctx context.Context, inv *models.Invoice, deductions []models.StockDeduction) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	itemsJSON, err := json.Marshal(inv.Items)
	if err != nil {
		return err
	}

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO invoices (user_id, name, email, phone, items, total, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at`,
		inv.UserID, inv.Name, inv.Email, inv.Phone, itemsJSON, inv.Total, now,
	).Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		return err
	}

	for _, d := range deductions {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $1, updated_at = $2 WHERE id = $3 AND stock >= $1`,
			d.Quantity, now, d.ProductID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			conflict := &StockConflictError{ProductID: d.ProductID}
			tx.QueryRow(ctx, `SELECT name, stock FROM products WHERE id = $1`, d.ProductID).
				Scan(&conflict.Name, &conflict.Available)
			return conflict
		}
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, inv.UserID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

const invoiceSelect = `SELECT id, user_id, name, email, phone, items, total, created_at FROM invoices`

func scanInvoice(row pgx.Row) (*models.Invoice, error) {
	var inv models.Invoice
	var itemsJSON []byte
	err := row.Scan(&inv.ID, &inv.UserID, &inv.Name, &inv.Email, &inv.Phone,
		&itemsJSON, &inv.Total, &inv.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(itemsJSON, &inv.Items); err != nil {
		return nil, fmt.Errorf("failed to decode invoice items: %w", err)
	}
	return &inv, nil
}

func collectInvoices(rows pgx.Rows) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, *inv)
	}
	return invoices, rows.Err()
}

func (r *InvoiceRepository) ListByUser(ctx context.Context, userID int) ([]models.Invoice, error) {
	rows, err := r.db.Query(ctx, invoiceSelect+` WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvoices(rows)
}

func (r *InvoiceRepository) FindByIDForUser(ctx context.Context, id, userID int) (*models.Invoice, error) {
	inv, err := scanInvoice(r.db.QueryRow(ctx, invoiceSelect+` WHERE id = $1 AND user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return inv, err
}

func (r *InvoiceRepository) ListByEmail(ctx context.Context, email string) ([]models.Invoice, error) {
	rows, err := r.db.Query(ctx, invoiceSelect+` WHERE email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvoices(rows)
}

// ListBetween returns invoices created in [start, end], newest first.
func (r *InvoiceRepository) ListBetween(ctx context.Context, start, end time.Time) ([]models.Invoice, error) {
	rows, err := r.db.Query(ctx,
		invoiceSelect+` WHERE created_at >= $1 AND created_at <= $2 ORDER BY created_at DESC`,
		start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectInvoices(rows)
}
