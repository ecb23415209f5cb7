package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simple-ecommerce/models"
)

type CartRepository struct {
	db *pgxpool.Pool
}

func NewCartRepository(db *pgxpool.Pool) *CartRepository {
	return &CartRepository{db: db}
}

const cartSelect = `
	SELECT c.id, c.user_id, c.product_id, c.quantity, c.total, c.created_at, c.updated_at,
	       p.id, p.name, p.image, p.price, p.stock, p.description, p.inventory_id,
	       p.created_at, p.updated_at,
	       i.id, i.name, i.description, i.created_at, i.updated_at
	FROM cart_items c
	JOIN products p ON c.product_id = p.id
	JOIN inventories i ON p.inventory_id = i.id
`

func scanCartItem(row pgx.Row) (*models.CartItem, error) {
	var item models.CartItem
	var p models.Product
	var inv models.Inventory
	err := row.Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.Total,
		&item.CreatedAt, &item.UpdatedAt,
		&p.ID, &p.Name, &p.Image, &p.Price, &p.Stock, &p.Description, &p.InventoryID,
		&p.CreatedAt, &p.UpdatedAt,
		&inv.ID, &inv.Name, &inv.Description, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Inventory = &inv
	item.Product = &p
	return &item, nil
}

// ListWithProducts returns the user's cart rows joined with current
// product state.
func (r *CartRepository) ListWithProducts(ctx context.Context, userID int) ([]models.CartItem, error) {
	rows, err := r.db.Query(ctx, cartSelect+` WHERE c.user_id = $1 ORDER BY c.created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (r *CartRepository) FindByUserAndProduct(ctx context.Context, userID, productID int) (*models.CartItem, error) {
	item, err := scanCartItem(r.db.QueryRow(ctx,
		cartSelect+` WHERE c.user_id = $1 AND c.product_id = $2`, userID, productID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func (r *CartRepository) FindByIDForUser(ctx context.Context, id, userID int) (*models.CartItem, error) {
	item, err := scanCartItem(r.db.QueryRow(ctx,
		cartSelect+` WHERE c.id = $1 AND c.user_id = $2`, id, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return item, err
}

func (r *CartRepository) Create(ctx context.Context, item *models.CartItem) error {
	query := `
		INSERT INTO cart_items (user_id, product_id, quantity, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		item.UserID, item.ProductID, item.Quantity, item.Total, now, now,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *CartRepository) UpdateQuantity(ctx context.Context, id, quantity, total int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE cart_items SET quantity = $1, total = $2, updated_at = $3 WHERE id = $4`,
		quantity, total, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *CartRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// DeleteAllForUser clears the user's cart. Clearing an empty cart is
// a no-op.
func (r *CartRepository) DeleteAllForUser(ctx context.Context, userID int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID)
	return err
}
