package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simple-ecommerce/models"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

const productSelect = `
	SELECT p.id, p.name, p.image, p.price, p.stock, p.description, p.inventory_id,
	       p.created_at, p.updated_at,
	       i.id, i.name, i.description, i.created_at, i.updated_at
	FROM products p
	JOIN inventories i ON p.inventory_id = i.id
`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	var inv models.Inventory
	err := row.Scan(
		&p.ID, &p.Name, &p.Image, &p.Price, &p.Stock, &p.Description, &p.InventoryID,
		&p.CreatedAt, &p.UpdatedAt,
		&inv.ID, &inv.Name, &inv.Description, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Inventory = &inv
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+` ORDER BY p.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func (r *ProductRepository) ListByInventory(ctx context.Context, inventoryID int) ([]models.Product, error) {
	rows, err := r.db.Query(ctx, productSelect+` WHERE p.inventory_id = $1 ORDER BY p.created_at DESC`, inventoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProducts(rows)
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) FindByID(ctx context.Context, id int) (*models.Product, error) {
	p, err := scanProduct(r.db.QueryRow(ctx, productSelect+` WHERE p.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return p, err
}

func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	query := `
		INSERT INTO products (name, image, price, stock, description, inventory_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query,
		p.Name, p.Image, p.Price, p.Stock, p.Description, p.InventoryID, now, now,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	query := `
		UPDATE products SET name = $1, image = $2, price = $3, stock = $4,
		       description = $5, inventory_id = $6, updated_at = $7
		WHERE id = $8
	`
	tag, err := r.db.Exec(ctx, query,
		p.Name, p.Image, p.Price, p.Stock, p.Description, p.InventoryID, time.Now(), p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
