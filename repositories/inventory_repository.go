package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"simple-ecommerce/models"
)

type InventoryRepository struct {
	db *pgxpool.Pool
}

func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) List(ctx context.Context) ([]models.Inventory, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM inventories ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	inventories := []models.Inventory{}
	for rows.Next() {
		var inv models.Inventory
		if err := rows.Scan(&inv.ID, &inv.Name, &inv.Description, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
			return nil, err
		}
		inventories = append(inventories, inv)
	}
	return inventories, rows.Err()
}

func (r *InventoryRepository) FindByID(ctx context.Context, id int) (*models.Inventory, error) {
	query := `SELECT id, name, description, created_at, updated_at FROM inventories WHERE id = $1`

	var inv models.Inventory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&inv.ID, &inv.Name, &inv.Description, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InventoryRepository) Create(ctx context.Context, inv *models.Inventory) error {
	query := `
		INSERT INTO inventories (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return r.db.QueryRow(ctx, query, inv.Name, inv.Description, now, now).
		Scan(&inv.ID, &inv.CreatedAt, &inv.UpdatedAt)
}

func (r *InventoryRepository) Update(ctx context.Context, inv *models.Inventory) error {
	query := `UPDATE inventories SET name = $1, description = $2, updated_at = $3 WHERE id = $4`
	tag, err := r.db.Exec(ctx, query, inv.Name, inv.Description, time.Now(), inv.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
