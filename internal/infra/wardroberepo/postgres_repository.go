package wardroberepo

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
)

// PostgresRepository implements wardrobe.Repository using pgx.
//
// Expected schema:
//
//	CREATE TABLE wardrobe_items (
//	    id           TEXT PRIMARY KEY,
//	    user_id      TEXT NOT NULL DEFAULT '',
//	    name         TEXT NOT NULL,
//	    garment_type TEXT NOT NULL,
//	    warmth_level TEXT NOT NULL,
//	    waterproof   BOOLEAN NOT NULL DEFAULT FALSE,
//	    colors       TEXT[] NOT NULL DEFAULT '{}',
//	    formality    TEXT NOT NULL DEFAULT 'casual',
//	    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// ListItems returns the user's wardrobe in insertion order.
func (r *PostgresRepository) ListItems(ctx context.Context, userID string) ([]wardrobe.Item, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, garment_type, warmth_level, waterproof, colors, formality, created_at
		FROM wardrobe_items
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []wardrobe.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// InsertItem appends a new wardrobe row.
func (r *PostgresRepository) InsertItem(ctx context.Context, userID string, item wardrobe.Item) (wardrobe.Item, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO wardrobe_items (id, user_id, name, garment_type, warmth_level, waterproof, colors, formality, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, item.ID, userID, item.Name, item.Garment.String(), item.Warmth.String(), item.Waterproof, item.Colors, item.Formality.String(), item.CreatedAt)
	if err != nil {
		return wardrobe.Item{}, err
	}
	return item, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (wardrobe.Item, error) {
	var (
		item      wardrobe.Item
		garment   string
		warmth    string
		formality string
	)
	if err := row.Scan(&item.ID, &item.Name, &garment, &warmth, &item.Waterproof, &item.Colors, &formality, &item.CreatedAt); err != nil {
		return wardrobe.Item{}, err
	}

	var err error
	if item.Garment, err = wardrobe.ParseGarmentType(garment); err != nil {
		return wardrobe.Item{}, err
	}
	if item.Warmth, err = wardrobe.ParseWarmthLevel(warmth); err != nil {
		return wardrobe.Item{}, err
	}
	if item.Formality, err = wardrobe.ParseFormality(formality); err != nil {
		return wardrobe.Item{}, err
	}
	return item, nil
}

var _ wardrobe.Repository = (*PostgresRepository)(nil)
