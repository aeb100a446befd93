package sqlite

import (
	"context"

	repo "inventory-service/internal/item/repository"
)

const createItemsTable = `
	CREATE TABLE IF NOT EXISTS items (
		id           INTEGER PRIMARY KEY,
		name         TEXT    NOT NULL,
		price        REAL    NOT NULL,
		quantity     INTEGER NOT NULL,
		release_year INTEGER NOT NULL
	)`

// EnsureSchema creates the items table when it does not exist yet.
func (r *implRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createItemsTable); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("EnsureSchema"), err)
		return repo.ErrFailedToInit
	}
	return nil
}
