package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"inventory-service/internal/item"
	repo "inventory-service/internal/item/repository"
	pkgSqlite "inventory-service/pkg/sqlite"
)

const itemColumns = `id, name, price, quantity, release_year`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (item.Item, error) {
	var it item.Item
	err := s.Scan(&it.ID, &it.Name, &it.Price, &it.Quantity, &it.ReleaseYear)
	return it, err
}

// CreateItem inserts a new Item row. A taken id yields item.ErrItemExists.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	const query = `
		INSERT INTO items (id, name, price, quantity, release_year)
		VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, opt.ID, opt.Name, opt.Price, opt.Quantity, opt.ReleaseYear)
	if pkgSqlite.IsUniqueViolation(err) {
		return item.Item{}, item.ErrItemExists
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return item.Item{}, repo.ErrFailedToInsert
	}

	return item.Item{
		ID:          opt.ID,
		Name:        opt.Name,
		Price:       opt.Price,
		Quantity:    opt.Quantity,
		ReleaseYear: opt.ReleaseYear,
	}, nil
}

// GetOneItem retrieves a single Item by id. The bool is false when no row exists.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, bool, error) {
	const query = `SELECT ` + itemColumns + ` FROM items WHERE id = ?`

	it, err := scanItem(r.db.QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return item.Item{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return item.Item{}, false, repo.ErrFailedToGet
	}
	return it, true, nil
}

// ListItems returns a page of Items and the number of rows matching the filter.
// Both reads share one transaction so the total agrees with the page.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer tx.Rollback() //nolint:errcheck

	where, whereArgs := r.buildFilter(opt)

	var total int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM items"+where, whereArgs...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	mods, args := r.buildListQuery(opt)
	rows, err := tx.QueryContext(ctx, "SELECT "+itemColumns+" FROM items"+mods, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	items := make([]item.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	return items, total, nil
}

// UpdateItem replaces every mutable column of an Item in one statement.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	const query = `
		UPDATE items
		SET name = ?, price = ?, quantity = ?, release_year = ?
		WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, opt.Name, opt.Price, opt.Quantity, opt.ReleaseYear, opt.ID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	}
	if n, err := res.RowsAffected(); err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("UpdateItem"), err)
		return item.Item{}, repo.ErrFailedToUpdate
	} else if n == 0 {
		return item.Item{}, item.ErrItemNotFound
	}

	return item.Item{
		ID:          opt.ID,
		Name:        opt.Name,
		Price:       opt.Price,
		Quantity:    opt.Quantity,
		ReleaseYear: opt.ReleaseYear,
	}, nil
}

// DeleteItem removes an Item by id.
func (r *implRepository) DeleteItem(ctx context.Context, id int64) error {
	const query = `DELETE FROM items WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("DeleteItem"), err)
		return repo.ErrFailedToDelete
	}
	if n == 0 {
		return item.ErrItemNotFound
	}
	return nil
}
