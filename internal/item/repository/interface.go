package repository

import (
	"context"

	"inventory-service/internal/item"
)

// Repository is the composed interface for the item data store.
type Repository interface {
	SchemaRepository
	ItemRepository
}

// SchemaRepository owns the lifecycle of the items table.
type SchemaRepository interface {
	EnsureSchema(ctx context.Context) error
}

// ItemRepository defines all data access methods for the Item entity.
//
// CreateItem returns item.ErrItemExists on a duplicate id; UpdateItem and
// DeleteItem return item.ErrItemNotFound when no row matches.
type ItemRepository interface {
	CreateItem(ctx context.Context, opt CreateItemOptions) (item.Item, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (item.Item, bool, error)
	ListItems(ctx context.Context, opt ListItemsOptions) ([]item.Item, int, error)
	UpdateItem(ctx context.Context, opt UpdateItemOptions) (item.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}
