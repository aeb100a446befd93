package repository

// CreateItemOptions holds parameters for inserting a new Item.
type CreateItemOptions struct {
	ID          int64
	Name        string
	Price       float64
	Quantity    int64
	ReleaseYear int
}

// GetOneItemOptions identifies a single Item.
type GetOneItemOptions struct {
	ID int64
}

// ListItemsOptions holds filter and pagination parameters for listing Items.
// Limit 0 returns every matching row.
type ListItemsOptions struct {
	Query  string
	Limit  int
	Offset int
}

// UpdateItemOptions holds the full replacement of an existing Item.
type UpdateItemOptions struct {
	ID          int64
	Name        string
	Price       float64
	Quantity    int64
	ReleaseYear int
}
