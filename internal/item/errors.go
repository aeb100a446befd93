package item

import "errors"

var (
	ErrItemNotFound  = errors.New("item not found")
	ErrItemExists    = errors.New("item exists")
	ErrMissingFields = errors.New("missing fields")
	ErrInvalidInput  = errors.New("invalid input")
)
