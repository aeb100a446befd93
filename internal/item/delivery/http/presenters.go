package http

import (
	"fmt"

	"inventory-service/internal/item"
)

// --- Request DTOs ---

// Pointer fields tell an absent key apart from a zero value.
type createReq struct {
	ID          *int64   `json:"id"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
	ReleaseYear *int     `json:"release_year"`
}

func (r createReq) validate() error {
	if r.ID == nil || r.Name == nil || r.Price == nil || r.Quantity == nil || r.ReleaseYear == nil {
		return item.ErrMissingFields
	}
	return nil
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Quantity:    r.Quantity,
		ReleaseYear: r.ReleaseYear,
	}
}

// ---

type listReq struct {
	Page  *int   `form:"page"`
	Size  *int   `form:"size"`
	Query string `form:"q"`
}

func (r listReq) validate() error {
	if r.Page != nil && *r.Page < 1 {
		return fmt.Errorf("%w: page must be a positive integer", item.ErrInvalidInput)
	}
	if r.Size != nil && *r.Size < 1 {
		return fmt.Errorf("%w: size must be a positive integer", item.ErrInvalidInput)
	}
	return nil
}

func (r listReq) toInput() item.ListItemsInput {
	in := item.ListItemsInput{Paginate: true, Query: r.Query}
	if r.Page != nil {
		in.Page = *r.Page
	}
	if r.Size != nil {
		in.Size = *r.Size
	}
	return in
}

// ---

type updateReq struct {
	ID          int64    `json:"-"` // populated from URI param
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Quantity    *int64   `json:"quantity"`
	ReleaseYear *int     `json:"release_year"`
}

func (r updateReq) validate() error {
	if r.Name == nil || r.Price == nil || r.Quantity == nil || r.ReleaseYear == nil {
		return item.ErrMissingFields
	}
	return nil
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Price:       r.Price,
		Quantity:    r.Quantity,
		ReleaseYear: r.ReleaseYear,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Quantity    int64   `json:"quantity"`
	ReleaseYear int     `json:"release_year"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Price:       it.Price,
		Quantity:    it.Quantity,
		ReleaseYear: it.ReleaseYear,
	}
}

func newItemsResp(items []item.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type listPageResp struct {
	Items []itemResp `json:"items"`
	Page  int        `json:"page"`
	Size  int        `json:"size"`
	Total int        `json:"total"`
}

func (h *handler) newListPageResp(out item.ListItemsOutput) listPageResp {
	return listPageResp{
		Items: newItemsResp(out.Items),
		Page:  out.Page,
		Size:  out.Size,
		Total: out.Total,
	}
}
