package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"inventory-service/internal/item"
	repo "inventory-service/internal/item/repository"
)

// List returns the matching Items. Without Paginate every match is returned;
// otherwise the requested 1-based page, with Size defaulted and clamped to the configured bounds.
func (uc *implUseCase) List(ctx context.Context, input item.ListItemsInput) (item.ListItemsOutput, error) {
	if input.Page < 0 {
		return item.ListItemsOutput{}, fmt.Errorf("%w: page must be a positive integer", item.ErrInvalidInput)
	}
	if input.Size < 0 {
		return item.ListItemsOutput{}, fmt.Errorf("%w: size must be a positive integer", item.ErrInvalidInput)
	}

	page, size := 1, 0
	opt := repo.ListItemsOptions{Query: strings.TrimSpace(input.Query)}
	if input.Paginate {
		page = max(input.Page, 1)
		size = input.Size
		if size == 0 {
			size = uc.cfg.DefaultPageSize
		}
		size = min(size, uc.cfg.MaxPageSize)
		if page-1 > math.MaxInt/size {
			return item.ListItemsOutput{}, fmt.Errorf("%w: page is out of range", item.ErrInvalidInput)
		}

		opt.Limit = size
		opt.Offset = (page - 1) * size
	}

	items, total, err := uc.repo.ListItems(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListItems: %v", err)
		return item.ListItemsOutput{}, err
	}

	return item.ListItemsOutput{
		Items: items,
		Total: total,
		Page:  page,
		Size:  size,
	}, nil
}
