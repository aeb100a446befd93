package usecase

import (
	"context"
	"errors"

	"inventory-service/internal/item"
	repo "inventory-service/internal/item/repository"
)

// Create stores a new Item after validating it and checking id uniqueness.
func (uc *implUseCase) Create(ctx context.Context, input item.CreateItemInput) (item.CreateItemOutput, error) {
	if input.ID == nil {
		return item.CreateItemOutput{}, item.ErrMissingFields
	}
	f, err := uc.validateFields(input.Name, input.Price, input.Quantity, input.ReleaseYear)
	if err != nil {
		return item.CreateItemOutput{}, err
	}

	_, found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: *input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create GetOneItem: %v", err)
		return item.CreateItemOutput{}, err
	}
	if found {
		return item.CreateItemOutput{}, item.ErrItemExists
	}

	// The insert still maps a primary key violation to ErrItemExists if a
	// concurrent request wins between the check and the write.
	created, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		ID:          *input.ID,
		Name:        f.name,
		Price:       f.price,
		Quantity:    f.quantity,
		ReleaseYear: f.releaseYear,
	})
	if err != nil {
		if !errors.Is(err, item.ErrItemExists) {
			uc.l.Errorf(ctx, "uc.Create CreateItem: %v", err)
		}
		return item.CreateItemOutput{}, err
	}

	return item.CreateItemOutput{Item: created}, nil
}
