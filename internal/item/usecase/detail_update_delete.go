package usecase

import (
	"context"
	"errors"

	"inventory-service/internal/item"
	repo "inventory-service/internal/item/repository"
)

// Detail retrieves a single Item by id. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (item.DetailItemOutput, error) {
	it, found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneItem: %v", err)
		return item.DetailItemOutput{}, err
	}
	if !found {
		return item.DetailItemOutput{}, item.ErrItemNotFound
	}
	return item.DetailItemOutput{Item: it}, nil
}

// Update replaces every mutable field of an existing Item.
func (uc *implUseCase) Update(ctx context.Context, input item.UpdateItemInput) (item.UpdateItemOutput, error) {
	f, err := uc.validateFields(input.Name, input.Price, input.Quantity, input.ReleaseYear)
	if err != nil {
		return item.UpdateItemOutput{}, err
	}

	_, found, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.ID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneItem: %v", err)
		return item.UpdateItemOutput{}, err
	}
	if !found {
		return item.UpdateItemOutput{}, item.ErrItemNotFound
	}

	updated, err := uc.repo.UpdateItem(ctx, repo.UpdateItemOptions{
		ID:          input.ID,
		Name:        f.name,
		Price:       f.price,
		Quantity:    f.quantity,
		ReleaseYear: f.releaseYear,
	})
	if err != nil {
		if !errors.Is(err, item.ErrItemNotFound) {
			uc.l.Errorf(ctx, "uc.Update UpdateItem: %v", err)
		}
		return item.UpdateItemOutput{}, err
	}
	return item.UpdateItemOutput{Item: updated}, nil
}

// Delete removes an Item by id. Returns ErrItemNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.DeleteItem(ctx, id); err != nil {
		if !errors.Is(err, item.ErrItemNotFound) {
			uc.l.Errorf(ctx, "uc.Delete DeleteItem: %v", err)
		}
		return err
	}
	return nil
}
