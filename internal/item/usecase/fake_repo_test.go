package usecase_test

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"inventory-service/internal/item"
	repo "inventory-service/internal/item/repository"
)

// memRepo is an in-memory repository.Repository used by the use case tests.
type memRepo struct {
	mu    sync.Mutex
	items map[int64]item.Item
	calls int

	// failWith, when set, is returned by every method.
	failWith error
	// lastList records the options of the latest ListItems call.
	lastList repo.ListItemsOptions
}

func newMemRepo(seed ...item.Item) *memRepo {
	r := &memRepo{items: map[int64]item.Item{}}
	for _, it := range seed {
		r.items[it.ID] = it
	}
	return r
}

func (r *memRepo) EnsureSchema(ctx context.Context) error { return r.failWith }

func (r *memRepo) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return item.Item{}, r.failWith
	}
	if _, ok := r.items[opt.ID]; ok {
		return item.Item{}, item.ErrItemExists
	}
	it := item.Item{ID: opt.ID, Name: opt.Name, Price: opt.Price, Quantity: opt.Quantity, ReleaseYear: opt.ReleaseYear}
	r.items[opt.ID] = it
	return it, nil
}

func (r *memRepo) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (item.Item, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return item.Item{}, false, r.failWith
	}
	it, ok := r.items[opt.ID]
	return it, ok, nil
}

func (r *memRepo) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]item.Item, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	r.lastList = opt
	if r.failWith != nil {
		return nil, 0, r.failWith
	}
	var all []item.Item
	for _, it := range r.items {
		if opt.Query == "" || strings.Contains(strings.ToLower(it.Name), strings.ToLower(opt.Query)) {
			all = append(all, it)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	total := len(all)
	if opt.Limit > 0 {
		start := min(opt.Offset, total)
		end := min(start+opt.Limit, total)
		all = all[start:end]
	}
	return all, total, nil
}

func (r *memRepo) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (item.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return item.Item{}, r.failWith
	}
	if _, ok := r.items[opt.ID]; !ok {
		return item.Item{}, item.ErrItemNotFound
	}
	it := item.Item{ID: opt.ID, Name: opt.Name, Price: opt.Price, Quantity: opt.Quantity, ReleaseYear: opt.ReleaseYear}
	r.items[opt.ID] = it
	return it, nil
}

func (r *memRepo) DeleteItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.items[id]; !ok {
		return item.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}

var errDisk = errors.New("disk I/O error")

func ptr[T any](v T) *T { return &v }
