package memory

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"preference-service/internal/inventory"
	repo "preference-service/internal/inventory/repository"
	"preference-service/internal/model"
)

// CreateInventory stores a new Inventory and returns a snapshot of it.
// Returns repo.ErrNameTaken when another inventory already uses opt.Name.
func (r *implRepository) CreateInventory(ctx context.Context, opt repo.CreateInventoryOptions) (inventory.Inventory, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateInventory"), err)
		return inventory.Inventory{}, repo.ErrFailedToInsert
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.cache.Values() {
		if existing.Name == opt.Name {
			return inventory.Inventory{}, repo.ErrNameTaken
		}
	}

	now := r.now()
	inv := inventory.Inventory{
		ID:        id.String(),
		Name:      opt.Name,
		Shirts:    cloneShirts(opt.Shirts),
		Strategy:  opt.Strategy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.evictIfFull(ctx)
	r.cache.Add(inv.ID, inv)

	return inv.Clone(), nil
}

// evictIfFull drops the least recently used inventory when the store is at
// capacity. Callers must hold mu.
func (r *implRepository) evictIfFull(ctx context.Context) {
	if r.cache.Len() < r.size {
		return
	}
	if id, inv, ok := r.cache.RemoveOldest(); ok {
		r.l.Warnf(ctx, "%s: store full (%d), evicted inventory %s (%s)", r.dsn("CreateInventory"), r.size, id, inv.Name)
	}
}

// GetOneInventory retrieves a single Inventory by the provided filters (AND condition).
// Returns zero-value Inventory (ID == "") when not found.
func (r *implRepository) GetOneInventory(ctx context.Context, opt repo.GetOneInventoryOptions) (inventory.Inventory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if opt.ID != "" {
		inv, ok := r.cache.Get(opt.ID)
		if !ok || (opt.Name != "" && inv.Name != opt.Name) {
			return inventory.Inventory{}, nil
		}
		return inv.Clone(), nil
	}

	if opt.Name != "" {
		for _, inv := range r.cache.Values() {
			if inv.Name == opt.Name {
				return inv.Clone(), nil
			}
		}
	}
	return inventory.Inventory{}, nil
}

// ListInventories returns a page of Inventories, newest first, and the total count.
func (r *implRepository) ListInventories(ctx context.Context, opt repo.ListInventoriesOptions) ([]inventory.Inventory, int, error) {
	r.mu.RLock()
	all := r.cache.Values()
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	total := len(all)
	start := min(max(opt.Offset, 0), total)
	end := total
	if opt.Limit > 0 {
		end = min(start+opt.Limit, total)
	}

	page := make([]inventory.Inventory, 0, end-start)
	for _, inv := range all[start:end] {
		page = append(page, inv.Clone())
	}
	return page, total, nil
}

// UpdateInventory appends shirts to an Inventory by ID under the write lock.
// Returns zero-value Inventory when not found.
func (r *implRepository) UpdateInventory(ctx context.Context, opt repo.UpdateInventoryOptions) (inventory.Inventory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	inv, ok := r.cache.Peek(opt.ID)
	if !ok {
		return inventory.Inventory{}, nil
	}

	shirts := make([]model.ShirtColor, 0, len(inv.Shirts)+len(opt.AppendShirts))
	shirts = append(shirts, inv.Shirts...)
	inv.Shirts = append(shirts, opt.AppendShirts...)
	inv.UpdatedAt = r.now()
	r.cache.Add(inv.ID, inv)

	return inv.Clone(), nil
}

// DeleteInventory removes an Inventory by ID.
func (r *implRepository) DeleteInventory(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cache.Remove(id)
	return nil
}

func cloneShirts(shirts []model.ShirtColor) []model.ShirtColor {
	out := make([]model.ShirtColor, len(shirts))
	copy(out, shirts)
	return out
}
