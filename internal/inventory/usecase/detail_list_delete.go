package usecase

import (
	"context"

	"preference-service/internal/inventory"
	repo "preference-service/internal/inventory/repository"
)

// Detail retrieves a single Inventory by ID. Returns ErrInventoryNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, id string) (inventory.DetailOutput, error) {
	inv, err := uc.getByID(ctx, id)
	if err != nil {
		return inventory.DetailOutput{}, err
	}
	return inventory.DetailOutput{Inventory: inv}, nil
}

// List returns a paginated list of Inventories.
func (uc *implUseCase) List(ctx context.Context, input inventory.ListInput) (inventory.ListOutput, error) {
	invs, total, err := uc.repo.ListInventories(ctx, repo.ListInventoriesOptions{
		Limit:  input.Limit,
		Offset: input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.List ListInventories: %v", err)
		return inventory.ListOutput{}, err
	}

	return inventory.ListOutput{
		Inventories: invs,
		Total:       total,
		Limit:       input.Limit,
		Offset:      input.Offset,
	}, nil
}

// Delete removes an Inventory by ID. Returns ErrInventoryNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.getByID(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.DeleteInventory(ctx, id); err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.Delete DeleteInventory: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) getByID(ctx context.Context, id string) (inventory.Inventory, error) {
	inv, err := uc.repo.GetOneInventory(ctx, repo.GetOneInventoryOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.getByID GetOneInventory: %v", err)
		return inventory.Inventory{}, err
	}
	if inv.ID == "" {
		return inventory.Inventory{}, inventory.ErrInventoryNotFound
	}
	return inv, nil
}
