package usecase

import (
	"context"

	"preference-service/internal/inventory"
	repo "preference-service/internal/inventory/repository"
)

// Stock appends shirts to an Inventory in the order given.
func (uc *implUseCase) Stock(ctx context.Context, input inventory.StockInput) (inventory.StockOutput, error) {
	if err := uc.validateShirts(input.Shirts); err != nil {
		return inventory.StockOutput{}, err
	}

	inv, err := uc.repo.UpdateInventory(ctx, repo.UpdateInventoryOptions{
		ID:           input.ID,
		AppendShirts: input.Shirts,
	})
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.Stock UpdateInventory: %v", err)
		return inventory.StockOutput{}, err
	}
	if inv.ID == "" {
		return inventory.StockOutput{}, inventory.ErrInventoryNotFound
	}

	return inventory.StockOutput{Inventory: inv}, nil
}
