package usecase

import (
	"context"
	"errors"
	"fmt"

	"preference-service/internal/inventory"
	repo "preference-service/internal/inventory/repository"
)

// Create creates a new Inventory. Name uniqueness is enforced by the store.
func (uc *implUseCase) Create(ctx context.Context, input inventory.CreateInput) (inventory.CreateOutput, error) {
	strategy := input.Strategy.Or(uc.defaultStrategy)
	if !strategy.IsValid() {
		return inventory.CreateOutput{}, fmt.Errorf("%w: %v", inventory.ErrInvalidStrategy, strategy)
	}
	if err := uc.validateShirts(input.Shirts); err != nil {
		return inventory.CreateOutput{}, err
	}

	inv, err := uc.repo.CreateInventory(ctx, repo.CreateInventoryOptions{
		Name:     input.Name,
		Shirts:   input.Shirts,
		Strategy: strategy,
	})
	if errors.Is(err, repo.ErrNameTaken) {
		return inventory.CreateOutput{}, inventory.ErrDuplicateName
	}
	if err != nil {
		uc.l.Errorf(ctx, "inventory.usecase.Create CreateInventory: %v", err)
		return inventory.CreateOutput{}, err
	}

	uc.l.Infof(ctx, "inventory.usecase.Create: created %s (%s) with %d shirts", inv.ID, inv.Name, len(inv.Shirts))
	return inventory.CreateOutput{Inventory: inv}, nil
}
