package usecase

import (
	"context"

	"preference-service/internal/inventory"
)

// Giveaway resolves the shirt color to hand out from a snapshot of the
// inventory. Stock is left untouched.
func (uc *implUseCase) Giveaway(ctx context.Context, input inventory.GiveawayInput) (inventory.GiveawayOutput, error) {
	inv, err := uc.getByID(ctx, input.ID)
	if err != nil {
		return inventory.GiveawayOutput{}, err
	}

	strategy := input.Strategy.Or(inv.Strategy)
	res, err := inventory.ResolveGiveaway(inv.Shirts, input.Preference, strategy)
	if err != nil {
		uc.l.Warnf(ctx, "inventory.usecase.Giveaway %s (%s): %v", inv.ID, strategy, err)
		return inventory.GiveawayOutput{}, err
	}

	uc.rec.Resolution("inventory", string(res.Source))
	uc.l.Debugf(ctx, "inventory.usecase.Giveaway %s: %s via %s", inv.ID, res.Color, res.Source)
	return inventory.GiveawayOutput{InventoryID: inv.ID, Result: res}, nil
}
