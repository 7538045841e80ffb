package inventory

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Inventory CRUD
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	Delete(ctx context.Context, id string) error

	// Stock appends shirts. This is the only path that changes a collection.
	Stock(ctx context.Context, input StockInput) (StockOutput, error)

	// Giveaway resolves a shirt color without changing stock.
	Giveaway(ctx context.Context, input GiveawayInput) (GiveawayOutput, error)
}
