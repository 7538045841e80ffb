package repository

import (
	"context"

	"preference-service/internal/inventory"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	InventoryRepository
}

// InventoryRepository defines all data access methods for the Inventory entity.
// Returned inventories are snapshots; mutating them does not affect the store.
type InventoryRepository interface {
	CreateInventory(ctx context.Context, opt CreateInventoryOptions) (inventory.Inventory, error)
	GetOneInventory(ctx context.Context, opt GetOneInventoryOptions) (inventory.Inventory, error)
	ListInventories(ctx context.Context, opt ListInventoriesOptions) ([]inventory.Inventory, int, error)
	UpdateInventory(ctx context.Context, opt UpdateInventoryOptions) (inventory.Inventory, error)
	DeleteInventory(ctx context.Context, id string) error
}
