package repository

import (
	"preference-service/internal/inventory"
	"preference-service/internal/model"
)

// CreateInventoryOptions holds parameters for inserting a new Inventory.
// Names are unique; stores reject a taken name with ErrNameTaken.
type CreateInventoryOptions struct {
	Name     string
	Shirts   []model.ShirtColor
	Strategy inventory.Strategy
}

// GetOneInventoryOptions holds filter parameters for fetching a single Inventory.
// All non-empty fields are applied as AND conditions.
type GetOneInventoryOptions struct {
	ID   string
	Name string
}

// ListInventoriesOptions holds pagination parameters for listing Inventories.
type ListInventoriesOptions struct {
	Limit  int
	Offset int
}

// UpdateInventoryOptions appends AppendShirts, in order, to an existing Inventory.
// Stores apply the append atomically so concurrent stock updates are never lost.
type UpdateInventoryOptions struct {
	ID           string
	AppendShirts []model.ShirtColor
}
