package inventory

import (
	"time"

	"preference-service/internal/model"
	"preference-service/pkg/preference"
)

// --- Inventory Domain Model ---

// Inventory is a named stock of shirts plus the fallback used for giveaways.
type Inventory struct {
	ID        string
	Name      string
	Shirts    []model.ShirtColor
	Strategy  Strategy
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy so callers can resolve against a stable snapshot.
func (inv Inventory) Clone() Inventory {
	out := inv
	if inv.Shirts != nil {
		out.Shirts = make([]model.ShirtColor, len(inv.Shirts))
		copy(out.Shirts, inv.Shirts)
	}
	return out
}

// Count returns how many shirts of color c are stocked.
func (inv Inventory) Count(c model.ShirtColor) int {
	n := 0
	for _, s := range inv.Shirts {
		if s == c {
			n++
		}
	}
	return n
}

// --- UseCase Inputs ---

// CreateInput describes a new inventory. An absent Strategy means the
// service-wide default.
type CreateInput struct {
	Name     string
	Shirts   []model.ShirtColor
	Strategy preference.Option[Strategy]
}

type ListInput struct {
	Limit  int
	Offset int
}

type StockInput struct {
	ID     string
	Shirts []model.ShirtColor
}

// GiveawayInput asks for a shirt from inventory ID. Strategy overrides the
// inventory's configured fallback when set.
type GiveawayInput struct {
	ID         string
	Preference preference.Option[model.ShirtColor]
	Strategy   preference.Option[Strategy]
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Inventory Inventory
}

type ListOutput struct {
	Inventories []Inventory
	Total       int
	Limit       int
	Offset      int
}

type DetailOutput struct {
	Inventory Inventory
}

type StockOutput struct {
	Inventory Inventory
}

type GiveawayOutput struct {
	InventoryID string
	Result      GiveawayResult
}
