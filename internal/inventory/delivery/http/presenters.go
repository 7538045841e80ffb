package http

import (
	"fmt"

	"preference-service/internal/inventory"
	"preference-service/internal/model"
	"preference-service/pkg/preference"
	"preference-service/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name     string   `json:"name"     binding:"required,min=1,max=255"`
	Shirts   []string `json:"shirts"`
	Strategy string   `json:"strategy" binding:"omitempty,oneof=most_stocked most_recent"`
}

func (r createReq) toInput() (inventory.CreateInput, error) {
	shirts, err := parseShirts(r.Shirts)
	if err != nil {
		return inventory.CreateInput{}, err
	}
	input := inventory.CreateInput{
		Name:   r.Name,
		Shirts: shirts,
	}
	if r.Strategy != "" {
		strategy, err := inventory.ParseStrategy(r.Strategy)
		if err != nil {
			return inventory.CreateInput{}, err
		}
		input.Strategy = preference.Some(strategy)
	}
	return input, nil
}

// ---

type listReq struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

func (r listReq) toInput() inventory.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return inventory.ListInput{
		Limit:  limit,
		Offset: r.Offset,
	}
}

// ---

type stockReq struct {
	ID     string   `json:"-"` // populated from URI param
	Shirts []string `json:"shirts" binding:"required,min=1"`
}

func (r stockReq) toInput() (inventory.StockInput, error) {
	shirts, err := parseShirts(r.Shirts)
	if err != nil {
		return inventory.StockInput{}, err
	}
	return inventory.StockInput{ID: r.ID, Shirts: shirts}, nil
}

// ---

type giveawayReq struct {
	ID         string `uri:"id"          binding:"required"`
	Preference string `form:"preference"`
	Strategy   string `form:"strategy"   binding:"omitempty,oneof=most_stocked most_recent"`
}

func (r giveawayReq) toInput() (inventory.GiveawayInput, error) {
	input := inventory.GiveawayInput{ID: r.ID}
	if r.Preference != "" {
		c, err := model.ParseShirtColor(r.Preference)
		if err != nil {
			return input, fmt.Errorf("%w: %v", inventory.ErrInvalidColor, err)
		}
		input.Preference = preference.Some(c)
	}
	if r.Strategy != "" {
		s, err := inventory.ParseStrategy(r.Strategy)
		if err != nil {
			return input, err
		}
		input.Strategy = preference.Some(s)
	}
	return input, nil
}

func parseShirts(names []string) ([]model.ShirtColor, error) {
	shirts := make([]model.ShirtColor, 0, len(names))
	for _, name := range names {
		c, err := model.ParseShirtColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", inventory.ErrInvalidColor, err)
		}
		shirts = append(shirts, c)
	}
	return shirts, nil
}

// --- Response DTOs ---

type inventoryResp struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Shirts    []model.ShirtColor `json:"shirts"`
	Counts    map[string]int     `json:"counts"`
	Strategy  string             `json:"strategy"`
	CreatedAt response.DateTime  `json:"created_at"`
	UpdatedAt response.DateTime  `json:"updated_at"`
}

func newInventoryResp(inv inventory.Inventory) inventoryResp {
	counts := make(map[string]int, len(model.ShirtColors))
	for _, c := range model.ShirtColors {
		counts[c.String()] = inv.Count(c)
	}
	shirts := inv.Shirts
	if shirts == nil {
		shirts = []model.ShirtColor{}
	}
	return inventoryResp{
		ID:        inv.ID,
		Name:      inv.Name,
		Shirts:    shirts,
		Counts:    counts,
		Strategy:  inv.Strategy.String(),
		CreatedAt: response.DateTime(inv.CreatedAt),
		UpdatedAt: response.DateTime(inv.UpdatedAt),
	}
}

type detailResp struct {
	Inventory inventoryResp `json:"inventory"`
}

func (h *handler) newDetailResp(inv inventory.Inventory) detailResp {
	return detailResp{Inventory: newInventoryResp(inv)}
}

type listResp struct {
	Inventories []inventoryResp `json:"inventories"`
	Total       int             `json:"total"`
	Limit       int             `json:"limit"`
	Offset      int             `json:"offset"`
}

func (h *handler) newListResp(out inventory.ListOutput) listResp {
	items := make([]inventoryResp, len(out.Inventories))
	for i, inv := range out.Inventories {
		items[i] = newInventoryResp(inv)
	}
	return listResp{
		Inventories: items,
		Total:       out.Total,
		Limit:       out.Limit,
		Offset:      out.Offset,
	}
}

type giveawayResp struct {
	InventoryID string           `json:"inventory_id"`
	Color       model.ShirtColor `json:"color"`
	Source      string           `json:"source"`
}

func (h *handler) newGiveawayResp(out inventory.GiveawayOutput) giveawayResp {
	return giveawayResp{
		InventoryID: out.InventoryID,
		Color:       out.Result.Color,
		Source:      string(out.Result.Source),
	}
}
