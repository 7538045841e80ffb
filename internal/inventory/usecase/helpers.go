package usecase

import (
	"fmt"

	"preference-service/internal/inventory"
	"preference-service/internal/model"
)

// validateShirts rejects undeclared colors before they reach the store.
func (uc *implUseCase) validateShirts(shirts []model.ShirtColor) error {
	for i, s := range shirts {
		if !s.IsValid() {
			return fmt.Errorf("%w: shirts[%d] = %v", inventory.ErrInvalidColor, i, s)
		}
	}
	return nil
}
