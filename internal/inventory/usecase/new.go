package usecase

import (
	"preference-service/internal/inventory"
	"preference-service/internal/inventory/repository"
	"preference-service/pkg/log"
	"preference-service/pkg/metrics"
)

// implUseCase is the private implementation of inventory.UseCase.
type implUseCase struct {
	repo            repository.Repository
	l               log.Logger
	rec             metrics.Recorder
	defaultStrategy inventory.Strategy
}

// New creates a new inventory UseCase implementation. defaultStrategy applies
// to inventories created without an explicit strategy.
func New(repo repository.Repository, l log.Logger, rec metrics.Recorder, defaultStrategy inventory.Strategy) inventory.UseCase {
	if !defaultStrategy.IsValid() {
		panic("inventory/usecase: invalid default strategy")
	}
	return &implUseCase{
		repo:            repo,
		l:               l,
		rec:             rec,
		defaultStrategy: defaultStrategy,
	}
}
