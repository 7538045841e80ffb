package usecase

import (
	"preference-service/internal/display"
	"preference-service/pkg/daypart"
	"preference-service/pkg/log"
	"preference-service/pkg/metrics"
)

type implUseCase struct {
	clock daypart.Provider
	l     log.Logger
	rec   metrics.Recorder
}

// New creates a display UseCase that reads the time of day from clock.
func New(clock daypart.Provider, l log.Logger, rec metrics.Recorder) display.UseCase {
	if clock == nil {
		panic("display/usecase: clock is required")
	}
	return &implUseCase{
		clock: clock,
		l:     l,
		rec:   rec,
	}
}
