package http

import (
	"preference-service/internal/display"
	"preference-service/pkg/log"
)

type handler struct {
	l  log.Logger
	uc display.UseCase
}

// New creates a new HTTP handler for the display domain.
func New(l log.Logger, uc display.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
