package display

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
