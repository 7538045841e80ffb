package usecase

import (
	"context"

	"preference-service/internal/display"
	"preference-service/pkg/daypart"
	"preference-service/pkg/preference"
)

// Resolve picks the display mode for the request.
func (uc *implUseCase) Resolve(ctx context.Context, input display.ResolveInput) (display.ResolveOutput, error) {
	out := display.ResolveOutput{Source: display.SourcePreference}

	out.Mode = display.ResolveDisplayMode(input.Preference, func() daypart.Period {
		p := uc.clock.Current()
		out.Source = display.SourceTimeOfDay
		out.Period = preference.Some(p)
		return p
	})

	uc.rec.Resolution("display", string(out.Source))
	uc.l.Debugf(ctx, "display.usecase.Resolve: %s via %s", out.Mode, out.Source)
	return out, nil
}
