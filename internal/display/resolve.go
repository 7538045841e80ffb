package display

import (
	"preference-service/internal/model"
	"preference-service/pkg/daypart"
	"preference-service/pkg/preference"
)

// ModeFor maps every Period to exactly one DisplayMode.
func ModeFor(p daypart.Period) model.DisplayMode {
	if p == daypart.Night {
		return model.DisplayDark
	}
	return model.DisplayLight
}

// ResolveDisplayMode returns pref when set. Otherwise it asks current for the
// time of day, exactly once, and maps it through ModeFor.
func ResolveDisplayMode(pref preference.Option[model.DisplayMode], current func() daypart.Period) model.DisplayMode {
	return preference.Resolve(pref, func() model.DisplayMode {
		return ModeFor(current())
	})
}
