package display

import (
	"preference-service/internal/model"
	"preference-service/pkg/daypart"
	"preference-service/pkg/preference"
)

// Source records which rule produced a display mode.
type Source string

const (
	SourcePreference Source = "preference"
	SourceTimeOfDay  Source = "time_of_day"
)

type ResolveInput struct {
	Preference preference.Option[model.DisplayMode]
}

// ResolveOutput is the chosen mode. Period is only set when the time of day
// was consulted.
type ResolveOutput struct {
	Mode   model.DisplayMode
	Source Source
	Period preference.Option[daypart.Period]
}
