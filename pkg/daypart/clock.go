package daypart

import (
	"fmt"
	"time"
)

const (
	DefaultDayStartHour   = 6
	DefaultNightStartHour = 18
	DefaultTimezone       = "UTC"
)

// ClockConfig configures a Clock.
type ClockConfig struct {
	Timezone       string
	DayStartHour   int
	NightStartHour int
}

// Clock derives the Period from wall-clock time in a fixed location.
// Hours in [DayStartHour, NightStartHour) are Day, everything else is Night.
type Clock struct {
	location       *time.Location
	dayStartHour   int
	nightStartHour int
	now            func() time.Time
}

// NewClock validates cfg and returns a Clock. An unknown timezone falls back to UTC.
func NewClock(cfg ClockConfig) (*Clock, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &Clock{
		location:       loc,
		dayStartHour:   cfg.DayStartHour,
		nightStartHour: cfg.NightStartHour,
		now:            time.Now,
	}, nil
}

func (cfg ClockConfig) validate() error {
	if cfg.DayStartHour < 0 || cfg.DayStartHour > 23 {
		return fmt.Errorf("day start hour %d out of range [0,23]", cfg.DayStartHour)
	}
	if cfg.NightStartHour < 0 || cfg.NightStartHour > 23 {
		return fmt.Errorf("night start hour %d out of range [0,23]", cfg.NightStartHour)
	}
	if cfg.DayStartHour >= cfg.NightStartHour {
		return fmt.Errorf("day start hour %d must be before night start hour %d", cfg.DayStartHour, cfg.NightStartHour)
	}
	return nil
}

// Location returns the location hours are evaluated in.
func (c *Clock) Location() *time.Location {
	return c.location
}

// Current reports the Period for the current time.
func (c *Clock) Current() Period {
	return c.PeriodAt(c.now())
}

// PeriodAt reports the Period for t, evaluated in the clock's location.
func (c *Clock) PeriodAt(t time.Time) Period {
	hour := t.In(c.location).Hour()
	if hour >= c.dayStartHour && hour < c.nightStartHour {
		return Day
	}
	return Night
}
