package daypart_test

import (
	"testing"
	"time"

	"preference-service/pkg/daypart"
)

func defaultConfig(tz string) daypart.ClockConfig {
	return daypart.ClockConfig{
		Timezone:       tz,
		DayStartHour:   daypart.DefaultDayStartHour,
		NightStartHour: daypart.DefaultNightStartHour,
	}
}

func TestNewClock(t *testing.T) {
	tests := []struct {
		name    string
		cfg     daypart.ClockConfig
		wantErr bool
	}{
		{name: "Defaults", cfg: defaultConfig("UTC")},
		{name: "Invalid timezone falls back", cfg: defaultConfig("Invalid/Timezone")},
		{name: "Negative hour", cfg: daypart.ClockConfig{DayStartHour: -1, NightStartHour: 18}, wantErr: true},
		{name: "Hour above 23", cfg: daypart.ClockConfig{DayStartHour: 6, NightStartHour: 24}, wantErr: true},
		{name: "Day after night", cfg: daypart.ClockConfig{DayStartHour: 19, NightStartHour: 7}, wantErr: true},
		{name: "Equal bounds", cfg: daypart.ClockConfig{DayStartHour: 8, NightStartHour: 8}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := daypart.NewClock(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewClock() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestClock_InvalidTimezoneUsesUTC(t *testing.T) {
	c, err := daypart.NewClock(defaultConfig("Invalid/Timezone"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Location() != time.UTC {
		t.Errorf("expected UTC location, got %v", c.Location())
	}
}

func TestClock_PeriodAt(t *testing.T) {
	c, err := daypart.NewClock(defaultConfig("UTC"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		hour int
		want daypart.Period
	}{
		{hour: 0, want: daypart.Night},
		{hour: 5, want: daypart.Night},
		{hour: 6, want: daypart.Day},
		{hour: 12, want: daypart.Day},
		{hour: 17, want: daypart.Day},
		{hour: 18, want: daypart.Night},
		{hour: 23, want: daypart.Night},
	}

	for _, tt := range tests {
		at := time.Date(2024, 5, 1, tt.hour, 30, 0, 0, time.UTC)
		if got := c.PeriodAt(at); got != tt.want {
			t.Errorf("PeriodAt(%02d:30) = %v, want %v", tt.hour, got, tt.want)
		}
	}
}

func TestClock_CurrentUsesLocation(t *testing.T) {
	c, err := daypart.NewClock(defaultConfig("Asia/Ho_Chi_Minh"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 03:00 UTC is 10:00 in UTC+7.
	daypart.SetNow(c, func() time.Time { return time.Date(2024, 5, 1, 3, 0, 0, 0, time.UTC) })
	if got := c.Current(); got != daypart.Day {
		t.Errorf("expected Day, got %v", got)
	}

	// 13:00 UTC is 20:00 in UTC+7.
	daypart.SetNow(c, func() time.Time { return time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC) })
	if got := c.Current(); got != daypart.Night {
		t.Errorf("expected Night, got %v", got)
	}
}

func TestPeriodString(t *testing.T) {
	if daypart.Day.String() != "day" || daypart.Night.String() != "night" {
		t.Errorf("unexpected names: %s, %s", daypart.Day, daypart.Night)
	}
}

func TestFixed(t *testing.T) {
	if got := daypart.Fixed(daypart.Night).Current(); got != daypart.Night {
		t.Errorf("expected Night, got %v", got)
	}
}
