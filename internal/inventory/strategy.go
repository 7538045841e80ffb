package inventory

import (
	"fmt"

	"preference-service/internal/model"
	"preference-service/pkg/preference"
)

// Strategy selects the giveaway fallback used when no color is preferred.
type Strategy int

const (
	StrategyMostStocked Strategy = iota
	StrategyMostRecent
)

func (s Strategy) String() string {
	switch s {
	case StrategyMostStocked:
		return "most_stocked"
	case StrategyMostRecent:
		return "most_recent"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// IsValid reports whether s is a declared strategy.
func (s Strategy) IsValid() bool {
	return s == StrategyMostStocked || s == StrategyMostRecent
}

// ParseStrategy parses a strategy name. The empty string is most_stocked.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "most_stocked":
		return StrategyMostStocked, nil
	case "most_recent":
		return StrategyMostRecent, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrategy, s)
}

// Source records which rule produced a giveaway color.
type Source string

const (
	SourcePreference  Source = "preference"
	SourceMostStocked Source = "most_stocked"
	SourceMostRecent  Source = "most_recent"
)

// GiveawayResult is a resolved color and the rule that picked it.
type GiveawayResult struct {
	Color  model.ShirtColor
	Source Source
}

// MostStocked returns red only when strictly more red shirts are stocked than
// blue ones. Ties, including the empty collection, go to blue.
func MostStocked(shirts []model.ShirtColor) model.ShirtColor {
	var red, blue int
	for _, s := range shirts {
		switch s {
		case model.ShirtRed:
			red++
		case model.ShirtBlue:
			blue++
		}
	}
	if red > blue {
		return model.ShirtRed
	}
	return model.ShirtBlue
}

// MostRecent returns the last shirt stocked.
func MostRecent(shirts []model.ShirtColor) (model.ShirtColor, error) {
	if len(shirts) == 0 {
		return 0, ErrEmptyCollection
	}
	return shirts[len(shirts)-1], nil
}

// Giveaway returns pref when set, otherwise the most stocked color.
func Giveaway(shirts []model.ShirtColor, pref preference.Option[model.ShirtColor]) model.ShirtColor {
	return preference.Resolve(pref, func() model.ShirtColor { return MostStocked(shirts) })
}

// NewGiveawayResolver binds shirts to the fallback named by strategy.
func NewGiveawayResolver(shirts []model.ShirtColor, strategy Strategy) (*preference.Resolver[model.ShirtColor], error) {
	switch strategy {
	case StrategyMostStocked:
		return preference.NewResolver(preference.Total(func() model.ShirtColor {
			return MostStocked(shirts)
		})), nil
	case StrategyMostRecent:
		return preference.NewResolver[model.ShirtColor](preference.StrategyFunc[model.ShirtColor](func() (model.ShirtColor, error) {
			return MostRecent(shirts)
		})), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidStrategy, strategy)
	}
}

// ResolveGiveaway picks a color for pref against shirts using strategy.
// Explicit preferences are returned without checking them against stock.
func ResolveGiveaway(shirts []model.ShirtColor, pref preference.Option[model.ShirtColor], strategy Strategy) (GiveawayResult, error) {
	r, err := NewGiveawayResolver(shirts, strategy)
	if err != nil {
		return GiveawayResult{}, err
	}

	color, err := r.Resolve(pref)
	if err != nil {
		return GiveawayResult{}, err
	}

	source := SourcePreference
	if pref.IsNone() {
		source = Source(strategy.String())
	}
	return GiveawayResult{Color: color, Source: source}, nil
}
