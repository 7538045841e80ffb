package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ShirtColor is a giveaway choice. Declaration order is significant: the
// most-stocked fallback favours the later variant on a tie.
type ShirtColor int

const (
	ShirtRed ShirtColor = iota
	ShirtBlue
)

// ShirtColors lists every ShirtColor in declaration order.
var ShirtColors = []ShirtColor{ShirtRed, ShirtBlue}

func (c ShirtColor) String() string {
	switch c {
	case ShirtRed:
		return "red"
	case ShirtBlue:
		return "blue"
	default:
		return fmt.Sprintf("ShirtColor(%d)", int(c))
	}
}

// IsValid reports whether c is a declared color.
func (c ShirtColor) IsValid() bool {
	return c == ShirtRed || c == ShirtBlue
}

// ParseShirtColor parses a case-insensitive color name.
func ParseShirtColor(s string) (ShirtColor, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "red":
		return ShirtRed, nil
	case "blue":
		return ShirtBlue, nil
	}
	return 0, fmt.Errorf("invalid shirt color %q", s)
}

// MarshalJSON encodes the color by name.
func (c ShirtColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes a color name.
func (c *ShirtColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseShirtColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
