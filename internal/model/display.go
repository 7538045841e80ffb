package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DisplayMode is the UI theme choice.
type DisplayMode int

const (
	DisplayLight DisplayMode = iota
	DisplayDark
)

func (m DisplayMode) String() string {
	switch m {
	case DisplayLight:
		return "light"
	case DisplayDark:
		return "dark"
	default:
		return fmt.Sprintf("DisplayMode(%d)", int(m))
	}
}

// ParseDisplayMode parses a case-insensitive mode name.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return DisplayLight, nil
	case "dark":
		return DisplayDark, nil
	}
	return 0, fmt.Errorf("invalid display mode %q", s)
}

// MarshalJSON encodes the mode by name.
func (m DisplayMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
