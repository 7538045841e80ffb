package display

import "errors"

var (
	ErrInvalidMode = errors.New("invalid display mode")
)
