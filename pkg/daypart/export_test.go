package daypart

import "time"

// SetNow replaces the clock's time source.
func SetNow(c *Clock, now func() time.Time) {
	c.now = now
}
