package daypart

// Period is the coarse time of day.
type Period int

const (
	Day Period = iota
	Night
)

func (p Period) String() string {
	switch p {
	case Day:
		return "day"
	case Night:
		return "night"
	default:
		return "unknown"
	}
}

// Provider reports the current Period.
type Provider interface {
	Current() Period
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func() Period

// Current calls f.
func (f ProviderFunc) Current() Period { return f() }

// Fixed returns a Provider that always reports p.
func Fixed(p Period) Provider {
	return ProviderFunc(func() Period { return p })
}
