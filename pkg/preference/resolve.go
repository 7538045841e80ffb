package preference

// Resolve returns the explicit value unchanged when present. Otherwise it
// calls fallback exactly once and returns its result.
func Resolve[T any](explicit Option[T], fallback func() T) T {
	return explicit.OrElse(fallback)
}

// ResolveE is Resolve for fallbacks that can fail. The fallback is never
// called when explicit holds a value.
func ResolveE[T any](explicit Option[T], fallback func() (T, error)) (T, error) {
	if v, ok := explicit.Get(); ok {
		return v, nil
	}
	return fallback()
}

// Strategy computes the default used when no explicit value is supplied.
type Strategy[T any] interface {
	Default() (T, error)
}

// StrategyFunc adapts a plain function to Strategy.
type StrategyFunc[T any] func() (T, error)

// Default calls f.
func (f StrategyFunc[T]) Default() (T, error) { return f() }

// Total wraps an infallible fallback as a Strategy.
func Total[T any](fn func() T) Strategy[T] {
	return StrategyFunc[T](func() (T, error) { return fn(), nil })
}

// Resolver binds a Strategy chosen at construction time. It keeps no state
// between calls, so every Resolve recomputes the default.
type Resolver[T any] struct {
	strategy Strategy[T]
}

// NewResolver creates a Resolver using strategy for absent values.
func NewResolver[T any](strategy Strategy[T]) *Resolver[T] {
	if strategy == nil {
		panic("preference: strategy is required")
	}
	return &Resolver[T]{strategy: strategy}
}

// Resolve returns explicit when present, otherwise the strategy's default.
func (r *Resolver[T]) Resolve(explicit Option[T]) (T, error) {
	return ResolveE(explicit, r.strategy.Default)
}
