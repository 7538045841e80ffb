package preference_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"preference-service/pkg/preference"
)

var errNoDefault = errors.New("no default")

func TestOption(t *testing.T) {
	t.Parallel()

	some := preference.Some(3)
	assert.True(t, some.IsSome())
	assert.False(t, some.IsNone())
	v, ok := some.Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, 3, some.Or(9))

	none := preference.None[int]()
	assert.True(t, none.IsNone())
	assert.Equal(t, 9, none.Or(9))

	var zero preference.Option[string]
	assert.True(t, zero.IsNone(), "zero Option must be None")
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("explicit wins without calling fallback", func(t *testing.T) {
		calls := 0
		got := preference.Resolve(preference.Some("red"), func() string {
			calls++
			return "blue"
		})
		assert.Equal(t, "red", got)
		assert.Zero(t, calls)
	})

	t.Run("zero value is still an explicit choice", func(t *testing.T) {
		got := preference.Resolve(preference.Some(0), func() int { return 42 })
		assert.Equal(t, 0, got)
	})

	t.Run("absent calls fallback once", func(t *testing.T) {
		calls := 0
		got := preference.Resolve(preference.None[string](), func() string {
			calls++
			return "blue"
		})
		assert.Equal(t, "blue", got)
		assert.Equal(t, 1, calls)
	})
}

func TestResolveE(t *testing.T) {
	t.Parallel()

	failing := func() (int, error) { return 0, errNoDefault }

	got, err := preference.ResolveE(preference.Some(7), failing)
	require.NoError(t, err)
	assert.Equal(t, 7, got)

	_, err = preference.ResolveE(preference.None[int](), failing)
	assert.ErrorIs(t, err, errNoDefault)
}

func TestResolver(t *testing.T) {
	t.Parallel()

	calls := 0
	r := preference.NewResolver(preference.Total(func() int {
		calls++
		return 5
	}))

	first, err := r.Resolve(preference.None[int]())
	require.NoError(t, err)
	second, err := r.Resolve(preference.None[int]())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, calls, "defaults must be recomputed on every call")

	explicit, err := r.Resolve(preference.Some(1))
	require.NoError(t, err)
	assert.Equal(t, 1, explicit)
	assert.Equal(t, 2, calls)
}

func TestResolver_StrategyError(t *testing.T) {
	t.Parallel()

	r := preference.NewResolver[int](preference.StrategyFunc[int](func() (int, error) {
		return 0, errNoDefault
	}))

	_, err := r.Resolve(preference.None[int]())
	assert.ErrorIs(t, err, errNoDefault)
}

func TestNewResolver_NilStrategyPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { preference.NewResolver[int](nil) })
}
