package di

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//
// -----------------------------------------------------------------------------
// NewMapRegistry / Provide
// -----------------------------------------------------------------------------

// TestNewMapRegistry_Empty verifies NewMapRegistry initializes a non-nil registry with an empty map.
func TestNewMapRegistry_Empty(t *testing.T) {
	t.Parallel()

	r := NewMapRegistry()
	require.NotNil(t, r)
	require.NotNil(t, r.items)
	assert.Len(t, r.items, 0)
}

// TestProvide_ChainsAndStores verifies Provide stores values and returns the same registry for chaining.
func TestProvide_ChainsAndStores(t *testing.T) {
	t.Parallel()

	r := NewMapRegistry()

	ret := r.Provide("database.driver", "stub").Provide("database.connection_string", "D1")
	require.Same(t, r, ret)

	got, ok := r.Get("database.driver")
	require.True(t, ok)
	assert.Equal(t, "stub", got)

	got, ok = r.Get("database.connection_string")
	require.True(t, ok)
	assert.Equal(t, "D1", got)
}

//
// -----------------------------------------------------------------------------
// Resolve
// -----------------------------------------------------------------------------

// TestResolve_PresentAndMissing verifies Resolve reports presence without errors.
func TestResolve_PresentAndMissing(t *testing.T) {
	t.Parallel()

	r := NewMapRegistry().Provide("k", "v")

	val, ok, err := r.Resolve(struct{}{}, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "v", val)

	val, ok, err = r.Resolve(nil, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
}

// TestResolve_RecoversFromPanic verifies Resolve converts internal panics into errors.
// A nil receiver panics when Resolve touches r.items.
func TestResolve_RecoversFromPanic(t *testing.T) {
	t.Parallel()

	var r *MapRegistry

	val, ok, err := r.Resolve(nil, "k")

	require.Error(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.True(t, errors.Is(err, ErrRegistryPanic), "expected ErrRegistryPanic wrapping, got: %v", err)
}

//
// -----------------------------------------------------------------------------
// MustGet
// -----------------------------------------------------------------------------

func TestMustGet(t *testing.T) {
	t.Parallel()

	r := NewMapRegistry().Provide("k", "v")
	assert.Equal(t, "v", r.MustGet("k"))

	require.PanicsWithError(t, `di: registry missing key "missing"`, func() {
		_ = r.MustGet("missing")
	})
}

//
// -----------------------------------------------------------------------------
// Lookup / LookupOr
// -----------------------------------------------------------------------------

type failingRegistry struct{ err error }

func (f failingRegistry) Resolve(any, string) (any, bool, error) { return nil, false, f.err }

func TestLookup_Table(t *testing.T) {
	t.Parallel()

	boom := errors.New("vault sealed")

	cases := []struct {
		name        string
		reg         Registry
		want        string
		wantMissing bool
		wantType    string
		wantIs      error
	}{
		{name: "present", reg: NewMapRegistry().Provide("dsn", "D1"), want: "D1"},
		{name: "nil registry", reg: nil, wantMissing: true},
		{name: "missing key", reg: NewMapRegistry(), wantMissing: true},
		{name: "nil value", reg: NewMapRegistry().Provide("dsn", nil), wantMissing: true},
		{name: "wrong type", reg: NewMapRegistry().Provide("dsn", 42), wantType: "int"},
		{name: "registry error", reg: failingRegistry{err: boom}, wantIs: boom},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Lookup[string](tc.reg, nil, "dsn")

			switch {
			case tc.wantMissing:
				var me MissingParameterError
				require.True(t, errors.As(err, &me))
				assert.Equal(t, "dsn", me.Key)
				assert.Equal(t, `di: parameter "dsn" missing`, me.Error())
			case tc.wantType != "":
				var we WrongTypeParameterError
				require.True(t, errors.As(err, &we))
				assert.Equal(t, tc.wantType, we.GotType)
				assert.Equal(t, `di: parameter "dsn" has wrong type (int)`, we.Error())
			case tc.wantIs != nil:
				assert.ErrorIs(t, err, tc.wantIs)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			assert.Empty(t, got)
		})
	}
}

func TestLookupOr(t *testing.T) {
	t.Parallel()

	got, err := LookupOr(NewMapRegistry(), nil, "database.driver", "stub")
	require.NoError(t, err)
	assert.Equal(t, "stub", got)

	got, err = LookupOr(NewMapRegistry().Provide("database.driver", "postgres"), nil, "database.driver", "stub")
	require.NoError(t, err)
	assert.Equal(t, "postgres", got)

	_, err = LookupOr(NewMapRegistry().Provide("database.driver", 1), nil, "database.driver", "stub")
	var we WrongTypeParameterError
	require.True(t, errors.As(err, &we))
}
