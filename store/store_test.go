package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exactnum/mixedrat/types"
)

func TestPutGet(t *testing.T) {
	s := NewMem()
	defer s.Close()

	want := types.MustFromWholeAndFraction(2, 3, 4)
	require.NoError(t, s.Put("price", want))

	got, err := s.Get("price")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))
}

func TestPutOverwrites(t *testing.T) {
	s := NewMem()
	defer s.Close()

	require.NoError(t, s.Put("rate", types.One()))
	require.NoError(t, s.Put("rate", types.MustFromFraction(1, 3)))

	got, err := s.Get("rate")
	require.NoError(t, err)
	assert.True(t, got.Equal(types.MustFromFraction(1, 3)))
}

func TestGetMissing(t *testing.T) {
	s := NewMem()
	defer s.Close()

	_, err := s.Get("nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEmptyName(t *testing.T) {
	s := NewMem()
	defer s.Close()

	require.ErrorIs(t, s.Put("", types.One()), ErrNameEmpty)
	_, err := s.Get("")
	require.ErrorIs(t, err, ErrNameEmpty)
	require.ErrorIs(t, s.Delete(""), ErrNameEmpty)
}

func TestDelete(t *testing.T) {
	s := NewMem()
	defer s.Close()

	require.NoError(t, s.Put("gone", types.One()))
	require.NoError(t, s.Delete("gone"))

	_, err := s.Get("gone")
	require.ErrorIs(t, err, ErrNotFound)

	// deleting again is not an error
	require.NoError(t, s.Delete("gone"))
}

func TestNamesSorted(t *testing.T) {
	s := NewMem()
	defer s.Close()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, s.Put(name, types.MustFromFraction(1, 2)))
	}

	names, err := s.Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestStoredValuesStayCanonical(t *testing.T) {
	s := NewMem()
	defer s.Close()

	// A hand-written entry in non-canonical form is normalized on read.
	require.NoError(t, s.db.Set([]byte("raw"), []byte("0:6:-4")))

	got, err := s.Get("raw")
	require.NoError(t, err)
	assert.True(t, got.Equal(types.MustFromWholeAndFraction(-1, -1, 2)))
}
