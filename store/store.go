// Package store persists named rational values in a key-value database,
// using the wire encoding as the stored representation.
package store

import (
	"errors"
	"fmt"

	dbm "github.com/cometbft/cometbft-db"
	"golang.org/x/exp/slices"

	"github.com/exactnum/mixedrat/types"
	"github.com/exactnum/mixedrat/wire"
)

var (
	// ErrNameEmpty is returned when attempting to use an empty name.
	ErrNameEmpty = errors.New("name cannot be empty")

	// ErrNotFound is returned when no value is stored under a name.
	ErrNotFound = errors.New("rational not found")
)

// Store is a named collection of rational values on top of a database
// backend. Values are wire-encoded on the way in and re-normalized through
// the core factories on the way out, so a corrupted or hand-written entry
// can never surface a non-canonical value.
type Store struct {
	db dbm.DB
}

// New wraps an existing database backend.
func New(db dbm.DB) *Store {
	return &Store{db: db}
}

// NewMem returns a store backed by an in-memory database, mainly for tests
// and tooling.
func NewMem() *Store {
	return New(dbm.NewMemDB())
}

// Put stores r under name, replacing any previous value.
func (s *Store) Put(name string, r types.Rational) error {
	if name == "" {
		return ErrNameEmpty
	}
	return s.db.Set([]byte(name), []byte(wire.Encode(r)))
}

// Get returns the value stored under name, or ErrNotFound.
func (s *Store) Get(name string) (types.Rational, error) {
	if name == "" {
		return types.Rational{}, ErrNameEmpty
	}
	bz, err := s.db.Get([]byte(name))
	if err != nil {
		return types.Rational{}, err
	}
	if bz == nil {
		return types.Rational{}, ErrNotFound
	}
	r, err := wire.Decode(string(bz))
	if err != nil {
		return types.Rational{}, fmt.Errorf("decoding stored value for %q: %w", name, err)
	}
	return r, nil
}

// Delete removes the value stored under name. Deleting a missing name is
// not an error.
func (s *Store) Delete(name string) error {
	if name == "" {
		return ErrNameEmpty
	}
	return s.db.Delete([]byte(name))
}

// Names returns all stored names in sorted order.
func (s *Store) Names() ([]string, error) {
	it, err := s.db.Iterator(nil, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var names []string
	for ; it.Valid(); it.Next() {
		names = append(names, string(it.Key()))
	}
	if err := it.Error(); err != nil {
		return nil, err
	}
	slices.Sort(names)
	return names, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
