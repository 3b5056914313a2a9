// Package localddb is a BadgerDB-backed implementation of the store
// contract, used for local development and tests so the service runs
// without AWS. Records are stored as JSON documents; secondary indexes
// are maintained as extra Badger keys ordered so that a prefix
// iteration yields the index's sort order.
package localddb

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hibiscushealth/backend/store"
	"github.com/hibiscushealth/backend/table"
)

// Options configures the Badger database.
type Options struct {
	// Path of the database directory. Empty means in-memory.
	Path string
	// InMemory forces in-memory mode even when Path is set.
	InMemory bool
}

// Store implements store.Store over BadgerDB.
type Store struct {
	db          *badger.DB
	collections map[string]table.CollectionDefinition
}

var _ store.Store = &Store{}

// New opens the database and registers the collections it serves.
// Operations on unregistered collections fail.
func New(opts Options, defs ...table.CollectionDefinition) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)
	if opts.Path == "" || opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	badgerOpts = badgerOpts.WithLogger(nil)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("open badger db: %w", err)
	}

	collections := make(map[string]table.CollectionDefinition, len(defs))
	for _, def := range defs {
		collections[def.Name] = def
	}
	return &Store{db: db, collections: collections}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) collection(name string) (table.CollectionDefinition, error) {
	def, ok := s.collections[name]
	if !ok {
		return table.CollectionDefinition{}, fmt.Errorf("collection not registered: %s", name)
	}
	return def, nil
}
