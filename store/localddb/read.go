package localddb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hibiscushealth/backend/table"
)

func (s *Store) Get(ctx context.Context, coll table.CollectionDefinition, key string, out any) (bool, error) {
	def, err := s.collection(coll.Name)
	if err != nil {
		return false, err
	}

	var raw []byte
	err = s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(def.Name, key))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get item from %s: %w", def.Name, err)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return false, fmt.Errorf("unmarshal item from %s: %w", def.Name, err)
		}
	}
	return true, nil
}

func (s *Store) Query(ctx context.Context, coll table.CollectionDefinition, index, value string, out any) error {
	def, err := s.collection(coll.Name)
	if err != nil {
		return err
	}
	idx, err := def.Index(index)
	if err != nil {
		return err
	}

	var docs [][]byte
	err = s.db.View(func(txn *badger.Txn) error {
		prefix := indexPrefix(def.Name, idx, value)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			id, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			doc, err := txn.Get(docKey(def.Name, string(id)))
			if err != nil {
				return fmt.Errorf("index %s points at missing record %q: %w", idx.Name, id, err)
			}
			raw, err := doc.ValueCopy(nil)
			if err != nil {
				return err
			}
			docs = append(docs, raw)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("query %s.%s: %w", def.Name, idx.Name, err)
	}

	return unmarshalDocs(def, docs, out)
}

func (s *Store) Scan(ctx context.Context, coll table.CollectionDefinition, out any) error {
	def, err := s.collection(coll.Name)
	if err != nil {
		return err
	}

	var docs [][]byte
	err = s.db.View(func(txn *badger.Txn) error {
		prefix := docPrefix(def.Name)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			// Index entries share the collection prefix, skip them.
			if bytes.HasPrefix(it.Item().Key()[len(prefix):], []byte(indexMarker)) {
				continue
			}
			raw, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			docs = append(docs, raw)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", def.Name, err)
	}

	return unmarshalDocs(def, docs, out)
}

// unmarshalDocs joins raw JSON documents into one array and decodes it
// into the caller's slice, so record structs only carry json tags.
func unmarshalDocs(def table.CollectionDefinition, docs [][]byte, out any) error {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, doc := range docs {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.Write(doc)
	}
	buf.WriteByte(']')
	if err := json.Unmarshal(buf.Bytes(), out); err != nil {
		return fmt.Errorf("unmarshal records from %s: %w", def.Name, err)
	}
	return nil
}
