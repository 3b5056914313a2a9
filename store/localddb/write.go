package localddb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/hibiscushealth/backend/table"
)

// ErrNotFound is returned by Update when no record exists under the key.
var ErrNotFound = errors.New("record not found")

func (s *Store) Put(ctx context.Context, coll table.CollectionDefinition, entity any) error {
	def, err := s.collection(coll.Name)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal entity for %s: %w", def.Name, err)
	}
	doc, id, err := decodeDoc(def, raw)
	if err != nil {
		return err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return s.writeDoc(txn, def, id, raw, doc)
	})
	if err != nil {
		return fmt.Errorf("put item into %s: %w", def.Name, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, coll table.CollectionDefinition, key string, set map[string]any, out any) error {
	def, err := s.collection(coll.Name)
	if err != nil {
		return err
	}
	if len(set) == 0 {
		return fmt.Errorf("update on %s: no attributes to set", def.Name)
	}

	var newRaw []byte
	err = s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(docKey(def.Name, key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%s %q: %w", def.Name, key, ErrNotFound)
		}
		if err != nil {
			return err
		}

		var doc map[string]any
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &doc)
		}); err != nil {
			return err
		}

		for name, value := range set {
			doc[name] = value
		}
		newRaw, err = json.Marshal(doc)
		if err != nil {
			return err
		}
		return s.writeDoc(txn, def, key, newRaw, doc)
	})
	if err != nil {
		return fmt.Errorf("update item in %s: %w", def.Name, err)
	}

	if out != nil {
		if err := json.Unmarshal(newRaw, out); err != nil {
			return fmt.Errorf("unmarshal updated item from %s: %w", def.Name, err)
		}
	}
	return nil
}

// writeDoc stores the document and refreshes its index entries,
// removing entries derived from a previously stored version.
func (s *Store) writeDoc(txn *badger.Txn, def table.CollectionDefinition, id string, raw []byte, doc map[string]any) error {
	if old, err := txn.Get(docKey(def.Name, id)); err == nil {
		var oldDoc map[string]any
		if err := old.Value(func(val []byte) error {
			return json.Unmarshal(val, &oldDoc)
		}); err != nil {
			return err
		}
		for _, key := range indexEntries(def, id, oldDoc) {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
	} else if !errors.Is(err, badger.ErrKeyNotFound) {
		return err
	}

	if err := txn.Set(docKey(def.Name, id), raw); err != nil {
		return err
	}
	for _, key := range indexEntries(def, id, doc) {
		if err := txn.Set(key, []byte(id)); err != nil {
			return err
		}
	}
	return nil
}

// indexEntries derives the index keys a document occupies. A document
// missing the indexed attribute simply has no entry there, matching
// sparse secondary indexes in the backing store.
func indexEntries(def table.CollectionDefinition, id string, doc map[string]any) [][]byte {
	var keys [][]byte
	for _, idx := range def.Indexes {
		value, ok := stringAttr(doc, idx.Key)
		if !ok {
			continue
		}
		sort := ""
		if idx.SortKey != "" {
			sort, _ = stringAttr(doc, idx.SortKey)
		}
		keys = append(keys, indexKey(def.Name, idx, value, sort, id))
	}
	return keys
}

func stringAttr(doc map[string]any, name string) (string, bool) {
	v, ok := doc[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func decodeDoc(def table.CollectionDefinition, raw []byte) (map[string]any, string, error) {
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, "", fmt.Errorf("decode entity for %s: %w", def.Name, err)
	}
	id, ok := stringAttr(doc, def.Key.Name)
	if !ok || id == "" {
		return nil, "", fmt.Errorf("entity for %s has no %s attribute", def.Name, def.Key.Name)
	}
	return doc, id, nil
}
