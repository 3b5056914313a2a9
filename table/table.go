// Package table describes the shape of the backing-store collections:
// the primary key attribute and any secondary indexes a collection
// exposes. Definitions are plain values shared by every store
// implementation; they carry no connection state.
package table

import "fmt"

// CollectionDefinition names a collection and its key layout.
type CollectionDefinition struct {
	Name    string
	Key     KeyDef
	Indexes []SecondaryIndex
}

// KeyDef is the primary key attribute of a collection. Every collection
// in this system keys on a string id.
type KeyDef struct {
	Name string
}

// SecondaryIndex is a non-unique lookup attribute, optionally paired
// with a sort attribute that orders the matching records.
type SecondaryIndex struct {
	Name    string
	Key     string
	SortKey string
}

// Index returns the named secondary index of the collection.
func (c CollectionDefinition) Index(name string) (SecondaryIndex, error) {
	for _, idx := range c.Indexes {
		if idx.Name == name {
			return idx, nil
		}
	}
	return SecondaryIndex{}, fmt.Errorf("collection %s has no index %q", c.Name, name)
}
