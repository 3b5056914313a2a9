// Package store is the keyed-store access layer. A Store exposes the
// five operations every handler needs over named collections: primary
// key lookup, unconditional put, secondary-index query, full scan and
// partial update. The production implementation talks to DynamoDB;
// localddb provides the same contract over an embedded BadgerDB for
// development and tests.
package store

import (
	"context"

	"github.com/hibiscushealth/backend/table"
)

// Store is constructed once per process and shared by all handlers.
//
// Typed entities go in and out: write operations marshal the given
// entity, read operations unmarshal into out (a pointer to a struct for
// single-record reads, a pointer to a slice for Query and Scan).
//
// No operation retries or caches; the first backing-store error
// surfaces to the caller as a failure.
type Store interface {
	// Get looks up a record by primary key. A missing record is not an
	// error: found is false and out is left untouched.
	Get(ctx context.Context, coll table.CollectionDefinition, key string, out any) (found bool, err error)

	// Put unconditionally inserts or overwrites the record.
	Put(ctx context.Context, coll table.CollectionDefinition, entity any) error

	// Query returns every record whose indexed attribute equals value,
	// ordered by the index sort attribute when the index has one. No
	// matches unmarshals an empty slice into out.
	Query(ctx context.Context, coll table.CollectionDefinition, index, value string, out any) error

	// Scan returns every record in the collection with no ordering
	// guarantee. There is no pagination; only small admin-sized
	// collections may be scanned.
	Scan(ctx context.Context, coll table.CollectionDefinition, out any) error

	// Update assigns the named attributes on the record matching key
	// and unmarshals the full post-update record into out (when out is
	// non-nil). It fails if no record exists under key.
	Update(ctx context.Context, coll table.CollectionDefinition, key string, set map[string]any, out any) error
}
