package store

import "context"

// Record is the untyped row shape exchanged with the document store.
// Field names are snake_case, matching the store schema. Records are only
// ever turned into typed orders through model.Normalize; raw records never
// leave the service layer.
type Record = map[string]any

// OrderStore is the generic query/insert/update/delete boundary to the
// external document store holding the orders record set. Implementations
// own durability; the collection service owns the in-memory view.
type OrderStore interface {
	// SelectAll fetches every order record sorted by creation timestamp
	// descending. The ordering is load-bearing for the default listing.
	SelectAll(ctx context.Context) ([]Record, error)

	// Insert persists a new record and returns the stored row including
	// store-assigned fields (id, order_number, created_at).
	Insert(ctx context.Context, rec Record) (Record, error)

	// Update applies a partial record to the row with the given id and
	// returns the updated row.
	Update(ctx context.Context, id string, changes Record) (Record, error)

	// Delete removes the row with the given id.
	Delete(ctx context.Context, id string) error
}
