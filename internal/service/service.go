package service

import (
	"context"

	"sweet-orders/internal/model"
)

// StatusFilterAll disables status filtering in Search.
const StatusFilterAll = "all"

// OrderService is the surface the UI collaborator consumes. Everything it
// hands outward is a normalised Order; raw store records stay inside.
type OrderService interface {
	// LoadAll fetches every order newest first and replaces the in-memory
	// list wholesale. On failure the previous list is kept and the error
	// stays visible through LoadError until the next successful load.
	LoadAll(ctx context.Context) error

	// Orders returns the current in-memory list, newest first.
	Orders() []model.Order

	// LoadError reports the failure of the most recent LoadAll, or nil.
	LoadError() error

	// Search filters the in-memory list: the term must appear in the
	// customer name (case-insensitively), the AFM or the phone, and the
	// status must equal statusFilter unless it is StatusFilterAll. The
	// source list is not mutated.
	Search(term, statusFilter string) []model.Order

	// Create persists a new order. Status is forced to pending regardless
	// of the input, and the stored row is prepended to the in-memory list.
	Create(ctx context.Context, input *model.OrderInput) (model.Order, error)

	// Update rewrites the caller-editable fields of an order. Status and
	// creation time are never touched; status changes go through SetStatus.
	Update(ctx context.Context, id string, input *model.OrderInput) (model.Order, error)

	// SetStatus persists a status change. Any status is reachable from any
	// other; the workflow is advisory.
	SetStatus(ctx context.Context, id string, status model.Status) error

	// Delete removes an order from the store and the in-memory list, and
	// closes the detail view if the order was open in it.
	Delete(ctx context.Context, id string) error

	// Select opens the order with the given id in the detail view.
	Select(id string) (model.Order, bool)

	// Selected returns the order currently open in the detail view.
	Selected() (model.Order, bool)

	// Deselect closes the detail view.
	Deselect()
}
