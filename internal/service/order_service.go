package service

import (
	"context"
	"strings"
	"sync"

	"sweet-orders/internal/model"
	"sweet-orders/internal/store"

	"github.com/rs/zerolog"
)

// orderService implements OrderService over a document store and an
// in-memory cache of normalised orders.
//
// The cache is only mutated after the store confirms a write, so readers
// never observe state the store has not durably accepted. A single mutex
// guards every "apply store response to cache" section; there is no finer
// locking and no retry logic anywhere in this type.
type orderService struct {
	store  store.OrderStore
	logger zerolog.Logger

	mu         sync.Mutex
	orders     []model.Order
	loadErr    error
	selectedID string
}

// NewOrderService creates a new order collection service.
func NewOrderService(st store.OrderStore, logger zerolog.Logger) OrderService {
	return &orderService{
		store:  st,
		logger: logger.With().Str("service", "orders").Logger(),
	}
}

// LoadAll fetches all orders and replaces the in-memory list wholesale.
func (s *orderService) LoadAll(ctx context.Context) error {
	records, err := s.store.SelectAll(ctx)
	if err != nil {
		loadErr := &model.LoadError{Err: err}
		s.mu.Lock()
		s.loadErr = loadErr
		s.mu.Unlock()
		s.logger.Error().Err(err).Msg("failed to load orders")
		return loadErr
	}

	orders := make([]model.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, model.Normalize(rec))
	}

	s.mu.Lock()
	s.orders = orders
	s.loadErr = nil
	s.mu.Unlock()

	s.logger.Info().Int("count", len(orders)).Msg("orders loaded")
	return nil
}

// Orders returns a copy of the current in-memory list.
func (s *orderService) Orders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.orders)
}

// LoadError reports the failure of the most recent LoadAll, or nil.
func (s *orderService) LoadError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadErr
}

// Search filters the in-memory list without mutating it. Name matching is
// case-insensitive; AFM and phone match as plain substrings.
func (s *orderService) Search(term, statusFilter string) []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	lowered := strings.ToLower(term)
	var matched []model.Order
	for i := range s.orders {
		o := &s.orders[i]
		matchesTerm := strings.Contains(strings.ToLower(o.CustomerName), lowered) ||
			strings.Contains(o.AFM, term) ||
			strings.Contains(o.Phone, term)
		matchesStatus := statusFilter == StatusFilterAll || string(o.Status) == statusFilter
		if matchesTerm && matchesStatus {
			matched = append(matched, o.Clone())
		}
	}
	return matched
}

// Create inserts a new order, forcing the initial status to pending, and
// prepends the stored row to the in-memory list so the descending-by-
// creation ordering holds without a full reload.
func (s *orderService) Create(ctx context.Context, input *model.OrderInput) (model.Order, error) {
	rec := input.Record()
	// Callers cannot smuggle a status in; every new order starts pending.
	rec["status"] = string(model.StatusPending)

	stored, err := s.store.Insert(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create order")
		return model.Order{}, &model.WriteError{Op: "create", Err: err}
	}

	o := model.Normalize(stored)

	s.mu.Lock()
	s.orders = append([]model.Order{o}, s.orders...)
	s.mu.Unlock()

	s.logger.Info().
		Str("order_id", o.ID).
		Str("customer", o.CustomerName).
		Msg("order created")
	return o.Clone(), nil
}

// Update rewrites the caller-editable fields of an order. The record built
// from the input carries neither status nor created_at, so those columns
// are untouched by construction.
func (s *orderService) Update(ctx context.Context, id string, input *model.OrderInput) (model.Order, error) {
	stored, err := s.store.Update(ctx, id, input.Record())
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return model.Order{}, &model.WriteError{Op: "update", Err: err}
	}

	o := model.Normalize(stored)

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i] = o
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info().Str("order_id", id).Msg("order updated")
	return o.Clone(), nil
}

// SetStatus persists a status change and applies it to the cached order on
// success. No transition is ever rejected.
func (s *orderService) SetStatus(ctx context.Context, id string, status model.Status) error {
	_, err := s.store.Update(ctx, id, store.Record{"status": string(status)})
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", id).
			Str("status", string(status)).
			Msg("failed to set order status")
		return &model.WriteError{Op: "set status", Err: err}
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	s.logger.Info().
		Str("order_id", id).
		Str("status", string(status)).
		Msg("order status changed")
	return nil
}

// Delete removes the order from the store, then from the in-memory list.
// If the order was open in the detail view, the view is closed.
func (s *orderService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return &model.WriteError{Op: "delete", Err: err}
	}

	s.mu.Lock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	if s.selectedID == id {
		s.selectedID = ""
	}
	s.mu.Unlock()

	s.logger.Info().Str("order_id", id).Msg("order deleted")
	return nil
}

// Select opens the order with the given id in the detail view.
func (s *orderService) Select(id string) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.selectedID = id
			return s.orders[i].Clone(), true
		}
	}
	return model.Order{}, false
}

// Selected returns the order currently open in the detail view. The copy
// always reflects the latest confirmed store response.
func (s *orderService) Selected() (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selectedID == "" {
		return model.Order{}, false
	}
	for i := range s.orders {
		if s.orders[i].ID == s.selectedID {
			return s.orders[i].Clone(), true
		}
	}
	return model.Order{}, false
}

// Deselect closes the detail view.
func (s *orderService) Deselect() {
	s.mu.Lock()
	s.selectedID = ""
	s.mu.Unlock()
}

func cloneAll(orders []model.Order) []model.Order {
	copies := make([]model.Order, len(orders))
	for i := range orders {
		copies[i] = orders[i].Clone()
	}
	return copies
}
