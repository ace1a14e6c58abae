package handler

import (
	"encoding/json"
	"net/http"

	"sweet-orders/internal/model"
	"sweet-orders/internal/printer"
	"sweet-orders/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: svc,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// ListResponse is the listing payload. A failed load is reported inline
// alongside whatever list the service still holds, never as a blocking
// error page.
type ListResponse struct {
	Orders    []model.Order `json:"orders"`
	LoadError string        `json:"loadError,omitempty"`
}

// statusRequest is the body of a status-change request.
type statusRequest struct {
	Status model.Status `json:"status"`
}

// List handles GET /api/orders?q=&status= requests by filtering the
// in-memory list.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	term := r.URL.Query().Get("q")
	statusFilter := r.URL.Query().Get("status")
	if statusFilter == "" {
		statusFilter = service.StatusFilterAll
	}

	resp := ListResponse{Orders: h.service.Search(term, statusFilter)}
	if resp.Orders == nil {
		resp.Orders = []model.Order{}
	}
	if err := h.service.LoadError(); err != nil {
		resp.LoadError = err.Error()
	}

	writeJSON(w, http.StatusOK, resp)
}

// Reload handles POST /api/orders/reload requests by re-fetching the full
// list from the store.
func (h *OrderHandler) Reload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	if err := h.service.LoadAll(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, ListResponse{Orders: h.service.Orders()})
}

// Create handles POST /api/orders requests. The body is a draft order
// input; quantities arrive as strings and are coerced on the write path.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var input model.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Create(r.Context(), &input)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// Get handles GET /api/orders/{id} requests and opens the order in the
// detail view.
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request, id string) {
	order, ok := h.service.Select(id)
	if !ok {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// Update handles PUT /api/orders/{id} requests. Status and creation time
// are never changed here.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request, id string) {
	var input model.OrderInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Update(r.Context(), id, &input)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error(), h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// SetStatus handles PATCH /api/orders/{id}/status requests. Any of the
// five workflow tags is accepted from any current status.
func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request, id string) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if !req.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status tag", h.logger)
		return
	}

	if err := h.service.SetStatus(r.Context(), id, req.Status); err != nil {
		writeError(w, http.StatusBadGateway, err.Error(), h.logger)
		return
	}

	order, ok := h.service.Selected()
	if !ok || order.ID != id {
		order, _ = h.service.Select(id)
	}
	writeJSON(w, http.StatusOK, order)
}

// Delete handles DELETE /api/orders/{id} requests. Deleting the order that
// is open in the detail view also closes that view.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusBadGateway, err.Error(), h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Print handles GET /api/orders/{id}/print requests with a static,
// self-contained HTML document.
func (h *OrderHandler) Print(w http.ResponseWriter, r *http.Request, id string) {
	var target *model.Order
	for _, o := range h.service.Orders() {
		if o.ID == id {
			target = &o
			break
		}
	}
	if target == nil {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}

	doc, err := printer.Format(*target)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to render order", h.logger)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}
