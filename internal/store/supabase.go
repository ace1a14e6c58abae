package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// supabaseStore implements OrderStore against a Supabase (PostgREST) data
// API. The service key acts as a capability token and is attached to every
// request; the core never inspects or refreshes it.
type supabaseStore struct {
	baseURL string
	key     string
	table   string
	client  *http.Client
	logger  zerolog.Logger
}

// NewSupabaseStore creates an order store speaking the Supabase REST API.
func NewSupabaseStore(baseURL, key, table string, logger zerolog.Logger) OrderStore {
	return &supabaseStore{
		baseURL: strings.TrimRight(baseURL, "/"),
		key:     key,
		table:   table,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger.With().Str("store", "supabase").Logger(),
	}
}

// SelectAll fetches every order sorted newest first.
func (s *supabaseStore) SelectAll(ctx context.Context) ([]Record, error) {
	query := url.Values{}
	query.Set("select", "*")
	query.Set("order", "created_at.desc")

	body, err := s.do(ctx, http.MethodGet, query, nil)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to select orders")
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		s.logger.Error().Err(err).Msg("failed to decode order rows")
		return nil, fmt.Errorf("failed to decode order rows: %w", err)
	}

	s.logger.Debug().Int("count", len(records)).Msg("orders fetched")
	return records, nil
}

// Insert persists a new record and returns the stored row.
func (s *supabaseStore) Insert(ctx context.Context, rec Record) (Record, error) {
	body, err := s.do(ctx, http.MethodPost, nil, rec)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert order")
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	stored, err := decodeRow(body)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to decode inserted order")
		return nil, fmt.Errorf("failed to decode inserted order: %w", err)
	}

	s.logger.Debug().Str("order_id", asRecordID(stored)).Msg("order inserted")
	return stored, nil
}

// Update applies a partial record to the matching row and returns it.
func (s *supabaseStore) Update(ctx context.Context, id string, changes Record) (Record, error) {
	query := url.Values{}
	query.Set("id", "eq."+id)

	body, err := s.do(ctx, http.MethodPatch, query, changes)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	stored, err := decodeRow(body)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to decode updated order")
		return nil, fmt.Errorf("failed to decode updated order: %w", err)
	}

	s.logger.Debug().Str("order_id", id).Msg("order updated")
	return stored, nil
}

// Delete removes the row with the given id.
func (s *supabaseStore) Delete(ctx context.Context, id string) error {
	query := url.Values{}
	query.Set("id", "eq."+id)

	if _, err := s.do(ctx, http.MethodDelete, query, nil); err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Debug().Str("order_id", id).Msg("order deleted")
	return nil
}

// do issues a single REST call against the orders table and returns the
// response body. Non-2xx responses surface the store's own message.
func (s *supabaseStore) do(ctx context.Context, method string, query url.Values, payload any) ([]byte, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s", s.baseURL, s.table)
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("apikey", s.key)
	req.Header.Set("Authorization", "Bearer "+s.key)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
		// Have PostgREST hand back the stored row, generated fields included.
		req.Header.Set("Prefer", "return=representation")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("store responded %d: %s", resp.StatusCode, storeMessage(body))
	}

	return body, nil
}

// decodeRow unpacks the single-row array PostgREST returns for writes.
func decodeRow(body []byte) (Record, error) {
	var records []Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("store returned no rows")
	}
	return records[0], nil
}

// storeMessage extracts the error message field from a PostgREST error
// body, falling back to the raw text.
func storeMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
