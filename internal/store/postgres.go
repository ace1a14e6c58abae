package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderColumns is the full projection returned by every statement. The id
// is cast to text so records stay uniformly string-keyed scalars.
const orderColumns = `id::text AS id, order_number, afm, customer_name, phone,
	order_for, remarks, communication_method, communication_value,
	status, discount,
	has_cookies, has_figures, has_sets, has_toppers, has_prints, has_other,
	product_details, created_at`

// insertColumns are the caller-writable columns, in statement order.
var insertColumns = []string{
	"afm", "customer_name", "phone", "order_for", "remarks",
	"communication_method", "communication_value", "status", "discount",
	"has_cookies", "has_figures", "has_sets", "has_toppers", "has_prints", "has_other",
	"product_details",
}

// postgresStore implements OrderStore against a PostgreSQL orders table
// with a JSONB product_details column.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed order store.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) OrderStore {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

// SelectAll fetches every order sorted newest first.
func (s *postgresStore) SelectAll(ctx context.Context) ([]Record, error) {
	query := fmt.Sprintf(`SELECT %s FROM orders ORDER BY created_at DESC`, orderColumns)

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating order rows: %w", err)
	}

	s.logger.Debug().Int("count", len(records)).Msg("orders fetched")
	return records, nil
}

// Insert persists a new record and returns the stored row.
func (s *postgresStore) Insert(ctx context.Context, rec Record) (Record, error) {
	placeholders := make([]string, len(insertColumns))
	args := make([]any, len(insertColumns))
	for i, col := range insertColumns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		val, err := columnValue(col, rec[col])
		if err != nil {
			return nil, err
		}
		if col == "product_details" {
			placeholders[i] += "::jsonb"
		}
		args[i] = val
	}

	query := fmt.Sprintf(
		`INSERT INTO orders (%s) VALUES (%s) RETURNING %s`,
		strings.Join(insertColumns, ", "),
		strings.Join(placeholders, ", "),
		orderColumns,
	)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to insert order")
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}
	defer rows.Close()

	stored, err := collectOne(rows)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to read inserted order")
		return nil, fmt.Errorf("failed to read inserted order: %w", err)
	}

	s.logger.Debug().Str("order_id", asRecordID(stored)).Msg("order inserted")
	return stored, nil
}

// Update applies a partial record to the matching row and returns it.
func (s *postgresStore) Update(ctx context.Context, id string, changes Record) (Record, error) {
	var assignments []string
	var args []any
	for _, col := range insertColumns {
		val, ok := changes[col]
		if !ok {
			continue
		}
		coerced, err := columnValue(col, val)
		if err != nil {
			return nil, err
		}
		args = append(args, coerced)
		placeholder := fmt.Sprintf("$%d", len(args))
		if col == "product_details" {
			placeholder += "::jsonb"
		}
		assignments = append(assignments, fmt.Sprintf("%s = %s", col, placeholder))
	}
	if len(assignments) == 0 {
		return nil, fmt.Errorf("no updatable fields for order %s", id)
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE orders SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(assignments, ", "),
		len(args),
		orderColumns,
	)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to update order")
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	defer rows.Close()

	stored, err := collectOne(rows)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to read updated order")
		return nil, fmt.Errorf("failed to read updated order: %w", err)
	}

	s.logger.Debug().Str("order_id", id).Msg("order updated")
	return stored, nil
}

// Delete removes the row with the given id.
func (s *postgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id).Msg("failed to delete order")
		return fmt.Errorf("failed to delete order: %w", err)
	}

	s.logger.Debug().
		Str("order_id", id).
		Int64("rows", tag.RowsAffected()).
		Msg("order deleted")
	return nil
}

// columnValue prepares a record value for binding. JSONB columns are
// marshalled up front so the driver receives ready-made JSON text.
func columnValue(col string, val any) (any, error) {
	if col != "product_details" {
		return val, nil
	}
	encoded, err := json.Marshal(val)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product details: %w", err)
	}
	return string(encoded), nil
}

// scanRecord turns the current row into an untyped record keyed by column
// name. Normalisation of the values happens later, in the model layer.
func scanRecord(rows pgx.Rows) (Record, error) {
	values, err := rows.Values()
	if err != nil {
		return nil, err
	}

	rec := make(Record, len(values))
	for i, desc := range rows.FieldDescriptions() {
		rec[desc.Name] = values[i]
	}
	return rec, nil
}

// collectOne reads exactly one returned row.
func collectOne(rows pgx.Rows) (Record, error) {
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, pgx.ErrNoRows
	}
	rec, err := scanRecord(rows)
	if err != nil {
		return nil, err
	}
	rows.Close()
	return rec, rows.Err()
}

func asRecordID(rec Record) string {
	if id, ok := rec["id"].(string); ok {
		return id
	}
	return ""
}
