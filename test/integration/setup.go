package integration

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container and connection pool.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	createSchema(t, pool)

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// createSchema creates the orders table for testing. The shape mirrors the
// production document store: a generated UUID id, a monotonically growing
// order number and a JSONB column with the per-category line items.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			order_number BIGINT GENERATED ALWAYS AS IDENTITY,
			afm TEXT NOT NULL DEFAULT '',
			customer_name TEXT NOT NULL DEFAULT '',
			phone TEXT NOT NULL DEFAULT '',
			order_for TEXT NOT NULL DEFAULT '',
			remarks TEXT NOT NULL DEFAULT '',
			communication_method TEXT NOT NULL DEFAULT '',
			communication_value TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'pending',
			discount TEXT NOT NULL DEFAULT 'none',
			has_cookies BOOLEAN NOT NULL DEFAULT FALSE,
			has_figures BOOLEAN NOT NULL DEFAULT FALSE,
			has_sets BOOLEAN NOT NULL DEFAULT FALSE,
			has_toppers BOOLEAN NOT NULL DEFAULT FALSE,
			has_prints BOOLEAN NOT NULL DEFAULT FALSE,
			has_other BOOLEAN NOT NULL DEFAULT FALSE,
			product_details JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status);
	`

	_, err := pool.Exec(ctx, schema)
	if err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}
}

// CleanupDB removes all orders from the test table.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	if _, err := pool.Exec(ctx, "DELETE FROM orders"); err != nil {
		t.Logf("failed to clean orders table: %v", err)
	}
}
