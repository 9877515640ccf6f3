package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
)

// CreateTestPool connects to TEST_POSTGRESQL_URL and applies the migrations
// from TEST_MIGRATIONS_PATH. The test is skipped when either is not set.
func CreateTestPool(t *testing.T) *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if connString == "" || migrationsPath == "" {
		t.Skip("TEST_POSTGRESQL_URL and TEST_MIGRATIONS_PATH must be set for DB tests")
	}
	if err := Migrate(connString, migrationsPath); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the database.")
	}
	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), "TRUNCATE reminder_delivery")
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
