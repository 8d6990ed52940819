package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/pkordes/trip-planner/migrations"
	"github.com/pkordes/trip-planner/testutil"
)

// TestMain applies all pending migrations, schema and seed catalog, to the
// test database once for the whole test binary. Without TEST_DATABASE_URL
// only the in-memory tests run.
func TestMain(m *testing.M) {
	if os.Getenv(testutil.DSNEnv) == "" {
		os.Exit(m.Run())
	}

	// goose needs database/sql, and TestMain has no *testing.T for testutil.NewSQLDB.
	db := testutil.MustOpenSQLDB(os.Getenv(testutil.DSNEnv))
	defer db.Close()

	if _, err := migrations.Up(context.Background(), db); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}
