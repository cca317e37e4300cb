package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"ialynk-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDBType represents the type of database to use for testing
type TestDBType string

const (
	TestDBTypePostgres TestDBType = "postgres"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
	dbType TestDBType
}

// SetupTestDB connects to the test Postgres described by the TEST_DB_* variables.
// The test is skipped when the database is unreachable. Migrations are applied
// when the schema is missing.
func SetupTestDB(t *testing.T, dbType TestDBType) *TestDB {
	t.Helper()

	if dbType == "" {
		envDBType := os.Getenv("TEST_DB_TYPE")
		if envDBType == "" {
			dbType = TestDBTypePostgres
		} else {
			dbType = TestDBType(envDBType)
		}
	}

	logger := observability.NewLogger()

	var db *sqlx.DB
	var err error

	switch dbType {
	case TestDBTypePostgres:
		db, err = setupPostgresDB(t)
	default:
		t.Fatalf("unsupported database type: %s", dbType)
	}

	if err != nil {
		t.Skipf("skipping store test, database unavailable: %v", err)
	}

	if err := ensureSchema(db); err != nil {
		t.Fatalf("failed to prepare schema: %v", err)
	}

	return &TestDB{
		db:     db,
		logger: logger,
		Store:  Store{db: db, logger: logger},
		dbType: dbType,
	}
}

// setupPostgresDB creates a PostgreSQL database connection
func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := getTestEnv("TEST_DB_HOST", "localhost")
	dbPort := getTestEnv("TEST_DB_PORT", "5432")
	dbUser := getTestEnv("TEST_DB_USER", "ialynk_user")
	dbPass := getTestEnv("TEST_DB_PASSWORD", "ialynk_password")
	dbName := getTestEnv("TEST_DB_NAME", "ialynk_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func getTestEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func ensureSchema(db *sqlx.DB) error {
	var exists bool
	if err := db.Get(&exists, `SELECT to_regclass('public.calls') IS NOT NULL`); err != nil {
		return fmt.Errorf("failed to inspect schema: %w", err)
	}
	if exists {
		return nil
	}
	return runMigrations(db)
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}

	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		tables = []string{
			"inbox_messages",
			"calendar_events",
			"telephony_settings",
			"assistant_preferences",
			"agencies",
			"calls",
			"messages",
			"conversations",
			"ticket_history",
			"tickets",
			"contacts",
			"email_auth",
			"user_auth",
			"users",
		}
	}

	for _, table := range tables {
		_, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			if !strings.Contains(err.Error(), "does not exist") {
				t.Fatalf("failed to truncate table %s: %v", table, err)
			}
		}
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() error {
	return tdb.db.Close()
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
