// Package testutil provides shared fixtures for the test suites. The
// repositories are engine-portable, so tests run against a throwaway
// SQLite database instead of a live MySQL instance.
package testutil

import (
	"database/sql"
	"embed"
	"io/fs"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/stagebook/stagebook/internal/database"
)

//go:embed schema/*.sql
var schemaFS embed.FS

// OpenDB opens a temp-file SQLite database with foreign keys enforced
// and the directory schema applied through the same migration runner
// used at startup. The handle is closed when the test finishes.
func OpenDB(t *testing.T) *sql.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stagebook.db")
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("open sqlite db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// A single connection keeps the foreign_keys pragma on every query.
	db.SetMaxOpenConns(1)

	schema, err := fs.Sub(schemaFS, "schema")
	if err != nil {
		t.Fatalf("schema fs: %v", err)
	}
	if err := database.ApplyMigrations(db, schema); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
