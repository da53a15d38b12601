package sqlitemigrate

import (
	"context"
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func TestApplyRecordsEachMigrationOnce(t *testing.T) {
	db := openInMemoryDB(t)
	migrations := fstest.MapFS{
		"002_index.sql":  {Data: []byte("-- +migrate Up\nCREATE INDEX items_name ON items(name);\n-- +migrate Down\nDROP INDEX items_name;")},
		"001_create.sql": {Data: []byte("-- +migrate Up\nCREATE TABLE items(id TEXT PRIMARY KEY, name TEXT);")},
		"notes.txt":      {Data: []byte("ignored")},
	}

	applied, err := Apply(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if len(applied) != 2 || applied[0] != "001_create.sql" || applied[1] != "002_index.sql" {
		t.Fatalf("applied = %v, want [001_create.sql 002_index.sql]", applied)
	}

	again, err := Apply(context.Background(), db, migrations, "")
	if err != nil {
		t.Fatalf("second Apply() error = %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("second Apply() applied %v", again)
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 2 {
		t.Fatalf("schema_migrations rows = %d, want 2", got)
	}
}

func TestApplyDoesNotRecordFailedMigration(t *testing.T) {
	db := openInMemoryDB(t)
	bad := fstest.MapFS{
		"001_bad.sql": {Data: []byte("-- +migrate Up\nCREAT TABLE things(id INT);")},
	}
	if _, err := Apply(context.Background(), db, bad, ""); err == nil {
		t.Fatal("Apply() accepted invalid SQL")
	}
	if got := countRows(t, db, "SELECT COUNT(*) FROM schema_migrations"); got != 0 {
		t.Fatalf("schema_migrations rows = %d, want 0", got)
	}
}

func TestApplyRejectsMissingInputs(t *testing.T) {
	if _, err := Apply(context.Background(), nil, fstest.MapFS{}, ""); err == nil {
		t.Fatal("Apply() accepted nil db")
	}
	if _, err := Apply(context.Background(), openInMemoryDB(t), nil, ""); err == nil {
		t.Fatal("Apply() accepted nil fs")
	}
}

func TestUpSection(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"no markers": {in: "SELECT 1;", want: "SELECT 1;"},
		"up only":    {in: "-- +migrate Up\nSELECT 1;", want: "\nSELECT 1;"},
		"up and down": {
			in:   "-- +migrate Up\nSELECT 1;\n-- +migrate Down\nSELECT 2;",
			want: "\nSELECT 1;\n",
		},
	}
	for name, tc := range tests {
		if got := UpSection(tc.in); got != tc.want {
			t.Fatalf("%s: UpSection() = %q, want %q", name, got, tc.want)
		}
	}
}

func openInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, query string) int64 {
	t.Helper()
	var n int64
	if err := db.QueryRow(query).Scan(&n); err != nil {
		t.Fatalf("query %q: %v", query, err)
	}
	return n
}
