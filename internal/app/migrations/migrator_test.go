package migrations

import (
	"io/fs"
	"strings"
	"testing"
)

func TestDriverURL(t *testing.T) {
	cases := map[string]string{
		"postgres://u:p@localhost:5432/db?sslmode=disable":   "pgx5://u:p@localhost:5432/db?sslmode=disable",
		"postgresql://u:p@localhost:5432/db?sslmode=disable": "pgx5://u:p@localhost:5432/db?sslmode=disable",
		"pgx5://u:p@localhost/db":                            "pgx5://u:p@localhost/db",
	}
	for input, expect := range cases {
		if got := driverURL(input); got != expect {
			t.Fatalf("driverURL(%q) = %q, want %q", input, got, expect)
		}
	}
}

func TestEmbeddedMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(sqlFiles, "sql")
	if err != nil {
		t.Fatalf("read embedded dir: %v", err)
	}

	ups, downs := 0, 0
	for _, e := range entries {
		switch {
		case strings.HasSuffix(e.Name(), ".up.sql"):
			ups++
		case strings.HasSuffix(e.Name(), ".down.sql"):
			downs++
		default:
			t.Fatalf("unexpected file %s", e.Name())
		}
	}
	if ups == 0 || ups != downs {
		t.Fatalf("expected matching up/down migrations, got %d up and %d down", ups, downs)
	}

	up, err := fs.ReadFile(sqlFiles, "sql/000001_create_students.up.sql")
	if err != nil {
		t.Fatalf("read first migration: %v", err)
	}
	for _, column := range []string{"full_name", "reg_time", "ip_address", "created_by", "pdf_file", "pdf_file_name"} {
		if !strings.Contains(string(up), column) {
			t.Fatalf("students table is missing column %s", column)
		}
	}
}
