package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestPostgresDSN(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"postgres://u:p@host/db", "postgres://u:p@host/db?sslmode=require"},
		{"postgres://u:p@host/db?application_name=dunklab", "postgres://u:p@host/db?application_name=dunklab&sslmode=require"},
		{"postgresql://host/db?sslmode=disable", "postgresql://host/db?sslmode=disable"},
		{"user=postgres dbname=dunklab", "user=postgres dbname=dunklab sslmode=require"},
	}
	for _, c := range cases {
		if got := PostgresDSN(c.in); got != c.want {
			t.Errorf("PostgresDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestOpenSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	db, err := Open(context.Background(), DriverSQLite, path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	var one int
	if err := db.QueryRow("SELECT 1").Scan(&one); err != nil || one != 1 {
		t.Fatalf("SELECT 1 = %d, %v", one, err)
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, err := Open(context.Background(), "mysql", "dsn")
	if !errors.Is(err, ErrUnsupportedDriver) {
		t.Fatalf("err = %v, want ErrUnsupportedDriver", err)
	}
}
