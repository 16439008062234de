package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Dunklab/internal/db"
)

const selectEntries = "SELECT slug, title, description, path, priority, change_freq, position FROM calculators"

// SQLRepository reads the catalog from the calculators table.
type SQLRepository struct {
	db       *sql.DB
	getQuery string
}

func NewSQLRepository(conn *sql.DB, driver string) *SQLRepository {
	placeholder := "?"
	if driver == db.DriverPostgres {
		placeholder = "$1"
	}
	return &SQLRepository{
		db:       conn,
		getQuery: selectEntries + " WHERE slug = " + placeholder,
	}
}

func (r *SQLRepository) List(ctx context.Context) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, selectEntries+" ORDER BY position, slug")
	if err != nil {
		return nil, fmt.Errorf("list calculators: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Slug, &e.Title, &e.Description, &e.Path, &e.Priority, &e.ChangeFreq, &e.Position); err != nil {
			return nil, fmt.Errorf("scan calculator: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list calculators: %w", err)
	}
	return entries, nil
}

func (r *SQLRepository) Get(ctx context.Context, slug string) (Entry, error) {
	var e Entry
	err := r.db.QueryRowContext(ctx, r.getQuery, slug).
		Scan(&e.Slug, &e.Title, &e.Description, &e.Path, &e.Priority, &e.ChangeFreq, &e.Position)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, fmt.Errorf("%w: %q", ErrNotFound, slug)
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get calculator %q: %w", slug, err)
	}
	return e, nil
}
