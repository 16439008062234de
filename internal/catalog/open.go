package catalog

import (
	"context"

	"Dunklab/internal/db"
	"Dunklab/pkg/logger"
)

// Open returns the built-in catalog when driver is empty, and the SQL
// catalog otherwise, migrating it first when migrate is set. The returned
// func releases the database.
func Open(ctx context.Context, driver, dsn string, migrate bool, log logger.Logger) (Repository, func(), error) {
	if driver == "" {
		log.Info(ctx, "using built-in calculator catalog")
		return NewStatic(Defaults()), func() {}, nil
	}

	conn, err := db.Open(ctx, driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	if migrate {
		if err := Migrate(ctx, conn, driver, log.Named("migrate")); err != nil {
			conn.Close()
			return nil, nil, err
		}
	}
	log.Info(ctx, "using database calculator catalog", logger.String("driver", driver))
	return NewSQLRepository(conn, driver), func() { conn.Close() }, nil
}
