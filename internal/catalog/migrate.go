package catalog

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"

	"Dunklab/internal/db"
	"Dunklab/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every pending catalog migration for the given driver.
func Migrate(ctx context.Context, conn *sql.DB, driver string, log logger.Logger) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{l: log})
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, conn, "migrations"); err != nil {
		return fmt.Errorf("run goose up migrations: %w", err)
	}
	return nil
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case db.DriverPostgres:
		return "postgres", nil
	case db.DriverSQLite:
		return "sqlite3", nil
	}
	return "", fmt.Errorf("%w: %q", db.ErrUnsupportedDriver, driver)
}

type gooseLogger struct {
	l logger.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(context.Background(), fmt.Sprintf(format, v...))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(context.Background(), fmt.Sprintf(format, v...))
	os.Exit(1)
}
