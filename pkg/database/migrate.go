package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// Direction selects which way RunMigrations moves the schema.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// ParseDirection accepts "up" and "down".
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case Up, Down:
		return Direction(s), nil
	default:
		return "", fmt.Errorf("unknown migration direction %q (want up or down)", s)
	}
}

// RunMigrations applies the migrations found at sourceURL (e.g.
// file://migrations). It reports whether anything changed.
func RunMigrations(databaseURL, sourceURL string, dir Direction) (changed bool, err error) {
	// A plain database/sql handle over the pgx driver, separate from the pool.
	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return false, fmt.Errorf("open migration connection: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := db.Ping(); err != nil {
		return false, fmt.Errorf("ping database for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return false, fmt.Errorf("create postgres migration driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance(sourceURL, "postgres", driver)
	if err != nil {
		return false, fmt.Errorf("create migrate instance: %w", err)
	}

	switch dir {
	case Down:
		err = m.Down()
	default:
		err = m.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return false, fmt.Errorf("apply %s migrations: %w", dir, err)
	}
	changed = err == nil

	if version, dirty, verr := m.Version(); verr == nil {
		slog.Info("Migrations finished", slog.String("direction", string(dir)), slog.Bool("changed", changed),
			slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	} else if errors.Is(verr, migrate.ErrNilVersion) {
		slog.Info("Migrations finished with an empty schema", slog.String("direction", string(dir)))
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return changed, fmt.Errorf("migration source: %w", sourceErr)
	}
	if dbErr != nil {
		return changed, fmt.Errorf("migration database: %w", dbErr)
	}
	return changed, nil
}
