package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Driver pgx5 registra el esquema "pgx5://" para golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// Source file lee los .sql desde disco.
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/dcastano/almacen-api/pkg/logger"
)

// Migrate aplica las migraciones pendientes (UP) al arrancar la aplicación.
// Aborta si la base quedó en estado dirty: eso requiere intervención manual.
func Migrate(dsn, migrationsPath string, log *logger.Logger) error {
	m, err := migrate.New("file://"+migrationsPath, toPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("iniciar migraciones: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			log.Error().Err(srcErr).Msg("cerrar source de migraciones")
		}
		if dbErr != nil {
			log.Error().Err(dbErr).Msg("cerrar conexión de migraciones")
		}
	}()

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("leer versión de esquema: %w", err)
	}
	if dirty {
		return fmt.Errorf("esquema dirty en versión %d: se requiere intervención manual", version)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Uint("version", uint(version)).Msg("esquema al día, sin migraciones pendientes")
			return nil
		}
		return fmt.Errorf("aplicar migraciones: %w", err)
	}

	newVersion, _, _ := m.Version()
	log.Info().
		Uint("from", uint(version)).
		Uint("to", uint(newVersion)).
		Msg("migraciones aplicadas")
	return nil
}

// toPgx5DSN convierte el DSN postgres:// al esquema pgx5:// que exige el
// driver de golang-migrate.
func toPgx5DSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgresql://") {
		return "pgx5://" + strings.TrimPrefix(dsn, "postgresql://")
	}
	if strings.HasPrefix(dsn, "postgres://") {
		return "pgx5://" + strings.TrimPrefix(dsn, "postgres://")
	}
	return dsn
}
