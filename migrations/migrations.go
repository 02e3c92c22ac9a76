// Package migrations contiene el esquema versionado de la base de datos, embebido
// en el binario y aplicado con goose al arrancar (si DB_MIGRATE está activo).
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var fsMigrations embed.FS

// Up aplica las migraciones pendientes contra la base de datos indicada.
func Up(connString string) error {
	db, err := sql.Open("pgx", connString)
	if err != nil {
		return fmt.Errorf("abrir conexión para migraciones: %w", err)
	}
	defer db.Close()

	goose.SetBaseFS(fsMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("configurar dialecto goose: %w", err)
	}
	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
