package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/velatec/activos-api/internal/application/custody"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// Ensure TxRunner implements custody.TxRunner.
var _ custody.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunEquipo inicia una transacción con los repos de equipo, secuencia e
// historial atados a la tx, y hace Commit o Rollback.
func (r *TxRunner) RunEquipo(ctx context.Context, fn func(
	equipoRepo repository.EquipoRepository,
	secRepo repository.SecuenciaRepository,
	histRepo repository.HistorialRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEquipoRepository(tx), NewSecuenciaRepository(tx), NewHistorialRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunMovimiento inicia una transacción con los repos de equipo, movimiento,
// historial y outbox (entregas y devoluciones).
func (r *TxRunner) RunMovimiento(ctx context.Context, fn func(
	equipoRepo repository.EquipoRepository,
	movRepo repository.MovimientoRepository,
	histRepo repository.HistorialRepository,
	notifRepo repository.NotificacionRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewEquipoRepository(tx), NewMovimientoRepository(tx),
		NewHistorialRepository(tx), NewNotificacionRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
