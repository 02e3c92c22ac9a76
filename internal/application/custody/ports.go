package custody

import (
	"context"

	"github.com/velatec/activos-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL con los
// repositorios atados a la tx. Commit si fn devuelve nil, Rollback si no.
type TxRunner interface {
	// RunEquipo transacción de registro/edición/disponibilidad de equipos:
	// fila de equipo + secuencia de código + fila de historial.
	RunEquipo(ctx context.Context, fn func(
		equipoRepo repository.EquipoRepository,
		secRepo repository.SecuenciaRepository,
		histRepo repository.HistorialRepository,
	) error) error

	// RunMovimiento transacción de entrega/devolución: movimiento + equipo +
	// historial + outbox de notificación.
	RunMovimiento(ctx context.Context, fn func(
		equipoRepo repository.EquipoRepository,
		movRepo repository.MovimientoRepository,
		histRepo repository.HistorialRepository,
		notifRepo repository.NotificacionRepository,
	) error) error
}
