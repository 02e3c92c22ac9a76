package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

var _ repository.NotificacionRepository = (*NotificacionRepo)(nil)

// NotificacionRepo implementación del outbox de correo sobre PostgreSQL (usable con
// pool o tx). Encolar una notificación dentro de la transacción del movimiento
// garantiza que ningún commit quede sin su registro de notificación.
type NotificacionRepo struct {
	q Querier
}

// NewNotificacionRepository construye el adaptador del outbox de correo.
func NewNotificacionRepository(q Querier) *NotificacionRepo {
	return &NotificacionRepo{q: q}
}

const notificacionColumns = `id, movimiento_id, destinatario, asunto, cuerpo_html, adjunto_path, adjunto_nombre,
		estado, intentos, ultimo_error, enviada_at, created_at, updated_at`

// Create persiste una notificación pendiente.
func (r *NotificacionRepo) Create(n *entity.Notificacion) error {
	query := `
		INSERT INTO notificaciones (` + notificacionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		n.ID, n.MovimientoID, n.Destinatario, n.Asunto, n.CuerpoHTML, n.AdjuntoPath, n.AdjuntoNombre,
		n.Estado, n.Intentos, n.UltimoError, n.EnviadaAt, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notificacion: %w", err)
	}
	return nil
}

func scanNotificacion(row pgx.Row) (*entity.Notificacion, error) {
	var n entity.Notificacion
	err := row.Scan(
		&n.ID, &n.MovimientoID, &n.Destinatario, &n.Asunto, &n.CuerpoHTML, &n.AdjuntoPath, &n.AdjuntoNombre,
		&n.Estado, &n.Intentos, &n.UltimoError, &n.EnviadaAt, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// GetByID obtiene una notificación por ID.
func (r *NotificacionRepo) GetByID(id string) (*entity.Notificacion, error) {
	n, err := scanNotificacion(r.q.QueryRow(context.Background(),
		`SELECT `+notificacionColumns+` FROM notificaciones WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notificacion: %w", err)
	}
	return n, nil
}

// GetByMovimiento obtiene la notificación más reciente de un movimiento.
func (r *NotificacionRepo) GetByMovimiento(movimientoID string) (*entity.Notificacion, error) {
	n, err := scanNotificacion(r.q.QueryRow(context.Background(),
		`SELECT `+notificacionColumns+` FROM notificaciones
		 WHERE movimiento_id = $1 ORDER BY created_at DESC LIMIT 1`, movimientoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get notificacion by movimiento: %w", err)
	}
	return n, nil
}

// ListPendientes devuelve notificaciones pendientes o fallidas con menos de
// maxIntentos intentos, más antiguas primero. Las usa el barrido de reintentos.
func (r *NotificacionRepo) ListPendientes(maxIntentos, limit int) ([]*entity.Notificacion, error) {
	query := `
		SELECT ` + notificacionColumns + `
		FROM notificaciones
		WHERE estado IN ($1, $2) AND intentos < $3
		ORDER BY created_at
		LIMIT $4`
	rows, err := r.q.Query(context.Background(), query,
		entity.NotificacionPendiente, entity.NotificacionFallida, maxIntentos, limit)
	if err != nil {
		return nil, fmt.Errorf("list notificaciones pendientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Notificacion
	for rows.Next() {
		n, err := scanNotificacion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan notificacion: %w", err)
		}
		list = append(list, n)
	}
	return list, rows.Err()
}

// MarcarEnviada marca la notificación como enviada y registra el intento.
func (r *NotificacionRepo) MarcarEnviada(id string) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE notificaciones
		SET estado = $2, intentos = intentos + 1, ultimo_error = NULL, enviada_at = now(), updated_at = now()
		WHERE id = $1`, id, entity.NotificacionEnviada)
	if err != nil {
		return fmt.Errorf("marcar notificacion enviada: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarcarFallida marca la notificación como fallida, registra el intento y la causa.
func (r *NotificacionRepo) MarcarFallida(id string, causa string) error {
	cmd, err := r.q.Exec(context.Background(), `
		UPDATE notificaciones
		SET estado = $2, intentos = intentos + 1, ultimo_error = $3, updated_at = now()
		WHERE id = $1`, id, entity.NotificacionFallida, causa)
	if err != nil {
		return fmt.Errorf("marcar notificacion fallida: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
