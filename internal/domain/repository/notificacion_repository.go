package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// NotificacionRepository puerto para el outbox de correo.
type NotificacionRepository interface {
	Create(n *entity.Notificacion) error
	GetByID(id string) (*entity.Notificacion, error)
	GetByMovimiento(movimientoID string) (*entity.Notificacion, error)
	// ListPendientes devuelve notificaciones pendientes o fallidas con menos de
	// maxIntentos intentos, más antiguas primero.
	ListPendientes(maxIntentos, limit int) ([]*entity.Notificacion, error)
	MarcarEnviada(id string) error
	MarcarFallida(id string, causa string) error
}
