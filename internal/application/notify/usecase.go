// Package notify implementa el outbox de correo: la intención de notificar se
// persiste en la misma transacción que el movimiento y el envío SMTP ocurre
// después del commit, con reintentos desde un worker periódico.
package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
	"github.com/velatec/activos-api/pkg/logger"
)

// Mailer puerto del transporte SMTP.
type Mailer interface {
	// Send envía un correo HTML con un adjunto opcional (ruta local).
	Send(ctx context.Context, destinatario, asunto, cuerpoHTML string, adjuntoPath *string, adjuntoNombre string) error
}

// UseCase encola notificaciones en el outbox y ejecuta los intentos de envío.
type UseCase struct {
	notifRepo repository.NotificacionRepository
	movRepo   repository.MovimientoRepository
	mailer    Mailer
	log       *logger.Logger
}

// NewUseCase construye el caso de uso de notificaciones.
func NewUseCase(notifRepo repository.NotificacionRepository, movRepo repository.MovimientoRepository, mailer Mailer, log *logger.Logger) *UseCase {
	return &UseCase{notifRepo: notifRepo, movRepo: movRepo, mailer: mailer, log: log}
}

// Encolar renderiza el correo del movimiento y persiste la fila del outbox con
// el repositorio recibido (el de la transacción en curso). Implementa
// custody.Notificador.
func (uc *UseCase) Encolar(notifRepo repository.NotificacionRepository, mov *entity.Movimiento,
	equipo *entity.Equipo, colaborador *entity.Colaborador, destino, adjuntoPath string) (string, error) {
	if destino == "" {
		return "", fmt.Errorf("notificación sin destinatario: %w", domain.ErrInvalidInput)
	}
	asunto, html, err := RenderCorreo(mov, equipo, colaborador)
	if err != nil {
		return "", err
	}
	now := time.Now()
	n := &entity.Notificacion{
		ID:            uuid.New().String(),
		MovimientoID:  mov.ID,
		Destinatario:  destino,
		Asunto:        asunto,
		CuerpoHTML:    html,
		AdjuntoNombre: nombreAdjunto(mov),
		Estado:        entity.NotificacionPendiente,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if adjuntoPath != "" {
		n.AdjuntoPath = &adjuntoPath
	}
	if err := notifRepo.Create(n); err != nil {
		return "", err
	}
	return n.ID, nil
}

// Enviar ejecuta un intento de envío de una notificación ya persistida y
// actualiza el outbox y el correo_enviado del movimiento. El error devuelto
// permite al caller reportar el warning; la escritura del movimiento ya está
// comprometida y nunca se revierte.
func (uc *UseCase) Enviar(ctx context.Context, notificacionID string) error {
	n, err := uc.notifRepo.GetByID(notificacionID)
	if err != nil {
		return err
	}
	if n == nil {
		return domain.ErrNotFound
	}
	return uc.intentar(ctx, n)
}

// intentar envía la notificación y registra el resultado.
func (uc *UseCase) intentar(ctx context.Context, n *entity.Notificacion) error {
	err := uc.mailer.Send(ctx, n.Destinatario, n.Asunto, n.CuerpoHTML, n.AdjuntoPath, n.AdjuntoNombre)
	if err != nil {
		uc.log.Warn().Err(err).
			Str("notificacion_id", n.ID).
			Str("movimiento_id", n.MovimientoID).
			Int("intentos", n.Intentos+1).
			Msg("envío de correo fallido")
		_ = uc.notifRepo.MarcarFallida(n.ID, err.Error())
		_ = uc.movRepo.SetCorreoEnviado(n.MovimientoID, false)
		return err
	}
	if err := uc.notifRepo.MarcarEnviada(n.ID); err != nil {
		return err
	}
	if err := uc.movRepo.SetCorreoEnviado(n.MovimientoID, true); err != nil {
		return err
	}
	uc.log.Info().
		Str("notificacion_id", n.ID).
		Str("destinatario", n.Destinatario).
		Msg("correo de acta enviado")
	return nil
}

// ProcesarPendientes barrido del outbox: reintenta las notificaciones pendientes
// o fallidas con menos de maxIntentos intentos. Lo invoca el worker periódico.
func (uc *UseCase) ProcesarPendientes(ctx context.Context, maxIntentos, batchSize int) {
	pendientes, err := uc.notifRepo.ListPendientes(maxIntentos, batchSize)
	if err != nil {
		uc.log.Error().Err(err).Msg("listar notificaciones pendientes")
		return
	}
	for _, n := range pendientes {
		select {
		case <-ctx.Done():
			return
		default:
		}
		_ = uc.intentar(ctx, n)
	}
}

func nombreAdjunto(mov *entity.Movimiento) string {
	if mov.Tipo == entity.MovimientoDevolucion {
		return "acta-devolucion.pdf"
	}
	return "acta-entrega.pdf"
}
