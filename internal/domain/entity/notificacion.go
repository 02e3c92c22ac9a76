package entity

import "time"

// Estados de una notificación en la bandeja de salida (outbox).
const (
	NotificacionPendiente = "pendiente"
	NotificacionEnviada   = "enviada"
	NotificacionFallida   = "fallida"
)

// Notificacion es una fila del outbox de correo: el registro durable de la intención
// de notificar se persiste en la misma transacción que el movimiento; el envío SMTP
// ocurre después del commit y puede reintentarse.
type Notificacion struct {
	ID            string
	MovimientoID  string
	Destinatario  string
	Asunto        string
	CuerpoHTML    string
	AdjuntoPath   *string // ruta local del PDF adjunto, si existe
	AdjuntoNombre string
	Estado        string // pendiente | enviada | fallida
	Intentos      int
	UltimoError   *string
	EnviadaAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
