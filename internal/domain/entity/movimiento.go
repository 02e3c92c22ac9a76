package entity

import "time"

// Tipos de movimiento de custodia.
const (
	MovimientoEntrega    = "entrega"
	MovimientoDevolucion = "devolucion"
)

// Movimiento representa un acto de entrega o devolución de un equipo a un colaborador.
//
// Una fila es inmutable después de creada salvo por: URLPdfFirmado/FirmaValida
// (flujo de firma) y CorreoEnviado (resultado del envío de correo, posterior al commit).
type Movimiento struct {
	ID              string
	Tipo            string // entrega | devolucion
	EquipoID        string
	ColaboradorID   string
	Fecha           time.Time
	IncluyeCargador bool
	Observaciones   string
	Motivo          string // solo devoluciones
	EstadoEquipoID  *int   // snapshot del estado físico al devolver
	URLPdfFirmado   *string
	FirmaValida     *bool
	CorreoEnviado   *bool // nil = sin intento, true/false = resultado del último intento
	CreadoPor       string
	CreatedAt       time.Time
}
