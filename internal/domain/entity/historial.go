package entity

import "time"

// Acciones registradas en historial_equipos.
const (
	AccionRegistroInicial = "REGISTRO INICIAL"
	AccionEdicion         = "EDICIÓN"
	AccionActivacion      = "ACTIVACIÓN"
	AccionDesactivacion   = "DESACTIVACIÓN"
	AccionEntrega         = "ENTREGA"
	AccionDevolucion      = "DEVOLUCIÓN"
)

// HistorialEquipo es una entrada append-only del rastro de auditoría de un equipo.
// Guarda un snapshot de los datos relevantes al momento de la acción; nunca se
// actualiza ni se borra.
type HistorialEquipo struct {
	ID             string
	EquipoID       string
	Accion         string
	Descripcion    string
	EmpresaID      string
	ProveedorID    *string
	EstadoFisicoID int
	Disponible     bool
	UsuarioID      string // usuario que ejecutó la acción
	CreatedAt      time.Time
}
