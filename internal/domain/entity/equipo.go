package entity

import "time"

// Estados físicos de un equipo (tabla estados_fisicos).
const (
	EstadoOperativo     = 1
	EstadoMantenimiento = 2
	EstadoAveriado      = 3
	EstadoPerdido       = 4
)

// Prefijos del código patrimonial según propiedad del equipo.
const (
	PrefijoPropio    = "EQP-"
	PrefijoAlquilado = "EQAL-"
)

// Equipo representa un activo físico rastreable (laptop, monitor, etc.).
//
// Invariante: Disponible == true solo si EstadoFisicoID == EstadoOperativo.
// CodigoPatrimonial se asigna una sola vez al registrar y nunca se recalcula.
type Equipo struct {
	ID                string
	EmpresaID         string
	CodigoPatrimonial string // EQP-0001 / EQAL-0001, secuencia por prefijo
	Marca             string
	Modelo            string
	NumeroSerie       string // único
	EsPropio          bool   // false = alquilado a un proveedor
	ProveedorID       *string
	EstadoFisicoID    int
	Disponible        bool
	FechaAdquisicion  *time.Time
	FechaFinAlquiler  *time.Time
	Especificaciones  map[string]string // CPU, RAM, disco, etc. (JSONB)
	Observaciones     string
	CreadoPor         string
	ModificadoPor     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// EstadoFisico entrada del catálogo de estados físicos.
type EstadoFisico struct {
	ID     int
	Nombre string
}

// Prefijo devuelve el prefijo patrimonial que corresponde al tipo de propiedad.
func (e *Equipo) Prefijo() string {
	if e.EsPropio {
		return PrefijoPropio
	}
	return PrefijoAlquilado
}
