package dto

import "time"

// CreateEquipoRequest registro de un equipo nuevo.
// EstadoFisicoID determina la disponibilidad inicial; el código patrimonial lo
// asigna el sistema.
type CreateEquipoRequest struct {
	EmpresaID        string            `json:"empresa_id" validate:"required,uuid4"`
	Marca            string            `json:"marca" validate:"required"`
	Modelo           string            `json:"modelo" validate:"required"`
	NumeroSerie      string            `json:"numero_serie" validate:"required"`
	EsPropio         bool              `json:"es_propio"`
	ProveedorID      *string           `json:"proveedor_id" validate:"omitempty,uuid4"`
	EstadoFisicoID   int               `json:"estado_fisico_id" validate:"required,min=1"`
	FechaAdquisicion *time.Time        `json:"fecha_adquisicion"`
	FechaFinAlquiler *time.Time        `json:"fecha_fin_alquiler"`
	Especificaciones map[string]string `json:"especificaciones"`
	Observaciones    string            `json:"observaciones"`
}

// UpdateEquipoRequest cambios parciales sobre un equipo. No recalcula el código
// patrimonial. Si cambia el estado físico a uno no operativo, el equipo deja de
// estar disponible; volver a habilitarlo va por /disponibilidad o movimientos.
type UpdateEquipoRequest struct {
	EmpresaID        *string           `json:"empresa_id" validate:"omitempty,uuid4"`
	Marca            *string           `json:"marca"`
	Modelo           *string           `json:"modelo"`
	ProveedorID      *string           `json:"proveedor_id" validate:"omitempty,uuid4"`
	EstadoFisicoID   *int              `json:"estado_fisico_id" validate:"omitempty,min=1"`
	FechaAdquisicion *time.Time        `json:"fecha_adquisicion"`
	FechaFinAlquiler *time.Time        `json:"fecha_fin_alquiler"`
	Especificaciones map[string]string `json:"especificaciones"`
	Observaciones    *string           `json:"observaciones"`
}

// UpdateDisponibilidadRequest activación o desactivación manual de un equipo.
type UpdateDisponibilidadRequest struct {
	Disponible *bool `json:"disponible" validate:"required"`
}

// EquipoResponse representación de un equipo.
type EquipoResponse struct {
	ID                string            `json:"id"`
	EmpresaID         string            `json:"empresa_id"`
	CodigoPatrimonial string            `json:"codigo_patrimonial"`
	Marca             string            `json:"marca"`
	Modelo            string            `json:"modelo"`
	NumeroSerie       string            `json:"numero_serie"`
	EsPropio          bool              `json:"es_propio"`
	ProveedorID       *string           `json:"proveedor_id,omitempty"`
	EstadoFisicoID    int               `json:"estado_fisico_id"`
	EstadoCustodia    string            `json:"estado_custodia"`
	Disponible        bool              `json:"disponible"`
	FechaAdquisicion  *time.Time        `json:"fecha_adquisicion,omitempty"`
	FechaFinAlquiler  *time.Time        `json:"fecha_fin_alquiler,omitempty"`
	Especificaciones  map[string]string `json:"especificaciones,omitempty"`
	Observaciones     string            `json:"observaciones"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// EquipoListResponse listado de equipos.
type EquipoListResponse struct {
	Items []EquipoResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}

// EstadoFisicoResponse entrada del catálogo de estados físicos.
type EstadoFisicoResponse struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// HistorialEquipoResponse entrada del rastro de auditoría de un equipo.
type HistorialEquipoResponse struct {
	ID             string    `json:"id"`
	Accion         string    `json:"accion"`
	Descripcion    string    `json:"descripcion"`
	EstadoFisicoID int       `json:"estado_fisico_id"`
	Disponible     bool      `json:"disponible"`
	Usuario        string    `json:"usuario"`
	CreatedAt      time.Time `json:"created_at"`
}
