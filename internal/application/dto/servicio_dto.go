package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateServicioRequest alta de servicio/suscripción.
type CreateServicioRequest struct {
	ProveedorID  string          `json:"proveedor_id" validate:"required,uuid4"`
	Nombre       string          `json:"nombre" validate:"required"`
	Descripcion  string          `json:"descripcion"`
	CostoMensual decimal.Decimal `json:"costo_mensual"`
	Moneda       string          `json:"moneda" validate:"omitempty,oneof=PEN USD"`
	Licencias    int             `json:"licencias" validate:"omitempty,min=0"`
	FechaInicio  *time.Time      `json:"fecha_inicio"`
	FechaFin     *time.Time      `json:"fecha_fin"`
}

// UpdateServicioRequest cambios parciales sobre un servicio.
type UpdateServicioRequest struct {
	Nombre       *string          `json:"nombre"`
	Descripcion  *string          `json:"descripcion"`
	CostoMensual *decimal.Decimal `json:"costo_mensual"`
	Moneda       *string          `json:"moneda" validate:"omitempty,oneof=PEN USD"`
	Licencias    *int             `json:"licencias" validate:"omitempty,min=0"`
	FechaInicio  *time.Time       `json:"fecha_inicio"`
	FechaFin     *time.Time       `json:"fecha_fin"`
}

// ServicioResponse representación de un servicio con el nombre de su proveedor.
type ServicioResponse struct {
	ID           string          `json:"id"`
	ProveedorID  string          `json:"proveedor_id"`
	Proveedor    string          `json:"proveedor,omitempty"`
	Nombre       string          `json:"nombre"`
	Descripcion  string          `json:"descripcion"`
	CostoMensual decimal.Decimal `json:"costo_mensual"`
	Moneda       string          `json:"moneda"`
	Licencias    int             `json:"licencias"`
	FechaInicio  *time.Time      `json:"fecha_inicio,omitempty"`
	FechaFin     *time.Time      `json:"fecha_fin,omitempty"`
	Estado       bool            `json:"estado"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ServicioListResponse listado de servicios.
type ServicioListResponse struct {
	Items []ServicioResponse `json:"items"`
}

// CreatePagoRequest registro de un pago de servicio.
type CreatePagoRequest struct {
	Monto      decimal.Decimal `json:"monto" validate:"required"`
	Moneda     string          `json:"moneda" validate:"omitempty,oneof=PEN USD"`
	FechaPago  *time.Time      `json:"fecha_pago"`
	Periodo    string          `json:"periodo" validate:"required"`
	Referencia string          `json:"referencia"`
}

// PagoResponse representación de un pago.
type PagoResponse struct {
	ID         string          `json:"id"`
	ServicioID string          `json:"servicio_id"`
	Monto      decimal.Decimal `json:"monto"`
	Moneda     string          `json:"moneda"`
	FechaPago  time.Time       `json:"fecha_pago"`
	Periodo    string          `json:"periodo"`
	Referencia string          `json:"referencia"`
	Anulado    bool            `json:"anulado"`
	CreatedAt  time.Time       `json:"created_at"`
}

// AuditoriaResponse entrada del log de auditoría de un servicio.
type AuditoriaResponse struct {
	ID        string    `json:"id"`
	Accion    string    `json:"accion"`
	Detalle   string    `json:"detalle"`
	Usuario   string    `json:"usuario"`
	CreatedAt time.Time `json:"created_at"`
}
