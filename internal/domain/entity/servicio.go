package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Servicio representa una suscripción SaaS o servicio recurrente contratado a un proveedor.
type Servicio struct {
	ID            string
	ProveedorID   string
	Nombre        string
	Descripcion   string
	CostoMensual  decimal.Decimal
	Moneda        string // PEN, USD
	Licencias     int
	FechaInicio   *time.Time
	FechaFin      *time.Time
	Estado        bool
	CreadoPor     string
	ModificadoPor string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// PagoServicio es una entrada del sub-libro de pagos de un servicio.
// Anulado true equivale a anulación lógica (el pago nunca se borra).
type PagoServicio struct {
	ID         string
	ServicioID string
	Monto      decimal.Decimal
	Moneda     string
	FechaPago  time.Time
	Periodo    string // "2026-08"
	Referencia string
	Anulado    bool
	CreadoPor  string
	CreatedAt  time.Time
}

// AuditoriaServicio es una entrada de texto libre del log de auditoría de un servicio.
type AuditoriaServicio struct {
	ID         string
	ServicioID string
	Accion     string
	Detalle    string
	UsuarioID  string
	CreatedAt  time.Time
}
