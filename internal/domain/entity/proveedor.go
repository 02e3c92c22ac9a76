package entity

import "time"

// Proveedor representa un proveedor externo que alquila equipos o presta servicios.
type Proveedor struct {
	ID            string
	RUC           string
	RazonSocial   string
	Contacto      string
	Email         string
	Telefono      string
	Estado        bool
	CreadoPor     string
	ModificadoPor string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
