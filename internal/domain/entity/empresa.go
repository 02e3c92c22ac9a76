package entity

import "time"

// Empresa representa una empresa del grupo a la que pertenecen colaboradores y equipos.
// RUC es único; Estado false equivale a baja lógica.
type Empresa struct {
	ID            string
	RUC           string
	RazonSocial   string
	Direccion     string
	Telefono      string
	Estado        bool
	CreadoPor     string // usuario que registró
	ModificadoPor string // último usuario que modificó
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
