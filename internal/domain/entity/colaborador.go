package entity

import (
	"strings"
	"time"
)

// Colaborador representa un empleado que puede recibir equipos en custodia.
// DNI es único; Estado false equivale a baja lógica.
type Colaborador struct {
	ID            string
	EmpresaID     string
	DNI           string
	Nombres       string
	Apellidos     string
	Email         string
	Telefono      string
	Cargo         string
	Genero        string // "m" | "f" (solo presentación en actas y correos)
	Estado        bool
	CreadoPor     string
	ModificadoPor string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NombreCompleto devuelve nombres y apellidos concatenados.
func (c *Colaborador) NombreCompleto() string {
	if c.Apellidos == "" {
		return c.Nombres
	}
	return c.Nombres + " " + c.Apellidos
}

// FraseDestinatario devuelve la frase concordada en género para actas y correos:
// "a la colaboradora" o "al colaborador". Es solo presentación, no un invariante
// de dominio; acepta los valores históricos del campo género.
func (c *Colaborador) FraseDestinatario() string {
	switch strings.ToLower(strings.TrimSpace(c.Genero)) {
	case "f", "mujer", "femenino":
		return "a la colaboradora"
	default:
		return "al colaborador"
	}
}
