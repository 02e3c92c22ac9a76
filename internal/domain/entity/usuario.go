package entity

import "time"

// Roles válidos para Usuario.
const (
	RolAdmin   = "admin"
	RolSoporte = "soporte"
	RolLectura = "lectura"
)

// Usuario representa un usuario administrador del sistema.
type Usuario struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Nombre       string
	Rol          string // admin, soporte, lectura
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
