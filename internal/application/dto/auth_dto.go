package dto

import "time"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse token emitido más datos del usuario.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// RegisterRequest alta de usuario (solo admin).
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nombre   string `json:"nombre" validate:"required"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin soporte lectura"`
}

// UpdatePerfilRequest cambios sobre el perfil propio.
type UpdatePerfilRequest struct {
	Nombre *string `json:"nombre"`
	Email  *string `json:"email" validate:"omitempty,email"`
}

// UpdatePasswordRequest cambio de contraseña de un usuario.
type UpdatePasswordRequest struct {
	Password string `json:"password" validate:"required,min=8"`
}

// UpdateUserStatusRequest activación/desactivación de un usuario.
type UpdateUserStatusRequest struct {
	Activo *bool `json:"activo" validate:"required"`
}

// UsuarioResponse representación pública de un usuario (sin hash).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	Activo    bool      `json:"activo"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UsuarioListResponse listado de usuarios.
type UsuarioListResponse struct {
	Items []UsuarioResponse `json:"items"`
}
