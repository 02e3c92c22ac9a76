package dto

import "time"

// CreateColaboradorRequest alta de colaborador.
type CreateColaboradorRequest struct {
	EmpresaID string `json:"empresa_id" validate:"required,uuid4"`
	DNI       string `json:"dni" validate:"required,numeric,len=8"`
	Nombres   string `json:"nombres" validate:"required"`
	Apellidos string `json:"apellidos" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telefono  string `json:"telefono"`
	Cargo     string `json:"cargo"`
	Genero    string `json:"genero" validate:"omitempty,oneof=m f masculino femenino mujer"`
}

// UpdateColaboradorRequest cambios parciales sobre un colaborador.
type UpdateColaboradorRequest struct {
	EmpresaID *string `json:"empresa_id" validate:"omitempty,uuid4"`
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Telefono  *string `json:"telefono"`
	Cargo     *string `json:"cargo"`
	Genero    *string `json:"genero" validate:"omitempty,oneof=m f masculino femenino mujer"`
}

// ColaboradorResponse representación de un colaborador con el nombre de su empresa.
type ColaboradorResponse struct {
	ID        string    `json:"id"`
	EmpresaID string    `json:"empresa_id"`
	Empresa   string    `json:"empresa,omitempty"`
	DNI       string    `json:"dni"`
	Nombres   string    `json:"nombres"`
	Apellidos string    `json:"apellidos"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	Cargo     string    `json:"cargo"`
	Genero    string    `json:"genero"`
	Estado    bool      `json:"estado"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ColaboradorListResponse listado de colaboradores.
type ColaboradorListResponse struct {
	Items []ColaboradorResponse `json:"items"`
}
