package dto

import "time"

// CreateProveedorRequest alta de proveedor.
type CreateProveedorRequest struct {
	RUC         string `json:"ruc" validate:"required,numeric,len=11"`
	RazonSocial string `json:"razon_social" validate:"required"`
	Contacto    string `json:"contacto"`
	Email       string `json:"email" validate:"omitempty,email"`
	Telefono    string `json:"telefono"`
}

// UpdateProveedorRequest cambios parciales sobre un proveedor.
type UpdateProveedorRequest struct {
	RazonSocial *string `json:"razon_social"`
	Contacto    *string `json:"contacto"`
	Email       *string `json:"email" validate:"omitempty,email"`
	Telefono    *string `json:"telefono"`
}

// ProveedorResponse representación de un proveedor.
type ProveedorResponse struct {
	ID          string    `json:"id"`
	RUC         string    `json:"ruc"`
	RazonSocial string    `json:"razon_social"`
	Contacto    string    `json:"contacto"`
	Email       string    `json:"email"`
	Telefono    string    `json:"telefono"`
	Estado      bool      `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProveedorListResponse listado de proveedores.
type ProveedorListResponse struct {
	Items []ProveedorResponse `json:"items"`
}
