package dto

import "time"

// CreateEmpresaRequest alta de empresa.
type CreateEmpresaRequest struct {
	RUC         string `json:"ruc" validate:"required,numeric,len=11"`
	RazonSocial string `json:"razon_social" validate:"required"`
	Direccion   string `json:"direccion"`
	Telefono    string `json:"telefono"`
}

// UpdateEmpresaRequest cambios parciales sobre una empresa.
type UpdateEmpresaRequest struct {
	RazonSocial *string `json:"razon_social"`
	Direccion   *string `json:"direccion"`
	Telefono    *string `json:"telefono"`
}

// EmpresaResponse representación de una empresa.
type EmpresaResponse struct {
	ID          string    `json:"id"`
	RUC         string    `json:"ruc"`
	RazonSocial string    `json:"razon_social"`
	Direccion   string    `json:"direccion"`
	Telefono    string    `json:"telefono"`
	Estado      bool      `json:"estado"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EmpresaListResponse listado de empresas.
type EmpresaListResponse struct {
	Items []EmpresaResponse `json:"items"`
}
