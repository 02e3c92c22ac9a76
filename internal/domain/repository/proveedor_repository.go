package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// ProveedorRepository puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Create(p *entity.Proveedor) error
	GetByID(id string) (*entity.Proveedor, error)
	GetByRUC(ruc string) (*entity.Proveedor, error)
	List(soloActivos bool) ([]*entity.Proveedor, error)
	Update(p *entity.Proveedor) error
	SetEstado(id string, estado bool, modificadoPor string) error
}
