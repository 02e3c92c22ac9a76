package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// EmpresaRepository puerto de persistencia para empresas.
type EmpresaRepository interface {
	Create(e *entity.Empresa) error
	GetByID(id string) (*entity.Empresa, error)
	GetByRUC(ruc string) (*entity.Empresa, error)
	List(soloActivas bool) ([]*entity.Empresa, error)
	Update(e *entity.Empresa) error
	SetEstado(id string, estado bool, modificadoPor string) error
}
