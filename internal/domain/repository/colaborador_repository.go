package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// ColaboradorRepository puerto de persistencia para colaboradores.
type ColaboradorRepository interface {
	Create(c *entity.Colaborador) error
	GetByID(id string) (*entity.Colaborador, error)
	GetByDNI(dni string) (*entity.Colaborador, error)
	List(soloActivos bool) ([]*entity.Colaborador, error)
	Update(c *entity.Colaborador) error
	SetEstado(id string, estado bool, modificadoPor string) error
}
