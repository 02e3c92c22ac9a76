package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// ServicioRepository puerto de persistencia para servicios, su libro de pagos y su
// log de auditoría de texto libre.
type ServicioRepository interface {
	Create(s *entity.Servicio) error
	GetByID(id string) (*entity.Servicio, error)
	List(soloActivos bool) ([]*entity.Servicio, error)
	Update(s *entity.Servicio) error
	SetEstado(id string, estado bool, modificadoPor string) error

	CreatePago(p *entity.PagoServicio) error
	GetPagoByID(id string) (*entity.PagoServicio, error)
	ListPagos(servicioID string) ([]*entity.PagoServicio, error)
	AnularPago(id string) error

	CreateAuditoria(a *entity.AuditoriaServicio) error
	ListAuditoria(servicioID string) ([]*entity.AuditoriaServicio, error)
}
