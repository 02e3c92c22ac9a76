package repository

import (
	"context"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain/entity"
)

// FiltroMovimientos filtros opcionales para el libro de movimientos.
type FiltroMovimientos struct {
	EquipoID      string
	ColaboradorID string
	Tipo          string
	Limit         int
	Offset        int
}

// MovimientoRepository puerto de persistencia para movimientos de custodia.
type MovimientoRepository interface {
	Create(m *entity.Movimiento) error
	GetByID(id string) (*entity.Movimiento, error)
	// ListLedger devuelve el libro completo de entregas y devoluciones con los
	// nombres de equipo/colaborador/estado/usuario ya resueltos y, para las
	// entregas, el tiempo en uso calculado contra la devolución siguiente.
	ListLedger(ctx context.Context, f FiltroMovimientos) ([]dto.MovimientoLedgerRow, error)
	SetCorreoEnviado(id string, enviado bool) error
	SetFirmado(id string, urlPdf string) error
	InvalidarFirma(id string) error
}

// HistorialRepository puerto para el rastro de auditoría de equipos (append-only).
type HistorialRepository interface {
	Create(h *entity.HistorialEquipo) error
	ListByEquipo(equipoID string) ([]*entity.HistorialEquipo, error)
}
