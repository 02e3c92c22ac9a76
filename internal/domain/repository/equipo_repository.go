package repository

import "github.com/velatec/activos-api/internal/domain/entity"

// FiltroEquipos filtros opcionales para el listado de equipos.
type FiltroEquipos struct {
	EmpresaID      string
	Disponible     *bool
	EsPropio       *bool
	EstadoFisicoID *int
	Marca          string
	Limit          int
	Offset         int
}

// EquipoRepository puerto de persistencia para equipos.
type EquipoRepository interface {
	Create(e *entity.Equipo) error
	GetByID(id string) (*entity.Equipo, error)
	GetBySerie(numeroSerie string) (*entity.Equipo, error)
	List(f FiltroEquipos) ([]*entity.Equipo, error)
	Update(e *entity.Equipo) error
	// ClaimParaEntrega marca el equipo como no disponible solo si estaba disponible
	// (UPDATE condicional). Devuelve (nil, nil) si el equipo no existía o ya estaba
	// asignado: la distinción la resuelve el caso de uso con un GetByID posterior.
	ClaimParaEntrega(id string) (*entity.Equipo, error)
	// UpdateCustodia sobreescribe estado físico, disponibilidad y observaciones
	// (devoluciones y cambios de disponibilidad).
	UpdateCustodia(id string, estadoFisicoID int, disponible bool, observaciones *string, modificadoPor string) error
	ListMarcas() ([]string, error)
	ListEstadosFisicos() ([]entity.EstadoFisico, error)
}

// SecuenciaRepository asigna valores de la secuencia de códigos patrimoniales por
// prefijo, de forma atómica (UPSERT ... RETURNING sobre secuencias_codigo). Debe
// usarse dentro de la misma transacción que inserta el equipo.
type SecuenciaRepository interface {
	Next(prefijo string) (int64, error)
}
