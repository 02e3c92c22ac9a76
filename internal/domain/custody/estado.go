// Package custody modela el ciclo de vida de custodia de un equipo como una
// máquina de estados explícita, en lugar de derivar el comportamiento de
// comparaciones sueltas entre estado_fisico_id y disponible repartidas por los
// controladores.
//
// Estados posibles:
//
//	Disponible      — operativo y sin asignar (estado físico Operativo, disponible)
//	Asignado        — operativo y en custodia de un colaborador
//	EnMantenimiento — estado físico no operativo, fuera de circulación
//	Inactivo        — dado de baja manualmente
//
// Invariante global: disponible == true implica estado físico Operativo.
package custody

import (
	"fmt"

	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
)

// Estado es el estado de custodia de un equipo.
type Estado int

const (
	Disponible Estado = iota
	Asignado
	EnMantenimiento
	Inactivo
)

// String implementa fmt.Stringer.
func (e Estado) String() string {
	switch e {
	case Disponible:
		return "DISPONIBLE"
	case Asignado:
		return "ASIGNADO"
	case EnMantenimiento:
		return "EN_MANTENIMIENTO"
	case Inactivo:
		return "INACTIVO"
	}
	return fmt.Sprintf("Estado(%d)", int(e))
}

// De deriva el estado de custodia a partir de los campos persistidos del equipo.
func De(e *entity.Equipo) Estado {
	switch {
	case e.Disponible:
		return Disponible
	case e.EstadoFisicoID != entity.EstadoOperativo:
		return EnMantenimiento
	default:
		return Asignado
	}
}

// Resultado es el efecto de una transición sobre los campos persistidos del equipo.
type Resultado struct {
	EstadoFisicoID int
	Disponible     bool
}

// AlRegistrar calcula la disponibilidad inicial de un equipo recién registrado:
// disponible solo si el estado físico declarado es Operativo.
func AlRegistrar(estadoFisicoID int) Resultado {
	return Resultado{
		EstadoFisicoID: estadoFisicoID,
		Disponible:     estadoFisicoID == entity.EstadoOperativo,
	}
}

// AlEntregar valida la entrega a un colaborador. Solo un equipo Disponible puede
// entregarse; el resultado deja el equipo Asignado (no disponible, operativo).
func AlEntregar(e *entity.Equipo) (Resultado, error) {
	if De(e) != Disponible {
		return Resultado{}, domain.ErrEquipoNoDisponible
	}
	return Resultado{EstadoFisicoID: entity.EstadoOperativo, Disponible: false}, nil
}

// AlDevolver calcula el estado resultante de una devolución con el estado físico
// reportado: el equipo vuelve a circulación solo si regresó Operativo.
func AlDevolver(nuevoEstadoFisicoID int) Resultado {
	return Resultado{
		EstadoFisicoID: nuevoEstadoFisicoID,
		Disponible:     nuevoEstadoFisicoID == entity.EstadoOperativo,
	}
}

// AlReactivar fuerza el equipo a Operativo y disponible, sin importar el estado
// previo. Es la simplificación documentada del flujo: no existe un paso de
// reparación explícito antes de reactivar.
func AlReactivar() Resultado {
	return Resultado{EstadoFisicoID: entity.EstadoOperativo, Disponible: true}
}

// AlDesactivar marca el equipo como no disponible conservando su estado físico.
func AlDesactivar(e *entity.Equipo) Resultado {
	return Resultado{EstadoFisicoID: e.EstadoFisicoID, Disponible: false}
}

// Valido verifica el invariante disponible ⇒ operativo sobre un par persistido.
func Valido(estadoFisicoID int, disponible bool) bool {
	return !disponible || estadoFisicoID == entity.EstadoOperativo
}
