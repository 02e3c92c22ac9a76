package custody_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/custody"
	"github.com/velatec/activos-api/internal/domain/entity"
)

func equipoCon(estadoFisicoID int, disponible bool) *entity.Equipo {
	return &entity.Equipo{
		ID:             "00000000-0000-0000-0000-0000000000aa",
		EstadoFisicoID: estadoFisicoID,
		Disponible:     disponible,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Derivación del estado de custodia
// ──────────────────────────────────────────────────────────────────────────────

func TestDe_DerivaEstadoDesdeCamposPersistidos(t *testing.T) {
	casos := []struct {
		nombre         string
		estadoFisicoID int
		disponible     bool
		esperado       custody.Estado
	}{
		{"operativo y disponible", entity.EstadoOperativo, true, custody.Disponible},
		{"operativo y no disponible", entity.EstadoOperativo, false, custody.Asignado},
		{"en mantenimiento", entity.EstadoMantenimiento, false, custody.EnMantenimiento},
		{"averiado", entity.EstadoAveriado, false, custody.EnMantenimiento},
		{"perdido", entity.EstadoPerdido, false, custody.EnMantenimiento},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, custody.De(equipoCon(c.estadoFisicoID, c.disponible)))
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Transiciones
// ──────────────────────────────────────────────────────────────────────────────

// Al registrar, la disponibilidad inicial se deriva del estado físico declarado.
func TestAlRegistrar_DisponibleSoloSiOperativo(t *testing.T) {
	r := custody.AlRegistrar(entity.EstadoOperativo)
	assert.True(t, r.Disponible)
	assert.Equal(t, entity.EstadoOperativo, r.EstadoFisicoID)

	r = custody.AlRegistrar(entity.EstadoAveriado)
	assert.False(t, r.Disponible, "un equipo averiado no puede registrarse disponible")
	assert.Equal(t, entity.EstadoAveriado, r.EstadoFisicoID)
}

// Solo un equipo disponible puede entregarse; el resultado lo deja asignado.
func TestAlEntregar_SoloDesdeDisponible(t *testing.T) {
	r, err := custody.AlEntregar(equipoCon(entity.EstadoOperativo, true))
	require.NoError(t, err)
	assert.False(t, r.Disponible)
	assert.Equal(t, entity.EstadoOperativo, r.EstadoFisicoID)

	_, err = custody.AlEntregar(equipoCon(entity.EstadoOperativo, false))
	assert.ErrorIs(t, err, domain.ErrEquipoNoDisponible,
		"un equipo ya asignado no puede entregarse de nuevo")

	_, err = custody.AlEntregar(equipoCon(entity.EstadoMantenimiento, false))
	assert.ErrorIs(t, err, domain.ErrEquipoNoDisponible,
		"un equipo en mantenimiento no puede entregarse")
}

// Al devolver, el equipo vuelve a circulación solo si regresó operativo.
func TestAlDevolver_DisponibilidadDerivadaDelEstadoReportado(t *testing.T) {
	r := custody.AlDevolver(entity.EstadoOperativo)
	assert.True(t, r.Disponible)

	r = custody.AlDevolver(entity.EstadoAveriado)
	assert.False(t, r.Disponible, "un equipo devuelto averiado queda fuera de circulación")
	assert.Equal(t, entity.EstadoAveriado, r.EstadoFisicoID)
}

// Reactivar fuerza operativo+disponible; desactivar conserva el estado físico.
func TestReactivarYDesactivar(t *testing.T) {
	r := custody.AlReactivar()
	assert.True(t, r.Disponible)
	assert.Equal(t, entity.EstadoOperativo, r.EstadoFisicoID)

	r = custody.AlDesactivar(equipoCon(entity.EstadoAveriado, false))
	assert.False(t, r.Disponible)
	assert.Equal(t, entity.EstadoAveriado, r.EstadoFisicoID,
		"desactivar no debe tocar el estado físico")
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante disponible ⇒ operativo
// ──────────────────────────────────────────────────────────────────────────────

// Toda transición debe producir un par (estado físico, disponible) válido.
func TestTransiciones_PreservanInvariante(t *testing.T) {
	resultados := []custody.Resultado{
		custody.AlRegistrar(entity.EstadoOperativo),
		custody.AlRegistrar(entity.EstadoPerdido),
		custody.AlDevolver(entity.EstadoOperativo),
		custody.AlDevolver(entity.EstadoMantenimiento),
		custody.AlReactivar(),
		custody.AlDesactivar(equipoCon(entity.EstadoOperativo, true)),
	}
	if r, err := custody.AlEntregar(equipoCon(entity.EstadoOperativo, true)); assert.NoError(t, err) {
		resultados = append(resultados, r)
	}
	for _, r := range resultados {
		assert.True(t, custody.Valido(r.EstadoFisicoID, r.Disponible),
			"resultado %+v viola disponible ⇒ operativo", r)
	}
}

func TestValido_DetectaParesInvalidos(t *testing.T) {
	assert.True(t, custody.Valido(entity.EstadoOperativo, true))
	assert.True(t, custody.Valido(entity.EstadoAveriado, false))
	assert.False(t, custody.Valido(entity.EstadoAveriado, true),
		"disponible con estado físico no operativo es inválido")
}

// ──────────────────────────────────────────────────────────────────────────────
// Códigos patrimoniales
// ──────────────────────────────────────────────────────────────────────────────

func TestCodigoPatrimonial_Formato(t *testing.T) {
	assert.Equal(t, "EQP-0001", custody.CodigoPatrimonial(entity.PrefijoPropio, 1))
	assert.Equal(t, "EQAL-0012", custody.CodigoPatrimonial(entity.PrefijoAlquilado, 12))
	assert.Equal(t, "EQP-9999", custody.CodigoPatrimonial(entity.PrefijoPropio, 9999))
	// Más allá de 4 dígitos el código simplemente crece.
	assert.Equal(t, "EQP-10000", custody.CodigoPatrimonial(entity.PrefijoPropio, 10000))
}

func TestPrefijo_SegunPropiedad(t *testing.T) {
	propio := &entity.Equipo{EsPropio: true}
	alquilado := &entity.Equipo{EsPropio: false}
	assert.Equal(t, entity.PrefijoPropio, propio.Prefijo())
	assert.Equal(t, entity.PrefijoAlquilado, alquilado.Prefijo())
}
