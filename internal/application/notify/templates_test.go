package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velatec/activos-api/internal/domain/entity"
)

func movimientoDePrueba(tipo string) (*entity.Movimiento, *entity.Equipo, *entity.Colaborador) {
	mov := &entity.Movimiento{
		ID:              "mov-1",
		Tipo:            tipo,
		IncluyeCargador: true,
		Observaciones:   "entregado en oficina central",
		Fecha:           time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
	}
	equipo := &entity.Equipo{
		CodigoPatrimonial: "EQP-0042",
		Marca:             "Dell",
		Modelo:            "Latitude 5440",
		NumeroSerie:       "SN-XYZ",
	}
	colaborador := &entity.Colaborador{
		Nombres:   "Ana",
		Apellidos: "Torres",
		Genero:    "f",
	}
	return mov, equipo, colaborador
}

func TestRenderCorreo_Entrega(t *testing.T) {
	mov, equipo, colaborador := movimientoDePrueba(entity.MovimientoEntrega)

	asunto, html, err := RenderCorreo(mov, equipo, colaborador)
	require.NoError(t, err)

	assert.Equal(t, "Acta de entrega de equipo EQP-0042", asunto)
	assert.Contains(t, html, "Acta de Entrega de Equipo")
	assert.Contains(t, html, "a la colaboradora") // concordancia de género
	assert.Contains(t, html, "Ana Torres")
	assert.Contains(t, html, "EQP-0042")
	assert.Contains(t, html, "Dell Latitude 5440")
	assert.Contains(t, html, "15/03/2026")
	assert.Contains(t, html, "Sí") // incluye cargador
	assert.Contains(t, html, "entregado en oficina central")
}

func TestRenderCorreo_Devolucion(t *testing.T) {
	mov, equipo, colaborador := movimientoDePrueba(entity.MovimientoDevolucion)
	mov.Motivo = "fin de contrato"
	mov.IncluyeCargador = false

	asunto, html, err := RenderCorreo(mov, equipo, colaborador)
	require.NoError(t, err)

	assert.Equal(t, "Acta de devolución de equipo EQP-0042", asunto)
	assert.Contains(t, html, "Acta de Devolución de Equipo")
	assert.Contains(t, html, "fin de contrato")
	assert.Contains(t, html, "No")
}

func TestRenderCorreo_EscapaHTML(t *testing.T) {
	mov, equipo, colaborador := movimientoDePrueba(entity.MovimientoEntrega)
	mov.Observaciones = `<script>alert("x")</script>`

	_, html, err := RenderCorreo(mov, equipo, colaborador)
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
}

func TestNombreAdjunto(t *testing.T) {
	assert.Equal(t, "acta-entrega.pdf", nombreAdjunto(&entity.Movimiento{Tipo: entity.MovimientoEntrega}))
	assert.Equal(t, "acta-devolucion.pdf", nombreAdjunto(&entity.Movimiento{Tipo: entity.MovimientoDevolucion}))
}
