// Package pdf implementa la generación del acta de entrega y devolución de
// equipos en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón Social + RUC  │  Tipo de acta + Fecha        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  COLABORADOR: Nombre + DNI + cargo                          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Código | Equipo | N° Serie | Estado | Cargador      │
//	│  ESPECIFICACIONES: clave: valor                             │
//	│  OBSERVACIONES / MOTIVO                                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FIRMAS: Entrega ___________   Recibe ___________           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"sort"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	appcustody "github.com/velatec/activos-api/internal/application/custody"
	"github.com/velatec/activos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ appcustody.ActaGenerator = (*MarotoActaGenerator)(nil)

// MarotoActaGenerator implementa custody.ActaGenerator usando Maroto v2.
type MarotoActaGenerator struct{}

// NewMarotoActaGenerator construye el generador de actas.
func NewMarotoActaGenerator() *MarotoActaGenerator { return &MarotoActaGenerator{} }

// GenerarActa genera el PDF del acta y devuelve sus bytes.
func (g *MarotoActaGenerator) GenerarActa(
	_ context.Context,
	mov *entity.Movimiento,
	equipo *entity.Equipo,
	colaborador *entity.Colaborador,
	empresa *entity.Empresa,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(tituloActa(mov.Tipo), true).
		WithAuthor(empresa.RazonSocial, true).
		Build()

	m := maroto.New(cfg)

	// Header principal
	m.AddRows(headerRow(mov, empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(colaboradorRow(colaborador))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Detalle del equipo
	m.AddRows(tableHeaderRow())
	m.AddRows(equipoRow(mov, equipo))
	for _, r := range especificacionesRows(equipo) {
		m.AddRows(r)
	}

	// Observaciones y motivo
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range observacionesRows(mov) {
		m.AddRows(r)
	}

	// Firmas
	m.AddRows(line.NewRow(6))
	entrega, recibe := empresa.RazonSocial, colaborador.NombreCompleto()
	if mov.Tipo == entity.MovimientoDevolucion {
		entrega, recibe = recibe, entrega
	}
	m.AddRows(firmasRow(entrega, recibe))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar acta: %w", err)
	}
	return doc.GetBytes(), nil
}

func tituloActa(tipo string) string {
	if tipo == entity.MovimientoDevolucion {
		return "ACTA DE DEVOLUCIÓN DE EQUIPO"
	}
	return "ACTA DE ENTREGA DE EQUIPO"
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: Razón social + RUC (izq) y tipo de acta + fecha (der).
func headerRow(mov *entity.Movimiento, empresa *entity.Empresa) core.Row {
	fecha := mov.Fecha.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.RazonSocial, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("RUC: "+empresa.RUC, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(tituloActa(mov.Tipo), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// colaboradorRow: datos del colaborador que recibe o devuelve.
func colaboradorRow(c *entity.Colaborador) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("COLABORADOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(c.NombreCompleto(), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("DNI: %s   |   Cargo: %s   |   Email: %s",
				c.DNI,
				nonEmpty(c.Cargo, "—"),
				nonEmpty(c.Email, "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera del detalle del equipo.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Código", 2, align.Left),
		h("Equipo", 4, align.Left),
		h("N° Serie", 3, align.Left),
		h("Propiedad", 2, align.Center),
		h("Cargador", 1, align.Center),
	)
}

// equipoRow: la fila del equipo entregado o devuelto.
func equipoRow(mov *entity.Movimiento, e *entity.Equipo) core.Row {
	propiedad := "Propio"
	if !e.EsPropio {
		propiedad = "Alquilado"
	}
	cargador := "No"
	if mov.IncluyeCargador {
		cargador = "Sí"
	}
	return row.New(7).Add(
		col.New(2).Add(text.New(e.CodigoPatrimonial, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(4).Add(text.New(strings.TrimSpace(e.Marca+" "+e.Modelo), props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(3).Add(text.New(e.NumeroSerie, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(2).Add(text.New(propiedad, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(1).Add(text.New(cargador, props.Text{Size: 8, Align: align.Center, Top: 1})),
	)
}

// especificacionesRows: una fila por especificación técnica, en orden estable.
func especificacionesRows(e *entity.Equipo) []core.Row {
	if len(e.Especificaciones) == 0 {
		return nil
	}
	claves := make([]string, 0, len(e.Especificaciones))
	for k := range e.Especificaciones {
		claves = append(claves, k)
	}
	sort.Strings(claves)

	result := make([]core.Row, 0, len(claves)+1)
	result = append(result, row.New(6).Add(
		col.New(12).Add(text.New("ESPECIFICACIONES", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		})),
	))
	for _, k := range claves {
		result = append(result, row.New(5).Add(
			col.New(3).Add(text.New(k+":", props.Text{Size: 8, Top: 1, Left: 2, Color: colorGray})),
			col.New(9).Add(text.New(e.Especificaciones[k], props.Text{Size: 8, Top: 1})),
		))
	}
	return result
}

// observacionesRows: observaciones del movimiento y, en devoluciones, el motivo.
func observacionesRows(mov *entity.Movimiento) []core.Row {
	var result []core.Row
	if mov.Tipo == entity.MovimientoDevolucion && mov.Motivo != "" {
		result = append(result, row.New(8).Add(
			col.New(12).Add(
				text.New("MOTIVO DE LA DEVOLUCIÓN", props.Text{
					Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
				}),
				text.New(mov.Motivo, props.Text{Size: 8, Top: 6}),
			),
		))
	}
	result = append(result, row.New(8).Add(
		col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(mov.Observaciones, "Ninguna."), props.Text{Size: 8, Top: 6}),
		),
	))
	return result
}

// firmasRow: líneas de firma de quien entrega y quien recibe.
func firmasRow(entrega, recibe string) core.Row {
	return row.New(22).Add(
		col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
			text.New("Entrega: "+entrega, props.Text{Size: 8, Align: align.Center, Top: 14, Color: colorGray}),
		),
		col.New(2),
		col.New(5).Add(
			text.New("_______________________________", props.Text{Size: 9, Align: align.Center, Top: 8}),
			text.New("Recibe: "+recibe, props.Text{Size: 8, Align: align.Center, Top: 14, Color: colorGray}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
