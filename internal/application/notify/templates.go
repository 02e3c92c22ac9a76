package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/velatec/activos-api/internal/domain/entity"
)

// Plantillas HTML de los correos de actas. Layout sencillo: encabezado, tabla
// de datos del equipo y pie con la nota de firma.

const baseTmpl = `<!DOCTYPE html>
<html lang="es">
<body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto;">
  <div style="background: #00467f; color: #fff; padding: 16px 24px;">
    <h2 style="margin: 0;">{{.Titulo}}</h2>
  </div>
  <div style="padding: 24px;">
    <p>Estimado(a) <strong>{{.Colaborador}}</strong>,</p>
    <p>{{.Introduccion}}</p>
    <table style="border-collapse: collapse; width: 100%;">
      <tr><td style="padding: 6px; border: 1px solid #ddd;"><strong>Código patrimonial</strong></td><td style="padding: 6px; border: 1px solid #ddd;">{{.Codigo}}</td></tr>
      <tr><td style="padding: 6px; border: 1px solid #ddd;"><strong>Equipo</strong></td><td style="padding: 6px; border: 1px solid #ddd;">{{.Equipo}}</td></tr>
      <tr><td style="padding: 6px; border: 1px solid #ddd;"><strong>N° de serie</strong></td><td style="padding: 6px; border: 1px solid #ddd;">{{.Serie}}</td></tr>
      <tr><td style="padding: 6px; border: 1px solid #ddd;"><strong>Fecha</strong></td><td style="padding: 6px; border: 1px solid #ddd;">{{.Fecha}}</td></tr>
      <tr><td style="padding: 6px; border: 1px solid #ddd;"><strong>Incluye cargador</strong></td><td style="padding: 6px; border: 1px solid #ddd;">{{.Cargador}}</td></tr>
      {{if .Motivo}}<tr><td style="padding: 6px; border: 1px solid #ddd;"><strong>Motivo</strong></td><td style="padding: 6px; border: 1px solid #ddd;">{{.Motivo}}</td></tr>{{end}}
    </table>
    {{if .Observaciones}}<p><strong>Observaciones:</strong> {{.Observaciones}}</p>{{end}}
    <p>Se adjunta el acta correspondiente. Por favor revísela, fírmela y devuélvala al área de TI.</p>
  </div>
  <div style="background: #f4f4f4; padding: 12px 24px; font-size: 12px; color: #777;">
    Este es un mensaje automático del sistema de gestión de activos. No responda a este correo.
  </div>
</body>
</html>`

var correoActa = template.Must(template.New("acta").Parse(baseTmpl))

type datosCorreo struct {
	Titulo        string
	Introduccion  string
	Colaborador   string
	Codigo        string
	Equipo        string
	Serie         string
	Fecha         string
	Cargador      string
	Motivo        string
	Observaciones string
}

// RenderCorreo genera asunto y cuerpo HTML del correo según el tipo de movimiento.
func RenderCorreo(mov *entity.Movimiento, equipo *entity.Equipo, colaborador *entity.Colaborador) (asunto, html string, err error) {
	cargador := "No"
	if mov.IncluyeCargador {
		cargador = "Sí"
	}
	datos := datosCorreo{
		Colaborador:   colaborador.NombreCompleto(),
		Codigo:        equipo.CodigoPatrimonial,
		Equipo:        equipo.Marca + " " + equipo.Modelo,
		Serie:         equipo.NumeroSerie,
		Fecha:         mov.Fecha.Format("02/01/2006"),
		Cargador:      cargador,
		Observaciones: mov.Observaciones,
	}
	switch mov.Tipo {
	case entity.MovimientoEntrega:
		asunto = fmt.Sprintf("Acta de entrega de equipo %s", equipo.CodigoPatrimonial)
		datos.Titulo = "Acta de Entrega de Equipo"
		datos.Introduccion = fmt.Sprintf("Se ha registrado la entrega del siguiente equipo %s.",
			colaborador.FraseDestinatario())
	case entity.MovimientoDevolucion:
		asunto = fmt.Sprintf("Acta de devolución de equipo %s", equipo.CodigoPatrimonial)
		datos.Titulo = "Acta de Devolución de Equipo"
		datos.Introduccion = "Se ha registrado la devolución del siguiente equipo."
		datos.Motivo = mov.Motivo
	default:
		return "", "", fmt.Errorf("tipo de movimiento desconocido: %q", mov.Tipo)
	}

	var buf bytes.Buffer
	if err := correoActa.Execute(&buf, datos); err != nil {
		return "", "", fmt.Errorf("render plantilla: %w", err)
	}
	return asunto, buf.String(), nil
}
