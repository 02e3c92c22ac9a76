// Package reports genera el reporte XLSX del libro de movimientos.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// ExportUseCase exporta el libro de movimientos a Excel.
type ExportUseCase struct {
	movRepo repository.MovimientoRepository
}

// NewExportUseCase construye el caso de uso.
func NewExportUseCase(movRepo repository.MovimientoRepository) *ExportUseCase {
	return &ExportUseCase{movRepo: movRepo}
}

var cabeceras = []interface{}{
	"Tipo", "Código patrimonial", "Marca", "Modelo", "N° serie",
	"Colaborador", "DNI", "Fecha", "Cargador", "Motivo",
	"Estado equipo", "Firma válida", "Correo enviado", "Días en uso",
	"Registrado por", "Observaciones",
}

// MovimientosXLSX arma el archivo Excel con el libro completo de movimientos y
// devuelve sus bytes.
func (uc *ExportUseCase) MovimientosXLSX(ctx context.Context, f repository.FiltroMovimientos) ([]byte, error) {
	rows, err := uc.movRepo.ListLedger(ctx, f)
	if err != nil {
		return nil, err
	}

	file := excelize.NewFile()
	const hoja = "Movimientos"
	file.SetSheetName("Sheet1", hoja)
	if err := file.SetSheetRow(hoja, "A1", &cabeceras); err != nil {
		return nil, fmt.Errorf("excel: cabeceras: %w", err)
	}
	if style, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		_ = file.SetCellStyle(hoja, "A1", "P1", style)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		valores := filaDe(row)
		if err := file.SetSheetRow(hoja, cell, &valores); err != nil {
			return nil, fmt.Errorf("excel: fila %d: %w", i+2, err)
		}
	}

	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func filaDe(r dto.MovimientoLedgerRow) []interface{} {
	cargador := "No"
	if r.IncluyeCargador {
		cargador = "Sí"
	}
	return []interface{}{
		r.Tipo,
		r.CodigoPatrimonial,
		r.Marca,
		r.Modelo,
		r.NumeroSerie,
		r.Colaborador,
		r.DNI,
		r.Fecha.Format(time.DateOnly),
		cargador,
		r.Motivo,
		r.EstadoEquipo,
		boolOpcional(r.FirmaValida),
		boolOpcional(r.CorreoEnviado),
		intOpcional(r.TiempoUsoDias),
		r.Usuario,
		r.Observaciones,
	}
}

func boolOpcional(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "Sí"
	default:
		return "No"
	}
}

func intOpcional(n *int) interface{} {
	if n == nil {
		return ""
	}
	return *n
}
