package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

type ledgerFijo struct {
	rows []dto.MovimientoLedgerRow
}

func (f *ledgerFijo) Create(*entity.Movimiento) error            { return nil }
func (f *ledgerFijo) GetByID(string) (*entity.Movimiento, error) { return nil, nil }
func (f *ledgerFijo) SetCorreoEnviado(string, bool) error        { return nil }
func (f *ledgerFijo) SetFirmado(string, string) error            { return nil }
func (f *ledgerFijo) InvalidarFirma(string) error                { return nil }
func (f *ledgerFijo) ListLedger(context.Context, repository.FiltroMovimientos) ([]dto.MovimientoLedgerRow, error) {
	return f.rows, nil
}

func TestMovimientosXLSX(t *testing.T) {
	dias := 14
	enviado := true
	repo := &ledgerFijo{rows: []dto.MovimientoLedgerRow{
		{
			Tipo:              entity.MovimientoEntrega,
			CodigoPatrimonial: "EQP-0001",
			Marca:             "Lenovo",
			Modelo:            "ThinkPad T14",
			NumeroSerie:       "SN-001",
			Colaborador:       "María Quispe",
			DNI:               "45678901",
			Fecha:             time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
			IncluyeCargador:   true,
			CorreoEnviado:     &enviado,
			TiempoUsoDias:     &dias,
			Usuario:           "admin",
		},
		{
			Tipo:              entity.MovimientoDevolucion,
			CodigoPatrimonial: "EQP-0001",
			Marca:             "Lenovo",
			Modelo:            "ThinkPad T14",
			NumeroSerie:       "SN-001",
			Colaborador:       "María Quispe",
			DNI:               "45678901",
			Fecha:             time.Date(2026, 2, 15, 9, 0, 0, 0, time.UTC),
			Motivo:            "cese",
			EstadoEquipo:      "Operativo",
			Usuario:           "admin",
		},
	}}
	uc := NewExportUseCase(repo)

	data, err := uc.MovimientosXLSX(context.Background(), repository.FiltroMovimientos{})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	// El archivo debe poder reabrirse y contener cabecera + dos filas de datos.
	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Movimientos")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Tipo", rows[0][0])
	assert.Equal(t, "entrega", rows[1][0])
	assert.Equal(t, "EQP-0001", rows[1][1])
	assert.Equal(t, "2026-02-01", rows[1][7])
	assert.Equal(t, "Sí", rows[1][8])  // cargador
	assert.Equal(t, "Sí", rows[1][12]) // correo enviado
	assert.Equal(t, "14", rows[1][13]) // días en uso
	assert.Equal(t, "devolucion", rows[2][0])
	assert.Equal(t, "cese", rows[2][9])
}

func TestMovimientosXLSX_SinFilas(t *testing.T) {
	uc := NewExportUseCase(&ledgerFijo{})

	data, err := uc.MovimientosXLSX(context.Background(), repository.FiltroMovimientos{})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Movimientos")
	require.NoError(t, err)
	require.Len(t, rows, 1) // solo la cabecera
}
