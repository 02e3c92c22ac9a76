package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velatec/activos-api/internal/application/dto"
)

// AnalyticsRepository consultas read-only para el dashboard.
type AnalyticsRepository interface {
	// GetTotalesEquipos cuenta equipos totales, disponibles, asignados y en
	// mantenimiento.
	GetTotalesEquipos(ctx context.Context) (dto.TotalesEquiposDTO, error)
	// GetColaboradoresActivos cuenta colaboradores con estado activo.
	GetColaboradoresActivos(ctx context.Context) (int, error)
	// GetEntregasAbiertas cuenta entregas sin devolución posterior.
	GetEntregasAbiertas(ctx context.Context) (int, error)
	// GetCostoMensualServicios suma el costo mensual de los servicios activos.
	GetCostoMensualServicios(ctx context.Context) (decimal.Decimal, error)
	// GetMovimientosPorMes cuenta movimientos por mes desde la fecha indicada.
	GetMovimientosPorMes(ctx context.Context, desde time.Time) ([]dto.MovimientosMesDTO, error)
}
