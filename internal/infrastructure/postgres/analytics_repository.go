package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas read-only de agregados para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de consultas del dashboard.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// GetTotalesEquipos cuenta equipos por situación en una sola pasada.
func (r *AnalyticsRepo) GetTotalesEquipos(ctx context.Context) (dto.TotalesEquiposDTO, error) {
	var t dto.TotalesEquiposDTO
	err := r.q.QueryRow(ctx, `
		SELECT count(*),
			count(*) FILTER (WHERE disponible),
			count(*) FILTER (WHERE NOT disponible AND estado_fisico_id = $1),
			count(*) FILTER (WHERE estado_fisico_id = $2),
			count(*) FILTER (WHERE es_propio),
			count(*) FILTER (WHERE NOT es_propio)
		FROM equipos`, entity.EstadoOperativo, entity.EstadoMantenimiento).Scan(
		&t.Total, &t.Disponibles, &t.Asignados, &t.EnMantenimiento, &t.Propios, &t.Alquilados,
	)
	if err != nil {
		return dto.TotalesEquiposDTO{}, fmt.Errorf("totales equipos: %w", err)
	}
	return t, nil
}

// GetColaboradoresActivos cuenta colaboradores con estado activo.
func (r *AnalyticsRepo) GetColaboradoresActivos(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT count(*) FROM colaboradores WHERE estado = true`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("colaboradores activos: %w", err)
	}
	return n, nil
}

// GetEntregasAbiertas cuenta entregas sin devolución posterior del mismo par
// equipo/colaborador.
func (r *AnalyticsRepo) GetEntregasAbiertas(ctx context.Context) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `
		SELECT count(*)
		FROM movimientos m
		WHERE m.tipo = $1
		  AND NOT EXISTS (
			SELECT 1 FROM movimientos d
			WHERE d.tipo = $2 AND d.equipo_id = m.equipo_id
			  AND d.colaborador_id = m.colaborador_id AND d.fecha >= m.fecha
		  )`, entity.MovimientoEntrega, entity.MovimientoDevolucion).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("entregas abiertas: %w", err)
	}
	return n, nil
}

// GetCostoMensualServicios suma el costo mensual de los servicios activos.
func (r *AnalyticsRepo) GetCostoMensualServicios(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(sum(costo_mensual), 0) FROM servicios WHERE estado = true`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("costo mensual servicios: %w", err)
	}
	return total, nil
}

// GetMovimientosPorMes cuenta entregas y devoluciones por mes calendario desde la
// fecha indicada.
func (r *AnalyticsRepo) GetMovimientosPorMes(ctx context.Context, desde time.Time) ([]dto.MovimientosMesDTO, error) {
	rows, err := r.q.Query(ctx, `
		SELECT to_char(date_trunc('month', fecha), 'YYYY-MM') AS mes,
			count(*) FILTER (WHERE tipo = $1),
			count(*) FILTER (WHERE tipo = $2)
		FROM movimientos
		WHERE fecha >= $3
		GROUP BY 1
		ORDER BY 1`, entity.MovimientoEntrega, entity.MovimientoDevolucion, desde)
	if err != nil {
		return nil, fmt.Errorf("movimientos por mes: %w", err)
	}
	defer rows.Close()
	var list []dto.MovimientosMesDTO
	for rows.Next() {
		var m dto.MovimientosMesDTO
		if err := rows.Scan(&m.Mes, &m.Entregas, &m.Devoluciones); err != nil {
			return nil, fmt.Errorf("scan movimientos mes: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
