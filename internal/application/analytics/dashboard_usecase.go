// Package analytics contiene el caso de uso del dashboard: consultas read-only
// agregadas, ejecutadas en paralelo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain/repository"
)

const mesesHistorico = 6 // meses del gráfico de movimientos

// DashboardUseCase arma el resumen del dashboard.
//
// Fuente de datos: AnalyticsRepository (consultas read-only). No accede
// directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cinco consultas en paralelo: totales de equipos, colaboradores activos,
// entregas abiertas, costo mensual de servicios y movimientos por mes.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()
	desde := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(mesesHistorico - 1), 0)

	type equiposResult struct {
		totales dto.TotalesEquiposDTO
		err     error
	}
	type intResult struct {
		n   int
		err error
	}
	type costoResult struct {
		costo decimal.Decimal
		err   error
	}
	type mesesResult struct {
		meses []dto.MovimientosMesDTO
		err   error
	}

	equiposCh := make(chan equiposResult, 1)
	colabCh := make(chan intResult, 1)
	entregasCh := make(chan intResult, 1)
	costoCh := make(chan costoResult, 1)
	mesesCh := make(chan mesesResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetTotalesEquipos(ctx)
		equiposCh <- equiposResult{t, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.GetColaboradoresActivos(ctx)
		colabCh <- intResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.GetEntregasAbiertas(ctx)
		entregasCh <- intResult{n, err}
	}()
	go func() {
		c, err := uc.analyticsRepo.GetCostoMensualServicios(ctx)
		costoCh <- costoResult{c, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetMovimientosPorMes(ctx, desde)
		mesesCh <- mesesResult{m, err}
	}()

	equipos := <-equiposCh
	colab := <-colabCh
	entregas := <-entregasCh
	costo := <-costoCh
	meses := <-mesesCh

	for _, err := range []error{equipos.err, colab.err, entregas.err, costo.err, meses.err} {
		if err != nil {
			return nil, fmt.Errorf("dashboard: %w", err)
		}
	}

	return &dto.DashboardSummaryDTO{
		Equipos:               equipos.totales,
		ColaboradoresActivos:  colab.n,
		EntregasAbiertas:      entregas.n,
		CostoMensualServicios: costo.costo,
		MovimientosPorMes:     meses.meses,
	}, nil
}
