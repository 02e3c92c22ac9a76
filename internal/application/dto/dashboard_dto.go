package dto

import "github.com/shopspring/decimal"

// TotalesEquiposDTO conteos de equipos por situación.
type TotalesEquiposDTO struct {
	Total           int `json:"total"`
	Disponibles     int `json:"disponibles"`
	Asignados       int `json:"asignados"`
	EnMantenimiento int `json:"en_mantenimiento"`
	Propios         int `json:"propios"`
	Alquilados      int `json:"alquilados"`
}

// MovimientosMesDTO conteo de movimientos de un mes calendario.
type MovimientosMesDTO struct {
	Mes          string `json:"mes"` // "2026-08"
	Entregas     int    `json:"entregas"`
	Devoluciones int    `json:"devoluciones"`
}

// DashboardSummaryDTO resumen para el dashboard.
type DashboardSummaryDTO struct {
	Equipos               TotalesEquiposDTO   `json:"equipos"`
	ColaboradoresActivos  int                 `json:"colaboradores_activos"`
	EntregasAbiertas      int                 `json:"entregas_abiertas"`
	CostoMensualServicios decimal.Decimal     `json:"costo_mensual_servicios"`
	MovimientosPorMes     []MovimientosMesDTO `json:"movimientos_por_mes"`
}
