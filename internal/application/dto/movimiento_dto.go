package dto

import "time"

// EntregaRequest registro de una entrega de equipo a un colaborador.
type EntregaRequest struct {
	EquipoID        string     `json:"equipo_id" form:"equipo_id" validate:"required,uuid4"`
	ColaboradorID   string     `json:"colaborador_id" form:"colaborador_id" validate:"required,uuid4"`
	Fecha           *time.Time `json:"fecha" form:"fecha"`
	IncluyeCargador bool       `json:"incluye_cargador" form:"incluye_cargador"`
	Observaciones   string     `json:"observaciones" form:"observaciones"`
	// Correo destino cuando la entrega se registra con envío de acta.
	CorreoDestino string `json:"correo_destino" form:"correo_destino" validate:"omitempty,email"`
}

// DevolucionRequest registro de una devolución de equipo.
type DevolucionRequest struct {
	EquipoID        string     `json:"equipo_id" form:"equipo_id" validate:"required,uuid4"`
	ColaboradorID   string     `json:"colaborador_id" form:"colaborador_id" validate:"required,uuid4"`
	Fecha           *time.Time `json:"fecha" form:"fecha"`
	IncluyeCargador bool       `json:"incluye_cargador" form:"incluye_cargador"`
	Observaciones   string     `json:"observaciones" form:"observaciones"`
	Motivo          string     `json:"motivo" form:"motivo" validate:"required"`
	EstadoFisicoID  int        `json:"estado_fisico_id" form:"estado_fisico_id" validate:"required,min=1"`
	// Etiqueta de texto libre del estado final para el mensaje de auditoría.
	EstadoFinal   string `json:"estado_final" form:"estado_final"`
	CorreoDestino string `json:"correo_destino" form:"correo_destino" validate:"omitempty,email"`
}

// ReenviarCorreoRequest reintento manual del correo de un movimiento.
type ReenviarCorreoRequest struct {
	MovimientoID  string `json:"movimiento_id" validate:"required,uuid4"`
	CorreoDestino string `json:"correo_destino" validate:"omitempty,email"`
}

// MovimientoResponse resultado de registrar un movimiento.
// Warning se llena cuando el movimiento quedó guardado pero el correo falló:
// el commit nunca se revierte por un fallo de SMTP.
type MovimientoResponse struct {
	ID            string    `json:"id"`
	Tipo          string    `json:"tipo"`
	EquipoID      string    `json:"equipo_id"`
	ColaboradorID string    `json:"colaborador_id"`
	Fecha         time.Time `json:"fecha"`
	CorreoEnviado *bool     `json:"correo_enviado,omitempty"`
	Warning       string    `json:"warning,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MovimientoLedgerRow fila del libro de movimientos con nombres resueltos.
// TiempoUsoDias solo aplica a entregas: días entre la entrega y la devolución
// siguiente del mismo par equipo/colaborador, o hasta hoy si sigue abierta.
type MovimientoLedgerRow struct {
	ID                string    `json:"id"`
	Tipo              string    `json:"tipo"`
	EquipoID          string    `json:"equipo_id"`
	CodigoPatrimonial string    `json:"codigo_patrimonial"`
	Marca             string    `json:"marca"`
	Modelo            string    `json:"modelo"`
	NumeroSerie       string    `json:"numero_serie"`
	ColaboradorID     string    `json:"colaborador_id"`
	Colaborador       string    `json:"colaborador"`
	DNI               string    `json:"dni"`
	Fecha             time.Time `json:"fecha"`
	IncluyeCargador   bool      `json:"incluye_cargador"`
	Observaciones     string    `json:"observaciones"`
	Motivo            string    `json:"motivo,omitempty"`
	EstadoEquipo      string    `json:"estado_equipo,omitempty"`
	URLPdfFirmado     *string   `json:"url_pdf_firmado,omitempty"`
	FirmaValida       *bool     `json:"firma_valida,omitempty"`
	CorreoEnviado     *bool     `json:"correo_enviado,omitempty"`
	Usuario           string    `json:"usuario"`
	TiempoUsoDias     *int      `json:"tiempo_uso_dias,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// MovimientoListResponse libro de movimientos.
type MovimientoListResponse struct {
	Items []MovimientoLedgerRow `json:"items"`
	Page  PageResponse          `json:"page"`
}

// FirmadoResponse resultado de subir un acta firmada.
type FirmadoResponse struct {
	MovimientoID  string `json:"movimiento_id"`
	URLPdfFirmado string `json:"url_pdf_firmado"`
	FirmaValida   bool   `json:"firma_valida"`
}
