package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL
// (usable con pool o tx).
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos.
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste un movimiento de entrega o devolución. La fila es inmutable salvo
// por los campos de firma y de correo.
func (r *MovimientoRepo) Create(m *entity.Movimiento) error {
	query := `
		INSERT INTO movimientos (id, tipo, equipo_id, colaborador_id, fecha, incluye_cargador, observaciones,
			motivo, estado_equipo_id, url_pdf_firmado, firma_valida, correo_enviado, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Tipo, m.EquipoID, m.ColaboradorID, m.Fecha, m.IncluyeCargador, m.Observaciones,
		m.Motivo, m.EstadoEquipoID, m.URLPdfFirmado, m.FirmaValida, m.CorreoEnviado, m.CreadoPor, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un movimiento por ID.
func (r *MovimientoRepo) GetByID(id string) (*entity.Movimiento, error) {
	query := `
		SELECT id, tipo, equipo_id, colaborador_id, fecha, incluye_cargador, observaciones,
			motivo, estado_equipo_id, url_pdf_firmado, firma_valida, correo_enviado, creado_por, created_at
		FROM movimientos WHERE id = $1`
	var m entity.Movimiento
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Tipo, &m.EquipoID, &m.ColaboradorID, &m.Fecha, &m.IncluyeCargador, &m.Observaciones,
		&m.Motivo, &m.EstadoEquipoID, &m.URLPdfFirmado, &m.FirmaValida, &m.CorreoEnviado, &m.CreadoPor, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}
	return &m, nil
}

// ListLedger devuelve el libro de movimientos con nombres resueltos. Para las
// entregas, tiempo_uso_dias se calcula contra la devolución siguiente del mismo par
// equipo/colaborador, o contra hoy si la entrega sigue abierta.
func (r *MovimientoRepo) ListLedger(ctx context.Context, f repository.FiltroMovimientos) ([]dto.MovimientoLedgerRow, error) {
	query := `
		SELECT m.id, m.tipo, m.equipo_id, e.codigo_patrimonial, e.marca, e.modelo, e.numero_serie,
			m.colaborador_id, c.nombres || ' ' || c.apellidos, c.dni,
			m.fecha, m.incluye_cargador, m.observaciones, m.motivo,
			COALESCE(ef.nombre, ''), m.url_pdf_firmado, m.firma_valida, m.correo_enviado,
			COALESCE(u.nombre, ''),
			CASE WHEN m.tipo = 'entrega' THEN
				EXTRACT(DAY FROM COALESCE(
					(SELECT MIN(d.fecha) FROM movimientos d
					 WHERE d.tipo = 'devolucion' AND d.equipo_id = m.equipo_id
					   AND d.colaborador_id = m.colaborador_id AND d.fecha >= m.fecha),
					now()) - m.fecha)::int
			END,
			m.created_at
		FROM movimientos m
		JOIN equipos e ON e.id = m.equipo_id
		JOIN colaboradores c ON c.id = m.colaborador_id
		LEFT JOIN estados_fisicos ef ON ef.id = m.estado_equipo_id
		LEFT JOIN usuarios u ON u.id = m.creado_por
		WHERE 1=1`
	var args []any
	if f.EquipoID != "" {
		args = append(args, f.EquipoID)
		query += " AND m.equipo_id = $" + strconv.Itoa(len(args))
	}
	if f.ColaboradorID != "" {
		args = append(args, f.ColaboradorID)
		query += " AND m.colaborador_id = $" + strconv.Itoa(len(args))
	}
	if f.Tipo != "" {
		args = append(args, f.Tipo)
		query += " AND m.tipo = $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY m.fecha DESC, m.created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger: %w", err)
	}
	defer rows.Close()
	var list []dto.MovimientoLedgerRow
	for rows.Next() {
		var row dto.MovimientoLedgerRow
		var motivo, estadoEquipo *string
		if err := rows.Scan(
			&row.ID, &row.Tipo, &row.EquipoID, &row.CodigoPatrimonial, &row.Marca, &row.Modelo, &row.NumeroSerie,
			&row.ColaboradorID, &row.Colaborador, &row.DNI,
			&row.Fecha, &row.IncluyeCargador, &row.Observaciones, &motivo,
			&estadoEquipo, &row.URLPdfFirmado, &row.FirmaValida, &row.CorreoEnviado,
			&row.Usuario, &row.TiempoUsoDias, &row.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		if motivo != nil {
			row.Motivo = *motivo
		}
		if estadoEquipo != nil {
			row.EstadoEquipo = *estadoEquipo
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

// SetCorreoEnviado registra el resultado del último intento de envío de correo.
func (r *MovimientoRepo) SetCorreoEnviado(id string, enviado bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE movimientos SET correo_enviado = $2 WHERE id = $1`, id, enviado)
	if err != nil {
		return fmt.Errorf("update movimiento correo: %w", err)
	}
	return nil
}

// SetFirmado adjunta la URL del acta firmada y marca la firma como válida.
func (r *MovimientoRepo) SetFirmado(id string, urlPdf string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movimientos SET url_pdf_firmado = $2, firma_valida = true WHERE id = $1`, id, urlPdf)
	if err != nil {
		return fmt.Errorf("update movimiento firmado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// InvalidarFirma marca la firma como inválida sin borrar el archivo subido.
func (r *MovimientoRepo) InvalidarFirma(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE movimientos SET firma_valida = false WHERE id = $1 AND url_pdf_firmado IS NOT NULL`, id)
	if err != nil {
		return fmt.Errorf("invalidar firma movimiento: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ repository.HistorialRepository = (*HistorialRepo)(nil)

// HistorialRepo implementación del puerto HistorialRepository sobre PostgreSQL.
// La tabla es append-only: solo INSERT y SELECT.
type HistorialRepo struct {
	q Querier
}

// NewHistorialRepository construye el adaptador del rastro de auditoría de equipos.
func NewHistorialRepository(q Querier) *HistorialRepo {
	return &HistorialRepo{q: q}
}

// Create inserta una entrada del historial.
func (r *HistorialRepo) Create(h *entity.HistorialEquipo) error {
	query := `
		INSERT INTO historial_equipos (id, equipo_id, accion, descripcion, empresa_id, proveedor_id,
			estado_fisico_id, disponible, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		h.ID, h.EquipoID, h.Accion, h.Descripcion, h.EmpresaID, h.ProveedorID,
		h.EstadoFisicoID, h.Disponible, h.UsuarioID, h.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert historial: %w", err)
	}
	return nil
}

// ListByEquipo lista el historial de un equipo, más reciente primero.
func (r *HistorialRepo) ListByEquipo(equipoID string) ([]*entity.HistorialEquipo, error) {
	query := `
		SELECT id, equipo_id, accion, descripcion, empresa_id, proveedor_id,
			estado_fisico_id, disponible, usuario_id, created_at
		FROM historial_equipos WHERE equipo_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, equipoID)
	if err != nil {
		return nil, fmt.Errorf("list historial: %w", err)
	}
	defer rows.Close()
	var list []*entity.HistorialEquipo
	for rows.Next() {
		var h entity.HistorialEquipo
		if err := rows.Scan(&h.ID, &h.EquipoID, &h.Accion, &h.Descripcion, &h.EmpresaID, &h.ProveedorID,
			&h.EstadoFisicoID, &h.Disponible, &h.UsuarioID, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan historial: %w", err)
		}
		list = append(list, &h)
	}
	return list, rows.Err()
}
