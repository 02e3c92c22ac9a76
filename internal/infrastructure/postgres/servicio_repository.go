package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

var _ repository.ServicioRepository = (*ServicioRepo)(nil)

// ServicioRepo implementación del puerto ServicioRepository sobre PostgreSQL.
// Cubre el servicio, su sub-libro de pagos y su log de auditoría.
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador de persistencia para servicios.
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

// Create persiste un nuevo servicio.
func (r *ServicioRepo) Create(s *entity.Servicio) error {
	query := `
		INSERT INTO servicios (id, proveedor_id, nombre, descripcion, costo_mensual, moneda, licencias,
			fecha_inicio, fecha_fin, estado, creado_por, modificado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProveedorID, s.Nombre, s.Descripcion, s.CostoMensual, s.Moneda, s.Licencias,
		s.FechaInicio, s.FechaFin, s.Estado, s.CreadoPor, s.ModificadoPor, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert servicio: %w", err)
	}
	return nil
}

// GetByID obtiene un servicio por ID.
func (r *ServicioRepo) GetByID(id string) (*entity.Servicio, error) {
	query := `
		SELECT id, proveedor_id, nombre, descripcion, costo_mensual, moneda, licencias,
			fecha_inicio, fecha_fin, estado, creado_por, modificado_por, created_at, updated_at
		FROM servicios WHERE id = $1`
	var s entity.Servicio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.ProveedorID, &s.Nombre, &s.Descripcion, &s.CostoMensual, &s.Moneda, &s.Licencias,
		&s.FechaInicio, &s.FechaFin, &s.Estado, &s.CreadoPor, &s.ModificadoPor, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get servicio: %w", err)
	}
	return &s, nil
}

// List lista servicios, opcionalmente solo los activos.
func (r *ServicioRepo) List(soloActivos bool) ([]*entity.Servicio, error) {
	query := `
		SELECT id, proveedor_id, nombre, descripcion, costo_mensual, moneda, licencias,
			fecha_inicio, fecha_fin, estado, creado_por, modificado_por, created_at, updated_at
		FROM servicios`
	if soloActivos {
		query += ` WHERE estado = true`
	}
	query += ` ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	var list []*entity.Servicio
	for rows.Next() {
		var s entity.Servicio
		if err := rows.Scan(&s.ID, &s.ProveedorID, &s.Nombre, &s.Descripcion, &s.CostoMensual, &s.Moneda, &s.Licencias,
			&s.FechaInicio, &s.FechaFin, &s.Estado, &s.CreadoPor, &s.ModificadoPor, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de un servicio.
func (r *ServicioRepo) Update(s *entity.Servicio) error {
	query := `
		UPDATE servicios SET proveedor_id = $2, nombre = $3, descripcion = $4, costo_mensual = $5, moneda = $6,
			licencias = $7, fecha_inicio = $8, fecha_fin = $9, modificado_por = $10, updated_at = $11
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.ProveedorID, s.Nombre, s.Descripcion, s.CostoMensual, s.Moneda,
		s.Licencias, s.FechaInicio, s.FechaFin, s.ModificadoPor, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update servicio: %w", err)
	}
	return nil
}

// SetEstado activa o desactiva un servicio (baja lógica, nunca DELETE).
func (r *ServicioRepo) SetEstado(id string, estado bool, modificadoPor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE servicios SET estado = $2, modificado_por = $3, updated_at = now() WHERE id = $1`,
		id, estado, modificadoPor,
	)
	if err != nil {
		return fmt.Errorf("update servicio estado: %w", err)
	}
	return nil
}

// CreatePago inserta un pago en el sub-libro del servicio.
func (r *ServicioRepo) CreatePago(p *entity.PagoServicio) error {
	query := `
		INSERT INTO pagos_servicios (id, servicio_id, monto, moneda, fecha_pago, periodo, referencia, anulado, creado_por, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ServicioID, p.Monto, p.Moneda, p.FechaPago, p.Periodo, p.Referencia, p.Anulado, p.CreadoPor, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert pago servicio: %w", err)
	}
	return nil
}

// GetPagoByID obtiene un pago por ID.
func (r *ServicioRepo) GetPagoByID(id string) (*entity.PagoServicio, error) {
	query := `
		SELECT id, servicio_id, monto, moneda, fecha_pago, periodo, referencia, anulado, creado_por, created_at
		FROM pagos_servicios WHERE id = $1`
	var p entity.PagoServicio
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.ServicioID, &p.Monto, &p.Moneda, &p.FechaPago, &p.Periodo, &p.Referencia, &p.Anulado, &p.CreadoPor, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pago servicio: %w", err)
	}
	return &p, nil
}

// ListPagos lista los pagos de un servicio, más reciente primero. Incluye anulados.
func (r *ServicioRepo) ListPagos(servicioID string) ([]*entity.PagoServicio, error) {
	query := `
		SELECT id, servicio_id, monto, moneda, fecha_pago, periodo, referencia, anulado, creado_por, created_at
		FROM pagos_servicios WHERE servicio_id = $1 ORDER BY fecha_pago DESC`
	rows, err := r.q.Query(context.Background(), query, servicioID)
	if err != nil {
		return nil, fmt.Errorf("list pagos servicio: %w", err)
	}
	defer rows.Close()
	var list []*entity.PagoServicio
	for rows.Next() {
		var p entity.PagoServicio
		if err := rows.Scan(&p.ID, &p.ServicioID, &p.Monto, &p.Moneda, &p.FechaPago, &p.Periodo,
			&p.Referencia, &p.Anulado, &p.CreadoPor, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan pago servicio: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// AnularPago marca un pago como anulado (el pago nunca se borra).
func (r *ServicioRepo) AnularPago(id string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE pagos_servicios SET anulado = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("anular pago servicio: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// CreateAuditoria inserta una entrada del log de auditoría del servicio.
func (r *ServicioRepo) CreateAuditoria(a *entity.AuditoriaServicio) error {
	query := `
		INSERT INTO auditoria_servicios (id, servicio_id, accion, detalle, usuario_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		a.ID, a.ServicioID, a.Accion, a.Detalle, a.UsuarioID, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert auditoria servicio: %w", err)
	}
	return nil
}

// ListAuditoria lista el log de auditoría de un servicio, más reciente primero.
func (r *ServicioRepo) ListAuditoria(servicioID string) ([]*entity.AuditoriaServicio, error) {
	query := `
		SELECT id, servicio_id, accion, detalle, usuario_id, created_at
		FROM auditoria_servicios WHERE servicio_id = $1 ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query, servicioID)
	if err != nil {
		return nil, fmt.Errorf("list auditoria servicio: %w", err)
	}
	defer rows.Close()
	var list []*entity.AuditoriaServicio
	for rows.Next() {
		var a entity.AuditoriaServicio
		if err := rows.Scan(&a.ID, &a.ServicioID, &a.Accion, &a.Detalle, &a.UsuarioID, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan auditoria servicio: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}
