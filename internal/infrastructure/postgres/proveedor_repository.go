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

var _ repository.ProveedorRepository = (*ProveedorRepo)(nil)

// ProveedorRepo implementación del puerto ProveedorRepository sobre PostgreSQL.
type ProveedorRepo struct {
	q Querier
}

// NewProveedorRepository construye el adaptador de persistencia para proveedores.
func NewProveedorRepository(q Querier) *ProveedorRepo {
	return &ProveedorRepo{q: q}
}

// Create persiste un nuevo proveedor. RUC duplicado devuelve ErrDuplicate.
func (r *ProveedorRepo) Create(p *entity.Proveedor) error {
	query := `
		INSERT INTO proveedores (id, ruc, razon_social, contacto, email, telefono, estado, creado_por, modificado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.RUC, p.RazonSocial, p.Contacto, p.Email, p.Telefono, p.Estado,
		p.CreadoPor, p.ModificadoPor, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert proveedor: %w", err)
	}
	return nil
}

// GetByID obtiene un proveedor por ID.
func (r *ProveedorRepo) GetByID(id string) (*entity.Proveedor, error) {
	query := `
		SELECT id, ruc, razon_social, contacto, email, telefono, estado, creado_por, modificado_por, created_at, updated_at
		FROM proveedores WHERE id = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.RUC, &p.RazonSocial, &p.Contacto, &p.Email, &p.Telefono, &p.Estado,
		&p.CreadoPor, &p.ModificadoPor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor: %w", err)
	}
	return &p, nil
}

// GetByRUC obtiene un proveedor por RUC.
func (r *ProveedorRepo) GetByRUC(ruc string) (*entity.Proveedor, error) {
	query := `
		SELECT id, ruc, razon_social, contacto, email, telefono, estado, creado_por, modificado_por, created_at, updated_at
		FROM proveedores WHERE ruc = $1`
	var p entity.Proveedor
	err := r.q.QueryRow(context.Background(), query, ruc).Scan(
		&p.ID, &p.RUC, &p.RazonSocial, &p.Contacto, &p.Email, &p.Telefono, &p.Estado,
		&p.CreadoPor, &p.ModificadoPor, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get proveedor by ruc: %w", err)
	}
	return &p, nil
}

// List lista proveedores, opcionalmente solo los activos.
func (r *ProveedorRepo) List(soloActivos bool) ([]*entity.Proveedor, error) {
	query := `
		SELECT id, ruc, razon_social, contacto, email, telefono, estado, creado_por, modificado_por, created_at, updated_at
		FROM proveedores`
	if soloActivos {
		query += ` WHERE estado = true`
	}
	query += ` ORDER BY razon_social`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list proveedores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Proveedor
	for rows.Next() {
		var p entity.Proveedor
		if err := rows.Scan(&p.ID, &p.RUC, &p.RazonSocial, &p.Contacto, &p.Email, &p.Telefono, &p.Estado,
			&p.CreadoPor, &p.ModificadoPor, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan proveedor: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de un proveedor. No permite cambiar el RUC.
func (r *ProveedorRepo) Update(p *entity.Proveedor) error {
	query := `
		UPDATE proveedores SET razon_social = $2, contacto = $3, email = $4, telefono = $5, modificado_por = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.RazonSocial, p.Contacto, p.Email, p.Telefono, p.ModificadoPor, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update proveedor: %w", err)
	}
	return nil
}

// SetEstado activa o desactiva un proveedor (baja lógica, nunca DELETE).
func (r *ProveedorRepo) SetEstado(id string, estado bool, modificadoPor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE proveedores SET estado = $2, modificado_por = $3, updated_at = now() WHERE id = $1`,
		id, estado, modificadoPor,
	)
	if err != nil {
		return fmt.Errorf("update proveedor estado: %w", err)
	}
	return nil
}
