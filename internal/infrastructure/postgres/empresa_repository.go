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

var _ repository.EmpresaRepository = (*EmpresaRepo)(nil)

// EmpresaRepo implementación del puerto EmpresaRepository sobre PostgreSQL.
type EmpresaRepo struct {
	q Querier
}

// NewEmpresaRepository construye el adaptador de persistencia para empresas.
func NewEmpresaRepository(q Querier) *EmpresaRepo {
	return &EmpresaRepo{q: q}
}

// Create persiste una nueva empresa. RUC duplicado devuelve ErrDuplicate.
func (r *EmpresaRepo) Create(e *entity.Empresa) error {
	query := `
		INSERT INTO empresas (id, ruc, razon_social, direccion, telefono, estado, creado_por, modificado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.RUC, e.RazonSocial, e.Direccion, e.Telefono, e.Estado,
		e.CreadoPor, e.ModificadoPor, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empresa: %w", err)
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *EmpresaRepo) GetByID(id string) (*entity.Empresa, error) {
	query := `
		SELECT id, ruc, razon_social, direccion, telefono, estado, creado_por, modificado_por, created_at, updated_at
		FROM empresas WHERE id = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.RUC, &e.RazonSocial, &e.Direccion, &e.Telefono, &e.Estado,
		&e.CreadoPor, &e.ModificadoPor, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa: %w", err)
	}
	return &e, nil
}

// GetByRUC obtiene una empresa por RUC.
func (r *EmpresaRepo) GetByRUC(ruc string) (*entity.Empresa, error) {
	query := `
		SELECT id, ruc, razon_social, direccion, telefono, estado, creado_por, modificado_por, created_at, updated_at
		FROM empresas WHERE ruc = $1`
	var e entity.Empresa
	err := r.q.QueryRow(context.Background(), query, ruc).Scan(
		&e.ID, &e.RUC, &e.RazonSocial, &e.Direccion, &e.Telefono, &e.Estado,
		&e.CreadoPor, &e.ModificadoPor, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empresa by ruc: %w", err)
	}
	return &e, nil
}

// List lista empresas, opcionalmente solo las activas.
func (r *EmpresaRepo) List(soloActivas bool) ([]*entity.Empresa, error) {
	query := `
		SELECT id, ruc, razon_social, direccion, telefono, estado, creado_por, modificado_por, created_at, updated_at
		FROM empresas`
	if soloActivas {
		query += ` WHERE estado = true`
	}
	query += ` ORDER BY razon_social`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list empresas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Empresa
	for rows.Next() {
		var e entity.Empresa
		if err := rows.Scan(&e.ID, &e.RUC, &e.RazonSocial, &e.Direccion, &e.Telefono, &e.Estado,
			&e.CreadoPor, &e.ModificadoPor, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan empresa: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de una empresa. No permite cambiar el RUC.
func (r *EmpresaRepo) Update(e *entity.Empresa) error {
	query := `
		UPDATE empresas SET razon_social = $2, direccion = $3, telefono = $4, modificado_por = $5, updated_at = $6
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.RazonSocial, e.Direccion, e.Telefono, e.ModificadoPor, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update empresa: %w", err)
	}
	return nil
}

// SetEstado activa o desactiva una empresa (baja lógica, nunca DELETE).
func (r *EmpresaRepo) SetEstado(id string, estado bool, modificadoPor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE empresas SET estado = $2, modificado_por = $3, updated_at = now() WHERE id = $1`,
		id, estado, modificadoPor,
	)
	if err != nil {
		return fmt.Errorf("update empresa estado: %w", err)
	}
	return nil
}
