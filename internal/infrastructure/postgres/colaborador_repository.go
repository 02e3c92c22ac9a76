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

var _ repository.ColaboradorRepository = (*ColaboradorRepo)(nil)

// ColaboradorRepo implementación del puerto ColaboradorRepository sobre PostgreSQL.
type ColaboradorRepo struct {
	q Querier
}

// NewColaboradorRepository construye el adaptador de persistencia para colaboradores.
func NewColaboradorRepository(q Querier) *ColaboradorRepo {
	return &ColaboradorRepo{q: q}
}

// Create persiste un nuevo colaborador. DNI duplicado devuelve ErrDuplicate.
func (r *ColaboradorRepo) Create(c *entity.Colaborador) error {
	query := `
		INSERT INTO colaboradores (id, empresa_id, dni, nombres, apellidos, email, telefono, cargo, genero, estado, creado_por, modificado_por, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.EmpresaID, c.DNI, c.Nombres, c.Apellidos, c.Email, c.Telefono,
		c.Cargo, c.Genero, c.Estado, c.CreadoPor, c.ModificadoPor, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert colaborador: %w", err)
	}
	return nil
}

// GetByID obtiene un colaborador por ID.
func (r *ColaboradorRepo) GetByID(id string) (*entity.Colaborador, error) {
	query := `
		SELECT id, empresa_id, dni, nombres, apellidos, email, telefono, cargo, genero, estado, creado_por, modificado_por, created_at, updated_at
		FROM colaboradores WHERE id = $1`
	var c entity.Colaborador
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.EmpresaID, &c.DNI, &c.Nombres, &c.Apellidos, &c.Email, &c.Telefono,
		&c.Cargo, &c.Genero, &c.Estado, &c.CreadoPor, &c.ModificadoPor, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colaborador: %w", err)
	}
	return &c, nil
}

// GetByDNI obtiene un colaborador por DNI.
func (r *ColaboradorRepo) GetByDNI(dni string) (*entity.Colaborador, error) {
	query := `
		SELECT id, empresa_id, dni, nombres, apellidos, email, telefono, cargo, genero, estado, creado_por, modificado_por, created_at, updated_at
		FROM colaboradores WHERE dni = $1`
	var c entity.Colaborador
	err := r.q.QueryRow(context.Background(), query, dni).Scan(
		&c.ID, &c.EmpresaID, &c.DNI, &c.Nombres, &c.Apellidos, &c.Email, &c.Telefono,
		&c.Cargo, &c.Genero, &c.Estado, &c.CreadoPor, &c.ModificadoPor, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get colaborador by dni: %w", err)
	}
	return &c, nil
}

// List lista colaboradores ordenados por apellidos, opcionalmente solo activos.
func (r *ColaboradorRepo) List(soloActivos bool) ([]*entity.Colaborador, error) {
	query := `
		SELECT id, empresa_id, dni, nombres, apellidos, email, telefono, cargo, genero, estado, creado_por, modificado_por, created_at, updated_at
		FROM colaboradores`
	if soloActivos {
		query += ` WHERE estado = true`
	}
	query += ` ORDER BY apellidos, nombres`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list colaboradores: %w", err)
	}
	defer rows.Close()
	var list []*entity.Colaborador
	for rows.Next() {
		var c entity.Colaborador
		if err := rows.Scan(&c.ID, &c.EmpresaID, &c.DNI, &c.Nombres, &c.Apellidos, &c.Email, &c.Telefono,
			&c.Cargo, &c.Genero, &c.Estado, &c.CreadoPor, &c.ModificadoPor, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan colaborador: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de un colaborador. No permite cambiar el DNI.
func (r *ColaboradorRepo) Update(c *entity.Colaborador) error {
	query := `
		UPDATE colaboradores SET empresa_id = $2, nombres = $3, apellidos = $4, email = $5, telefono = $6, cargo = $7, genero = $8, modificado_por = $9, updated_at = $10
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.EmpresaID, c.Nombres, c.Apellidos, c.Email, c.Telefono,
		c.Cargo, c.Genero, c.ModificadoPor, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update colaborador: %w", err)
	}
	return nil
}

// SetEstado activa o desactiva un colaborador (baja lógica, nunca DELETE).
func (r *ColaboradorRepo) SetEstado(id string, estado bool, modificadoPor string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE colaboradores SET estado = $2, modificado_por = $3, updated_at = now() WHERE id = $1`,
		id, estado, modificadoPor,
	)
	if err != nil {
		return fmt.Errorf("update colaborador estado: %w", err)
	}
	return nil
}
