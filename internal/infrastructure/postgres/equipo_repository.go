package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

var _ repository.EquipoRepository = (*EquipoRepo)(nil)

const equipoColumns = `id, empresa_id, codigo_patrimonial, marca, modelo, numero_serie, es_propio, proveedor_id,
		estado_fisico_id, disponible, fecha_adquisicion, fecha_fin_alquiler, especificaciones, observaciones,
		creado_por, modificado_por, created_at, updated_at`

// EquipoRepo implementación del puerto EquipoRepository sobre PostgreSQL (usable con pool o tx).
type EquipoRepo struct {
	q Querier
}

// NewEquipoRepository construye el adaptador de persistencia para equipos. Pasar pool o tx (Querier).
func NewEquipoRepository(q Querier) *EquipoRepo {
	return &EquipoRepo{q: q}
}

func scanEquipo(row pgx.Row) (*entity.Equipo, error) {
	var e entity.Equipo
	err := row.Scan(
		&e.ID, &e.EmpresaID, &e.CodigoPatrimonial, &e.Marca, &e.Modelo, &e.NumeroSerie,
		&e.EsPropio, &e.ProveedorID, &e.EstadoFisicoID, &e.Disponible,
		&e.FechaAdquisicion, &e.FechaFinAlquiler, &e.Especificaciones, &e.Observaciones,
		&e.CreadoPor, &e.ModificadoPor, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Create persiste un nuevo equipo. Número de serie o código patrimonial duplicados
// devuelven ErrDuplicate.
func (r *EquipoRepo) Create(e *entity.Equipo) error {
	query := `
		INSERT INTO equipos (` + equipoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.EmpresaID, e.CodigoPatrimonial, e.Marca, e.Modelo, e.NumeroSerie,
		e.EsPropio, e.ProveedorID, e.EstadoFisicoID, e.Disponible,
		e.FechaAdquisicion, e.FechaFinAlquiler, e.Especificaciones, e.Observaciones,
		e.CreadoPor, e.ModificadoPor, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipo: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por ID.
func (r *EquipoRepo) GetByID(id string) (*entity.Equipo, error) {
	e, err := scanEquipo(r.q.QueryRow(context.Background(),
		`SELECT `+equipoColumns+` FROM equipos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo: %w", err)
	}
	return e, nil
}

// GetBySerie obtiene un equipo por número de serie.
func (r *EquipoRepo) GetBySerie(numeroSerie string) (*entity.Equipo, error) {
	e, err := scanEquipo(r.q.QueryRow(context.Background(),
		`SELECT `+equipoColumns+` FROM equipos WHERE numero_serie = $1`, numeroSerie))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipo by serie: %w", err)
	}
	return e, nil
}

// List lista equipos aplicando los filtros opcionales del catálogo.
func (r *EquipoRepo) List(f repository.FiltroEquipos) ([]*entity.Equipo, error) {
	query := `SELECT ` + equipoColumns + ` FROM equipos WHERE 1=1`
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		query += " AND " + cond + "$" + strconv.Itoa(len(args))
	}
	if f.EmpresaID != "" {
		add("empresa_id = ", f.EmpresaID)
	}
	if f.Disponible != nil {
		add("disponible = ", *f.Disponible)
	}
	if f.EsPropio != nil {
		add("es_propio = ", *f.EsPropio)
	}
	if f.EstadoFisicoID != nil {
		add("estado_fisico_id = ", *f.EstadoFisicoID)
	}
	if f.Marca != "" {
		args = append(args, f.Marca)
		query += " AND lower(marca) = lower($" + strconv.Itoa(len(args)) + ")"
	}
	query += " ORDER BY codigo_patrimonial"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += " OFFSET $" + strconv.Itoa(len(args))
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list equipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Equipo
	for rows.Next() {
		e, err := scanEquipo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipo: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza los datos editables de un equipo. El código patrimonial, el número
// de serie y el tipo de propiedad no cambian después del registro.
func (r *EquipoRepo) Update(e *entity.Equipo) error {
	query := `
		UPDATE equipos SET empresa_id = $2, marca = $3, modelo = $4, proveedor_id = $5, estado_fisico_id = $6,
			disponible = $7, fecha_adquisicion = $8, fecha_fin_alquiler = $9, especificaciones = $10,
			observaciones = $11, modificado_por = $12, updated_at = $13
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		e.ID, e.EmpresaID, e.Marca, e.Modelo, e.ProveedorID, e.EstadoFisicoID,
		e.Disponible, e.FechaAdquisicion, e.FechaFinAlquiler, e.Especificaciones, e.Observaciones,
		e.ModificadoPor, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update equipo: %w", err)
	}
	return nil
}

// ClaimParaEntrega marca el equipo como no disponible con un UPDATE condicional:
// solo gana la fila si disponible aún era true. Dos entregas concurrentes sobre el
// mismo equipo hacen que una vea cero filas y reciba (nil, nil).
func (r *EquipoRepo) ClaimParaEntrega(id string) (*entity.Equipo, error) {
	query := `
		UPDATE equipos SET disponible = false, updated_at = now()
		WHERE id = $1 AND disponible = true
		RETURNING ` + equipoColumns
	e, err := scanEquipo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("claim equipo para entrega: %w", err)
	}
	return e, nil
}

// UpdateCustodia sobreescribe estado físico, disponibilidad y observaciones en un
// solo UPDATE (devoluciones y cambios de disponibilidad). Observaciones nil conserva
// el valor actual.
func (r *EquipoRepo) UpdateCustodia(id string, estadoFisicoID int, disponible bool, observaciones *string, modificadoPor string) error {
	query := `
		UPDATE equipos SET estado_fisico_id = $2, disponible = $3,
			observaciones = COALESCE($4, observaciones), modificado_por = $5, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, estadoFisicoID, disponible, observaciones, modificadoPor)
	if err != nil {
		return fmt.Errorf("update custodia equipo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListMarcas devuelve las marcas distintas registradas, para los filtros del catálogo.
func (r *EquipoRepo) ListMarcas() ([]string, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT DISTINCT marca FROM equipos WHERE marca <> '' ORDER BY marca`)
	if err != nil {
		return nil, fmt.Errorf("list marcas: %w", err)
	}
	defer rows.Close()
	var list []string
	for rows.Next() {
		var m string
		if err := rows.Scan(&m); err != nil {
			return nil, fmt.Errorf("scan marca: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

// ListEstadosFisicos devuelve el catálogo de estados físicos.
func (r *EquipoRepo) ListEstadosFisicos() ([]entity.EstadoFisico, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, nombre FROM estados_fisicos ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list estados fisicos: %w", err)
	}
	defer rows.Close()
	var list []entity.EstadoFisico
	for rows.Next() {
		var ef entity.EstadoFisico
		if err := rows.Scan(&ef.ID, &ef.Nombre); err != nil {
			return nil, fmt.Errorf("scan estado fisico: %w", err)
		}
		list = append(list, ef)
	}
	return list, rows.Err()
}

var _ repository.SecuenciaRepository = (*SecuenciaRepo)(nil)

// SecuenciaRepo asigna la secuencia de códigos patrimoniales por prefijo. Debe usarse
// dentro de la misma transacción que inserta el equipo: si la transacción se revierte,
// el valor consumido se revierte con ella y la numeración queda sin huecos.
type SecuenciaRepo struct {
	q Querier
}

// NewSecuenciaRepository construye el adaptador de la secuencia de códigos.
func NewSecuenciaRepository(q Querier) *SecuenciaRepo {
	return &SecuenciaRepo{q: q}
}

// Next devuelve el siguiente valor de la secuencia del prefijo, de forma atómica.
// El UPSERT toma un row lock sobre la fila del prefijo, serializando los registros
// concurrentes del mismo tipo de equipo.
func (r *SecuenciaRepo) Next(prefijo string) (int64, error) {
	var valor int64
	err := r.q.QueryRow(context.Background(), `
		INSERT INTO secuencias_codigo (prefijo, valor) VALUES ($1, 1)
		ON CONFLICT (prefijo) DO UPDATE SET valor = secuencias_codigo.valor + 1
		RETURNING valor`, prefijo).Scan(&valor)
	if err != nil {
		return 0, fmt.Errorf("next secuencia %s: %w", prefijo, err)
	}
	return valor, nil
}
