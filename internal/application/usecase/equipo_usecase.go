package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	appcustody "github.com/velatec/activos-api/internal/application/custody"
	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/custody"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// EquipoUseCase registro, edición y disponibilidad de equipos. Cada mutación
// escribe su fila de historial en la misma transacción.
type EquipoUseCase struct {
	txRunner   appcustody.TxRunner
	equipoRepo repository.EquipoRepository
	histRepo   repository.HistorialRepository
	userRepo   repository.UsuarioRepository
}

// NewEquipoUseCase construye el caso de uso.
func NewEquipoUseCase(
	txRunner appcustody.TxRunner,
	equipoRepo repository.EquipoRepository,
	histRepo repository.HistorialRepository,
	userRepo repository.UsuarioRepository,
) *EquipoUseCase {
	return &EquipoUseCase{
		txRunner:   txRunner,
		equipoRepo: equipoRepo,
		histRepo:   histRepo,
		userRepo:   userRepo,
	}
}

// Create registra un equipo nuevo.
//
// El código patrimonial sale de la secuencia por prefijo (secuencias_codigo,
// UPSERT ... RETURNING) dentro de la misma transacción que inserta el equipo y
// su fila de historial, así dos registros concurrentes nunca repiten código.
func (uc *EquipoUseCase) Create(ctx context.Context, usuarioID string, in dto.CreateEquipoRequest) (*dto.EquipoResponse, error) {
	existente, err := uc.equipoRepo.GetBySerie(in.NumeroSerie)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	resultado := custody.AlRegistrar(in.EstadoFisicoID)
	equipo := &entity.Equipo{
		ID:               uuid.New().String(),
		EmpresaID:        in.EmpresaID,
		Marca:            in.Marca,
		Modelo:           in.Modelo,
		NumeroSerie:      in.NumeroSerie,
		EsPropio:         in.EsPropio,
		ProveedorID:      in.ProveedorID,
		EstadoFisicoID:   resultado.EstadoFisicoID,
		Disponible:       resultado.Disponible,
		FechaAdquisicion: in.FechaAdquisicion,
		FechaFinAlquiler: in.FechaFinAlquiler,
		Especificaciones: in.Especificaciones,
		Observaciones:    in.Observaciones,
		CreadoPor:        usuarioID,
		ModificadoPor:    usuarioID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = uc.txRunner.RunEquipo(ctx, func(
		equipoRepo repository.EquipoRepository,
		secRepo repository.SecuenciaRepository,
		histRepo repository.HistorialRepository,
	) error {
		seq, err := secRepo.Next(equipo.Prefijo())
		if err != nil {
			return err
		}
		equipo.CodigoPatrimonial = custody.CodigoPatrimonial(equipo.Prefijo(), seq)
		if err := equipoRepo.Create(equipo); err != nil {
			return err
		}
		descripcion := fmt.Sprintf("Registro del equipo %s %s (serie %s) con código %s",
			equipo.Marca, equipo.Modelo, equipo.NumeroSerie, equipo.CodigoPatrimonial)
		return histRepo.Create(nuevoHistorial(equipo, entity.AccionRegistroInicial, descripcion, usuarioID, now))
	})
	if err != nil {
		return nil, err
	}
	return toEquipoResponse(equipo), nil
}

// Update edita un equipo. No recalcula el código patrimonial. Si el estado
// físico pasa a uno no operativo el equipo deja de estar disponible; el paso
// inverso nunca lo habilita solo (eso va por reactivación o devolución).
// Escribe la fila de historial "EDICIÓN".
func (uc *EquipoUseCase) Update(ctx context.Context, id, usuarioID string, in dto.UpdateEquipoRequest) (*dto.EquipoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, nil
	}
	if in.EmpresaID != nil {
		equipo.EmpresaID = *in.EmpresaID
	}
	if in.Marca != nil {
		equipo.Marca = *in.Marca
	}
	if in.Modelo != nil {
		equipo.Modelo = *in.Modelo
	}
	if in.ProveedorID != nil {
		equipo.ProveedorID = in.ProveedorID
	}
	if in.EstadoFisicoID != nil {
		equipo.EstadoFisicoID = *in.EstadoFisicoID
		if *in.EstadoFisicoID != entity.EstadoOperativo {
			equipo.Disponible = false
		}
	}
	if in.FechaAdquisicion != nil {
		equipo.FechaAdquisicion = in.FechaAdquisicion
	}
	if in.FechaFinAlquiler != nil {
		equipo.FechaFinAlquiler = in.FechaFinAlquiler
	}
	if in.Especificaciones != nil {
		equipo.Especificaciones = in.Especificaciones
	}
	if in.Observaciones != nil {
		equipo.Observaciones = *in.Observaciones
	}
	now := time.Now()
	equipo.ModificadoPor = usuarioID
	equipo.UpdatedAt = now

	err = uc.txRunner.RunEquipo(ctx, func(
		equipoRepo repository.EquipoRepository,
		_ repository.SecuenciaRepository,
		histRepo repository.HistorialRepository,
	) error {
		if err := equipoRepo.Update(equipo); err != nil {
			return err
		}
		descripcion := fmt.Sprintf("Edición del equipo %s", equipo.CodigoPatrimonial)
		return histRepo.Create(nuevoHistorial(equipo, entity.AccionEdicion, descripcion, usuarioID, now))
	})
	if err != nil {
		return nil, err
	}
	return toEquipoResponse(equipo), nil
}

// SetDisponibilidad activa o desactiva un equipo manualmente.
//
// Reactivar fuerza el estado físico a Operativo y disponible true sin importar
// el estado previo (no hay paso de reparación explícito); desactivar solo apaga
// la disponibilidad y conserva el estado físico.
func (uc *EquipoUseCase) SetDisponibilidad(ctx context.Context, id, usuarioID string, disponible bool) (*dto.EquipoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, nil
	}

	var resultado custody.Resultado
	accion := entity.AccionDesactivacion
	if disponible {
		resultado = custody.AlReactivar()
		accion = entity.AccionActivacion
	} else {
		resultado = custody.AlDesactivar(equipo)
	}

	now := time.Now()
	err = uc.txRunner.RunEquipo(ctx, func(
		equipoRepo repository.EquipoRepository,
		_ repository.SecuenciaRepository,
		histRepo repository.HistorialRepository,
	) error {
		if err := equipoRepo.UpdateCustodia(id, resultado.EstadoFisicoID, resultado.Disponible, nil, usuarioID); err != nil {
			return err
		}
		descripcion := fmt.Sprintf("%s del equipo %s", accion, equipo.CodigoPatrimonial)
		equipo.EstadoFisicoID = resultado.EstadoFisicoID
		equipo.Disponible = resultado.Disponible
		return histRepo.Create(nuevoHistorial(equipo, accion, descripcion, usuarioID, now))
	})
	if err != nil {
		return nil, err
	}
	equipo.ModificadoPor = usuarioID
	equipo.UpdatedAt = now
	return toEquipoResponse(equipo), nil
}

// GetByID obtiene un equipo por ID.
func (uc *EquipoUseCase) GetByID(id string) (*dto.EquipoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, nil
	}
	return toEquipoResponse(equipo), nil
}

// List lista equipos con filtros.
func (uc *EquipoUseCase) List(f repository.FiltroEquipos) (*dto.EquipoListResponse, error) {
	list, err := uc.equipoRepo.List(f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EquipoResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEquipoResponse(e))
	}
	return &dto.EquipoListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// ListMarcas devuelve las marcas distintas registradas.
func (uc *EquipoUseCase) ListMarcas() ([]string, error) {
	return uc.equipoRepo.ListMarcas()
}

// ListEstados devuelve el catálogo de estados físicos.
func (uc *EquipoUseCase) ListEstados() ([]dto.EstadoFisicoResponse, error) {
	estados, err := uc.equipoRepo.ListEstadosFisicos()
	if err != nil {
		return nil, err
	}
	out := make([]dto.EstadoFisicoResponse, 0, len(estados))
	for _, e := range estados {
		out = append(out, dto.EstadoFisicoResponse{ID: e.ID, Nombre: e.Nombre})
	}
	return out, nil
}

// Historial devuelve el rastro de auditoría de un equipo con el nombre del usuario.
func (uc *EquipoUseCase) Historial(equipoID string) ([]dto.HistorialEquipoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(equipoID)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, domain.ErrNotFound
	}
	hist, err := uc.histRepo.ListByEquipo(equipoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.HistorialEquipoResponse, 0, len(hist))
	for _, h := range hist {
		nombre := h.UsuarioID
		if u, err := uc.userRepo.GetByID(h.UsuarioID); err == nil && u != nil {
			nombre = u.Nombre
		}
		out = append(out, dto.HistorialEquipoResponse{
			ID:             h.ID,
			Accion:         h.Accion,
			Descripcion:    h.Descripcion,
			EstadoFisicoID: h.EstadoFisicoID,
			Disponible:     h.Disponible,
			Usuario:        nombre,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out, nil
}

func nuevoHistorial(e *entity.Equipo, accion, descripcion, usuarioID string, now time.Time) *entity.HistorialEquipo {
	return &entity.HistorialEquipo{
		ID:             uuid.New().String(),
		EquipoID:       e.ID,
		Accion:         accion,
		Descripcion:    descripcion,
		EmpresaID:      e.EmpresaID,
		ProveedorID:    e.ProveedorID,
		EstadoFisicoID: e.EstadoFisicoID,
		Disponible:     e.Disponible,
		UsuarioID:      usuarioID,
		CreatedAt:      now,
	}
}

func toEquipoResponse(e *entity.Equipo) *dto.EquipoResponse {
	if e == nil {
		return nil
	}
	return &dto.EquipoResponse{
		ID:                e.ID,
		EmpresaID:         e.EmpresaID,
		CodigoPatrimonial: e.CodigoPatrimonial,
		Marca:             e.Marca,
		Modelo:            e.Modelo,
		NumeroSerie:       e.NumeroSerie,
		EsPropio:          e.EsPropio,
		ProveedorID:       e.ProveedorID,
		EstadoFisicoID:    e.EstadoFisicoID,
		EstadoCustodia:    custody.De(e).String(),
		Disponible:        e.Disponible,
		FechaAdquisicion:  e.FechaAdquisicion,
		FechaFinAlquiler:  e.FechaFinAlquiler,
		Especificaciones:  e.Especificaciones,
		Observaciones:     e.Observaciones,
		CreatedAt:         e.CreatedAt,
		UpdatedAt:         e.UpdatedAt,
	}
}
