package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// EmpresaUseCase casos de uso CRUD para empresas.
type EmpresaUseCase struct {
	repo repository.EmpresaRepository
}

// NewEmpresaUseCase construye el caso de uso.
func NewEmpresaUseCase(repo repository.EmpresaRepository) *EmpresaUseCase {
	return &EmpresaUseCase{repo: repo}
}

// Create registra una empresa. Devuelve ErrDuplicate si el RUC ya existe.
func (uc *EmpresaUseCase) Create(usuarioID string, in dto.CreateEmpresaRequest) (*dto.EmpresaResponse, error) {
	existente, err := uc.repo.GetByRUC(in.RUC)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	empresa := &entity.Empresa{
		ID:            uuid.New().String(),
		RUC:           in.RUC,
		RazonSocial:   in.RazonSocial,
		Direccion:     in.Direccion,
		Telefono:      in.Telefono,
		Estado:        true,
		CreadoPor:     usuarioID,
		ModificadoPor: usuarioID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// GetByID obtiene una empresa por ID.
func (uc *EmpresaUseCase) GetByID(id string) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	return toEmpresaResponse(empresa), nil
}

// List lista empresas; con soloActivas true excluye las dadas de baja.
func (uc *EmpresaUseCase) List(soloActivas bool) (*dto.EmpresaListResponse, error) {
	list, err := uc.repo.List(soloActivas)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmpresaResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *toEmpresaResponse(e))
	}
	return &dto.EmpresaListResponse{Items: items}, nil
}

// Update actualiza una empresa y estampa el usuario que modifica.
func (uc *EmpresaUseCase) Update(id, usuarioID string, in dto.UpdateEmpresaRequest) (*dto.EmpresaResponse, error) {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, nil
	}
	if in.RazonSocial != nil {
		empresa.RazonSocial = *in.RazonSocial
	}
	if in.Direccion != nil {
		empresa.Direccion = *in.Direccion
	}
	if in.Telefono != nil {
		empresa.Telefono = *in.Telefono
	}
	empresa.ModificadoPor = usuarioID
	empresa.UpdatedAt = time.Now()
	if err := uc.repo.Update(empresa); err != nil {
		return nil, err
	}
	return toEmpresaResponse(empresa), nil
}

// SetEstado baja lógica (estado=false) o reactivación (estado=true).
func (uc *EmpresaUseCase) SetEstado(id, usuarioID string, estado bool) error {
	empresa, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if empresa == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetEstado(id, estado, usuarioID)
}

func toEmpresaResponse(e *entity.Empresa) *dto.EmpresaResponse {
	if e == nil {
		return nil
	}
	return &dto.EmpresaResponse{
		ID:          e.ID,
		RUC:         e.RUC,
		RazonSocial: e.RazonSocial,
		Direccion:   e.Direccion,
		Telefono:    e.Telefono,
		Estado:      e.Estado,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
