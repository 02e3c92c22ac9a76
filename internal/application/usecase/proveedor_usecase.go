package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// ProveedorUseCase casos de uso CRUD para proveedores.
type ProveedorUseCase struct {
	repo repository.ProveedorRepository
}

// NewProveedorUseCase construye el caso de uso.
func NewProveedorUseCase(repo repository.ProveedorRepository) *ProveedorUseCase {
	return &ProveedorUseCase{repo: repo}
}

// Create registra un proveedor. Devuelve ErrDuplicate si el RUC ya existe.
func (uc *ProveedorUseCase) Create(usuarioID string, in dto.CreateProveedorRequest) (*dto.ProveedorResponse, error) {
	existente, err := uc.repo.GetByRUC(in.RUC)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	proveedor := &entity.Proveedor{
		ID:            uuid.New().String(),
		RUC:           in.RUC,
		RazonSocial:   in.RazonSocial,
		Contacto:      in.Contacto,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Estado:        true,
		CreadoPor:     usuarioID,
		ModificadoPor: usuarioID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// GetByID obtiene un proveedor por ID.
func (uc *ProveedorUseCase) GetByID(id string) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	return toProveedorResponse(proveedor), nil
}

// List lista proveedores; con soloActivos true excluye los dados de baja.
func (uc *ProveedorUseCase) List(soloActivos bool) (*dto.ProveedorListResponse, error) {
	list, err := uc.repo.List(soloActivos)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProveedorResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProveedorResponse(p))
	}
	return &dto.ProveedorListResponse{Items: items}, nil
}

// Update actualiza un proveedor.
func (uc *ProveedorUseCase) Update(id, usuarioID string, in dto.UpdateProveedorRequest) (*dto.ProveedorResponse, error) {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, nil
	}
	if in.RazonSocial != nil {
		proveedor.RazonSocial = *in.RazonSocial
	}
	if in.Contacto != nil {
		proveedor.Contacto = *in.Contacto
	}
	if in.Email != nil {
		proveedor.Email = *in.Email
	}
	if in.Telefono != nil {
		proveedor.Telefono = *in.Telefono
	}
	proveedor.ModificadoPor = usuarioID
	proveedor.UpdatedAt = time.Now()
	if err := uc.repo.Update(proveedor); err != nil {
		return nil, err
	}
	return toProveedorResponse(proveedor), nil
}

// SetEstado baja lógica o reactivación de un proveedor.
func (uc *ProveedorUseCase) SetEstado(id, usuarioID string, estado bool) error {
	proveedor, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetEstado(id, estado, usuarioID)
}

func toProveedorResponse(p *entity.Proveedor) *dto.ProveedorResponse {
	if p == nil {
		return nil
	}
	return &dto.ProveedorResponse{
		ID:          p.ID,
		RUC:         p.RUC,
		RazonSocial: p.RazonSocial,
		Contacto:    p.Contacto,
		Email:       p.Email,
		Telefono:    p.Telefono,
		Estado:      p.Estado,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
