package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// ColaboradorUseCase casos de uso CRUD para colaboradores.
type ColaboradorUseCase struct {
	repo        repository.ColaboradorRepository
	empresaRepo repository.EmpresaRepository
}

// NewColaboradorUseCase construye el caso de uso.
func NewColaboradorUseCase(repo repository.ColaboradorRepository, empresaRepo repository.EmpresaRepository) *ColaboradorUseCase {
	return &ColaboradorUseCase{repo: repo, empresaRepo: empresaRepo}
}

// Create registra un colaborador. Devuelve ErrDuplicate si el DNI ya existe y
// ErrNotFound si la empresa no existe.
func (uc *ColaboradorUseCase) Create(usuarioID string, in dto.CreateColaboradorRequest) (*dto.ColaboradorResponse, error) {
	existente, err := uc.repo.GetByDNI(in.DNI)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	empresa, err := uc.empresaRepo.GetByID(in.EmpresaID)
	if err != nil {
		return nil, err
	}
	if empresa == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	colaborador := &entity.Colaborador{
		ID:            uuid.New().String(),
		EmpresaID:     in.EmpresaID,
		DNI:           in.DNI,
		Nombres:       in.Nombres,
		Apellidos:     in.Apellidos,
		Email:         in.Email,
		Telefono:      in.Telefono,
		Cargo:         in.Cargo,
		Genero:        in.Genero,
		Estado:        true,
		CreadoPor:     usuarioID,
		ModificadoPor: usuarioID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(colaborador); err != nil {
		return nil, err
	}
	resp := toColaboradorResponse(colaborador)
	resp.Empresa = empresa.RazonSocial
	return resp, nil
}

// GetByID obtiene un colaborador por ID.
func (uc *ColaboradorUseCase) GetByID(id string) (*dto.ColaboradorResponse, error) {
	colaborador, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if colaborador == nil {
		return nil, nil
	}
	return toColaboradorResponse(colaborador), nil
}

// List lista colaboradores; con soloActivos true excluye los dados de baja.
func (uc *ColaboradorUseCase) List(soloActivos bool) (*dto.ColaboradorListResponse, error) {
	list, err := uc.repo.List(soloActivos)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ColaboradorResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toColaboradorResponse(c))
	}
	return &dto.ColaboradorListResponse{Items: items}, nil
}

// Update actualiza un colaborador.
func (uc *ColaboradorUseCase) Update(id, usuarioID string, in dto.UpdateColaboradorRequest) (*dto.ColaboradorResponse, error) {
	colaborador, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if colaborador == nil {
		return nil, nil
	}
	if in.EmpresaID != nil {
		colaborador.EmpresaID = *in.EmpresaID
	}
	if in.Nombres != nil {
		colaborador.Nombres = *in.Nombres
	}
	if in.Apellidos != nil {
		colaborador.Apellidos = *in.Apellidos
	}
	if in.Email != nil {
		colaborador.Email = *in.Email
	}
	if in.Telefono != nil {
		colaborador.Telefono = *in.Telefono
	}
	if in.Cargo != nil {
		colaborador.Cargo = *in.Cargo
	}
	if in.Genero != nil {
		colaborador.Genero = *in.Genero
	}
	colaborador.ModificadoPor = usuarioID
	colaborador.UpdatedAt = time.Now()
	if err := uc.repo.Update(colaborador); err != nil {
		return nil, err
	}
	return toColaboradorResponse(colaborador), nil
}

// SetEstado baja lógica o reactivación de un colaborador.
func (uc *ColaboradorUseCase) SetEstado(id, usuarioID string, estado bool) error {
	colaborador, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if colaborador == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SetEstado(id, estado, usuarioID)
}

func toColaboradorResponse(c *entity.Colaborador) *dto.ColaboradorResponse {
	if c == nil {
		return nil
	}
	return &dto.ColaboradorResponse{
		ID:        c.ID,
		EmpresaID: c.EmpresaID,
		DNI:       c.DNI,
		Nombres:   c.Nombres,
		Apellidos: c.Apellidos,
		Email:     c.Email,
		Telefono:  c.Telefono,
		Cargo:     c.Cargo,
		Genero:    c.Genero,
		Estado:    c.Estado,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
