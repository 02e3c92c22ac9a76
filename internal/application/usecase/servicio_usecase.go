package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// ServicioUseCase casos de uso para servicios/suscripciones, su libro de pagos y
// su log de auditoría de texto libre. Cada mutación del servicio deja una
// entrada de auditoría.
type ServicioUseCase struct {
	repo          repository.ServicioRepository
	proveedorRepo repository.ProveedorRepository
	userRepo      repository.UsuarioRepository
}

// NewServicioUseCase construye el caso de uso.
func NewServicioUseCase(repo repository.ServicioRepository, proveedorRepo repository.ProveedorRepository, userRepo repository.UsuarioRepository) *ServicioUseCase {
	return &ServicioUseCase{repo: repo, proveedorRepo: proveedorRepo, userRepo: userRepo}
}

// Create registra un servicio nuevo.
func (uc *ServicioUseCase) Create(usuarioID string, in dto.CreateServicioRequest) (*dto.ServicioResponse, error) {
	proveedor, err := uc.proveedorRepo.GetByID(in.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	moneda := in.Moneda
	if moneda == "" {
		moneda = "PEN"
	}
	servicio := &entity.Servicio{
		ID:            uuid.New().String(),
		ProveedorID:   in.ProveedorID,
		Nombre:        in.Nombre,
		Descripcion:   in.Descripcion,
		CostoMensual:  in.CostoMensual,
		Moneda:        moneda,
		Licencias:     in.Licencias,
		FechaInicio:   in.FechaInicio,
		FechaFin:      in.FechaFin,
		Estado:        true,
		CreadoPor:     usuarioID,
		ModificadoPor: usuarioID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(servicio); err != nil {
		return nil, err
	}
	uc.auditar(servicio.ID, "CREACIÓN", fmt.Sprintf("Servicio %q registrado", servicio.Nombre), usuarioID)
	resp := toServicioResponse(servicio)
	resp.Proveedor = proveedor.RazonSocial
	return resp, nil
}

// GetByID obtiene un servicio por ID.
func (uc *ServicioUseCase) GetByID(id string) (*dto.ServicioResponse, error) {
	servicio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, nil
	}
	return toServicioResponse(servicio), nil
}

// List lista servicios; con soloActivos true excluye los dados de baja.
func (uc *ServicioUseCase) List(soloActivos bool) (*dto.ServicioListResponse, error) {
	list, err := uc.repo.List(soloActivos)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ServicioResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toServicioResponse(s))
	}
	return &dto.ServicioListResponse{Items: items}, nil
}

// Update actualiza un servicio y deja la entrada de auditoría.
func (uc *ServicioUseCase) Update(id, usuarioID string, in dto.UpdateServicioRequest) (*dto.ServicioResponse, error) {
	servicio, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, nil
	}
	if in.Nombre != nil {
		servicio.Nombre = *in.Nombre
	}
	if in.Descripcion != nil {
		servicio.Descripcion = *in.Descripcion
	}
	if in.CostoMensual != nil {
		servicio.CostoMensual = *in.CostoMensual
	}
	if in.Moneda != nil {
		servicio.Moneda = *in.Moneda
	}
	if in.Licencias != nil {
		servicio.Licencias = *in.Licencias
	}
	if in.FechaInicio != nil {
		servicio.FechaInicio = in.FechaInicio
	}
	if in.FechaFin != nil {
		servicio.FechaFin = in.FechaFin
	}
	servicio.ModificadoPor = usuarioID
	servicio.UpdatedAt = time.Now()
	if err := uc.repo.Update(servicio); err != nil {
		return nil, err
	}
	uc.auditar(id, "EDICIÓN", fmt.Sprintf("Servicio %q editado", servicio.Nombre), usuarioID)
	return toServicioResponse(servicio), nil
}

// SetEstado baja lógica o reactivación de un servicio, con auditoría.
func (uc *ServicioUseCase) SetEstado(id, usuarioID string, estado bool) error {
	servicio, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if servicio == nil {
		return domain.ErrNotFound
	}
	if err := uc.repo.SetEstado(id, estado, usuarioID); err != nil {
		return err
	}
	accion := "BAJA"
	if estado {
		accion = "REACTIVACIÓN"
	}
	uc.auditar(id, accion, fmt.Sprintf("Servicio %q: %s", servicio.Nombre, accion), usuarioID)
	return nil
}

// CreatePago registra un pago en el sub-libro del servicio.
func (uc *ServicioUseCase) CreatePago(servicioID, usuarioID string, in dto.CreatePagoRequest) (*dto.PagoResponse, error) {
	servicio, err := uc.repo.GetByID(servicioID)
	if err != nil {
		return nil, err
	}
	if servicio == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	fechaPago := now
	if in.FechaPago != nil {
		fechaPago = *in.FechaPago
	}
	moneda := in.Moneda
	if moneda == "" {
		moneda = servicio.Moneda
	}
	pago := &entity.PagoServicio{
		ID:         uuid.New().String(),
		ServicioID: servicioID,
		Monto:      in.Monto,
		Moneda:     moneda,
		FechaPago:  fechaPago,
		Periodo:    in.Periodo,
		Referencia: in.Referencia,
		CreadoPor:  usuarioID,
		CreatedAt:  now,
	}
	if err := uc.repo.CreatePago(pago); err != nil {
		return nil, err
	}
	uc.auditar(servicioID, "PAGO", fmt.Sprintf("Pago de %s %s registrado (periodo %s)", pago.Monto, pago.Moneda, pago.Periodo), usuarioID)
	return toPagoResponse(pago), nil
}

// ListPagos lista los pagos del servicio.
func (uc *ServicioUseCase) ListPagos(servicioID string) ([]dto.PagoResponse, error) {
	pagos, err := uc.repo.ListPagos(servicioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PagoResponse, 0, len(pagos))
	for _, p := range pagos {
		out = append(out, *toPagoResponse(p))
	}
	return out, nil
}

// AnularPago anulación lógica de un pago (el pago nunca se borra).
func (uc *ServicioUseCase) AnularPago(servicioID, pagoID, usuarioID string) error {
	pago, err := uc.repo.GetPagoByID(pagoID)
	if err != nil {
		return err
	}
	if pago == nil || pago.ServicioID != servicioID {
		return domain.ErrNotFound
	}
	if err := uc.repo.AnularPago(pagoID); err != nil {
		return err
	}
	uc.auditar(servicioID, "ANULACIÓN PAGO", fmt.Sprintf("Pago %s anulado (periodo %s)", pagoID, pago.Periodo), usuarioID)
	return nil
}

// ListAuditoria devuelve el log de auditoría del servicio con nombres de usuario.
func (uc *ServicioUseCase) ListAuditoria(servicioID string) ([]dto.AuditoriaResponse, error) {
	entradas, err := uc.repo.ListAuditoria(servicioID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditoriaResponse, 0, len(entradas))
	for _, a := range entradas {
		nombre := a.UsuarioID
		if u, err := uc.userRepo.GetByID(a.UsuarioID); err == nil && u != nil {
			nombre = u.Nombre
		}
		out = append(out, dto.AuditoriaResponse{
			ID:        a.ID,
			Accion:    a.Accion,
			Detalle:   a.Detalle,
			Usuario:   nombre,
			CreatedAt: a.CreatedAt,
		})
	}
	return out, nil
}

// auditar registra la entrada de auditoría; un fallo aquí no revierte la
// operación principal (el registro es best-effort).
func (uc *ServicioUseCase) auditar(servicioID, accion, detalle, usuarioID string) {
	_ = uc.repo.CreateAuditoria(&entity.AuditoriaServicio{
		ID:         uuid.New().String(),
		ServicioID: servicioID,
		Accion:     accion,
		Detalle:    detalle,
		UsuarioID:  usuarioID,
		CreatedAt:  time.Now(),
	})
}

func toServicioResponse(s *entity.Servicio) *dto.ServicioResponse {
	if s == nil {
		return nil
	}
	return &dto.ServicioResponse{
		ID:           s.ID,
		ProveedorID:  s.ProveedorID,
		Nombre:       s.Nombre,
		Descripcion:  s.Descripcion,
		CostoMensual: s.CostoMensual,
		Moneda:       s.Moneda,
		Licencias:    s.Licencias,
		FechaInicio:  s.FechaInicio,
		FechaFin:     s.FechaFin,
		Estado:       s.Estado,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toPagoResponse(p *entity.PagoServicio) *dto.PagoResponse {
	if p == nil {
		return nil
	}
	return &dto.PagoResponse{
		ID:         p.ID,
		ServicioID: p.ServicioID,
		Monto:      p.Monto,
		Moneda:     p.Moneda,
		FechaPago:  p.FechaPago,
		Periodo:    p.Periodo,
		Referencia: p.Referencia,
		Anulado:    p.Anulado,
		CreatedAt:  p.CreatedAt,
	}
}
