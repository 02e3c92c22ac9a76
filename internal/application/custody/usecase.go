// Package custody implementa los casos de uso del ciclo de entrega y devolución
// de equipos: el movimiento, el reclamo de disponibilidad, el rastro de auditoría
// y el encolado del correo del acta, todo dentro de una transacción.
package custody

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/custody"
	"github.com/velatec/activos-api/internal/domain/entity"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// ActaGenerator genera el PDF del acta de entrega o devolución.
type ActaGenerator interface {
	GenerarActa(ctx context.Context, mov *entity.Movimiento, equipo *entity.Equipo,
		colaborador *entity.Colaborador, empresa *entity.Empresa) ([]byte, error)
}

// FileStore persiste archivos (actas generadas y actas firmadas subidas).
type FileStore interface {
	// SaveBytes guarda data bajo el subdirectorio dado con un nombre único y
	// devuelve la ruta local del archivo.
	SaveBytes(subdir, ext string, data []byte) (string, error)
	// PublicURL traduce una ruta local a la URL pública servida bajo /uploads.
	PublicURL(path string) string
}

// Notificador encola y envía los correos de actas. Encolar persiste la fila del
// outbox con el repositorio de la transacción en curso; Enviar es el intento
// inmediato posterior al commit.
type Notificador interface {
	Encolar(notifRepo repository.NotificacionRepository, mov *entity.Movimiento,
		equipo *entity.Equipo, colaborador *entity.Colaborador,
		destino, adjuntoPath string) (string, error)
	Enviar(ctx context.Context, notificacionID string) error
}

// UseCase casos de uso de custodia: entregas, devoluciones, libro de movimientos,
// flujo de firma y reenvío de correos.
type UseCase struct {
	txRunner        TxRunner
	equipoRepo      repository.EquipoRepository
	colaboradorRepo repository.ColaboradorRepository
	empresaRepo     repository.EmpresaRepository
	movRepo         repository.MovimientoRepository
	actas           ActaGenerator
	files           FileStore
	notificador     Notificador
}

// NewUseCase construye el caso de uso de custodia.
func NewUseCase(
	txRunner TxRunner,
	equipoRepo repository.EquipoRepository,
	colaboradorRepo repository.ColaboradorRepository,
	empresaRepo repository.EmpresaRepository,
	movRepo repository.MovimientoRepository,
	actas ActaGenerator,
	files FileStore,
	notificador Notificador,
) *UseCase {
	return &UseCase{
		txRunner:        txRunner,
		equipoRepo:      equipoRepo,
		colaboradorRepo: colaboradorRepo,
		empresaRepo:     empresaRepo,
		movRepo:         movRepo,
		actas:           actas,
		files:           files,
		notificador:     notificador,
	}
}

// EntregaInput entrada para registrar una entrega.
// ActaPDF lleva el acta subida por el cliente (variante con correo); si viene
// vacía y ConCorreo es true, el acta se genera con el generador PDF.
type EntregaInput struct {
	EquipoID        string
	ColaboradorID   string
	Fecha           *time.Time
	IncluyeCargador bool
	Observaciones   string
	UsuarioID       string
	ConCorreo       bool
	CorreoDestino   string
	ActaPDF         []byte
}

// RegistrarEntrega registra la entrega de un equipo a un colaborador.
//
// Transacción única: reclamo condicional de disponibilidad (UPDATE ... WHERE
// disponible = true), inserción del movimiento, fila de historial y, en la
// variante con correo, la fila del outbox. El envío SMTP ocurre después del
// commit; su fallo se reporta en Warning y nunca revierte la escritura.
func (uc *UseCase) RegistrarEntrega(ctx context.Context, in EntregaInput) (*dto.MovimientoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(in.EquipoID)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, domain.ErrNotFound
	}
	colaborador, err := uc.colaboradorRepo.GetByID(in.ColaboradorID)
	if err != nil {
		return nil, err
	}
	if colaborador == nil || !colaborador.Estado {
		return nil, domain.ErrNotFound
	}
	// Chequeo rápido previo a la transacción; el reclamo condicional dentro de
	// la tx es el que decide bajo concurrencia.
	if _, err := custody.AlEntregar(equipo); err != nil {
		return nil, err
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}

	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		Tipo:            entity.MovimientoEntrega,
		EquipoID:        in.EquipoID,
		ColaboradorID:   in.ColaboradorID,
		Fecha:           fecha,
		IncluyeCargador: in.IncluyeCargador,
		Observaciones:   in.Observaciones,
		CreadoPor:       in.UsuarioID,
		CreatedAt:       now,
	}

	destino := in.CorreoDestino
	if destino == "" {
		destino = colaborador.Email
	}

	// El acta se resuelve antes de abrir la transacción: o la subió el cliente
	// o se genera aquí; en ambos casos queda en disco antes del commit.
	var adjuntoPath string
	if in.ConCorreo {
		adjuntoPath, err = uc.resolverActa(ctx, mov, equipo, colaborador, in.ActaPDF)
		if err != nil {
			return nil, err
		}
	}

	var notifID string
	err = uc.txRunner.RunMovimiento(ctx, func(
		equipoRepo repository.EquipoRepository,
		movRepo repository.MovimientoRepository,
		histRepo repository.HistorialRepository,
		notifRepo repository.NotificacionRepository,
	) error {
		claimed, err := equipoRepo.ClaimParaEntrega(in.EquipoID)
		if err != nil {
			return err
		}
		if claimed == nil {
			return domain.ErrEquipoNoDisponible
		}
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		descripcion := fmt.Sprintf("Equipo %s entregado %s %s (DNI %s)",
			equipo.CodigoPatrimonial, colaborador.FraseDestinatario(),
			colaborador.NombreCompleto(), colaborador.DNI)
		if err := histRepo.Create(historialDe(equipo, entity.AccionEntrega, descripcion,
			entity.EstadoOperativo, false, in.UsuarioID, now)); err != nil {
			return err
		}
		if in.ConCorreo {
			notifID, err = uc.notificador.Encolar(notifRepo, mov, equipo, colaborador, destino, adjuntoPath)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.respuestaConCorreo(ctx, mov, notifID), nil
}

// DevolucionInput entrada para registrar una devolución.
type DevolucionInput struct {
	EquipoID        string
	ColaboradorID   string
	Fecha           *time.Time
	IncluyeCargador bool
	Observaciones   string
	Motivo          string
	EstadoFisicoID  int
	EstadoFinal     string // etiqueta libre para el mensaje de auditoría
	UsuarioID       string
	ConCorreo       bool
	CorreoDestino   string
	ActaPDF         []byte
}

// RegistrarDevolucion registra la devolución de un equipo.
//
// El movimiento guarda el snapshot del estado físico reportado; el equipo queda
// con ese estado, la disponibilidad derivada (disponible solo si volvió
// Operativo) y las observaciones sobreescritas. Mismo manejo de correo que la
// entrega.
func (uc *UseCase) RegistrarDevolucion(ctx context.Context, in DevolucionInput) (*dto.MovimientoResponse, error) {
	equipo, err := uc.equipoRepo.GetByID(in.EquipoID)
	if err != nil {
		return nil, err
	}
	if equipo == nil {
		return nil, domain.ErrNotFound
	}
	colaborador, err := uc.colaboradorRepo.GetByID(in.ColaboradorID)
	if err != nil {
		return nil, err
	}
	if colaborador == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	fecha := now
	if in.Fecha != nil {
		fecha = *in.Fecha
	}
	resultado := custody.AlDevolver(in.EstadoFisicoID)
	estadoSnapshot := in.EstadoFisicoID

	mov := &entity.Movimiento{
		ID:              uuid.New().String(),
		Tipo:            entity.MovimientoDevolucion,
		EquipoID:        in.EquipoID,
		ColaboradorID:   in.ColaboradorID,
		Fecha:           fecha,
		IncluyeCargador: in.IncluyeCargador,
		Observaciones:   in.Observaciones,
		Motivo:          in.Motivo,
		EstadoEquipoID:  &estadoSnapshot,
		CreadoPor:       in.UsuarioID,
		CreatedAt:       now,
	}

	destino := in.CorreoDestino
	if destino == "" {
		destino = colaborador.Email
	}

	var adjuntoPath string
	if in.ConCorreo {
		adjuntoPath, err = uc.resolverActa(ctx, mov, equipo, colaborador, in.ActaPDF)
		if err != nil {
			return nil, err
		}
	}

	var notifID string
	err = uc.txRunner.RunMovimiento(ctx, func(
		equipoRepo repository.EquipoRepository,
		movRepo repository.MovimientoRepository,
		histRepo repository.HistorialRepository,
		notifRepo repository.NotificacionRepository,
	) error {
		if err := movRepo.Create(mov); err != nil {
			return err
		}
		obs := in.Observaciones
		if err := equipoRepo.UpdateCustodia(in.EquipoID, resultado.EstadoFisicoID,
			resultado.Disponible, &obs, in.UsuarioID); err != nil {
			return err
		}
		estadoFinal := in.EstadoFinal
		if estadoFinal == "" {
			estadoFinal = fmt.Sprintf("estado %d", in.EstadoFisicoID)
		}
		descripcion := fmt.Sprintf("Equipo %s devuelto por %s (DNI %s). Motivo: %s. Estado final: %s",
			equipo.CodigoPatrimonial, colaborador.NombreCompleto(), colaborador.DNI,
			in.Motivo, estadoFinal)
		if err := histRepo.Create(historialDe(equipo, entity.AccionDevolucion, descripcion,
			resultado.EstadoFisicoID, resultado.Disponible, in.UsuarioID, now)); err != nil {
			return err
		}
		if in.ConCorreo {
			notifID, err = uc.notificador.Encolar(notifRepo, mov, equipo, colaborador, destino, adjuntoPath)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.respuestaConCorreo(ctx, mov, notifID), nil
}

// ListMovimientos devuelve el libro completo de movimientos.
func (uc *UseCase) ListMovimientos(ctx context.Context, f repository.FiltroMovimientos) (*dto.MovimientoListResponse, error) {
	rows, err := uc.movRepo.ListLedger(ctx, f)
	if err != nil {
		return nil, err
	}
	return &dto.MovimientoListResponse{
		Items: rows,
		Page:  dto.PageResponse{Limit: f.Limit, Offset: f.Offset},
	}, nil
}

// GenerarActa carga el movimiento con sus relaciones y genera el PDF del acta.
func (uc *UseCase) GenerarActa(ctx context.Context, movimientoID string) ([]byte, error) {
	mov, err := uc.movRepo.GetByID(movimientoID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	equipo, err := uc.equipoRepo.GetByID(mov.EquipoID)
	if err != nil || equipo == nil {
		return nil, domain.ErrNotFound
	}
	colaborador, err := uc.colaboradorRepo.GetByID(mov.ColaboradorID)
	if err != nil || colaborador == nil {
		return nil, domain.ErrNotFound
	}
	empresa, _ := uc.empresaRepo.GetByID(equipo.EmpresaID)
	return uc.actas.GenerarActa(ctx, mov, equipo, colaborador, empresa)
}

// resolverActa decide el PDF a adjuntar: el subido por el cliente o uno generado.
func (uc *UseCase) resolverActa(ctx context.Context, mov *entity.Movimiento,
	equipo *entity.Equipo, colaborador *entity.Colaborador, subido []byte) (string, error) {
	data := subido
	if len(data) == 0 {
		empresa, _ := uc.empresaRepo.GetByID(equipo.EmpresaID)
		var err error
		data, err = uc.actas.GenerarActa(ctx, mov, equipo, colaborador, empresa)
		if err != nil {
			return "", fmt.Errorf("generar acta: %w", err)
		}
	}
	return uc.files.SaveBytes("actas", ".pdf", data)
}

// respuestaConCorreo arma la respuesta e intenta el envío inmediato si hubo outbox.
func (uc *UseCase) respuestaConCorreo(ctx context.Context, mov *entity.Movimiento, notifID string) *dto.MovimientoResponse {
	resp := &dto.MovimientoResponse{
		ID:            mov.ID,
		Tipo:          mov.Tipo,
		EquipoID:      mov.EquipoID,
		ColaboradorID: mov.ColaboradorID,
		Fecha:         mov.Fecha,
		CreatedAt:     mov.CreatedAt,
	}
	if notifID == "" {
		return resp
	}
	enviado := true
	if err := uc.notificador.Enviar(ctx, notifID); err != nil {
		enviado = false
		resp.Warning = "movimiento registrado, pero el correo no pudo enviarse: " + err.Error()
	}
	resp.CorreoEnviado = &enviado
	return resp
}

// historialDe arma una fila de historial con el snapshot del equipo.
func historialDe(e *entity.Equipo, accion, descripcion string, estadoFisicoID int,
	disponible bool, usuarioID string, now time.Time) *entity.HistorialEquipo {
	return &entity.HistorialEquipo{
		ID:             uuid.New().String(),
		EquipoID:       e.ID,
		Accion:         accion,
		Descripcion:    descripcion,
		EmpresaID:      e.EmpresaID,
		ProveedorID:    e.ProveedorID,
		EstadoFisicoID: estadoFisicoID,
		Disponible:     disponible,
		UsuarioID:      usuarioID,
		CreatedAt:      now,
	}
}
