package custody

import (
	"context"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/domain"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// Flujo de documentos firmados sobre un movimiento ya registrado. Son tres
// transiciones independientes de una sola columna, sin más guarda que la
// existencia del movimiento: se permite re-subir sobre una firma invalidada y
// re-invalidar una firma ya inválida.

// SubirFirmado guarda el acta firmada y la asocia al movimiento
// (firma_valida queda en true).
func (uc *UseCase) SubirFirmado(ctx context.Context, movimientoID string, pdf []byte) (*dto.FirmadoResponse, error) {
	mov, err := uc.movRepo.GetByID(movimientoID)
	if err != nil {
		return nil, err
	}
	if mov == nil {
		return nil, domain.ErrNotFound
	}
	path, err := uc.files.SaveBytes("firmados", ".pdf", pdf)
	if err != nil {
		return nil, err
	}
	url := uc.files.PublicURL(path)
	if err := uc.movRepo.SetFirmado(movimientoID, url); err != nil {
		return nil, err
	}
	return &dto.FirmadoResponse{
		MovimientoID:  movimientoID,
		URLPdfFirmado: url,
		FirmaValida:   true,
	}, nil
}

// InvalidarFirma marca la firma del movimiento como inválida.
func (uc *UseCase) InvalidarFirma(ctx context.Context, movimientoID string) error {
	mov, err := uc.movRepo.GetByID(movimientoID)
	if err != nil {
		return err
	}
	if mov == nil {
		return domain.ErrNotFound
	}
	return uc.movRepo.InvalidarFirma(movimientoID)
}

// ReenviarCorreo reconstruye el correo del acta de un movimiento existente y
// reintenta el envío. Devuelve el resultado del intento en la respuesta.
func (uc *UseCase) ReenviarCorreo(ctx context.Context, in dto.ReenviarCorreoRequest) (*dto.MovimientoResponse, error) {
	mov, err := uc.movRepo.GetByID(in.MovimientoID)
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

	destino := in.CorreoDestino
	if destino == "" {
		destino = colaborador.Email
	}
	adjuntoPath, err := uc.resolverActa(ctx, mov, equipo, colaborador, nil)
	if err != nil {
		return nil, err
	}

	var notifID string
	err = uc.txRunner.RunMovimiento(ctx, func(
		_ repository.EquipoRepository,
		_ repository.MovimientoRepository,
		_ repository.HistorialRepository,
		notifRepo repository.NotificacionRepository,
	) error {
		notifID, err = uc.notificador.Encolar(notifRepo, mov, equipo, colaborador, destino, adjuntoPath)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.respuestaConCorreo(ctx, mov, notifID), nil
}
