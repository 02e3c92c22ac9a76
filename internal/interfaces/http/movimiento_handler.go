package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/velatec/activos-api/internal/application/custody"
	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/application/reports"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// maxActaBytes límite de tamaño para actas PDF subidas.
const maxActaBytes = 10 << 20

// MovimientoHandler maneja entregas, devoluciones, actas y firmas (protegido).
type MovimientoHandler struct {
	uc     *custody.UseCase
	export *reports.ExportUseCase
}

// NewMovimientoHandler construye el handler.
func NewMovimientoHandler(uc *custody.UseCase, export *reports.ExportUseCase) *MovimientoHandler {
	return &MovimientoHandler{uc: uc, export: export}
}

// RegistrarEntrega godoc
// @Summary      Registrar entrega de equipo
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntregaRequest  true  "Datos de la entrega"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse  "Equipo no disponible"
// @Router       /api/movimientos/entrega [post]
func (h *MovimientoHandler) RegistrarEntrega(c *fiber.Ctx) error {
	return h.entrega(c, false)
}

// RegistrarEntregaConCorreo godoc
// @Summary      Registrar entrega y enviar acta por correo
// @Description  Acepta multipart/form-data con un campo de archivo "acta" opcional;
// @Description  sin archivo, el acta se genera automáticamente. Si el correo falla,
// @Description  la entrega queda registrada y la respuesta incluye warning.
// @Tags         movimientos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.MovimientoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/movimientos/entrega-con-correo [post]
func (h *MovimientoHandler) RegistrarEntregaConCorreo(c *fiber.Ctx) error {
	return h.entrega(c, true)
}

func (h *MovimientoHandler) entrega(c *fiber.Ctx, conCorreo bool) error {
	var in dto.EntregaRequest
	if !bind(c, &in) {
		return nil
	}
	acta, ok := actaAdjunta(c)
	if !ok {
		return nil
	}
	out, err := h.uc.RegistrarEntrega(c.Context(), custody.EntregaInput{
		EquipoID:        in.EquipoID,
		ColaboradorID:   in.ColaboradorID,
		Fecha:           in.Fecha,
		IncluyeCargador: in.IncluyeCargador,
		Observaciones:   in.Observaciones,
		UsuarioID:       GetUserID(c),
		ConCorreo:       conCorreo,
		CorreoDestino:   in.CorreoDestino,
		ActaPDF:         acta,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// RegistrarDevolucion godoc
// @Summary      Registrar devolución de equipo
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DevolucionRequest  true  "Datos de la devolución"
// @Success      201   {object}  dto.MovimientoResponse
// @Router       /api/movimientos/devolucion [post]
func (h *MovimientoHandler) RegistrarDevolucion(c *fiber.Ctx) error {
	return h.devolucion(c, false)
}

// RegistrarDevolucionConCorreo godoc
// @Summary      Registrar devolución y enviar acta por correo
// @Tags         movimientos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  dto.MovimientoResponse
// @Router       /api/movimientos/devolucion-con-correo [post]
func (h *MovimientoHandler) RegistrarDevolucionConCorreo(c *fiber.Ctx) error {
	return h.devolucion(c, true)
}

func (h *MovimientoHandler) devolucion(c *fiber.Ctx, conCorreo bool) error {
	var in dto.DevolucionRequest
	if !bind(c, &in) {
		return nil
	}
	acta, ok := actaAdjunta(c)
	if !ok {
		return nil
	}
	out, err := h.uc.RegistrarDevolucion(c.Context(), custody.DevolucionInput{
		EquipoID:        in.EquipoID,
		ColaboradorID:   in.ColaboradorID,
		Fecha:           in.Fecha,
		IncluyeCargador: in.IncluyeCargador,
		Observaciones:   in.Observaciones,
		Motivo:          in.Motivo,
		EstadoFisicoID:  in.EstadoFisicoID,
		EstadoFinal:     in.EstadoFinal,
		UsuarioID:       GetUserID(c),
		ConCorreo:       conCorreo,
		CorreoDestino:   in.CorreoDestino,
		ActaPDF:         acta,
	})
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// actaAdjunta lee el archivo "acta" del multipart si existe. Devuelve ok=false
// cuando la respuesta de error ya fue escrita.
func actaAdjunta(c *fiber.Ctx) ([]byte, bool) {
	fh, err := c.FormFile("acta")
	if err != nil {
		return nil, true // sin archivo adjunto
	}
	if fh.Size > maxActaBytes {
		_ = c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el acta supera el tamaño máximo"})
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el acta adjunta"})
		return nil, false
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el acta adjunta"})
		return nil, false
	}
	return data, true
}

// List godoc
// @Summary      Libro de movimientos
// @Tags         movimientos
// @Security     Bearer
// @Produce      json
// @Param        equipo_id       query  string  false  "Filtrar por equipo"
// @Param        colaborador_id  query  string  false  "Filtrar por colaborador"
// @Param        tipo            query  string  false  "entrega | devolucion"
// @Param        limit           query  int     false  "Límite"   default(20)
// @Param        offset          query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.MovimientoListResponse
// @Router       /api/movimientos [get]
func (h *MovimientoHandler) List(c *fiber.Ctx) error {
	f := filtroMovimientos(c)
	out, err := h.uc.ListMovimientos(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ExportXLSX godoc
// @Summary      Exportar el libro de movimientos a Excel
// @Tags         movimientos
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        equipo_id       query  string  false  "Filtrar por equipo"
// @Param        colaborador_id  query  string  false  "Filtrar por colaborador"
// @Param        tipo            query  string  false  "entrega | devolucion"
// @Success      200  {file}  binary
// @Router       /api/movimientos/export [get]
func (h *MovimientoHandler) ExportXLSX(c *fiber.Ctx) error {
	f := filtroMovimientos(c)
	f.Limit = 0 // exporta todo el resultado filtrado
	f.Offset = 0
	data, err := h.export.MovimientosXLSX(c.Context(), f)
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.xlsx"`)
	return c.Send(data)
}

func filtroMovimientos(c *fiber.Ctx) repository.FiltroMovimientos {
	f := repository.FiltroMovimientos{
		EquipoID:      c.Query("equipo_id"),
		ColaboradorID: c.Query("colaborador_id"),
		Tipo:          c.Query("tipo"),
		Limit:         c.QueryInt("limit", 20),
		Offset:        c.QueryInt("offset", 0),
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// Acta godoc
// @Summary      Descargar el acta PDF de un movimiento
// @Tags         movimientos
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {file}  binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id}/acta [get]
func (h *MovimientoHandler) Acta(c *fiber.Ctx) error {
	data, err := h.uc.GenerarActa(c.Context(), c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="acta.pdf"`)
	return c.Send(data)
}

// SubirFirmado godoc
// @Summary      Subir acta firmada (multipart, campo "pdf")
// @Tags         movimientos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id   path  string  true  "ID del movimiento"
// @Success      200  {object}  dto.FirmadoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id}/subir-firmado [post]
func (h *MovimientoHandler) SubirFirmado(c *fiber.Ctx) error {
	fh, err := c.FormFile("pdf")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILE", Message: "archivo pdf requerido"})
	}
	if fh.Size > maxActaBytes {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{Code: "FILE_TOO_LARGE", Message: "el pdf supera el tamaño máximo"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el pdf"})
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FILE", Message: "no se pudo leer el pdf"})
	}
	out, err := h.uc.SubirFirmado(c.Context(), c.Params("id"), data)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// InvalidarFirma godoc
// @Summary      Invalidar la firma de un movimiento
// @Tags         movimientos
// @Security     Bearer
// @Param        id   path  string  true  "ID del movimiento"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movimientos/{id}/invalidar [put]
func (h *MovimientoHandler) InvalidarFirma(c *fiber.Ctx) error {
	if err := h.uc.InvalidarFirma(c.Context(), c.Params("id")); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ReenviarCorreo godoc
// @Summary      Reintentar el correo del acta de un movimiento
// @Tags         movimientos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ReenviarCorreoRequest  true  "Movimiento y destino"
// @Success      200   {object}  dto.MovimientoResponse
// @Router       /api/movimientos/reenviar-correo [post]
func (h *MovimientoHandler) ReenviarCorreo(c *fiber.Ctx) error {
	var in dto.ReenviarCorreoRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.ReenviarCorreo(c.Context(), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
