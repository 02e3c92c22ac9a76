package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/application/usecase"
)

// ServicioHandler maneja servicios, su libro de pagos y su auditoría (protegido).
type ServicioHandler struct {
	uc *usecase.ServicioUseCase
}

// NewServicioHandler construye el handler.
func NewServicioHandler(uc *usecase.ServicioUseCase) *ServicioHandler {
	return &ServicioHandler{uc: uc}
}

// Create godoc
// @Summary      Crear servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateServicioRequest  true  "Datos del servicio"
// @Success      201   {object}  dto.ServicioResponse
// @Router       /api/servicios [post]
func (h *ServicioHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateServicioRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener servicio por ID
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {object}  dto.ServicioResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/servicios/{id} [get]
func (h *ServicioHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar servicios
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "Solo activos"
// @Success      200  {object}  dto.ServicioListResponse
// @Router       /api/servicios [get]
func (h *ServicioHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("activos", false))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.UpdateServicioRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ServicioResponse
// @Router       /api/servicios/{id} [put]
func (h *ServicioHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateServicioRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "servicio no encontrado"})
	}
	return c.JSON(out)
}

// SetEstado godoc
// @Summary      Activar o desactivar servicio (baja lógica)
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.SetEstadoRequest  true  "Estado"
// @Success      204
// @Router       /api/servicios/{id}/estado [put]
func (h *ServicioHandler) SetEstado(c *fiber.Ctx) error {
	var in dto.SetEstadoRequest
	if !bind(c, &in) {
		return nil
	}
	if err := h.uc.SetEstado(c.Params("id"), GetUserID(c), *in.Estado); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreatePago godoc
// @Summary      Registrar pago de un servicio
// @Tags         servicios
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del servicio"
// @Param        body  body  dto.CreatePagoRequest  true  "Datos del pago"
// @Success      201   {object}  dto.PagoResponse
// @Router       /api/servicios/{id}/pagos [post]
func (h *ServicioHandler) CreatePago(c *fiber.Ctx) error {
	var in dto.CreatePagoRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.CreatePago(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPagos godoc
// @Summary      Libro de pagos de un servicio
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {array}  dto.PagoResponse
// @Router       /api/servicios/{id}/pagos [get]
func (h *ServicioHandler) ListPagos(c *fiber.Ctx) error {
	out, err := h.uc.ListPagos(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// AnularPago godoc
// @Summary      Anular un pago (anulación lógica)
// @Tags         servicios
// @Security     Bearer
// @Param        id      path  string  true  "ID del servicio"
// @Param        pagoId  path  string  true  "ID del pago"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/servicios/{id}/pagos/{pagoId} [delete]
func (h *ServicioHandler) AnularPago(c *fiber.Ctx) error {
	if err := h.uc.AnularPago(c.Params("id"), c.Params("pagoId"), GetUserID(c)); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListAuditoria godoc
// @Summary      Log de auditoría de un servicio
// @Tags         servicios
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del servicio"
// @Success      200  {array}  dto.AuditoriaResponse
// @Router       /api/servicios/{id}/auditoria [get]
func (h *ServicioHandler) ListAuditoria(c *fiber.Ctx) error {
	out, err := h.uc.ListAuditoria(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
