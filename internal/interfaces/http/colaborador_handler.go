package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/application/usecase"
)

// ColaboradorHandler maneja las peticiones HTTP para colaboradores (protegido).
type ColaboradorHandler struct {
	uc *usecase.ColaboradorUseCase
}

// NewColaboradorHandler construye el handler.
func NewColaboradorHandler(uc *usecase.ColaboradorUseCase) *ColaboradorHandler {
	return &ColaboradorHandler{uc: uc}
}

// Create godoc
// @Summary      Crear colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateColaboradorRequest  true  "Datos del colaborador"
// @Success      201   {object}  dto.ColaboradorResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/colaboradores [post]
func (h *ColaboradorHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateColaboradorRequest
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
// @Summary      Obtener colaborador por ID
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del colaborador"
// @Success      200  {object}  dto.ColaboradorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [get]
func (h *ColaboradorHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colaborador no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar colaboradores
// @Tags         colaboradores
// @Security     Bearer
// @Produce      json
// @Param        activos  query  bool  false  "Solo activos"
// @Success      200  {object}  dto.ColaboradorListResponse
// @Router       /api/colaboradores [get]
func (h *ColaboradorHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.QueryBool("activos", false))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar colaborador
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.UpdateColaboradorRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ColaboradorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/colaboradores/{id} [put]
func (h *ColaboradorHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateColaboradorRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "colaborador no encontrado"})
	}
	return c.JSON(out)
}

// SetEstado godoc
// @Summary      Activar o desactivar colaborador (baja lógica)
// @Tags         colaboradores
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del colaborador"
// @Param        body  body  dto.SetEstadoRequest  true  "Estado"
// @Success      204
// @Router       /api/colaboradores/{id}/estado [put]
func (h *ColaboradorHandler) SetEstado(c *fiber.Ctx) error {
	var in dto.SetEstadoRequest
	if !bind(c, &in) {
		return nil
	}
	if err := h.uc.SetEstado(c.Params("id"), GetUserID(c), *in.Estado); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
