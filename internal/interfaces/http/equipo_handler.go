package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velatec/activos-api/internal/application/dto"
	"github.com/velatec/activos-api/internal/application/usecase"
	"github.com/velatec/activos-api/internal/domain/repository"
)

// EquipoHandler maneja las peticiones HTTP para equipos (protegido).
type EquipoHandler struct {
	uc *usecase.EquipoUseCase
}

// NewEquipoHandler construye el handler.
func NewEquipoHandler(uc *usecase.EquipoUseCase) *EquipoHandler {
	return &EquipoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar equipo
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEquipoRequest  true  "Datos del equipo"
// @Success      201   {object}  dto.EquipoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/equipos [post]
func (h *EquipoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEquipoRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Create(c.Context(), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener equipo por ID
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {object}  dto.EquipoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [get]
func (h *EquipoHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar equipos con filtros
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        empresa_id        query  string  false  "Filtrar por empresa"
// @Param        disponible        query  bool    false  "Filtrar por disponibilidad"
// @Param        es_propio         query  bool    false  "Propios o alquilados"
// @Param        estado_fisico_id  query  int     false  "Filtrar por estado físico"
// @Param        marca             query  string  false  "Filtrar por marca"
// @Param        limit             query  int     false  "Límite"   default(20)
// @Param        offset            query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.EquipoListResponse
// @Router       /api/equipos [get]
func (h *EquipoHandler) List(c *fiber.Ctx) error {
	f := repository.FiltroEquipos{
		EmpresaID: c.Query("empresa_id"),
		Marca:     c.Query("marca"),
		Limit:     c.QueryInt("limit", 20),
		Offset:    c.QueryInt("offset", 0),
	}
	if c.Query("disponible") != "" {
		v := c.QueryBool("disponible")
		f.Disponible = &v
	}
	if c.Query("es_propio") != "" {
		v := c.QueryBool("es_propio")
		f.EsPropio = &v
	}
	if c.Query("estado_fisico_id") != "" {
		v := c.QueryInt("estado_fisico_id")
		f.EstadoFisicoID = &v
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
	out, err := h.uc.List(f)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar equipo
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del equipo"
// @Param        body  body  dto.UpdateEquipoRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.EquipoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipos/{id} [put]
func (h *EquipoHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateEquipoRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Update(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	return c.JSON(out)
}

// SetDisponibilidad godoc
// @Summary      Reactivar o desactivar equipo manualmente
// @Tags         equipos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del equipo"
// @Param        body  body  dto.UpdateDisponibilidadRequest  true  "Disponibilidad"
// @Success      200   {object}  dto.EquipoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipos/{id}/disponibilidad [put]
func (h *EquipoHandler) SetDisponibilidad(c *fiber.Ctx) error {
	var in dto.UpdateDisponibilidadRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.SetDisponibilidad(c.Context(), c.Params("id"), GetUserID(c), *in.Disponible)
	if err != nil {
		return responderError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "equipo no encontrado"})
	}
	return c.JSON(out)
}

// ListMarcas godoc
// @Summary      Listar marcas registradas
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  string
// @Router       /api/equipos/marcas [get]
func (h *EquipoHandler) ListMarcas(c *fiber.Ctx) error {
	out, err := h.uc.ListMarcas()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// ListEstados godoc
// @Summary      Catálogo de estados físicos
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.EstadoFisicoResponse
// @Router       /api/equipos/estados [get]
func (h *EquipoHandler) ListEstados(c *fiber.Ctx) error {
	out, err := h.uc.ListEstados()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Historial godoc
// @Summary      Historial de un equipo
// @Tags         equipos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del equipo"
// @Success      200  {array}  dto.HistorialEquipoResponse
// @Router       /api/equipos/{id}/historial [get]
func (h *EquipoHandler) Historial(c *fiber.Ctx) error {
	out, err := h.uc.Historial(c.Params("id"))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}
