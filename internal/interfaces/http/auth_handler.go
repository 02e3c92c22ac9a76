package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/velatec/activos-api/internal/application/auth"
	"github.com/velatec/activos-api/internal/application/dto"
)

// AuthHandler maneja autenticación y administración de usuarios.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// Register godoc
// @Summary      Registrar usuario (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UsuarioResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.Register(in)
	if err != nil {
		return responderError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Perfil godoc
// @Summary      Perfil del usuario autenticado
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Router       /api/auth/perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(GetUserID(c))
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// UpdatePerfil godoc
// @Summary      Actualizar perfil propio
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdatePerfilRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.UsuarioResponse
// @Router       /api/auth/perfil [put]
func (h *AuthHandler) UpdatePerfil(c *fiber.Ctx) error {
	var in dto.UpdatePerfilRequest
	if !bind(c, &in) {
		return nil
	}
	out, err := h.uc.UpdatePerfil(GetUserID(c), in)
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña propia
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        body  body  dto.UpdatePasswordRequest  true  "Nueva contraseña"
// @Success      204
// @Router       /api/auth/password [put]
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var in dto.UpdatePasswordRequest
	if !bind(c, &in) {
		return nil
	}
	if err := h.uc.SetPassword(GetUserID(c), in.Password); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ResetUserPassword godoc
// @Summary      Restablecer la contraseña de un usuario (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdatePasswordRequest  true  "Nueva contraseña"
// @Success      204
// @Router       /api/usuarios/{id}/password [put]
func (h *AuthHandler) ResetUserPassword(c *fiber.Ctx) error {
	var in dto.UpdatePasswordRequest
	if !bind(c, &in) {
		return nil
	}
	if err := h.uc.SetPassword(c.Params("id"), in.Password); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListUsers godoc
// @Summary      Listar usuarios (solo admin)
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UsuarioListResponse
// @Router       /api/usuarios [get]
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	out, err := h.uc.ListUsers()
	if err != nil {
		return responderError(c, err)
	}
	return c.JSON(out)
}

// SetUserStatus godoc
// @Summary      Activar o desactivar un usuario (solo admin)
// @Tags         auth
// @Security     Bearer
// @Accept       json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserStatusRequest  true  "Estado"
// @Success      204
// @Router       /api/usuarios/{id}/estado [put]
func (h *AuthHandler) SetUserStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateUserStatusRequest
	if !bind(c, &in) {
		return nil
	}
	if err := h.uc.SetUserStatus(id, *in.Activo); err != nil {
		return responderError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
