package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftship/admin-api/internal/application/auth"
	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
)

// AuthHandler maneja bootstrap, registro, login y restablecimiento.
type AuthHandler struct {
	uc        *auth.AuthUseCase
	jwtSecret string
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, jwtSecret string) *AuthHandler {
	return &AuthHandler{uc: uc, jwtSecret: jwtSecret}
}

// SuperAdminExists godoc
// @Summary      Bootstrap: ¿existe un SuperAdmin?
// @Tags         bootstrap
// @Produce      json
// @Success      200  {object}  dto.SuperAdminExistsResponse
// @Router       /bootstrap/superadmin-exists [get]
func (h *AuthHandler) SuperAdminExists(c *fiber.Ctx) error {
	exists, err := h.uc.SuperAdminExists()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", "no se pudo consultar el estado inicial"))
	}
	return c.JSON(dto.SuperAdminExistsResponse{Exists: exists})
}

// Register godoc
// @Summary      Registrar cuenta administrativa
// @Description  Sin SuperAdmin en el sistema crea al primero (público). Con uno existente, solo un SuperAdmin autenticado provisiona cuentas.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "name, email, password, role opcional"
// @Success      201   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "email y password son requeridos"))
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "password debe tener al menos 8 caracteres"))
	}
	// El rol del actor sale del token si viene; el caso de uso decide si el
	// registro es el bootstrap público o una provisión que exige SuperAdmin.
	actorRole := bearerRole(c, h.jwtSecret)
	_, err := h.uc.Register(actorRole, in, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("EMAIL_EXISTS", "el email ya está registrado"))
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "solo un SuperAdmin puede provisionar cuentas"))
		case errors.Is(err, domain.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "rol desconocido"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "datos incompletos"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.SuccessResponse{Success: true})
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "email y password son requeridos"))
	}
	out, err := h.uc.Login(in, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminNotFound), errors.Is(err, domain.ErrUnauthorized):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Err("UNAUTHORIZED", "credenciales inválidas"))
		case errors.Is(err, domain.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(dto.Err("FORBIDDEN", "cuenta inactiva o suspendida"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// ForgotPassword godoc
// @Summary      Solicitar restablecimiento de contraseña
// @Description  Responde éxito también para emails desconocidos (sin enumeración de cuentas).
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  dto.SuccessResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var in struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&in); err != nil || in.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "email es requerido"))
	}
	if err := h.uc.RequestPasswordReset(in.Email, c.IP()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// ResetPassword godoc
// @Summary      Restablecer contraseña con token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token  path  string  true  "token de restablecimiento"
// @Param        body   body  dto.ResetPasswordRequest  true  "newPassword"
// @Success      200    {object}  dto.SuccessResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /auth/reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var in dto.ResetPasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	err := h.uc.ResetPassword(c.Params("token"), in.NewPassword, c.IP())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "newPassword debe tener al menos 8 caracteres"))
		case errors.Is(err, domain.ErrResetTokenInvalid):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("RESET_TOKEN_INVALID", "token inválido o vencido"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
