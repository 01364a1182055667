package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/application/usecase"
	"github.com/swiftship/admin-api/internal/domain"
)

// AdminHandler maneja la gestión de cuentas administrativas (página Users).
// Las altas pasan por /auth/register; aquí solo listado, edición y baja.
type AdminHandler struct {
	uc *usecase.AdminUseCase
}

// NewAdminHandler construye el handler de cuentas.
func NewAdminHandler(uc *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{uc: uc}
}

// List lista cuentas administrativas.
func (h *AdminHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "parámetros de paginación inválidos"))
	}
	page.DefaultPage()
	out, err := h.uc.List(page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Update actualiza nombre, rol o estado de una cuenta. Degradar o desactivar
// al último SuperAdmin se rechaza con 409.
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAdminRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Err("INVALID_BODY", "cuerpo inválido"))
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "cuenta no encontrada"))
		case errors.Is(err, domain.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "rol desconocido"))
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "estado desconocido"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("LAST_SUPERADMIN", "no se puede quitar al último SuperAdmin"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Delete elimina una cuenta. El último SuperAdmin no se puede eliminar.
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		switch {
		case errors.Is(err, domain.ErrAdminNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "cuenta no encontrada"))
		case errors.Is(err, domain.ErrConflict):
			return c.Status(fiber.StatusConflict).JSON(dto.Err("LAST_SUPERADMIN", "no se puede eliminar al último SuperAdmin"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
