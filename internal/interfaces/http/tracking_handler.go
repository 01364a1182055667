package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/application/usecase"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/infrastructure/feed"
)

// TrackingHandler expone el historial de tracking: JSON para la consola y
// feed XML para integraciones externas.
type TrackingHandler struct {
	uc      *usecase.TrackingUseCase
	builder *feed.TrackingFeedBuilder
}

// NewTrackingHandler construye el handler de tracking.
func NewTrackingHandler(uc *usecase.TrackingUseCase, builder *feed.TrackingFeedBuilder) *TrackingHandler {
	return &TrackingHandler{uc: uc, builder: builder}
}

// History devuelve los hitos de un número de tracking (público).
func (h *TrackingHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Params("number"))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "número de tracking requerido"))
		case errors.Is(err, domain.ErrShipmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "tracking no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	return c.JSON(out)
}

// Feed devuelve el historial como RSS 2.0 (público).
func (h *TrackingHandler) Feed(c *fiber.Ctx) error {
	number := c.Params("number")
	events, err := h.uc.HistoryEvents(number)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Err("VALIDATION", "número de tracking requerido"))
		case errors.Is(err, domain.ErrShipmentNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Err("NOT_FOUND", "tracking no encontrado"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	out, err := h.builder.Build(number, events)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Err("INTERNAL", err.Error()))
	}
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.Send(out)
}

// List lista los hitos globales (página tracking-logs, protegido).
func (h *TrackingHandler) List(c *fiber.Ctx) error {
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
