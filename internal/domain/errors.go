package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound            = errors.New("recurso no encontrado")
	ErrAdminNotFound       = errors.New("administrador no encontrado")
	ErrEmailAlreadyExists  = errors.New("el email ya está registrado")
	ErrInvalidInput        = errors.New("entrada inválida")
	ErrDuplicate           = errors.New("recurso duplicado")
	ErrUnauthorized        = errors.New("no autorizado")
	ErrForbidden           = errors.New("acceso denegado")
	ErrConflict            = errors.New("conflicto con el estado actual")
	ErrSuperAdminExists    = errors.New("ya existe un super administrador")
	ErrInvalidRole         = errors.New("rol desconocido")
	ErrResetTokenInvalid   = errors.New("token de restablecimiento inválido o vencido")
	ErrInvalidTransition   = errors.New("transición de estado de envío inválida")
	ErrShipmentNotFound    = errors.New("envío no encontrado")
	ErrShipmentAlreadyPaid = errors.New("el envío ya tiene un pago registrado")
)
