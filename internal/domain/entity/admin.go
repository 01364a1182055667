package entity

import (
	"time"

	"github.com/swiftship/admin-api/internal/domain/access"
)

// Estados válidos para Admin.
const (
	AdminStatusActive    = "active"
	AdminStatusInactive  = "inactive"
	AdminStatusSuspended = "suspended"
)

// Admin representa una cuenta administrativa de la consola.
type Admin struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         access.Role
	Status       string // active, inactive, suspended

	// Restablecimiento de contraseña: token de un solo uso con vencimiento.
	ResetToken        string
	ResetTokenExpires time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Active indica si la cuenta puede iniciar sesión.
func (a *Admin) Active() bool { return a.Status == AdminStatusActive }
