package entity

import "time"

// Acciones auditadas.
const (
	AuditLoginOK        = "login_ok"
	AuditLoginFailed    = "login_failed"
	AuditRegister       = "register"
	AuditPasswordReset  = "password_reset"
	AuditAdminProvision = "admin_provision"
)

// AuditLog es una entrada inmutable del registro de auditoría.
type AuditLog struct {
	ID         string
	ActorEmail string
	Action     string
	Detail     string
	IP         string
	CreatedAt  time.Time
}
