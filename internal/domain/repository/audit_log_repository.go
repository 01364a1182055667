package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// AuditLogRepository define el puerto de persistencia para AuditLog.
// El registro es de solo anexado.
type AuditLogRepository interface {
	Append(l *entity.AuditLog) error
	List(limit, offset int) ([]*entity.AuditLog, error)
}
