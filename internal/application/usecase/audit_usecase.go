package usecase

import (
	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

// AuditUseCase lectura del registro de auditoría (solo SuperAdmin por ruta).
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase construye el caso de uso.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List lista entradas del registro, más recientes primero.
func (uc *AuditUseCase) List(limit, offset int) ([]*dto.AuditLogResponse, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AuditLogResponse, 0, len(list))
	for _, l := range list {
		out = append(out, &dto.AuditLogResponse{
			ID:         l.ID,
			ActorEmail: l.ActorEmail,
			Action:     l.Action,
			Detail:     l.Detail,
			IP:         l.IP,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out, nil
}
