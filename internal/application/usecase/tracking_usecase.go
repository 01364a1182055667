package usecase

import (
	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

// TrackingUseCase lectura del historial de tracking. Los hitos se anexan
// desde ShipmentUseCase; aquí solo se consultan.
type TrackingUseCase struct {
	repo repository.TrackingRepository
}

// NewTrackingUseCase construye el caso de uso.
func NewTrackingUseCase(repo repository.TrackingRepository) *TrackingUseCase {
	return &TrackingUseCase{repo: repo}
}

// History devuelve los hitos de un número de tracking, en orden cronológico.
func (uc *TrackingUseCase) History(trackingNumber string) ([]*dto.TrackingEventResponse, error) {
	if trackingNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrShipmentNotFound
	}
	return toTrackingResponses(list), nil
}

// HistoryEvents devuelve las entidades crudas (para el feed XML).
func (uc *TrackingUseCase) HistoryEvents(trackingNumber string) ([]*entity.TrackingEvent, error) {
	if trackingNumber == "" {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrShipmentNotFound
	}
	return list, nil
}

// List lista los hitos globales (página tracking-logs).
func (uc *TrackingUseCase) List(limit, offset int) ([]*dto.TrackingEventResponse, error) {
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
	return toTrackingResponses(list), nil
}

func toTrackingResponses(list []*entity.TrackingEvent) []*dto.TrackingEventResponse {
	out := make([]*dto.TrackingEventResponse, 0, len(list))
	for _, ev := range list {
		out = append(out, &dto.TrackingEventResponse{
			ID:             ev.ID,
			TrackingNumber: ev.TrackingNumber,
			Status:         ev.Status,
			Location:       ev.Location,
			Note:           ev.Note,
			OccurredAt:     ev.OccurredAt,
		})
	}
	return out
}
