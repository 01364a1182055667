package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
	"github.com/swiftship/admin-api/pkg/textutil"
)

// ShipmentUseCase casos de uso de envíos: alta con tracking number generado,
// listado filtrado, avance de estado con historial.
type ShipmentUseCase struct {
	repo repository.ShipmentRepository
	tx   TxRunner
}

// NewShipmentUseCase construye el caso de uso.
func NewShipmentUseCase(repo repository.ShipmentRepository, tx TxRunner) *ShipmentUseCase {
	return &ShipmentUseCase{repo: repo, tx: tx}
}

// newTrackingNumber genera un número público SW-XXXXXXXX a partir de un UUID.
func newTrackingNumber() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "SW-" + raw[:8]
}

// Create da de alta un envío en estado pending y anexa el primer hito de
// tracking en la misma transacción.
func (uc *ShipmentUseCase) Create(ctx context.Context, in dto.CreateShipmentRequest) (*dto.ShipmentResponse, error) {
	if in.SenderName == "" || in.ReceiverName == "" || in.Origin == "" || in.Destination == "" || in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.WeightKg.IsPositive() || in.Cost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	shipment := &entity.Shipment{
		ID:             uuid.New().String(),
		TrackingNumber: newTrackingNumber(),
		SenderName:     in.SenderName,
		ReceiverName:   in.ReceiverName,
		Origin:         in.Origin,
		Destination:    in.Destination,
		BranchID:       in.BranchID,
		AgentID:        in.AgentID,
		Status:         entity.ShipmentStatusPending,
		WeightKg:       in.WeightKg,
		Cost:           in.Cost,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	err := uc.tx.RunShipment(ctx, func(shipRepo repository.ShipmentRepository, trackRepo repository.TrackingRepository) error {
		if err := shipRepo.Create(shipment); err != nil {
			return err
		}
		return trackRepo.Append(&entity.TrackingEvent{
			ID:             uuid.New().String(),
			ShipmentID:     shipment.ID,
			TrackingNumber: shipment.TrackingNumber,
			Status:         entity.ShipmentStatusPending,
			Location:       in.Origin,
			Note:           "envío registrado",
			OccurredAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// UpdateStatus avanza el estado del envío validando la transición y anexa el
// hito correspondiente, todo en un commit.
func (uc *ShipmentUseCase) UpdateStatus(ctx context.Context, id string, in dto.UpdateShipmentStatusRequest) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrShipmentNotFound
	}
	if !shipment.CanTransitionTo(in.Status) {
		return nil, domain.ErrInvalidTransition
	}
	now := time.Now()
	shipment.Status = in.Status
	shipment.UpdatedAt = now

	err = uc.tx.RunShipment(ctx, func(shipRepo repository.ShipmentRepository, trackRepo repository.TrackingRepository) error {
		if err := shipRepo.Update(shipment); err != nil {
			return err
		}
		return trackRepo.Append(&entity.TrackingEvent{
			ID:             uuid.New().String(),
			ShipmentID:     shipment.ID,
			TrackingNumber: shipment.TrackingNumber,
			Status:         in.Status,
			Location:       in.Location,
			Note:           in.Note,
			OccurredAt:     now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toShipmentResponse(shipment), nil
}

// GetByID obtiene un envío.
func (uc *ShipmentUseCase) GetByID(id string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrShipmentNotFound
	}
	return toShipmentResponse(shipment), nil
}

// GetByTrackingNumber obtiene un envío por su número público.
func (uc *ShipmentUseCase) GetByTrackingNumber(trackingNumber string) (*dto.ShipmentResponse, error) {
	shipment, err := uc.repo.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if shipment == nil {
		return nil, domain.ErrShipmentNotFound
	}
	return toShipmentResponse(shipment), nil
}

// List lista envíos con filtro por subcadena (tracking, remitente,
// destinatario, origen o destino), insensible a mayúsculas y tildes.
func (uc *ShipmentUseCase) List(filter string, limit, offset int) ([]*dto.ShipmentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ShipmentResponse, 0, len(list))
	for _, s := range list {
		if filter != "" && !shipmentMatches(s, filter) {
			continue
		}
		out = append(out, toShipmentResponse(s))
	}
	return out, nil
}

// Delete elimina un envío (solo administrativo; el historial queda).
func (uc *ShipmentUseCase) Delete(id string) error {
	shipment, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if shipment == nil {
		return domain.ErrShipmentNotFound
	}
	return uc.repo.Delete(id)
}

func shipmentMatches(s *entity.Shipment, filter string) bool {
	return textutil.ContainsFold(s.TrackingNumber, filter) ||
		textutil.ContainsFold(s.SenderName, filter) ||
		textutil.ContainsFold(s.ReceiverName, filter) ||
		textutil.ContainsFold(s.Origin, filter) ||
		textutil.ContainsFold(s.Destination, filter)
}

func toShipmentResponse(s *entity.Shipment) *dto.ShipmentResponse {
	return &dto.ShipmentResponse{
		ID:             s.ID,
		TrackingNumber: s.TrackingNumber,
		SenderName:     s.SenderName,
		ReceiverName:   s.ReceiverName,
		Origin:         s.Origin,
		Destination:    s.Destination,
		BranchID:       s.BranchID,
		AgentID:        s.AgentID,
		Status:         s.Status,
		WeightKg:       s.WeightKg,
		Cost:           s.Cost,
		Paid:           s.Paid,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
