package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

// PaymentUseCase casos de uso de pagos: registro transaccional (pago + marca
// de envío pagado) y listados.
type PaymentUseCase struct {
	repo repository.PaymentRepository
	tx   TxRunner
}

// NewPaymentUseCase construye el caso de uso.
func NewPaymentUseCase(repo repository.PaymentRepository, tx TxRunner) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, tx: tx}
}

// Create registra el pago de un envío. Monto positivo, método del conjunto
// cerrado y a lo sumo un pago por envío; el pago y la marca Paid del envío se
// confirman en la misma transacción.
func (uc *PaymentUseCase) Create(ctx context.Context, in dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if in.ShipmentID == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.Method) {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	payment := &entity.Payment{
		ID:         uuid.New().String(),
		ShipmentID: in.ShipmentID,
		CustomerID: in.CustomerID,
		Amount:     in.Amount,
		Method:     in.Method,
		Status:     entity.PaymentStatusCompleted,
		Reference:  in.Reference,
		PaidAt:     now,
		CreatedAt:  now,
	}
	err := uc.tx.RunPayment(ctx, func(shipRepo repository.ShipmentRepository, payRepo repository.PaymentRepository) error {
		shipment, err := shipRepo.GetByID(in.ShipmentID)
		if err != nil {
			return err
		}
		if shipment == nil {
			return domain.ErrShipmentNotFound
		}
		if existing, err := payRepo.GetByShipment(in.ShipmentID); err != nil {
			return err
		} else if existing != nil {
			return domain.ErrShipmentAlreadyPaid
		}
		if err := payRepo.Create(payment); err != nil {
			return err
		}
		shipment.Paid = true
		shipment.UpdatedAt = now
		return shipRepo.Update(shipment)
	})
	if err != nil {
		return nil, err
	}
	return toPaymentResponse(payment), nil
}

// GetByID obtiene un pago.
func (uc *PaymentUseCase) GetByID(id string) (*dto.PaymentResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toPaymentResponse(p), nil
}

// List lista pagos paginados.
func (uc *PaymentUseCase) List(limit, offset int) ([]*dto.PaymentResponse, error) {
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
	out := make([]*dto.PaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, toPaymentResponse(p))
	}
	return out, nil
}

func toPaymentResponse(p *entity.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:         p.ID,
		ShipmentID: p.ShipmentID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Method:     p.Method,
		Status:     p.Status,
		Reference:  p.Reference,
		PaidAt:     p.PaidAt,
	}
}
