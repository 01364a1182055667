package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// PaymentRepository define el puerto de persistencia para Payment.
type PaymentRepository interface {
	Create(p *entity.Payment) error
	GetByID(id string) (*entity.Payment, error)
	GetByShipment(shipmentID string) (*entity.Payment, error)
	List(limit, offset int) ([]*entity.Payment, error)
}
