package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// ShipmentRepository define el puerto de persistencia para Shipment.
type ShipmentRepository interface {
	Create(s *entity.Shipment) error
	GetByID(id string) (*entity.Shipment, error)
	GetByTrackingNumber(trackingNumber string) (*entity.Shipment, error)
	Update(s *entity.Shipment) error
	List(limit, offset int) ([]*entity.Shipment, error)
	Delete(id string) error
}
