package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un envío.
const (
	ShipmentStatusPending   = "pending"
	ShipmentStatusInTransit = "in_transit"
	ShipmentStatusDelivered = "delivered"
	ShipmentStatusCancelled = "cancelled"
)

// Shipment representa un envío de mensajería.
type Shipment struct {
	ID             string
	TrackingNumber string // público, único; formato SW-XXXXXXXX
	SenderName     string
	ReceiverName   string
	Origin         string
	Destination    string
	BranchID       string
	AgentID        string // agente asignado; vacío = sin asignar
	Status         string
	WeightKg       decimal.Decimal
	Cost           decimal.Decimal
	Paid           bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// CanTransitionTo valida el avance de estado: pending → in_transit →
// delivered; cancelled solo desde pending o in_transit. Un envío entregado o
// cancelado no cambia más.
func (s *Shipment) CanTransitionTo(next string) bool {
	switch s.Status {
	case ShipmentStatusPending:
		return next == ShipmentStatusInTransit || next == ShipmentStatusCancelled
	case ShipmentStatusInTransit:
		return next == ShipmentStatusDelivered || next == ShipmentStatusCancelled
	default:
		return false
	}
}
