package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateShipmentRequest entrada para crear un envío. El tracking number lo
// genera el sistema.
type CreateShipmentRequest struct {
	SenderName   string          `json:"sender_name"`
	ReceiverName string          `json:"receiver_name"`
	Origin       string          `json:"origin"`
	Destination  string          `json:"destination"`
	BranchID     string          `json:"branch_id"`
	AgentID      string          `json:"agent_id,omitempty"`
	WeightKg     decimal.Decimal `json:"weight_kg"`
	Cost         decimal.Decimal `json:"cost"`
}

// UpdateShipmentStatusRequest entrada para avanzar el estado de un envío.
type UpdateShipmentStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
	Note     string `json:"note,omitempty"`
}

// ShipmentResponse salida de un envío.
type ShipmentResponse struct {
	ID             string          `json:"id"`
	TrackingNumber string          `json:"tracking_number"`
	SenderName     string          `json:"sender_name"`
	ReceiverName   string          `json:"receiver_name"`
	Origin         string          `json:"origin"`
	Destination    string          `json:"destination"`
	BranchID       string          `json:"branch_id"`
	AgentID        string          `json:"agent_id,omitempty"`
	Status         string          `json:"status"`
	WeightKg       decimal.Decimal `json:"weight_kg"`
	Cost           decimal.Decimal `json:"cost"`
	Paid           bool            `json:"paid"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
