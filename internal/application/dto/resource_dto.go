package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ── Sucursales ────────────────────────────────────────────────────────────────

// BranchRequest entrada para crear/actualizar una sucursal.
type BranchRequest struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	ManagerName string `json:"manager_name"`
	Status      string `json:"status,omitempty"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Address     string    `json:"address"`
	Phone       string    `json:"phone"`
	ManagerName string    `json:"manager_name"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ── Agentes ───────────────────────────────────────────────────────────────────

// AgentRequest entrada para crear/actualizar un agente.
type AgentRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	BranchID string `json:"branch_id"`
	Zone     string `json:"zone"`
	Status   string `json:"status,omitempty"`
}

// AgentResponse salida de un agente.
type AgentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	BranchID  string    `json:"branch_id"`
	Zone      string    `json:"zone"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Clientes ──────────────────────────────────────────────────────────────────

// CustomerRequest entrada para crear/actualizar un cliente.
type CustomerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CustomerResponse salida de un cliente.
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Pagos ─────────────────────────────────────────────────────────────────────

// CreatePaymentRequest entrada para registrar el pago de un envío.
type CreatePaymentRequest struct {
	ShipmentID string          `json:"shipment_id"`
	CustomerID string          `json:"customer_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Reference  string          `json:"reference,omitempty"`
}

// PaymentResponse salida de un pago.
type PaymentResponse struct {
	ID         string          `json:"id"`
	ShipmentID string          `json:"shipment_id"`
	CustomerID string          `json:"customer_id,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method"`
	Status     string          `json:"status"`
	Reference  string          `json:"reference,omitempty"`
	PaidAt     time.Time       `json:"paid_at"`
}

// ── Mensajes ──────────────────────────────────────────────────────────────────

// MessageRequest entrada de un mensaje de contacto.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// MessageResponse salida de un mensaje.
type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ── Auditoría y tracking ──────────────────────────────────────────────────────

// AuditLogResponse entrada del registro de auditoría.
type AuditLogResponse struct {
	ID         string    `json:"id"`
	ActorEmail string    `json:"actor_email"`
	Action     string    `json:"action"`
	Detail     string    `json:"detail,omitempty"`
	IP         string    `json:"ip,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// TrackingEventResponse hito del recorrido de un envío.
type TrackingEventResponse struct {
	ID             string    `json:"id"`
	TrackingNumber string    `json:"tracking_number"`
	Status         string    `json:"status"`
	Location       string    `json:"location,omitempty"`
	Note           string    `json:"note,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}
