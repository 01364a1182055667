package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentMethodCash     = "cash"
	PaymentMethodCard     = "card"
	PaymentMethodTransfer = "transfer"
)

// Estados de un pago.
const (
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

// Payment representa el pago de un envío.
type Payment struct {
	ID         string
	ShipmentID string
	CustomerID string // opcional: pago anónimo en mostrador
	Amount     decimal.Decimal
	Method     string
	Status     string
	Reference  string // referencia externa (voucher, transacción)
	PaidAt     time.Time
	CreatedAt  time.Time
}

// ValidPaymentMethod valida el método contra el conjunto cerrado.
func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer:
		return true
	default:
		return false
	}
}
