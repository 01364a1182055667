package usecase

import (
	"context"

	"github.com/swiftship/admin-api/internal/domain/repository"
)

// TxRunner ejecuta callbacks con repositorios atados a una misma transacción.
// Lo implementa postgres.TxRunner; la interfaz evita el import circular.
type TxRunner interface {
	// RunShipment: operaciones que tocan envío + historial de tracking juntos.
	RunShipment(ctx context.Context, fn func(
		shipmentRepo repository.ShipmentRepository,
		trackingRepo repository.TrackingRepository,
	) error) error

	// RunPayment: registrar un pago y marcar el envío pagado en un solo commit.
	RunPayment(ctx context.Context, fn func(
		shipmentRepo repository.ShipmentRepository,
		paymentRepo repository.PaymentRepository,
	) error) error
}
