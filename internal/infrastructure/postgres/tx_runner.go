package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftship/admin-api/internal/application/usecase"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunShipment inicia una transacción con repos de envíos y tracking atados a la
// tx y hace Commit o Rollback (alta de envío + primer hito, avance de estado + hito).
func (r *TxRunner) RunShipment(ctx context.Context, fn func(
	shipRepo repository.ShipmentRepository,
	trackRepo repository.TrackingRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipRepo := NewShipmentRepository(tx)
	trackRepo := NewTrackingRepository(tx)

	if err := fn(shipRepo, trackRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunPayment inicia una transacción con repos de envíos y pagos (registro del
// pago + marca Paid del envío en el mismo commit).
func (r *TxRunner) RunPayment(ctx context.Context, fn func(
	shipRepo repository.ShipmentRepository,
	payRepo repository.PaymentRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	shipRepo := NewShipmentRepository(tx)
	payRepo := NewPaymentRepository(tx)

	if err := fn(shipRepo, payRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
