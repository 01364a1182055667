package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

var _ repository.PaymentRepository = (*PaymentRepo)(nil)

// PaymentRepo implementación sobre PostgreSQL (usable con pool o tx).
type PaymentRepo struct {
	q Querier
}

// NewPaymentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPaymentRepository(q Querier) *PaymentRepo {
	return &PaymentRepo{q: q}
}

// Create persiste un pago. El constraint único sobre shipment_id respalda la
// regla de a lo sumo un pago por envío.
func (r *PaymentRepo) Create(p *entity.Payment) error {
	query := `
		INSERT INTO payments (id, shipment_id, customer_id, amount, method, status, reference, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.ShipmentID, nullIfEmpty(p.CustomerID), p.Amount, p.Method, p.Status,
		nullIfEmpty(p.Reference), p.PaidAt, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrShipmentAlreadyPaid
		}
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// GetByID obtiene un pago por ID.
func (r *PaymentRepo) GetByID(id string) (*entity.Payment, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByShipment obtiene el pago de un envío, si existe.
func (r *PaymentRepo) GetByShipment(shipmentID string) (*entity.Payment, error) {
	return r.findOne(`WHERE shipment_id = $1 LIMIT 1`, shipmentID)
}

func (r *PaymentRepo) findOne(where string, arg any) (*entity.Payment, error) {
	query := `
		SELECT id, shipment_id, customer_id, amount, method, status, reference, paid_at, created_at
		FROM payments ` + where
	p, err := scanPayment(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

// List lista pagos con paginación, más recientes primero.
func (r *PaymentRepo) List(limit, offset int) ([]*entity.Payment, error) {
	query := `
		SELECT id, shipment_id, customer_id, amount, method, status, reference, paid_at, created_at
		FROM payments ORDER BY paid_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var p entity.Payment
	var customerID, reference *string
	err := row.Scan(
		&p.ID, &p.ShipmentID, &customerID, &p.Amount, &p.Method, &p.Status,
		&reference, &p.PaidAt, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if customerID != nil {
		p.CustomerID = *customerID
	}
	if reference != nil {
		p.Reference = *reference
	}
	return &p, nil
}
