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

var _ repository.ShipmentRepository = (*ShipmentRepo)(nil)

// ShipmentRepo implementación sobre PostgreSQL (usable con pool o tx).
type ShipmentRepo struct {
	q Querier
}

// NewShipmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewShipmentRepository(q Querier) *ShipmentRepo {
	return &ShipmentRepo{q: q}
}

const shipmentColumns = `id, tracking_number, sender_name, receiver_name, origin, destination,
	branch_id, agent_id, status, weight_kg, cost, paid, created_at, updated_at`

// Create persiste un envío.
func (r *ShipmentRepo) Create(s *entity.Shipment) error {
	query := `
		INSERT INTO shipments (` + shipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.TrackingNumber, s.SenderName, s.ReceiverName, s.Origin, s.Destination,
		s.BranchID, nullIfEmpty(s.AgentID), s.Status, s.WeightKg, s.Cost, s.Paid,
		s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert shipment: %w", err)
	}
	return nil
}

// GetByID obtiene un envío por ID.
func (r *ShipmentRepo) GetByID(id string) (*entity.Shipment, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByTrackingNumber obtiene un envío por su número público.
func (r *ShipmentRepo) GetByTrackingNumber(trackingNumber string) (*entity.Shipment, error) {
	return r.findOne(`WHERE tracking_number = $1 LIMIT 1`, trackingNumber)
}

func (r *ShipmentRepo) findOne(where string, arg any) (*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ` + where
	s, err := scanShipment(r.q.QueryRow(context.Background(), query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return s, nil
}

// Update actualiza un envío.
func (r *ShipmentRepo) Update(s *entity.Shipment) error {
	query := `
		UPDATE shipments SET sender_name = $2, receiver_name = $3, origin = $4, destination = $5,
			branch_id = $6, agent_id = $7, status = $8, weight_kg = $9, cost = $10, paid = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.SenderName, s.ReceiverName, s.Origin, s.Destination,
		s.BranchID, nullIfEmpty(s.AgentID), s.Status, s.WeightKg, s.Cost, s.Paid, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update shipment: %w", err)
	}
	return nil
}

// List lista envíos con paginación, más recientes primero.
func (r *ShipmentRepo) List(limit, offset int) ([]*entity.Shipment, error) {
	query := `SELECT ` + shipmentColumns + ` FROM shipments ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	defer rows.Close()
	var list []*entity.Shipment
	for rows.Next() {
		s, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shipment: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina un envío por ID.
func (r *ShipmentRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM shipments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete shipment: %w", err)
	}
	return nil
}

func scanShipment(row pgx.Row) (*entity.Shipment, error) {
	var s entity.Shipment
	var agentID *string
	err := row.Scan(
		&s.ID, &s.TrackingNumber, &s.SenderName, &s.ReceiverName, &s.Origin, &s.Destination,
		&s.BranchID, &agentID, &s.Status, &s.WeightKg, &s.Cost, &s.Paid,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if agentID != nil {
		s.AgentID = *agentID
	}
	return &s, nil
}
