package postgres

import (
	"context"
	"fmt"

	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

var _ repository.TrackingRepository = (*TrackingRepo)(nil)

// TrackingRepo implementación sobre PostgreSQL (usable con pool o tx).
// Los hitos de tracking son de solo anexado.
type TrackingRepo struct {
	q Querier
}

// NewTrackingRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTrackingRepository(q Querier) *TrackingRepo {
	return &TrackingRepo{q: q}
}

// Append persiste un hito de tracking.
func (r *TrackingRepo) Append(ev *entity.TrackingEvent) error {
	query := `
		INSERT INTO tracking_events (id, shipment_id, tracking_number, status, location, note, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		ev.ID, ev.ShipmentID, ev.TrackingNumber, ev.Status, ev.Location, ev.Note, ev.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert tracking event: %w", err)
	}
	return nil
}

// ListByTrackingNumber devuelve el historial de un envío en orden cronológico.
func (r *TrackingRepo) ListByTrackingNumber(trackingNumber string) ([]*entity.TrackingEvent, error) {
	query := `
		SELECT id, shipment_id, tracking_number, status, location, note, occurred_at
		FROM tracking_events WHERE tracking_number = $1 ORDER BY occurred_at ASC`
	rows, err := r.q.Query(context.Background(), query, trackingNumber)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrackingEvent
	for rows.Next() {
		var ev entity.TrackingEvent
		if err := rows.Scan(&ev.ID, &ev.ShipmentID, &ev.TrackingNumber, &ev.Status, &ev.Location, &ev.Note, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}

// List lista hitos recientes de todos los envíos, paginado.
func (r *TrackingRepo) List(limit, offset int) ([]*entity.TrackingEvent, error) {
	query := `
		SELECT id, shipment_id, tracking_number, status, location, note, occurred_at
		FROM tracking_events ORDER BY occurred_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list tracking events: %w", err)
	}
	defer rows.Close()
	var list []*entity.TrackingEvent
	for rows.Next() {
		var ev entity.TrackingEvent
		if err := rows.Scan(&ev.ID, &ev.ShipmentID, &ev.TrackingNumber, &ev.Status, &ev.Location, &ev.Note, &ev.OccurredAt); err != nil {
			return nil, fmt.Errorf("scan tracking event: %w", err)
		}
		list = append(list, &ev)
	}
	return list, rows.Err()
}
