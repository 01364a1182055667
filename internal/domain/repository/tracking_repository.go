package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// TrackingRepository define el puerto de persistencia para TrackingEvent.
// Los eventos son de solo anexado: no hay update ni delete.
type TrackingRepository interface {
	Append(ev *entity.TrackingEvent) error
	ListByTrackingNumber(trackingNumber string) ([]*entity.TrackingEvent, error)
	List(limit, offset int) ([]*entity.TrackingEvent, error)
}
