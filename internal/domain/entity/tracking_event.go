package entity

import "time"

// TrackingEvent es un hito del recorrido de un envío. Se anexa al cambiar el
// estado del envío y nunca se edita.
type TrackingEvent struct {
	ID             string
	ShipmentID     string
	TrackingNumber string
	Status         string // estado del envío en ese momento
	Location       string
	Note           string
	OccurredAt     time.Time
}
