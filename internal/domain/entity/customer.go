package entity

import "time"

// Customer representa un cliente remitente o destinatario frecuente.
type Customer struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
