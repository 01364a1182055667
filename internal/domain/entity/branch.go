package entity

import "time"

// Branch representa una sucursal de la empresa de mensajería.
type Branch struct {
	ID          string
	Name        string
	City        string
	Address     string
	Phone       string
	ManagerName string
	Status      string // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
