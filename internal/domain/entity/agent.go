package entity

import "time"

// Agent representa un agente de reparto asignado a una sucursal.
type Agent struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	BranchID  string
	Zone      string // zona de cobertura
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
