package entity

import "time"

// Message es un mensaje de contacto recibido por la consola.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	Read      bool
	CreatedAt time.Time
}
