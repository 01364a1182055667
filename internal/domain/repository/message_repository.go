package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// MessageRepository define el puerto de persistencia para Message.
type MessageRepository interface {
	Create(m *entity.Message) error
	GetByID(id string) (*entity.Message, error)
	MarkRead(id string) error
	List(limit, offset int) ([]*entity.Message, error)
	Delete(id string) error
}
