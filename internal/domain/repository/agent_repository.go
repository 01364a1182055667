package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// AgentRepository define el puerto de persistencia para Agent.
type AgentRepository interface {
	Create(a *entity.Agent) error
	GetByID(id string) (*entity.Agent, error)
	Update(a *entity.Agent) error
	List(limit, offset int) ([]*entity.Agent, error)
	ListByBranch(branchID string, limit, offset int) ([]*entity.Agent, error)
	Delete(id string) error
}
