package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// BranchRepository define el puerto de persistencia para Branch.
type BranchRepository interface {
	Create(b *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	Update(b *entity.Branch) error
	List(limit, offset int) ([]*entity.Branch, error)
	Delete(id string) error
}
