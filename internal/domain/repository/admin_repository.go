package repository

import "github.com/swiftship/admin-api/internal/domain/entity"

// AdminRepository define el puerto de persistencia para Admin (DIP).
type AdminRepository interface {
	Create(admin *entity.Admin) error
	GetByID(id string) (*entity.Admin, error)
	GetByEmail(email string) (*entity.Admin, error)
	GetByResetToken(token string) (*entity.Admin, error)
	Update(admin *entity.Admin) error
	List(limit, offset int) ([]*entity.Admin, error)
	Delete(id string) error
	// SuperAdminExists responde la consulta de bootstrap de la consola.
	SuperAdminExists() (bool, error)
}
