package usecase

import (
	"time"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

// AdminUseCase casos de uso de la página Users: administración de cuentas.
// El alta de cuentas vive en auth.AuthUseCase.Register (provisión).
type AdminUseCase struct {
	repo repository.AdminRepository
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(repo repository.AdminRepository) *AdminUseCase {
	return &AdminUseCase{repo: repo}
}

// List lista cuentas administrativas.
func (uc *AdminUseCase) List(limit, offset int) ([]*dto.AdminResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AdminResponse, 0, len(list))
	for _, a := range list {
		out = append(out, adminToResponse(a))
	}
	return out, nil
}

// Update cambia nombre, rol o estado de una cuenta. El rol se valida contra
// la enumeración cerrada. Al último SuperAdmin no se le puede quitar el rol.
func (uc *AdminUseCase) Update(id string, in dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrAdminNotFound
	}
	if in.Name != "" {
		a.Name = in.Name
	}
	if in.Role != "" {
		role, ok := access.ParseRole(in.Role)
		if !ok {
			return nil, domain.ErrInvalidRole
		}
		if a.Role == access.RoleSuperAdmin && role != access.RoleSuperAdmin {
			if err := uc.ensureAnotherSuperAdmin(a.ID); err != nil {
				return nil, err
			}
		}
		a.Role = role
	}
	if in.Status != "" {
		switch in.Status {
		case entity.AdminStatusActive, entity.AdminStatusInactive, entity.AdminStatusSuspended:
			a.Status = in.Status
		default:
			return nil, domain.ErrInvalidInput
		}
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return adminToResponse(a), nil
}

// Delete elimina una cuenta. El último SuperAdmin no se puede eliminar: el
// sistema volvería a modo setup con datos reales dentro.
func (uc *AdminUseCase) Delete(id string) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrAdminNotFound
	}
	if a.Role == access.RoleSuperAdmin {
		if err := uc.ensureAnotherSuperAdmin(id); err != nil {
			return err
		}
	}
	return uc.repo.Delete(id)
}

// ensureAnotherSuperAdmin verifica que exista otro SuperAdmin distinto de id.
func (uc *AdminUseCase) ensureAnotherSuperAdmin(id string) error {
	list, err := uc.repo.List(1000, 0)
	if err != nil {
		return err
	}
	for _, other := range list {
		if other.ID != id && other.Role == access.RoleSuperAdmin {
			return nil
		}
	}
	return domain.ErrConflict
}

func adminToResponse(a *entity.Admin) *dto.AdminResponse {
	return &dto.AdminResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      string(a.Role),
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
