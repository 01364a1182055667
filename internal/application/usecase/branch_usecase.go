package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
	"github.com/swiftship/admin-api/pkg/textutil"
)

// BranchUseCase casos de uso de sucursales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// Create crea una sucursal.
func (uc *BranchUseCase) Create(in dto.BranchRequest) (*dto.BranchResponse, error) {
	if in.Name == "" || in.City == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "active"
	}
	b := &entity.Branch{
		ID:          uuid.New().String(),
		Name:        in.Name,
		City:        in.City,
		Address:     in.Address,
		Phone:       in.Phone,
		ManagerName: in.ManagerName,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(b); err != nil {
		return nil, err
	}
	return toBranchResponse(b), nil
}

// Update actualiza los campos no vacíos de una sucursal.
func (uc *BranchUseCase) Update(id string, in dto.BranchRequest) (*dto.BranchResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		b.Name = in.Name
	}
	if in.City != "" {
		b.City = in.City
	}
	if in.Address != "" {
		b.Address = in.Address
	}
	if in.Phone != "" {
		b.Phone = in.Phone
	}
	if in.ManagerName != "" {
		b.ManagerName = in.ManagerName
	}
	if in.Status != "" {
		b.Status = in.Status
	}
	b.UpdatedAt = time.Now()
	if err := uc.repo.Update(b); err != nil {
		return nil, err
	}
	return toBranchResponse(b), nil
}

// GetByID obtiene una sucursal.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(b), nil
}

// List lista sucursales con filtro por nombre o ciudad.
func (uc *BranchUseCase) List(filter string, limit, offset int) ([]*dto.BranchResponse, error) {
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
	out := make([]*dto.BranchResponse, 0, len(list))
	for _, b := range list {
		if filter != "" && !textutil.ContainsFold(b.Name, filter) && !textutil.ContainsFold(b.City, filter) {
			continue
		}
		out = append(out, toBranchResponse(b))
	}
	return out, nil
}

// Delete elimina una sucursal.
func (uc *BranchUseCase) Delete(id string) error {
	b, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toBranchResponse(b *entity.Branch) *dto.BranchResponse {
	return &dto.BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		City:        b.City,
		Address:     b.Address,
		Phone:       b.Phone,
		ManagerName: b.ManagerName,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
}
