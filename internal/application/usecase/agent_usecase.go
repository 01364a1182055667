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

// AgentUseCase casos de uso de agentes de reparto.
type AgentUseCase struct {
	repo repository.AgentRepository
}

// NewAgentUseCase construye el caso de uso.
func NewAgentUseCase(repo repository.AgentRepository) *AgentUseCase {
	return &AgentUseCase{repo: repo}
}

// Create crea un agente.
func (uc *AgentUseCase) Create(in dto.AgentRequest) (*dto.AgentResponse, error) {
	if in.Name == "" || in.BranchID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	status := in.Status
	if status == "" {
		status = "active"
	}
	a := &entity.Agent{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		BranchID:  in.BranchID,
		Zone:      in.Zone,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(a); err != nil {
		return nil, err
	}
	return toAgentResponse(a), nil
}

// Update actualiza los campos no vacíos de un agente.
func (uc *AgentUseCase) Update(id string, in dto.AgentRequest) (*dto.AgentResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != "" {
		a.Name = in.Name
	}
	if in.Email != "" {
		a.Email = in.Email
	}
	if in.Phone != "" {
		a.Phone = in.Phone
	}
	if in.BranchID != "" {
		a.BranchID = in.BranchID
	}
	if in.Zone != "" {
		a.Zone = in.Zone
	}
	if in.Status != "" {
		a.Status = in.Status
	}
	a.UpdatedAt = time.Now()
	if err := uc.repo.Update(a); err != nil {
		return nil, err
	}
	return toAgentResponse(a), nil
}

// GetByID obtiene un agente.
func (uc *AgentUseCase) GetByID(id string) (*dto.AgentResponse, error) {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toAgentResponse(a), nil
}

// List lista agentes, opcionalmente por sucursal, con filtro por nombre o zona.
func (uc *AgentUseCase) List(branchID, filter string, limit, offset int) ([]*dto.AgentResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	var list []*entity.Agent
	var err error
	if branchID != "" {
		list, err = uc.repo.ListByBranch(branchID, limit, offset)
	} else {
		list, err = uc.repo.List(limit, offset)
	}
	if err != nil {
		return nil, err
	}
	out := make([]*dto.AgentResponse, 0, len(list))
	for _, a := range list {
		if filter != "" && !textutil.ContainsFold(a.Name, filter) && !textutil.ContainsFold(a.Zone, filter) {
			continue
		}
		out = append(out, toAgentResponse(a))
	}
	return out, nil
}

// Delete elimina un agente.
func (uc *AgentUseCase) Delete(id string) error {
	a, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if a == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toAgentResponse(a *entity.Agent) *dto.AgentResponse {
	return &dto.AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		BranchID:  a.BranchID,
		Zone:      a.Zone,
		Status:    a.Status,
		CreatedAt: a.CreatedAt,
	}
}
