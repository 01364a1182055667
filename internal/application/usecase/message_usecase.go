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

// MessageUseCase casos de uso de mensajes de contacto.
type MessageUseCase struct {
	repo repository.MessageRepository
}

// NewMessageUseCase construye el caso de uso.
func NewMessageUseCase(repo repository.MessageRepository) *MessageUseCase {
	return &MessageUseCase{repo: repo}
}

// Create registra un mensaje entrante.
func (uc *MessageUseCase) Create(in dto.MessageRequest) (*dto.MessageResponse, error) {
	if in.Email == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}
	m := &entity.Message{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Subject:   in.Subject,
		Body:      in.Body,
		CreatedAt: time.Now(),
	}
	if err := uc.repo.Create(m); err != nil {
		return nil, err
	}
	return toMessageResponse(m), nil
}

// MarkRead marca un mensaje como leído.
func (uc *MessageUseCase) MarkRead(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.MarkRead(id)
}

// List lista mensajes con filtro por remitente o asunto.
func (uc *MessageUseCase) List(filter string, limit, offset int) ([]*dto.MessageResponse, error) {
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
	out := make([]*dto.MessageResponse, 0, len(list))
	for _, m := range list {
		if filter != "" && !textutil.ContainsFold(m.Name, filter) &&
			!textutil.ContainsFold(m.Email, filter) && !textutil.ContainsFold(m.Subject, filter) {
			continue
		}
		out = append(out, toMessageResponse(m))
	}
	return out, nil
}

// Delete elimina un mensaje.
func (uc *MessageUseCase) Delete(id string) error {
	m, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

func toMessageResponse(m *entity.Message) *dto.MessageResponse {
	return &dto.MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
