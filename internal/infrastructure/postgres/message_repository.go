package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

var _ repository.MessageRepository = (*MessageRepo)(nil)

// MessageRepo implementación del puerto MessageRepository sobre PostgreSQL.
type MessageRepo struct {
	pool *pgxpool.Pool
}

// NewMessageRepository construye el adaptador de persistencia para mensajes.
func NewMessageRepository(pool *pgxpool.Pool) *MessageRepo {
	return &MessageRepo{pool: pool}
}

// Create persiste un mensaje de contacto.
func (r *MessageRepo) Create(m *entity.Message) error {
	query := `
		INSERT INTO messages (id, name, email, subject, body, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.pool.Exec(context.Background(), query,
		m.ID, m.Name, m.Email, m.Subject, m.Body, m.Read, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	return nil
}

// GetByID obtiene un mensaje por ID.
func (r *MessageRepo) GetByID(id string) (*entity.Message, error) {
	query := `
		SELECT id, name, email, subject, body, read, created_at
		FROM messages WHERE id = $1`
	var m entity.Message
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get message: %w", err)
	}
	return &m, nil
}

// MarkRead marca un mensaje como leído.
func (r *MessageRepo) MarkRead(id string) error {
	_, err := r.pool.Exec(context.Background(), `UPDATE messages SET read = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	return nil
}

// List lista mensajes con paginación, más recientes primero.
func (r *MessageRepo) List(limit, offset int) ([]*entity.Message, error) {
	query := `
		SELECT id, name, email, subject, body, read, created_at
		FROM messages ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Delete elimina un mensaje por ID.
func (r *MessageRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}
