package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

var _ repository.AgentRepository = (*AgentRepo)(nil)

// AgentRepo implementación del puerto AgentRepository sobre PostgreSQL.
type AgentRepo struct {
	pool *pgxpool.Pool
}

// NewAgentRepository construye el adaptador de persistencia para agentes.
func NewAgentRepository(pool *pgxpool.Pool) *AgentRepo {
	return &AgentRepo{pool: pool}
}

// Create persiste un agente.
func (r *AgentRepo) Create(a *entity.Agent) error {
	query := `
		INSERT INTO agents (id, name, email, phone, branch_id, zone, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Name, a.Email, a.Phone, a.BranchID, a.Zone, a.Status, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert agent: %w", err)
	}
	return nil
}

// GetByID obtiene un agente por ID.
func (r *AgentRepo) GetByID(id string) (*entity.Agent, error) {
	query := `
		SELECT id, name, email, phone, branch_id, zone, status, created_at, updated_at
		FROM agents WHERE id = $1`
	var a entity.Agent
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.BranchID, &a.Zone, &a.Status, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get agent: %w", err)
	}
	return &a, nil
}

// Update actualiza un agente.
func (r *AgentRepo) Update(a *entity.Agent) error {
	query := `
		UPDATE agents SET name = $2, email = $3, phone = $4, branch_id = $5, zone = $6, status = $7, updated_at = $8
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		a.ID, a.Name, a.Email, a.Phone, a.BranchID, a.Zone, a.Status, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update agent: %w", err)
	}
	return nil
}

// List lista agentes con paginación.
func (r *AgentRepo) List(limit, offset int) ([]*entity.Agent, error) {
	query := `
		SELECT id, name, email, phone, branch_id, zone, status, created_at, updated_at
		FROM agents ORDER BY name ASC LIMIT $1 OFFSET $2`
	return r.list(query, limit, offset)
}

// ListByBranch lista los agentes de una sucursal con paginación.
func (r *AgentRepo) ListByBranch(branchID string, limit, offset int) ([]*entity.Agent, error) {
	query := `
		SELECT id, name, email, phone, branch_id, zone, status, created_at, updated_at
		FROM agents WHERE branch_id = $1 ORDER BY name ASC LIMIT $2 OFFSET $3`
	return r.list(query, branchID, limit, offset)
}

func (r *AgentRepo) list(query string, args ...any) ([]*entity.Agent, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}
	defer rows.Close()
	var list []*entity.Agent
	for rows.Next() {
		var a entity.Agent
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.Phone, &a.BranchID, &a.Zone, &a.Status, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan agent: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un agente por ID.
func (r *AgentRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM agents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete agent: %w", err)
	}
	return nil
}
