package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
)

var _ repository.AdminRepository = (*AdminRepo)(nil)

// AdminRepo implementación del puerto AdminRepository sobre PostgreSQL.
type AdminRepo struct {
	pool *pgxpool.Pool
}

// NewAdminRepository construye el adaptador de persistencia para administradores.
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepo {
	return &AdminRepo{pool: pool}
}

// Create persiste un nuevo administrador.
func (r *AdminRepo) Create(admin *entity.Admin) error {
	query := `
		INSERT INTO admins (id, name, email, password_hash, role, status, reset_token, reset_token_expires, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.pool.Exec(context.Background(), query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, string(admin.Role), admin.Status,
		nullIfEmpty(admin.ResetToken), nullIfZero(admin.ResetTokenExpires),
		admin.CreatedAt, admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

// GetByID obtiene un administrador por ID.
func (r *AdminRepo) GetByID(id string) (*entity.Admin, error) {
	return r.findOne(`WHERE id = $1`, id)
}

// GetByEmail obtiene un administrador por email.
func (r *AdminRepo) GetByEmail(email string) (*entity.Admin, error) {
	return r.findOne(`WHERE email = $1 LIMIT 1`, email)
}

// GetByResetToken obtiene un administrador por su token de restablecimiento vigente.
func (r *AdminRepo) GetByResetToken(token string) (*entity.Admin, error) {
	return r.findOne(`WHERE reset_token = $1 LIMIT 1`, token)
}

func (r *AdminRepo) findOne(where string, arg any) (*entity.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, role, status, reset_token, reset_token_expires, created_at, updated_at
		FROM admins ` + where
	var a entity.Admin
	var role string
	var resetToken *string
	var resetExpires *time.Time
	err := r.pool.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &a.Status,
		&resetToken, &resetExpires, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	a.Role = access.Role(role)
	if resetToken != nil {
		a.ResetToken = *resetToken
	}
	if resetExpires != nil {
		a.ResetTokenExpires = *resetExpires
	}
	return &a, nil
}

// Update actualiza un administrador (incluye token de restablecimiento).
func (r *AdminRepo) Update(admin *entity.Admin) error {
	query := `
		UPDATE admins SET name = $2, email = $3, password_hash = $4, role = $5, status = $6,
			reset_token = $7, reset_token_expires = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, string(admin.Role), admin.Status,
		nullIfEmpty(admin.ResetToken), nullIfZero(admin.ResetTokenExpires), admin.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("update admin: %w", err)
	}
	return nil
}

// List lista administradores con paginación.
func (r *AdminRepo) List(limit, offset int) ([]*entity.Admin, error) {
	query := `
		SELECT id, name, email, password_hash, role, status, reset_token, reset_token_expires, created_at, updated_at
		FROM admins ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.pool.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	defer rows.Close()
	var list []*entity.Admin
	for rows.Next() {
		var a entity.Admin
		var role string
		var resetToken *string
		var resetExpires *time.Time
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &role, &a.Status,
			&resetToken, &resetExpires, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan admin: %w", err)
		}
		a.Role = access.Role(role)
		if resetToken != nil {
			a.ResetToken = *resetToken
		}
		if resetExpires != nil {
			a.ResetTokenExpires = *resetExpires
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Delete elimina un administrador por ID.
func (r *AdminRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", err)
	}
	return nil
}

// SuperAdminExists responde la consulta de bootstrap: ¿hay al menos un SuperAdmin?
func (r *AdminRepo) SuperAdminExists() (bool, error) {
	var exists bool
	err := r.pool.QueryRow(context.Background(),
		`SELECT EXISTS (SELECT 1 FROM admins WHERE role = $1)`, string(access.RoleSuperAdmin),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("superadmin exists: %w", err)
	}
	return exists, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullIfZero(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
