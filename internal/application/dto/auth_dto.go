package dto

import "time"

// RegisterRequest entrada de registro. Sin SuperAdmin en el sistema crea al
// primero; con uno existente solo un SuperAdmin autenticado provisiona y
// puede indicar Role (por defecto Admin).
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminResponse salida de una cuenta administrativa (sin password).
type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginResponse sobre de login exitoso: token + cuenta, con success=true.
type LoginResponse struct {
	Success bool          `json:"success"`
	Token   string        `json:"token"`
	Admin   AdminResponse `json:"admin"`
}

// ResetPasswordRequest entrada para restablecer contraseña vía token.
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// SuperAdminExistsResponse respuesta del bootstrap de la consola.
type SuperAdminExistsResponse struct {
	Exists bool `json:"exists"`
}

// UpdateAdminRequest entrada para actualizar rol/estado de una cuenta (página Users).
type UpdateAdminRequest struct {
	Name   string `json:"name,omitempty"`
	Role   string `json:"role,omitempty"`
	Status string `json:"status,omitempty"`
}
