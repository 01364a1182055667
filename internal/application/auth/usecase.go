package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/domain/repository"
	"github.com/swiftship/admin-api/pkg/jwt"
)

// Vigencia de un token de restablecimiento de contraseña.
const resetTokenTTL = 30 * time.Minute

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: bootstrap, registro, login y
// restablecimiento de contraseña. Todos los caminos dejan rastro en auditoría.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	auditRepo repository.AuditLogRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, auditRepo repository.AuditLogRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, auditRepo: auditRepo, jwtCfg: jwtCfg}
}

// SuperAdminExists responde la consulta de bootstrap de la consola.
func (uc *AuthUseCase) SuperAdminExists() (bool, error) {
	return uc.adminRepo.SuperAdminExists()
}

// Register crea una cuenta administrativa. Mientras no exista un SuperAdmin
// el registro es público y crea al primero (actorRole se ignora). Una vez que
// existe, solo un SuperAdmin autenticado provisiona cuentas nuevas, con el
// rol pedido (Admin por defecto).
//
// actorRole vacío significa llamador sin autenticar.
func (uc *AuthUseCase) Register(actorRole string, in dto.RegisterRequest, ip string) (*dto.AdminResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	exists, err := uc.adminRepo.SuperAdminExists()
	if err != nil {
		return nil, err
	}

	role := access.RoleSuperAdmin
	action := entity.AuditRegister
	if exists {
		if actorRole != string(access.RoleSuperAdmin) {
			return nil, domain.ErrForbidden
		}
		action = entity.AuditAdminProvision
		role = access.RoleAdmin
		if in.Role != "" {
			parsed, ok := access.ParseRole(in.Role)
			if !ok {
				return nil, domain.ErrInvalidRole
			}
			role = parsed
		}
	}

	if other, _ := uc.adminRepo.GetByEmail(in.Email); other != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       entity.AdminStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.adminRepo.Create(admin); err != nil {
		return nil, err
	}
	uc.audit(in.Email, action, "rol "+string(role), ip)
	return toAdminResponse(admin), nil
}

// Login verifica email/password, genera JWT y retorna token + cuenta.
// Un fallo no deja ningún estado a medias: sobre del error y nada más.
func (uc *AuthUseCase) Login(in dto.LoginRequest, ip string) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		uc.audit(in.Email, entity.AuditLoginFailed, "cuenta inexistente", ip)
		return nil, domain.ErrAdminNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		uc.audit(in.Email, entity.AuditLoginFailed, "contraseña incorrecta", ip)
		return nil, domain.ErrUnauthorized
	}
	if !admin.Active() {
		uc.audit(in.Email, entity.AuditLoginFailed, "cuenta "+admin.Status, ip)
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, string(admin.Role), uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	uc.audit(in.Email, entity.AuditLoginOK, "", ip)
	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		Admin:   *toAdminResponse(admin),
	}, nil
}

// RequestPasswordReset genera un token de un solo uso con vencimiento y lo
// asocia a la cuenta. Devuelve éxito también para emails desconocidos, para
// no permitir enumerar cuentas. El envío del token por correo queda fuera de
// este servicio.
func (uc *AuthUseCase) RequestPasswordReset(email, ip string) error {
	admin, err := uc.adminRepo.GetByEmail(email)
	if err != nil {
		return err
	}
	if admin == nil {
		return nil
	}
	admin.ResetToken = uuid.New().String()
	admin.ResetTokenExpires = time.Now().Add(resetTokenTTL)
	admin.UpdatedAt = time.Now()
	return uc.adminRepo.Update(admin)
}

// ResetPassword cambia la contraseña usando un token vigente. El token se
// invalida en el mismo Update que guarda el hash nuevo.
func (uc *AuthUseCase) ResetPassword(token, newPassword, ip string) error {
	if token == "" || len(newPassword) < 8 {
		return domain.ErrInvalidInput
	}
	admin, err := uc.adminRepo.GetByResetToken(token)
	if err != nil {
		return err
	}
	if admin == nil || time.Now().After(admin.ResetTokenExpires) {
		return domain.ErrResetTokenInvalid
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin.PasswordHash = string(hash)
	admin.ResetToken = ""
	admin.ResetTokenExpires = time.Time{}
	admin.UpdatedAt = time.Now()
	if err := uc.adminRepo.Update(admin); err != nil {
		return err
	}
	uc.audit(admin.Email, entity.AuditPasswordReset, "", ip)
	return nil
}

// audit anexa una entrada al registro. Mejor esfuerzo: un fallo de auditoría
// no revierte la operación principal.
func (uc *AuthUseCase) audit(email, action, detail, ip string) {
	if uc.auditRepo == nil {
		return
	}
	_ = uc.auditRepo.Append(&entity.AuditLog{
		ID:         uuid.New().String(),
		ActorEmail: email,
		Action:     action,
		Detail:     detail,
		IP:         ip,
		CreatedAt:  time.Now(),
	})
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
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
