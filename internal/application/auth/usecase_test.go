package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/swiftship/admin-api/internal/application/auth"
	"github.com/swiftship/admin-api/internal/application/dto"
	"github.com/swiftship/admin-api/internal/domain"
	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/domain/entity"
	pkgjwt "github.com/swiftship/admin-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeAdminRepo struct {
	admins map[string]*entity.Admin // por ID
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*entity.Admin{}}
}

func (r *fakeAdminRepo) Create(a *entity.Admin) error {
	for _, other := range r.admins {
		if other.Email == a.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) GetByID(id string) (*entity.Admin, error) {
	if a, ok := r.admins[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByEmail(email string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByResetToken(token string) (*entity.Admin, error) {
	for _, a := range r.admins {
		if a.ResetToken != "" && a.ResetToken == token {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) Update(a *entity.Admin) error {
	cp := *a
	r.admins[a.ID] = &cp
	return nil
}

func (r *fakeAdminRepo) List(limit, offset int) ([]*entity.Admin, error) {
	out := make([]*entity.Admin, 0, len(r.admins))
	for _, a := range r.admins {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeAdminRepo) Delete(id string) error {
	delete(r.admins, id)
	return nil
}

func (r *fakeAdminRepo) SuperAdminExists() (bool, error) {
	for _, a := range r.admins {
		if a.Role == access.RoleSuperAdmin {
			return true, nil
		}
	}
	return false, nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditLog
}

func (r *fakeAuditRepo) Append(l *entity.AuditLog) error {
	r.entries = append(r.entries, l)
	return nil
}

func (r *fakeAuditRepo) List(limit, offset int) ([]*entity.AuditLog, error) {
	return r.entries, nil
}

func (r *fakeAuditRepo) actions() []string {
	out := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "secret-de-pruebas"

func newUC() (*auth.AuthUseCase, *fakeAdminRepo, *fakeAuditRepo) {
	adminRepo := newFakeAdminRepo()
	auditRepo := &fakeAuditRepo{}
	uc := auth.NewAuthUseCase(adminRepo, auditRepo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "swiftship-test",
	})
	return uc, adminRepo, auditRepo
}

func seedAdmin(t *testing.T, repo *fakeAdminRepo, email, password string, role access.Role, status string) *entity.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a := &entity.Admin{
		ID:           email, // suficiente como ID en los fakes
		Name:         email,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Status:       status,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(a))
	return a
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

// Sin SuperAdmin: el registro público crea al primero con rol SuperAdmin,
// aunque el llamador pida otro rol.
func TestRegister_PrimerSuperAdmin(t *testing.T) {
	uc, _, audit := newUC()

	out, err := uc.Register("", dto.RegisterRequest{
		Name: "Root", Email: "root@swiftship.test", Password: "secreta123", Role: "DeliveryAgent",
	}, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "SuperAdmin", out.Role)
	assert.Equal(t, "active", out.Status)

	exists, err := uc.SuperAdminExists()
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Contains(t, audit.actions(), entity.AuditRegister)
}

// Con SuperAdmin existente: el registro sin autenticar o con otro rol falla.
func TestRegister_ProvisionRequiereSuperAdmin(t *testing.T) {
	uc, repo, _ := newUC()
	seedAdmin(t, repo, "root@swiftship.test", "secreta123", access.RoleSuperAdmin, entity.AdminStatusActive)

	_, err := uc.Register("", dto.RegisterRequest{Email: "a@b.test", Password: "secreta123"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = uc.Register("Admin", dto.RegisterRequest{Email: "a@b.test", Password: "secreta123"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := uc.Register("SuperAdmin", dto.RegisterRequest{
		Email: "a@b.test", Password: "secreta123", Role: "BranchManager",
	}, "")
	require.NoError(t, err)
	assert.Equal(t, "BranchManager", out.Role)
}

// El rol pedido se valida contra la enumeración cerrada.
func TestRegister_RolDesconocidoRechazado(t *testing.T) {
	uc, repo, _ := newUC()
	seedAdmin(t, repo, "root@swiftship.test", "secreta123", access.RoleSuperAdmin, entity.AdminStatusActive)

	_, err := uc.Register("SuperAdmin", dto.RegisterRequest{
		Email: "a@b.test", Password: "secreta123", Role: "Jefe",
	}, "")
	assert.ErrorIs(t, err, domain.ErrInvalidRole)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, repo, _ := newUC()
	seedAdmin(t, repo, "root@swiftship.test", "secreta123", access.RoleSuperAdmin, entity.AdminStatusActive)

	_, err := uc.Register("SuperAdmin", dto.RegisterRequest{
		Email: "root@swiftship.test", Password: "secreta123",
	}, "")
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_ExitosoGeneraTokenConRol(t *testing.T) {
	uc, repo, audit := newUC()
	seedAdmin(t, repo, "ops@swiftship.test", "secreta123", access.RoleOperationsManager, entity.AdminStatusActive)

	out, err := uc.Login(dto.LoginRequest{Email: "ops@swiftship.test", Password: "secreta123"}, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, out.Success)
	assert.Equal(t, "OperationsManager", out.Admin.Role)

	adminID, role, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, "ops@swiftship.test", adminID)
	assert.Equal(t, "OperationsManager", role)
	assert.Contains(t, audit.actions(), entity.AuditLoginOK)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, repo, audit := newUC()
	seedAdmin(t, repo, "ops@swiftship.test", "secreta123", access.RoleAdmin, entity.AdminStatusActive)

	_, err := uc.Login(dto.LoginRequest{Email: "ops@swiftship.test", Password: "otra"}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@swiftship.test", Password: "x"}, "")
	assert.ErrorIs(t, err, domain.ErrAdminNotFound)

	// Ambos fallos quedan auditados.
	assert.Equal(t, []string{entity.AuditLoginFailed, entity.AuditLoginFailed}, audit.actions())
}

func TestLogin_CuentaInactiva(t *testing.T) {
	uc, repo, _ := newUC()
	seedAdmin(t, repo, "ex@swiftship.test", "secreta123", access.RoleAdmin, entity.AdminStatusSuspended)

	_, err := uc.Login(dto.LoginRequest{Email: "ex@swiftship.test", Password: "secreta123"}, "")
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ──────────────────────────────────────────────────────────────────────────────
// Reset de contraseña
// ──────────────────────────────────────────────────────────────────────────────

func TestResetPassword_FlujoCompleto(t *testing.T) {
	uc, repo, _ := newUC()
	a := seedAdmin(t, repo, "ops@swiftship.test", "vieja1234", access.RoleAdmin, entity.AdminStatusActive)

	require.NoError(t, uc.RequestPasswordReset(a.Email, ""))
	stored, err := repo.GetByEmail(a.Email)
	require.NoError(t, err)
	require.NotEmpty(t, stored.ResetToken)

	require.NoError(t, uc.ResetPassword(stored.ResetToken, "nueva5678", ""))

	// La contraseña nueva sirve, la vieja no, y el token quedó invalidado.
	_, err = uc.Login(dto.LoginRequest{Email: a.Email, Password: "nueva5678"}, "")
	assert.NoError(t, err)
	_, err = uc.Login(dto.LoginRequest{Email: a.Email, Password: "vieja1234"}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.ErrorIs(t, uc.ResetPassword(stored.ResetToken, "otra12345", ""), domain.ErrResetTokenInvalid)
}

func TestResetPassword_TokenVencido(t *testing.T) {
	uc, repo, _ := newUC()
	a := seedAdmin(t, repo, "ops@swiftship.test", "vieja1234", access.RoleAdmin, entity.AdminStatusActive)

	a.ResetToken = "tok-vencido"
	a.ResetTokenExpires = time.Now().Add(-time.Minute)
	require.NoError(t, repo.Update(a))

	assert.ErrorIs(t, uc.ResetPassword("tok-vencido", "nueva5678", ""), domain.ErrResetTokenInvalid)
}

// Para emails desconocidos la petición de reset responde éxito sin tocar nada.
func TestRequestPasswordReset_EmailDesconocidoSilencioso(t *testing.T) {
	uc, _, _ := newUC()
	assert.NoError(t, uc.RequestPasswordReset("nadie@swiftship.test", ""))
}
