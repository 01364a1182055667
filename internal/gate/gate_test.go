package gate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/gate"
)

func newGate(t *testing.T, superAdminExists bool) *gate.Gate {
	t.Helper()
	var hits atomic.Int32
	srv := existsServer(t, superAdminExists, &hits)
	return gate.New(gate.NewResolver(srv.URL, srv.Client()), gate.NewMemoryStore())
}

// Escenario A: sin SuperAdmin, navegar a /dashboard lleva al registro.
func TestGate_EscenarioA_SetupRedirigeARegistro(t *testing.T) {
	g := newGate(t, false)

	out, err := g.Navigate(context.Background(), access.PathDashboard)
	require.NoError(t, err)
	assert.False(t, out.Allow)
	assert.Equal(t, access.PathRegister, out.RedirectTo)

	// El registro mismo sí se muestra.
	out, err = g.Navigate(context.Background(), access.PathRegister)
	require.NoError(t, err)
	assert.True(t, out.Allow)

	// Cualquier otra cosa, incluso el login, redirige al registro.
	for _, path := range []string{access.PathRoot, access.PathLogin, access.PathUsers, "/lo-que-sea"} {
		out, err = g.Navigate(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, access.PathRegister, out.RedirectTo, "path %s", path)
	}
}

// Escenario B: operando y sin token, /users redirige a /login.
func TestGate_EscenarioB_SinTokenALogin(t *testing.T) {
	g := newGate(t, true)

	out, err := g.Navigate(context.Background(), access.PathUsers)
	require.NoError(t, err)
	assert.Equal(t, access.PathLogin, out.RedirectTo)
}

// Escenario C: Admin entra a /shipments pero /users lo regresa al dashboard.
func TestGate_EscenarioC_AdminParcial(t *testing.T) {
	g := newGate(t, true)
	require.NoError(t, g.Store().Set("tok", access.RoleAdmin))

	out, err := g.Navigate(context.Background(), access.PathShipments)
	require.NoError(t, err)
	assert.True(t, out.Allow)

	out, err = g.Navigate(context.Background(), access.PathUsers)
	require.NoError(t, err)
	assert.Equal(t, access.PathDashboard, out.RedirectTo)
}

// Escenario D: /register operando es exclusivo del SuperAdmin autenticado.
func TestGate_EscenarioD_RegistroSoloSuperAdmin(t *testing.T) {
	g := newGate(t, true)

	// Sin sesión → login.
	out, err := g.Navigate(context.Background(), access.PathRegister)
	require.NoError(t, err)
	assert.Equal(t, access.PathLogin, out.RedirectTo)

	// Admin autenticado → login (no dashboard: así lo hace la consola).
	require.NoError(t, g.Store().Set("tok", access.RoleAdmin))
	out, err = g.Navigate(context.Background(), access.PathRegister)
	require.NoError(t, err)
	assert.Equal(t, access.PathLogin, out.RedirectTo)

	// SuperAdmin autenticado → se muestra.
	require.NoError(t, g.Store().Set("tok", access.RoleSuperAdmin))
	out, err = g.Navigate(context.Background(), access.PathRegister)
	require.NoError(t, err)
	assert.True(t, out.Allow)
}

// Escenario E: backend caído ⇒ error, jamás contenido de setup ni de operación.
func TestGate_EscenarioE_BootstrapCaido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	g := gate.New(gate.NewResolver(srv.URL, srv.Client()), gate.NewMemoryStore())

	for _, path := range []string{access.PathRoot, access.PathRegister, access.PathDashboard} {
		_, err := g.Navigate(context.Background(), path)
		assert.ErrorIs(t, err, gate.ErrBootstrapUnavailable, "path %s", path)
	}
}

// La raíz y el login dependen solo del token.
func TestGate_RaizYLogin(t *testing.T) {
	g := newGate(t, true)

	out, err := g.Navigate(context.Background(), access.PathRoot)
	require.NoError(t, err)
	assert.Equal(t, access.PathLogin, out.RedirectTo)

	out, err = g.Navigate(context.Background(), access.PathLogin)
	require.NoError(t, err)
	assert.True(t, out.Allow)

	require.NoError(t, g.Store().Set("tok", access.RoleCustomerSupport))

	out, err = g.Navigate(context.Background(), access.PathRoot)
	require.NoError(t, err)
	assert.Equal(t, access.PathDashboard, out.RedirectTo)

	out, err = g.Navigate(context.Background(), access.PathLogin)
	require.NoError(t, err)
	assert.Equal(t, access.PathDashboard, out.RedirectTo)
}

// Logout (Clear) vuelve a dejar todas las rutas guardadas en login.
func TestGate_LogoutCierraTodo(t *testing.T) {
	g := newGate(t, true)
	require.NoError(t, g.Store().Set("tok", access.RoleSuperAdmin))

	out, err := g.Navigate(context.Background(), access.PathAuditLogs)
	require.NoError(t, err)
	assert.True(t, out.Allow)

	require.NoError(t, g.Store().Clear())
	out, err = g.Navigate(context.Background(), access.PathAuditLogs)
	require.NoError(t, err)
	assert.Equal(t, access.PathLogin, out.RedirectTo)
}

// Un rol pegado en el almacén que no pertenece a la enumeración no abre nada.
func TestGate_RolDesconocidoNoAbreNada(t *testing.T) {
	g := newGate(t, true)
	require.NoError(t, g.Store().Set("tok", access.Role("Hacker")))

	for _, path := range []string{access.PathUsers, access.PathShipments, access.PathSettings} {
		out, err := g.Navigate(context.Background(), path)
		require.NoError(t, err)
		assert.False(t, out.Allow, "path %s", path)
		assert.Equal(t, access.PathDashboard, out.RedirectTo)
	}
}
