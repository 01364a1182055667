package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftship/admin-api/internal/domain/access"
)

// Propiedad central: Allow ⇔ hay token Y el rol está en AllowedRoles.
func TestDecide_PropiedadAllow(t *testing.T) {
	for _, route := range access.Routes {
		for _, role := range access.AllRoles {
			s := access.Session{Token: "tok", Role: role}
			got := access.Decide(route, s)
			if route.Allows(role) {
				assert.Equal(t, access.Allow, got,
					"rol %s debe poder ver %s", role, route.Path)
			} else {
				assert.Equal(t, access.RedirectHome, got,
					"rol %s sin permiso en %s debe ir a home, nunca a un error", role, route.Path)
			}
		}
	}
}

// Sin token: toda ruta redirige a login, sin importar el rol residual.
func TestDecide_SinTokenSiempreLogin(t *testing.T) {
	for _, route := range access.Routes {
		assert.Equal(t, access.RedirectLogin, access.Decide(route, access.Session{}),
			"sesión vacía en %s", route.Path)
		// incluso con un rol pegado pero sin token
		assert.Equal(t, access.RedirectLogin,
			access.Decide(route, access.Session{Role: access.RoleSuperAdmin}))
	}
}

// Rol no reconocido con token: falla cerrado (home), nunca acceso total.
func TestDecide_RolDesconocidoFallaCerrado(t *testing.T) {
	s := access.Session{Token: "tok", Role: access.Role("superadmin")} // casing incorrecto
	for _, route := range access.Routes {
		assert.Equal(t, access.RedirectHome, access.Decide(route, s))
	}
}

// Ruta con AllowedRoles vacío: inalcanzable para todos los roles.
func TestDecide_RutaSinRolesEsInalcanzable(t *testing.T) {
	route := access.RouteSpec{Path: "/oculta"}
	for _, role := range access.AllRoles {
		assert.Equal(t, access.RedirectHome,
			access.Decide(route, access.Session{Token: "tok", Role: role}))
	}
}

// Escenario C del diseño: Admin bloqueado en /users pero permitido en /shipments.
func TestDecide_EscenarioAdmin(t *testing.T) {
	s := access.Session{Token: "tok", Role: access.RoleAdmin}

	users, ok := access.FindRoute(access.PathUsers)
	require.True(t, ok)
	assert.Equal(t, access.RedirectHome, access.Decide(users, s))

	shipments, ok := access.FindRoute(access.PathShipments)
	require.True(t, ok)
	assert.Equal(t, access.Allow, access.Decide(shipments, s))
}

// La raíz "/" depende solo del token, no del rol.
func TestDecideRoot_SoloToken(t *testing.T) {
	assert.Equal(t, access.RedirectLogin, access.DecideRoot(access.Session{}))
	assert.Equal(t, access.RedirectHome, access.DecideRoot(access.Session{Token: "tok"}))
	// rol irrelevante, incluso inválido
	assert.Equal(t, access.RedirectHome,
		access.DecideRoot(access.Session{Token: "tok", Role: access.Role("lo-que-sea")}))
}

func TestParseRole_ExactoYSensibleAMayusculas(t *testing.T) {
	for _, role := range access.AllRoles {
		got, ok := access.ParseRole(string(role))
		require.True(t, ok, "rol %s debe parsear", role)
		assert.Equal(t, role, got)
	}
	for _, bad := range []string{"", "superadmin", "ADMIN", "Admin ", "Root", "branchmanager"} {
		_, ok := access.ParseRole(bad)
		assert.False(t, ok, "cadena %q no debe parsear", bad)
	}
}

// /users y /audit-logs son exclusivas de SuperAdmin.
func TestRoutes_ExclusivasSuperAdmin(t *testing.T) {
	for _, path := range []string{access.PathUsers, access.PathAuditLogs} {
		route, ok := access.FindRoute(path)
		require.True(t, ok)
		assert.Equal(t, []access.Role{access.RoleSuperAdmin}, route.AllowedRoles)
	}
}

func TestRolesFor_PathDesconocidoVacio(t *testing.T) {
	assert.Empty(t, access.RolesFor("/no-existe"))
	assert.Equal(t, []string{"SuperAdmin"}, access.RolesFor(access.PathUsers))
}
