package access

// RouteSpec declara una ruta protegida de la consola y los roles que pueden
// verla. Una ruta con AllowedRoles vacío es inalcanzable por diseño (falla
// cerrado, no abierto).
type RouteSpec struct {
	Path         string
	AllowedRoles []Role
}

// Allows indica si el rol puede ver la ruta. Conjunto vacío ⇒ nunca.
func (r RouteSpec) Allows(role Role) bool {
	for _, allowed := range r.AllowedRoles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Rutas bien conocidas de la consola.
const (
	PathRoot          = "/"
	PathLogin         = "/login"
	PathRegister      = "/register"
	PathDashboard     = "/dashboard"
	PathUsers         = "/users"
	PathShipments     = "/shipments"
	PathCustomers     = "/customers"
	PathAdminProfile  = "/admin-profile"
	PathPayments      = "/payments"
	PathReports       = "/reports"
	PathBranches      = "/branches"
	PathMessages      = "/messages"
	PathAgents        = "/agents"
	PathContent       = "/content-management"
	PathTrackingLogs  = "/tracking-logs"
	PathAuditLogs     = "/audit-logs"
	PathNotifications = "/notifications"
	PathSettings      = "/settings"
	PathResetPassword = "/reset-password"
)

// allAdmins es el conjunto de roles con acceso a las pantallas generales.
var allAdmins = []Role{RoleSuperAdmin, RoleAdmin, RoleBranchManager, RoleOperationsManager, RoleITAdmin}

// Routes es la tabla estática de rutas protegidas de la consola con sus
// roles permitidos. Es la única fuente de la política: la consume tanto el
// guard de navegación como el middleware HTTP del servidor.
var Routes = []RouteSpec{
	{Path: PathDashboard, AllowedRoles: allAdmins},
	{Path: PathUsers, AllowedRoles: []Role{RoleSuperAdmin}},
	{Path: PathShipments, AllowedRoles: allAdmins},
	{Path: PathCustomers, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleBranchManager}},
	{Path: PathAdminProfile, AllowedRoles: allAdmins},
	{Path: PathPayments, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin}},
	{Path: PathReports, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin}},
	{Path: PathBranches, AllowedRoles: []Role{RoleSuperAdmin, RoleBranchManager}},
	{Path: PathMessages, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleBranchManager}},
	{Path: PathAgents, AllowedRoles: []Role{RoleSuperAdmin, RoleBranchManager}},
	{Path: PathContent, AllowedRoles: []Role{RoleSuperAdmin, RoleITAdmin}},
	{Path: PathTrackingLogs, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin}},
	{Path: PathAuditLogs, AllowedRoles: []Role{RoleSuperAdmin}},
	{Path: PathNotifications, AllowedRoles: []Role{RoleSuperAdmin, RoleAdmin, RoleBranchManager, RoleITAdmin}},
	{Path: PathSettings, AllowedRoles: allAdmins},
	{Path: PathResetPassword, AllowedRoles: allAdmins},
}

// FindRoute busca la ruta en la tabla. ok=false para paths desconocidos.
func FindRoute(path string) (RouteSpec, bool) {
	for _, r := range Routes {
		if r.Path == path {
			return r, true
		}
	}
	return RouteSpec{}, false
}

// RolesFor devuelve los roles permitidos de una ruta como cadenas, para el
// middleware HTTP (RequireRole). Path desconocido ⇒ lista vacía ⇒ nadie pasa.
func RolesFor(path string) []string {
	route, ok := FindRoute(path)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(route.AllowedRoles))
	for _, r := range route.AllowedRoles {
		out = append(out, string(r))
	}
	return out
}
