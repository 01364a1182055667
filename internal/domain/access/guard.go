package access

// Session es el resultado de la última autenticación exitosa: token opaco y
// rol. El rol solo tiene significado cuando hay token; token con rol no
// reconocido se trata como "sin acceso".
type Session struct {
	Token string
	Role  Role
}

// Empty indica si no hay sesión (sin token).
func (s Session) Empty() bool { return s.Token == "" }

// Decision es el resultado de evaluar una navegación a una ruta protegida.
type Decision int

const (
	// Allow: la sesión puede ver la ruta.
	Allow Decision = iota
	// RedirectLogin: no hay sesión; se espera, no es un error.
	RedirectLogin
	// RedirectHome: sesión autenticada sin permiso. Se redirige a la pantalla
	// de inicio en silencio, nunca a una página de error, para no revelar qué
	// rutas existen a roles no autorizados.
	RedirectHome
)

// String para logs y mensajes de test.
func (d Decision) String() string {
	switch d {
	case Allow:
		return "Allow"
	case RedirectLogin:
		return "RedirectLogin"
	case RedirectHome:
		return "RedirectHome"
	default:
		return "Unknown"
	}
}

// Decide evalúa (ruta, sesión):
//
//  1. Sin token → RedirectLogin.
//  2. Rol fuera de AllowedRoles (incluye rol no reconocido y tabla vacía) → RedirectHome.
//  3. En otro caso → Allow.
func Decide(route RouteSpec, s Session) Decision {
	if s.Empty() {
		return RedirectLogin
	}
	if !s.Role.Valid() || !route.Allows(s.Role) {
		return RedirectHome
	}
	return Allow
}

// DecideRoot evalúa la ruta raíz "/": depende solo de la presencia de token,
// independiente del rol. Con token → pantalla de inicio; sin token → login.
func DecideRoot(s Session) Decision {
	if s.Empty() {
		return RedirectLogin
	}
	return RedirectHome
}
