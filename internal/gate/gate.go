package gate

import (
	"context"

	"github.com/swiftship/admin-api/internal/domain/access"
)

// Outcome es el resultado de una navegación: o se muestra la pantalla pedida
// o se redirige a otra. Nunca se muestra una página de error por falta de
// permisos.
type Outcome struct {
	Allow      bool
	RedirectTo string // destino cuando Allow es false
}

var (
	allow       = Outcome{Allow: true}
	toLogin     = Outcome{RedirectTo: access.PathLogin}
	toDashboard = Outcome{RedirectTo: access.PathDashboard}
	toRegister  = Outcome{RedirectTo: access.PathRegister}
)

// Gate combina el resolutor de bootstrap, el almacén de sesión y el guard
// puro en la decisión de navegación de primer nivel de la consola.
type Gate struct {
	resolver *Resolver
	store    Store
}

// New construye el gate.
func New(resolver *Resolver, store Store) *Gate {
	return &Gate{resolver: resolver, store: store}
}

// Store expone el almacén de sesión (login/logout escriben a través de él).
func (g *Gate) Store() Store { return g.store }

// Navigate decide qué hacer con una navegación a path.
//
// Bootstrap sin resolver ⇒ error (la consola muestra el placeholder o el
// aviso de conectividad; jamás se adivina un modo). En ModeSetup todo
// redirige al registro. En ModeOperating:
//
//   - "/"         → dashboard o login, solo según presencia de token.
//   - "/login"    → dashboard si ya hay token; si no, se muestra.
//   - "/register" → solo SuperAdmin autenticado; si no, a login.
//   - ruta conocida → guard puro (Allow / login / dashboard).
//   - ruta desconocida → dashboard o login según token.
func (g *Gate) Navigate(ctx context.Context, path string) (Outcome, error) {
	mode, err := g.resolver.Resolve(ctx)
	if err != nil {
		return Outcome{}, err
	}

	session, _ := g.store.Get()

	switch mode {
	case ModeSetup:
		if path == access.PathRegister {
			return allow, nil
		}
		return toRegister, nil

	case ModeOperating:
		switch path {
		case access.PathRoot:
			if access.DecideRoot(session) == access.RedirectLogin {
				return toLogin, nil
			}
			return toDashboard, nil
		case access.PathLogin:
			if session.Empty() {
				return allow, nil
			}
			return toDashboard, nil
		case access.PathRegister:
			// Provisionar administradores es privilegio exclusivo del
			// SuperAdmin una vez operando.
			if !session.Empty() && session.Role == access.RoleSuperAdmin {
				return allow, nil
			}
			return toLogin, nil
		}

		route, known := access.FindRoute(path)
		if !known {
			if session.Empty() {
				return toLogin, nil
			}
			return toDashboard, nil
		}
		switch access.Decide(route, session) {
		case access.Allow:
			return allow, nil
		case access.RedirectLogin:
			return toLogin, nil
		default:
			return toDashboard, nil
		}

	default:
		// Inalcanzable: Resolve sin error nunca deja ModeIndeterminate.
		return Outcome{}, ErrBootstrapUnavailable
	}
}
