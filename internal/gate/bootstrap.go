package gate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Mode es el estado de primer nivel de la consola.
type Mode int

const (
	// ModeIndeterminate: el bootstrap no ha resuelto; no se decide ninguna
	// ruta, solo se muestra el placeholder de carga.
	ModeIndeterminate Mode = iota
	// ModeSetup: no existe SuperAdmin; solo el registro es alcanzable.
	ModeSetup
	// ModeOperating: existe SuperAdmin; login y rutas guardadas alcanzables.
	ModeOperating
)

// String para logs.
func (m Mode) String() string {
	switch m {
	case ModeSetup:
		return "setup"
	case ModeOperating:
		return "operating"
	default:
		return "indeterminate"
	}
}

// ErrBootstrapUnavailable indica que la consulta de existencia falló. Nunca
// se adivina un modo en su lugar: la recuperación es reintentar con un
// Resolver nuevo (el "recargar" de la consola).
var ErrBootstrapUnavailable = errors.New("gate: no se pudo consultar si existe un super administrador")

// superAdminExistsResponse es el contrato del backend (ver docs/swagger.json).
type superAdminExistsResponse struct {
	Exists bool `json:"exists"`
}

// Resolver consulta una sola vez por proceso GET /bootstrap/superadmin-exists
// y fija el modo de la consola. El resultado exitoso es terminal: si otro
// navegador registra al primer SuperAdmin a mitad de sesión, este Resolver no
// lo observa hasta crear uno nuevo (ventana de obsolescencia conocida).
// Los fallos no son terminales: dejan el modo en ModeIndeterminate y el
// siguiente Resolve reintenta.
type Resolver struct {
	baseURL string
	client  *http.Client

	mu       sync.Mutex
	inflight bool
	cond     *sync.Cond
	mode     Mode
}

// NewResolver crea el resolutor contra la URL base del backend.
// client nil usa uno con timeout razonable.
func NewResolver(baseURL string, client *http.Client) *Resolver {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	r := &Resolver{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		mode:    ModeIndeterminate,
	}
	r.cond = sync.NewCond(&r.mu)
	return r
}

// Mode devuelve el modo actual sin disparar la consulta.
func (r *Resolver) Mode() Mode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

// Resolve devuelve el modo, consultando al backend la primera vez. Llamadas
// concurrentes comparten una única petición en vuelo (single-flight); una vez
// resuelto con éxito no se vuelve a consultar.
func (r *Resolver) Resolve(ctx context.Context) (Mode, error) {
	r.mu.Lock()
	for {
		if r.mode != ModeIndeterminate {
			mode := r.mode
			r.mu.Unlock()
			return mode, nil
		}
		if !r.inflight {
			break
		}
		// Otra goroutine está consultando: esperar su resultado.
		r.cond.Wait()
		if r.mode != ModeIndeterminate {
			mode := r.mode
			r.mu.Unlock()
			return mode, nil
		}
		// La petición en vuelo falló; este llamador reintenta.
		if !r.inflight {
			break
		}
	}
	r.inflight = true
	r.mu.Unlock()

	exists, err := r.fetch(ctx)

	r.mu.Lock()
	r.inflight = false
	if err == nil {
		if exists {
			r.mode = ModeOperating
		} else {
			r.mode = ModeSetup
		}
	}
	mode := r.mode
	r.cond.Broadcast()
	r.mu.Unlock()

	if err != nil {
		return ModeIndeterminate, fmt.Errorf("%w: %v", ErrBootstrapUnavailable, err)
	}
	return mode, nil
}

func (r *Resolver) fetch(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/bootstrap/superadmin-exists", nil)
	if err != nil {
		return false, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return false, err
	}
	var out superAdminExistsResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return false, fmt.Errorf("cuerpo inesperado: %w", err)
	}
	return out.Exists, nil
}
