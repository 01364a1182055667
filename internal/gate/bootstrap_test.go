package gate_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftship/admin-api/internal/gate"
)

// existsServer simula el backend de bootstrap y cuenta las peticiones.
func existsServer(t *testing.T, exists bool, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		require.Equal(t, "/bootstrap/superadmin-exists", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		if exists {
			_, _ = w.Write([]byte(`{"exists":true}`))
		} else {
			_, _ = w.Write([]byte(`{"exists":false}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestResolver_ExisteFalso_ModoSetup(t *testing.T) {
	var hits atomic.Int32
	srv := existsServer(t, false, &hits)

	r := gate.NewResolver(srv.URL, srv.Client())
	assert.Equal(t, gate.ModeIndeterminate, r.Mode(), "sin resolver aún")

	mode, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gate.ModeSetup, mode)
}

func TestResolver_ExisteVerdadero_ModoOperating(t *testing.T) {
	var hits atomic.Int32
	srv := existsServer(t, true, &hits)

	r := gate.NewResolver(srv.URL, srv.Client())
	mode, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gate.ModeOperating, mode)
}

// Exactamente una petición por proceso, incluso con llamadas concurrentes.
func TestResolver_UnaSolaPeticion(t *testing.T) {
	var hits atomic.Int32
	srv := existsServer(t, true, &hits)
	r := gate.NewResolver(srv.URL, srv.Client())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mode, err := r.Resolve(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, gate.ModeOperating, mode)
		}()
	}
	wg.Wait()

	// Llamadas posteriores tampoco vuelven a consultar.
	_, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

// Escenario E: el fallo no resuelve a ningún modo; queda indeterminado con error.
func TestResolver_FalloNoAdivinaModo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	r := gate.NewResolver(srv.URL, srv.Client())
	_, err := r.Resolve(context.Background())
	require.ErrorIs(t, err, gate.ErrBootstrapUnavailable)
	assert.Equal(t, gate.ModeIndeterminate, r.Mode())
}

// Tras un fallo se puede reintentar y resolver (el reintento manual del spec).
func TestResolver_ReintentoTrasFallo(t *testing.T) {
	var fail atomic.Bool
	fail.Store(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"exists":false}`))
	}))
	t.Cleanup(srv.Close)

	r := gate.NewResolver(srv.URL, srv.Client())
	_, err := r.Resolve(context.Background())
	require.ErrorIs(t, err, gate.ErrBootstrapUnavailable)

	fail.Store(false)
	mode, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, gate.ModeSetup, mode)
}

// Cuerpo que no es JSON válido cuenta como fallo, no como un modo.
func TestResolver_CuerpoInvalido(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>mantenimiento</html>"))
	}))
	t.Cleanup(srv.Close)

	r := gate.NewResolver(srv.URL, srv.Client())
	_, err := r.Resolve(context.Background())
	require.ErrorIs(t, err, gate.ErrBootstrapUnavailable)
	assert.Equal(t, gate.ModeIndeterminate, r.Mode())
}
