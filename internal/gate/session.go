// Package gate implementa el lado cliente del control de acceso de la
// consola: el almacén de sesión, el resolutor de bootstrap (¿existe un
// SuperAdmin?) y la máquina de navegación de primer nivel que combina ambos
// con el guard puro de internal/domain/access.
package gate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/swiftship/admin-api/internal/domain/access"
)

// Store es el almacén de la sesión vigente. Token y rol se escriben y borran
// siempre juntos: un lector nunca observa un token sin rol ni al revés.
// Store es una caché tonta del último login exitoso; no valida nada remoto.
type Store interface {
	// Get devuelve la sesión vigente. ok=false si no hay sesión.
	Get() (access.Session, bool)
	// Set guarda token y rol como par atómico.
	Set(token string, role access.Role) error
	// Clear elimina ambos campos juntos. Borrar dos veces no es error.
	Clear() error
}

// MemoryStore guarda la sesión en memoria del proceso. Las escrituras y
// lecturas concurrentes se serializan con un RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	session access.Session
	present bool
}

// NewMemoryStore crea un almacén vacío.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Get devuelve la sesión vigente.
func (s *MemoryStore) Get() (access.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.present
}

// Set guarda token y rol juntos.
func (s *MemoryStore) Set(token string, role access.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = access.Session{Token: token, Role: role}
	s.present = true
	return nil
}

// Clear vacía el almacén. Idempotente.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = access.Session{}
	s.present = false
	return nil
}

// sessionFile es el documento JSON persistido por FileStore.
type sessionFile struct {
	Token string `json:"authToken"`
	Role  string `json:"role"`
}

// FileStore persiste la sesión en un archivo JSON: sobrevive al reinicio del
// proceso (el "recargar" de la consola) pero no a borrar los datos locales.
// Cada escritura reemplaza el documento completo vía archivo temporal +
// rename, así el par token/rol nunca queda a medias en disco.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore abre (o crea al primer Set) el archivo de sesión en path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Get lee la sesión persistida. Archivo ausente o ilegible ⇒ sin sesión.
func (s *FileStore) Get() (access.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return access.Session{}, false
	}
	var doc sessionFile
	if err := json.Unmarshal(raw, &doc); err != nil || doc.Token == "" {
		return access.Session{}, false
	}
	return access.Session{Token: doc.Token, Role: access.Role(doc.Role)}, true
}

// Set escribe token y rol como un solo documento.
func (s *FileStore) Set(token string, role access.Role) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(sessionFile{Token: token, Role: string(role)})
	if err != nil {
		return fmt.Errorf("gate: serializar sesión: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("gate: crear directorio de sesión: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("gate: escribir sesión: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("gate: publicar sesión: %w", err)
	}
	return nil
}

// Clear elimina el archivo. Ausente ⇒ no es error (idempotente).
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("gate: borrar sesión: %w", err)
	}
	return nil
}
