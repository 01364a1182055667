// seed crea el primer SuperAdmin directamente en la base de datos, para
// despliegues donde no se quiere exponer el registro público inicial.
//
// Uso: go run ./cmd/seed -email root@empresa.com -password <clave> [-name Nombre]
// La conexión sale de las mismas variables de entorno que cmd/api.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/swiftship/admin-api/internal/domain/access"
	"github.com/swiftship/admin-api/internal/domain/entity"
	"github.com/swiftship/admin-api/internal/infrastructure/postgres"
	"github.com/swiftship/admin-api/pkg/config"
)

func main() {
	email := flag.String("email", "", "email del SuperAdmin")
	password := flag.String("password", "", "contraseña (mínimo 8 caracteres)")
	name := flag.String("name", "", "nombre visible (por defecto el email)")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "uso: seed -email <email> -password <clave de 8+ caracteres> [-name <nombre>]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewAdminRepository(pool)
	exists, err := repo.SuperAdminExists()
	if err != nil {
		fmt.Fprintf(os.Stderr, "consultar SuperAdmin: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Fprintln(os.Stderr, "ya existe un SuperAdmin; nada que hacer")
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	displayName := *name
	if displayName == "" {
		displayName = *email
	}
	now := time.Now()
	admin := &entity.Admin{
		ID:           uuid.New().String(),
		Name:         displayName,
		Email:        *email,
		PasswordHash: string(hash),
		Role:         access.RoleSuperAdmin,
		Status:       entity.AdminStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		fmt.Fprintf(os.Stderr, "crear SuperAdmin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("SuperAdmin creado: %s (%s)\n", admin.Email, admin.ID)
}
