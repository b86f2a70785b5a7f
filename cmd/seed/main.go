// seed crea el usuario administrador inicial y un catálogo base de categorías.
// Idempotente: si el email o la categoría ya existen, los salta.
//
// Uso: go run ./cmd/seed
// Variables: ADMIN_EMAIL, ADMIN_PASSWORD, ADMIN_NAME (además de la config de BD).
package main

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/sarpras-api/internal/domain"
	"github.com/tu-usuario/sarpras-api/internal/domain/entity"
	"github.com/tu-usuario/sarpras-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/sarpras-api/pkg/config"
	"github.com/tu-usuario/sarpras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(cfg.App.Env, "info")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	email := getenv("ADMIN_EMAIL", "admin@sekolah.sch.id")
	password := getenv("ADMIN_PASSWORD", "")
	if password == "" {
		log.Fatal().Msg("ADMIN_PASSWORD es requerido")
	}

	userRepo := postgres.NewUserRepository(pool)
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         getenv("ADMIN_NAME", "Administrator"),
		Role:         entity.RoleAdmin,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch err := userRepo.Create(admin); err {
	case nil:
		log.Info().Str("email", email).Msg("usuario admin creado")
	case domain.ErrEmailAlreadyExists:
		log.Info().Str("email", email).Msg("usuario admin ya existe, saltando")
	default:
		log.Fatal().Err(err).Msg("crear usuario admin")
	}

	categoryRepo := postgres.NewCategoryRepository(pool)
	for _, name := range []string{"Mebel", "Elektronik", "Olahraga", "Laboratorium", "ATK"} {
		c := &entity.Category{ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
		switch err := categoryRepo.Create(c); err {
		case nil:
			log.Info().Str("name", name).Msg("categoría creada")
		case domain.ErrDuplicate:
			log.Info().Str("name", name).Msg("categoría ya existe, saltando")
		default:
			log.Fatal().Err(err).Msg("crear categoría")
		}
	}

	log.Info().Msg("seed completado")
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
