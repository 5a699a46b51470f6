// Seeds sample usuarios through the service layer so every domain rule and
// the uniqueness check apply to seeded data too. Works against the postgres
// driver; the in-memory store only lives inside a server process.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/emocionario/usuarios-api/config"
	"github.com/emocionario/usuarios-api/internal/application"
	"github.com/emocionario/usuarios-api/internal/domain"
	pginfra "github.com/emocionario/usuarios-api/internal/infrastructure/postgres"
	"github.com/emocionario/usuarios-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	if cfg.StorageDriver != config.DriverPostgres {
		log.Fatalf("seeding requires STORAGE_DRIVER=postgres, got %q", cfg.StorageDriver)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	svc := application.NewUserService(pginfra.NewUserRepository(pool), logger)

	nascimento := application.NewDate(1990, time.March, 15)
	samples := []application.CreateUserInput{
		{Nome: "Maria", Sobrenome: "Silva", Email: "maria.silva@example.com", DataNascimento: &nascimento},
		{Nome: "João", Sobrenome: "Souza", Email: "joao.souza@example.com"},
		{Nome: "Carla", Sobrenome: "Oliveira", Email: "carla.oliveira@example.com"},
	}

	for _, in := range samples {
		user, err := svc.Create(ctx, in)
		if err != nil {
			var conflict *domain.ConflictError
			if errors.As(err, &conflict) {
				fmt.Printf("skipped (already seeded): %s\n", in.Email)
				continue
			}
			log.Fatalf("failed to seed %s: %v", in.Email, err)
		}
		fmt.Printf("seeded user: id=%s email=%s\n", user.ID, user.Email)
	}
}
