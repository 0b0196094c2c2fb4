// seed crea los usuarios por defecto (admin, vendedor, estoquista) cuando la
// tabla de usuarios está vacía. Idempotente: con usuarios existentes no hace nada.
//
// Uso: go run ./cmd/seed
// La contraseña inicial se toma de SEED_DEFAULT_PASSWORD.
package main

import (
	"context"

	"github.com/conectta/retaguarda/internal/application/usecase"
	"github.com/conectta/retaguarda/internal/infrastructure/postgres"
	"github.com/conectta/retaguarda/pkg/config"
	"github.com/conectta/retaguarda/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	userUC := usecase.NewUserUseCase(userRepo)

	if err := userUC.EnsureDefaultUsers(cfg.Seed.DefaultPassword); err != nil {
		log.Fatal().Err(err).Msg("seed de usuarios")
	}

	log.Info().Msg("seed completado")
}
