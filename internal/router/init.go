package router

import (
	"github.com/emocionario/usuarios-api/config"
	"github.com/emocionario/usuarios-api/internal/application"
	"github.com/emocionario/usuarios-api/internal/container"
	repo "github.com/emocionario/usuarios-api/internal/domain/repository"
	"github.com/emocionario/usuarios-api/internal/infrastructure/memory"
	pginfra "github.com/emocionario/usuarios-api/internal/infrastructure/postgres"
	handlers "github.com/emocionario/usuarios-api/internal/interface/http"
	"github.com/emocionario/usuarios-api/internal/router/modules"
)

// NewUserRepository selects the repository variant configured by
// STORAGE_DRIVER.
func NewUserRepository() repo.UserRepository {
	if container.GetConfig().StorageDriver == config.DriverPostgres {
		return pginfra.NewUserRepository(container.GetPGPool())
	}
	return memory.NewUserRepository(container.GetMemoryDB())
}

// InitModules wires all application modules into the router registry. Call
// once during startup.
func InitModules(r *Registry) {
	svc := application.NewUserService(NewUserRepository(), container.GetLogger())
	handler := handlers.NewUserHandler(svc, container.GetLogger())
	r.Add(modules.NewUserModule(handler))
}
