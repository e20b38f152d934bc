package router

import (
	userapp "github.com/ockidea/ockidea-server/internal/application"
	"github.com/ockidea/ockidea-server/internal/container"
	pginfra "github.com/ockidea/ockidea-server/internal/infrastructure/postgres"
	handlers "github.com/ockidea/ockidea-server/internal/interface/http"
	"github.com/ockidea/ockidea-server/internal/router/modules"
)

// InitModules builds the user service from the container singletons and
// registers all feature modules. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool())
	service := userapp.NewService(repo, container.GetRedis(), logger, cfg.ProfileCacheTTL)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(service, logger, cfg)))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(service, logger, cfg)))

	if cfg.MaintenanceEnabled {
		r.Add(modules.NewMaintenanceModule(handlers.NewMaintenanceHandler(service, logger)))
	}
}
