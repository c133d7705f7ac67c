package router

import (
	"github.com/habitflow/habitflow-api/internal/application"
	"github.com/habitflow/habitflow-api/internal/container"
	pginfra "github.com/habitflow/habitflow-api/internal/infrastructure/postgres"
	handlers "github.com/habitflow/habitflow-api/internal/interface/http"
	"github.com/habitflow/habitflow-api/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	cfg := container.GetConfig()
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewAuthService(
		repo,
		container.GetJWT(),
		container.GetRabbitPub(),
		container.GetLogger(),
		cfg.VerificationCodeTTL,
		cfg.MailSendEnabled,
	)
	return modules.NewAuthModule(handlers.NewAuthHandler(svc, container.GetLogger()))
}

func buildHabitModule() *modules.HabitModule {
	cfg := container.GetConfig()
	repo := pginfra.NewHabitRepository(container.GetPGPool())
	svc := application.NewHabitService(
		repo,
		container.GetRedis(),
		container.GetLogger(),
		cfg.HabitCacheTTL,
	)
	return modules.NewHabitModule(handlers.NewHabitHandler(svc, container.GetLogger()), container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during application startup.
func InitModules(r *Registry) {
	r.Add(buildAuthModule())
	r.Add(buildHabitModule())
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(container.GetPGPool())))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
