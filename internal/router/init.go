package router

import (
	"taskhub/internal/application"
	"taskhub/internal/container"
	"taskhub/internal/domain/entity"
	pginfra "taskhub/internal/infrastructure/postgres"
	handlers "taskhub/internal/interface/http"
	"taskhub/internal/router/modules"
	"taskhub/pkg/helpers"
)

type moduleDeps struct {
	Auth *handlers.AuthHandler
	User *handlers.UserHandler
	Task *handlers.TaskHandler
}

func buildDeps() moduleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(container.GetPGPool())
	taskRepo := pginfra.NewTaskRepository(container.GetPGPool())

	indexer := application.NewUserIndexer(container.GetES(), cfg.ESUsersIndex, logger)

	var pub *helpers.RabbitPublisher
	if cfg.MailSendEnabled {
		pub = container.GetRabbitPub()
	}

	register := application.NewRegisterUseCase(userRepo, entity.NewUserFactory(), logger, pub, indexer)
	login := application.NewLoginUseCase(userRepo, container.GetJWT(), logger)
	refresh := application.NewRefreshTokenUseCase(userRepo, container.GetJWT(), logger)

	userService := application.NewUserService(userRepo, container.GetRedis(), logger, indexer)
	taskService := application.NewTaskService(taskRepo, logger, container.GetGCS(), cfg.GCSBucket)

	cookies := helpers.NewCookieManager(cfg.CookieDomain, cfg.CookieSecure)

	return moduleDeps{
		Auth: handlers.NewAuthHandler(register, login, refresh, cookies, logger),
		User: handlers.NewUserHandler(userService, logger),
		Task: handlers.NewTaskHandler(taskService, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	jwt := container.GetJWT()
	r.Add(modules.NewAuthModule(deps.Auth))
	r.Add(modules.NewUserModule(deps.User, jwt))
	r.Add(modules.NewTaskModule(deps.Task, jwt))
}
