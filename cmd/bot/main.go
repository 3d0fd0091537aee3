package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/studio_admin/internal/app"
	"github.com/Freeeeeet/studio_admin/internal/auth"
	"github.com/Freeeeeet/studio_admin/internal/config"
	"github.com/Freeeeeet/studio_admin/internal/controller"
	"github.com/Freeeeeet/studio_admin/internal/repository"
	"github.com/Freeeeeet/studio_admin/internal/repository/base"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/go-telegram/bot"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	logger.Info("Starting studio admin bot",
		zap.String("environment", cfg.Environment),
		zap.String("api", cfg.APIBaseURL),
		zap.Int("admins", len(cfg.AdminChatIDs)),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// API клиент берёт токен из сессии на каждый запрос
	session := auth.NewSession()
	client, err := base.NewClient(cfg.APIBaseURL, cfg.APITimeout, session, logger)
	if err != nil {
		logger.Fatal("Failed to create API client", zap.Error(err))
	}

	scheduleRepo := repository.NewScheduleRepository(client)
	authRepo := repository.NewAuthRepository(client)

	schedules := service.NewScheduleService(scheduleRepo, cfg.MaxResults, logger)
	authService := service.NewAuthService(session, authRepo, service.Credentials{
		Token:    cfg.APIToken,
		Email:    cfg.APIEmail,
		Password: cfg.APIPassword,
	}, logger)

	// Без сессии бот всё равно стартует, админ может выполнить /login
	if err := authService.Start(ctx); err != nil {
		logger.Warn("Failed to open API session on startup", zap.Error(err))
	}

	b, err := bot.New(cfg.TelegramToken)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	botController := controller.NewBotController(b, schedules, authService, cfg.AdminChatIDs, logger)
	if err := botController.RegisterHandlers(ctx); err != nil {
		logger.Warn("Failed to register bot commands", zap.Error(err))
	}

	if cfg.DigestEnabled() {
		digest := app.NewDigestScheduler(schedules, botController, cfg.AdminChatIDs, cfg.DigestHour, logger)
		digest.Start(ctx)
		defer digest.Stop()
	}

	if err := botController.Start(ctx); err != nil {
		logger.Error("Bot stopped with error", zap.Error(err))
	}
	logger.Info("Bot stopped")
}
