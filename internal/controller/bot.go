package controller

import (
	"context"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/controller/handlers"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/controller/views"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot             *bot.Bot
	handlers        *handlers.Handlers
	callbackHandler *callbacks.Handler
	logger          *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	schedules *service.ScheduleService,
	authService *service.AuthService,
	admins []int64,
	logger *zap.Logger,
) *BotController {
	// Создаём менеджер состояний
	stateManager := state.NewManager()

	// Создаём callback handler с зависимостями
	callbackHandler := callbacks.NewHandler(schedules, authService, stateManager, logger)

	// Команды используют те же зависимости
	cmdHandlers := handlers.NewHandlers(callbackHandler.Handler, admins, logger)

	return &BotController{
		bot:             botInstance,
		handlers:        cmdHandlers,
		callbackHandler: callbackHandler,
		logger:          logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	h := c.handlers

	// Доступны без сессии API
	open := func(f bot.HandlerFunc) bot.HandlerFunc { return h.RequireAdmin(f) }
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, open(h.HandleStart))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, open(h.HandleHelp))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypeExact, open(h.HandleLogin))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypeExact, open(h.HandleLogout))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypeExact, open(h.HandleCancel))

	// Требуют открытой сессии
	gated := func(f bot.HandlerFunc) bot.HandlerFunc { return h.RequireAdmin(h.RequireSession(f)) }
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/calendar", bot.MatchTypeExact, gated(h.HandleCalendar))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/today", bot.MatchTypeExact, gated(h.HandleToday))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/timeline", bot.MatchTypeExact, gated(h.HandleTimeline))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/instructors", bot.MatchTypeExact, gated(h.HandleInstructors))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/search", bot.MatchTypePrefix, gated(h.HandleSearch))
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/refresh", bot.MatchTypeExact, gated(h.HandleRefresh))

	// Обработчик текстовых сообщений (для диалогов с состояниями)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, gated(h.HandleTextMessage))

	// Обработчик нажатий на inline кнопки
	c.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "", bot.MatchTypePrefix, gated(c.callbackHandler.HandleCallbackQuery))

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "calendar", Description: "📅 Calendário do mês"},
		{Command: "today", Description: "📋 Agenda de hoje"},
		{Command: "timeline", Description: "🕒 Linha do tempo do dia"},
		{Command: "instructors", Description: "👥 Resumo por instrutor"},
		{Command: "search", Description: "🔎 Filtrar agendamentos"},
		{Command: "refresh", Description: "🔄 Recarregar a agenda"},
		{Command: "login", Description: "🔑 Entrar na API"},
		{Command: "logout", Description: "🚪 Sair"},
		{Command: "help", Description: "❓ Ajuda"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// SendDigest отправляет утреннюю сводку в чат
func (c *BotController) SendDigest(ctx context.Context, chatID int64, date time.Time, agenda []model.AppointmentRecord) error {
	text, kb := views.BuildDigestScreen(date, agenda)
	return common.SendScreen(ctx, c.bot, chatID, text, kb)
}

// Start запускает бота
func (c *BotController) Start(ctx context.Context) error {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
	return nil
}
