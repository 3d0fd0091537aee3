package callbacks

import (
	"context"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Handler with Dependencies
// ========================

// Handler обертка для callbacktypes.Handler с методами
type Handler struct {
	*callbacktypes.Handler
}

// NewHandler создаёт новый обработчик callbacks с зависимостями
func NewHandler(
	schedules *service.ScheduleService,
	auth *service.AuthService,
	stateManager *state.Manager,
	logger *zap.Logger,
) *Handler {
	inner := &callbacktypes.Handler{
		Schedules:    schedules,
		Auth:         auth,
		StateManager: stateManager,
		Logger:       logger,
		Now:          time.Now,
	}
	return &Handler{Handler: inner}
}

// HandleCallbackQuery - главный обработчик callback queries
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}

	callback := update.CallbackQuery

	h.Logger.Debug("Callback received",
		zap.String("data", callback.Data),
		zap.Int64("user_id", callback.From.ID),
	)

	// Вызываем роутер
	Route(ctx, b, callback, h.Handler)
}
