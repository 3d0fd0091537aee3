package handlers

import (
	"context"
	"errors"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// showView меняет состояние просмотра и отправляет экран новым сообщением
func (h *Handlers) showView(ctx context.Context, b *bot.Bot, chatID int64, fn func(*state.ViewState)) {
	h.deps.StateManager.UpdateView(chatID, fn)

	text, kb, err := common.BuildCurrentScreen(ctx, h.deps, chatID)
	if err != nil {
		h.reportFetchError(ctx, b, chatID, err)
		return
	}
	h.sendMessage(ctx, b, chatID, text, kb)
}

// reportFetchError устаревшие ответы пропускает молча
func (h *Handlers) reportFetchError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	if errors.Is(err, service.ErrStaleSnapshot) {
		return
	}
	h.logger.Error("Failed to load schedule", zap.Int64("chat_id", chatID), zap.Error(err))
	h.sendError(ctx, b, chatID, common.FetchErrorMessage(err))
}

// HandleCalendar обрабатывает команду /calendar
func (h *Handlers) HandleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.showView(ctx, b, update.Message.Chat.ID, func(v *state.ViewState) {
		v.Mode = schedule.ViewCalendar
	})
}

// HandleToday агенда на сегодня
func (h *Handlers) HandleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	today := h.deps.Now()

	h.deps.StateManager.UpdateView(chatID, func(v *state.ViewState) {
		v.SelectDate(today)
		v.Mode = schedule.ViewCalendar
	})

	text, kb, err := common.BuildAgendaForDay(ctx, h.deps, chatID, today)
	if err != nil {
		h.reportFetchError(ctx, b, chatID, err)
		return
	}
	h.sendMessage(ctx, b, chatID, text, kb)
}

// HandleTimeline обрабатывает команду /timeline
func (h *Handlers) HandleTimeline(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.showView(ctx, b, update.Message.Chat.ID, func(v *state.ViewState) {
		v.Mode = schedule.ViewTimeline
	})
}

// HandleInstructors обрабатывает команду /instructors
func (h *Handlers) HandleInstructors(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.showView(ctx, b, update.Message.Chat.ID, func(v *state.ViewState) {
		v.Mode = schedule.ViewInstructor
	})
}

// HandleSearch "/search ana" фильтрует сразу, без аргумента спрашивает текст
func (h *Handlers) HandleSearch(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	term := commandArgument(update.Message.Text)
	if term == "" {
		h.deps.StateManager.SetState(chatID, state.StateEnteringSearch)
		h.sendMessage(ctx, b, chatID,
			"🔎 Digite o nome do aluno, instrutor, modalidade ou sala.\n\nPara cancelar use /cancel", nil)
		return
	}

	h.applySearch(ctx, b, chatID, term)
}

func (h *Handlers) applySearch(ctx context.Context, b *bot.Bot, chatID int64, term string) {
	h.logger.Info("Search applied", zap.Int64("chat_id", chatID), zap.String("term", term))
	h.showView(ctx, b, chatID, func(v *state.ViewState) {
		v.Search = term
		v.Mode = schedule.ViewInstructor
	})
}

// HandleRefresh перезагружает месяц и показывает текущий экран
func (h *Handlers) HandleRefresh(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if _, err := h.deps.Schedules.Refresh(ctx, chatID); err != nil && !errors.Is(err, service.ErrNoSnapshot) {
		h.reportFetchError(ctx, b, chatID, err)
		return
	}
	h.showView(ctx, b, chatID, func(*state.ViewState) {})
}
