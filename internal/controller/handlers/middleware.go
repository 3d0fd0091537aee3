package handlers

import (
	"context"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// updateChatID достаёт чат из сообщения или callback
func updateChatID(update *models.Update) (int64, bool) {
	switch {
	case update.Message != nil:
		return update.Message.Chat.ID, true
	case update.CallbackQuery != nil:
		if msg := common.GetMessageFromCallback(update.CallbackQuery); msg != nil {
			return msg.Chat.ID, true
		}
		return update.CallbackQuery.From.ID, true
	}
	return 0, false
}

// RequireAdmin пропускает только чаты из ADMIN_CHAT_IDS
func (h *Handlers) RequireAdmin(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		chatID, ok := updateChatID(update)
		if !ok {
			return
		}

		if !h.isAdmin(chatID) {
			h.logger.Warn("Rejected update from unknown chat", zap.Int64("chat_id", chatID))
			if update.CallbackQuery != nil {
				common.AnswerCallbackAlert(ctx, b, update.CallbackQuery.ID, "⛔ Acesso restrito")
				return
			}
			h.sendError(ctx, b, chatID, "⛔ Acesso restrito aos administradores do estúdio.")
			return
		}

		next(ctx, b, update)
	}
}

// RequireSession пропускает только при открытой сессии API
func (h *Handlers) RequireSession(next bot.HandlerFunc) bot.HandlerFunc {
	return func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if h.deps.Auth.IsAuthenticated() {
			next(ctx, b, update)
			return
		}

		chatID, ok := updateChatID(update)
		if !ok {
			return
		}

		h.logger.Info("Update rejected, API session is closed", zap.Int64("chat_id", chatID))
		if update.CallbackQuery != nil {
			common.AnswerCallbackAlert(ctx, b, update.CallbackQuery.ID, common.SessionExpiredMessage())
			return
		}
		h.sendError(ctx, b, chatID, common.SessionExpiredMessage())
	}
}
