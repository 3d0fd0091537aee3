package handlers

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 <b>Comandos</b>\n\n" +
	"/calendar - Calendário do mês\n" +
	"/today - Agenda de hoje\n" +
	"/timeline - Linha do tempo do dia selecionado\n" +
	"/instructors - Resumo por instrutor\n" +
	"/search <i>texto</i> - Filtrar por aluno, instrutor, modalidade ou sala\n" +
	"/refresh - Recarregar a agenda\n" +
	"/login - Entrar na API do estúdio\n" +
	"/logout - Sair\n" +
	"/cancel - Cancelar a operação atual\n" +
	"/help - Mostrar esta ajuda"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	welcome := fmt.Sprintf(
		"👋 Olá, %s!\n\nEste bot mostra a agenda do estúdio: calendário, linha do tempo e instrutores.\n\n%s",
		html.EscapeString(update.Message.From.FirstName),
		helpText,
	)
	if !h.deps.Auth.IsAuthenticated() {
		welcome += "\n\n" + common.SessionExpiredMessage()
	}

	h.sendMessage(ctx, b, update.Message.Chat.ID, welcome, nil)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.sendMessage(ctx, b, update.Message.Chat.ID, helpText, nil)
}

// HandleLogin открывает сессию API
func (h *Handlers) HandleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if err := h.deps.Auth.Start(ctx); err != nil {
		h.logger.Error("Failed to log in", zap.Int64("chat_id", chatID), zap.Error(err))
		if errors.Is(err, service.ErrSessionExpired) {
			h.sendError(ctx, b, chatID, "❌ Nenhuma credencial configurada (API_TOKEN ou API_EMAIL/API_PASSWORD).")
			return
		}
		h.sendError(ctx, b, chatID, "❌ Não foi possível entrar na API. Verifique as credenciais.")
		return
	}

	h.logger.Info("API session opened from chat", zap.Int64("chat_id", chatID))
	h.sendMessage(ctx, b, chatID, "✅ Sessão iniciada.\n\nUse /calendar para ver a agenda.", nil)
}

// HandleLogout закрывает сессию и забывает все загруженные месяцы
func (h *Handlers) HandleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	h.deps.Auth.Logout()
	h.deps.Schedules.ForgetAll()
	h.deps.StateManager.ClearState(chatID)

	h.logger.Info("API session closed from chat", zap.Int64("chat_id", chatID))
	h.sendMessage(ctx, b, chatID, "👋 Sessão encerrada.", nil)
}

// HandleCancel обрабатывает команду /cancel - отмена текущего диалога
func (h *Handlers) HandleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if h.deps.StateManager.GetState(chatID) == state.StateNone {
		h.sendMessage(ctx, b, chatID, "❌ Nenhuma operação para cancelar.", nil)
		return
	}

	h.deps.StateManager.SetState(chatID, state.StateNone)
	h.sendMessage(ctx, b, chatID, "✅ Operação cancelada.\n\nUse /help para ver os comandos.", nil)
}

// HandleTextMessage обрабатывает текстовые сообщения в зависимости от состояния чата
func (h *Handlers) HandleTextMessage(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}

	// Команды обрабатываются другими handlers
	if strings.HasPrefix(update.Message.Text, "/") {
		return
	}

	chatID := update.Message.Chat.ID
	currentState := h.deps.StateManager.GetState(chatID)

	switch currentState {
	case state.StateNone:
		h.logger.Debug("No active state, ignoring message", zap.Int64("chat_id", chatID))
	case state.StateEnteringSearch:
		h.deps.StateManager.SetState(chatID, state.StateNone)
		h.applySearch(ctx, b, chatID, strings.TrimSpace(update.Message.Text))
	default:
		h.logger.Warn("Unknown state", zap.String("state", string(currentState)))
	}
}
