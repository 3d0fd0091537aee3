package common

import (
	"bytes"
	"context"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// HandlerContext содержит общие данные для обработки callback
type HandlerContext struct {
	Ctx        context.Context
	Bot        *bot.Bot
	Callback   *models.CallbackQuery
	Handler    *callbacktypes.Handler
	Message    *models.Message
	TelegramID int64
	ChatID     int64
}

// NewHandlerContext создаёт новый контекст обработчика
func NewHandlerContext(
	ctx context.Context,
	b *bot.Bot,
	callback *models.CallbackQuery,
	h *callbacktypes.Handler,
) *HandlerContext {
	msg := GetMessageFromCallback(callback)
	var chatID int64
	if msg != nil {
		chatID = msg.Chat.ID
	}

	return &HandlerContext{
		Ctx:        ctx,
		Bot:        b,
		Callback:   callback,
		Handler:    h,
		Message:    msg,
		TelegramID: callback.From.ID,
		ChatID:     chatID,
	}
}

// View текущее состояние просмотра чата
func (hc *HandlerContext) View() state.ViewState {
	return hc.Handler.StateManager.View(hc.ChatID)
}

// UpdateView меняет состояние просмотра чата
func (hc *HandlerContext) UpdateView(fn func(*state.ViewState)) state.ViewState {
	return hc.Handler.StateManager.UpdateView(hc.ChatID, fn)
}

// Answer отвечает на callback query
func (hc *HandlerContext) Answer(text string) {
	AnswerCallback(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// AnswerAlert отвечает на callback query с alert
func (hc *HandlerContext) AnswerAlert(text string) {
	AnswerCallbackAlert(hc.Ctx, hc.Bot, hc.Callback.ID, text)
}

// Fail логирует ошибку операции и показывает пользователю alert
func (hc *HandlerContext) Fail(operation string, err error) {
	hc.Handler.Logger.Error("Operation failed",
		zap.String("operation", operation),
		zap.Int64("chat_id", hc.ChatID),
		zap.String("data", hc.Callback.Data),
		zap.Error(err))
	hc.AnswerAlert(ErrorMessage(err))
}

// EditMessage редактирует сообщение. Сообщение с фото текстом не
// редактируется, поэтому оно удаляется и отправляется новое.
func (hc *HandlerContext) EditMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	if len(hc.Message.Photo) > 0 {
		if err := hc.SendMessage(text, keyboard); err != nil {
			return err
		}
		return hc.DeleteMessage()
	}

	_, err := hc.Bot.EditMessageText(hc.Ctx, &bot.EditMessageTextParams{
		ChatID:      hc.ChatID,
		MessageID:   hc.Message.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})

	// Игнорируем ошибку "message is not modified" - это не настоящая ошибка
	if IsMessageNotModifiedError(err) {
		return nil
	}

	return err
}

// DeleteMessage удаляет сообщение
func (hc *HandlerContext) DeleteMessage() error {
	if hc.Message == nil {
		return ErrNoMessage
	}

	_, err := hc.Bot.DeleteMessage(hc.Ctx, &bot.DeleteMessageParams{
		ChatID:    hc.ChatID,
		MessageID: hc.Message.ID,
	})

	return err
}

// SendMessage отправляет новое сообщение
func (hc *HandlerContext) SendMessage(text string, keyboard *models.InlineKeyboardMarkup) error {
	return SendScreen(hc.Ctx, hc.Bot, hc.ChatID, text, keyboard)
}

// SendPhoto отправляет PNG с подписью
func (hc *HandlerContext) SendPhoto(filename string, data []byte, caption string, keyboard *models.InlineKeyboardMarkup) error {
	_, err := hc.Bot.SendPhoto(hc.Ctx, &bot.SendPhotoParams{
		ChatID:      hc.ChatID,
		Photo:       &models.InputFileUpload{Filename: filename, Data: bytes.NewReader(data)},
		Caption:     caption,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: keyboard,
	})
	return err
}

// SetState устанавливает состояние диалога
func (hc *HandlerContext) SetState(s state.UserState) {
	hc.Handler.StateManager.SetState(hc.ChatID, s)
}

// SendScreen отправляет HTML сообщение с клавиатурой
func SendScreen(ctx context.Context, b *bot.Bot, chatID int64, text string, keyboard *models.InlineKeyboardMarkup) error {
	params := &bot.SendMessageParams{
		ChatID:    chatID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	}
	if keyboard != nil {
		params.ReplyMarkup = keyboard
	}
	_, err := b.SendMessage(ctx, params)
	return err
}
