package common

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Helper functions для всех callback handlers

// AnswerCallback отвечает на callback query (без alert)
func AnswerCallback(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       false,
	})
}

// AnswerCallbackAlert отвечает на callback query с alert (всплывающее окно)
func AnswerCallbackAlert(ctx context.Context, b *bot.Bot, callbackID string, text string) {
	b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       true,
	})
}

// GetMessageFromCallback извлекает сообщение из callback query
func GetMessageFromCallback(callback *models.CallbackQuery) *models.Message {
	if callback.Message.Message != nil {
		return callback.Message.Message
	}
	return nil
}

// IsMessageNotModifiedError Telegram отвечает ошибкой, если текст и кнопки не изменились
func IsMessageNotModifiedError(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

// CallbackArgs отрезает префикс и делит аргументы по ':'
// Например: ("appt_status:42:Confirmado", "appt_status:", 2) -> ["42", "Confirmado"]
func CallbackArgs(data, prefix string, n int) ([]string, error) {
	if !strings.HasPrefix(data, prefix) {
		return nil, fmt.Errorf("%w: %q has no prefix %q", ErrInvalidFormat, data, prefix)
	}
	args := strings.SplitN(strings.TrimPrefix(data, prefix), ":", n)
	if len(args) != n {
		return nil, fmt.Errorf("%w: %q expects %d args", ErrInvalidFormat, data, n)
	}
	for _, arg := range args {
		if arg == "" {
			return nil, fmt.Errorf("%w: %q has empty argument", ErrInvalidFormat, data)
		}
	}
	return args, nil
}

// ParseIDFromCallback извлекает ID из callback data
// Например: "appt:123" -> 123
func ParseIDFromCallback(data, prefix string) (int64, error) {
	args, err := CallbackArgs(data, prefix, 1)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad id %q", ErrInvalidFormat, args[0])
	}
	return id, nil
}

// ParseDateFromCallback извлекает дату: "cal_day:2024-06-10"
func ParseDateFromCallback(data, prefix string) (time.Time, error) {
	args, err := CallbackArgs(data, prefix, 1)
	if err != nil {
		return time.Time{}, err
	}
	date, err := schedule.ParseDateKey(args[0])
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return date, nil
}

// ParseMonthFromCallback извлекает месяц: "cal_month:2024-06"
func ParseMonthFromCallback(data, prefix string) (time.Time, error) {
	args, err := CallbackArgs(data, prefix, 1)
	if err != nil {
		return time.Time{}, err
	}
	month, err := time.ParseInLocation("2006-01", args[0], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: bad month %q", ErrInvalidFormat, args[0])
	}
	return month, nil
}
