package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/controller/views"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	hc := common.NewHandlerContext(ctx, b, callback, h)
	if hc.Message == nil {
		// Сообщение слишком старое, Telegram его не прислал
		hc.AnswerAlert(common.ErrorMessage(common.ErrNoMessage))
		return
	}

	switch {
	case data == keyboard.NoopData:
		// No operation - просто подтверждаем callback
		hc.Answer("")

	// ===== Calendar and navigation =====
	case strings.HasPrefix(data, views.CbMonth):
		HandleMonth(hc)
	case strings.HasPrefix(data, views.CbDay):
		HandleDay(hc)
	case strings.HasPrefix(data, views.CbViewMode):
		HandleViewMode(hc)
	case data == views.CbRefresh:
		HandleRefresh(hc)

	// ===== Timeline =====
	case strings.HasPrefix(data, views.CbTimelineDay):
		HandleTimelineDay(hc)
	case strings.HasPrefix(data, views.CbTimelineImage):
		HandleTimelineImage(hc)

	// ===== Instructors =====
	case strings.HasPrefix(data, views.CbInstructorSort):
		HandleInstructorSort(hc)
	case data == views.CbSearch:
		HandleSearchPrompt(hc)
	case data == views.CbClearSearch:
		HandleClearSearch(hc)

	// ===== Appointment details and mutations =====
	case strings.HasPrefix(data, views.CbStatus):
		HandleStatusChange(hc)
	case strings.HasPrefix(data, views.CbDelete):
		HandleDeleteRequest(hc)
	case strings.HasPrefix(data, views.CbConfirmDelete):
		HandleConfirmDelete(hc)
	case strings.HasPrefix(data, views.CbAppointment):
		HandleAppointment(hc)

	// ===== Unknown Callback =====
	default:
		h.Logger.Warn("Unknown callback",
			zap.String("data", data),
			zap.Int64("user_id", callback.From.ID))
		hc.Answer("❌ Comando desconhecido")
	}
}
