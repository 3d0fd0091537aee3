package callbacks

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/controller/views"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"go.uber.org/zap"
)

// showCurrent перерисовывает сообщение экраном текущего режима
func showCurrent(hc *common.HandlerContext, answer string) {
	text, kb, err := common.BuildCurrentScreen(hc.Ctx, hc.Handler, hc.ChatID)
	if err != nil {
		handleFetchError(hc, err)
		return
	}

	if err := hc.EditMessage(text, kb); err != nil {
		hc.Fail("edit screen", err)
		return
	}
	hc.Answer(answer)
}

// handleFetchError устаревший ответ молча пропускаем: экран рисует более новый запрос
func handleFetchError(hc *common.HandlerContext, err error) {
	if errors.Is(err, service.ErrStaleSnapshot) {
		hc.Answer("")
		return
	}

	hc.Handler.Logger.Error("Failed to load schedule",
		zap.Int64("chat_id", hc.ChatID),
		zap.String("data", hc.Callback.Data),
		zap.Error(err))
	hc.AnswerAlert(common.FetchErrorMessage(err))
}

// HandleMonth переход к другому месяцу
func HandleMonth(hc *common.HandlerContext) {
	month, err := common.ParseMonthFromCallback(hc.Callback.Data, views.CbMonth)
	if err != nil {
		hc.Fail("parse month", err)
		return
	}

	hc.UpdateView(func(v *state.ViewState) { v.SelectMonth(month) })
	showCurrent(hc, "")
}

// HandleDay выбор дня в календаре
func HandleDay(hc *common.HandlerContext) {
	date, err := common.ParseDateFromCallback(hc.Callback.Data, views.CbDay)
	if err != nil {
		hc.Fail("parse day", err)
		return
	}

	hc.UpdateView(func(v *state.ViewState) {
		v.SelectDate(date)
		v.Mode = schedule.ViewCalendar
	})
	showCurrent(hc, "")
}

// HandleViewMode переключение режима
func HandleViewMode(hc *common.HandlerContext) {
	args, err := common.CallbackArgs(hc.Callback.Data, views.CbViewMode, 1)
	if err != nil {
		hc.Fail("parse view mode", err)
		return
	}
	mode, ok := schedule.ParseViewMode(args[0])
	if !ok {
		hc.Fail("parse view mode", fmt.Errorf("%w: unknown mode %q", common.ErrInvalidFormat, args[0]))
		return
	}

	hc.UpdateView(func(v *state.ViewState) { v.Mode = mode })
	showCurrent(hc, "")
}

// HandleRefresh перезагружает месяц с сервера
func HandleRefresh(hc *common.HandlerContext) {
	_, err := hc.Handler.Schedules.Refresh(hc.Ctx, hc.ChatID)
	if err != nil && !errors.Is(err, service.ErrNoSnapshot) {
		handleFetchError(hc, err)
		return
	}
	showCurrent(hc, "🔄 Agenda atualizada")
}

// HandleTimelineDay линия времени для дня
func HandleTimelineDay(hc *common.HandlerContext) {
	date, err := common.ParseDateFromCallback(hc.Callback.Data, views.CbTimelineDay)
	if err != nil {
		hc.Fail("parse timeline day", err)
		return
	}

	hc.UpdateView(func(v *state.ViewState) {
		v.SelectDate(date)
		v.Mode = schedule.ViewTimeline
	})
	showCurrent(hc, "")
}

// HandleTimelineImage отправляет картинку дня
func HandleTimelineImage(hc *common.HandlerContext) {
	date, err := common.ParseDateFromCallback(hc.Callback.Data, views.CbTimelineImage)
	if err != nil {
		hc.Fail("parse timeline image day", err)
		return
	}

	snap, err := common.EnsureSnapshot(hc.Ctx, hc.Handler, hc.ChatID, date)
	if err != nil {
		handleFetchError(hc, err)
		return
	}

	tl := schedule.BuildTimeline(date, snap.Records)
	imageData, err := common.RenderDayTimeline(date, tl)
	if err != nil {
		hc.Fail("render timeline image", err)
		return
	}

	caption := fmt.Sprintf("🕒 <b>Linha do tempo · %s</b>\n%d %s",
		formatting.FormatDateWithWeekday(date),
		tl.Total(), formatting.PluralizeAppointments(tl.Total()),
	)
	kb := keyboard.NewBuilder().
		AddBackButton(views.CbTimelineDay + schedule.DateKey(date)).
		Build()

	if err := hc.SendPhoto("timeline-"+schedule.DateKey(date)+".png", imageData, caption, kb); err != nil {
		hc.Fail("send timeline image", err)
		return
	}
	hc.Answer("")
}

// HandleInstructorSort переключение сортировки инструкторов
func HandleInstructorSort(hc *common.HandlerContext) {
	args, err := common.CallbackArgs(hc.Callback.Data, views.CbInstructorSort, 1)
	if err != nil {
		hc.Fail("parse instructor sort", err)
		return
	}

	order := schedule.SummaryOrder(args[0])
	if order != schedule.SortByName && order != schedule.SortByRevenue {
		hc.Fail("parse instructor sort", fmt.Errorf("%w: unknown order %q", common.ErrInvalidFormat, args[0]))
		return
	}

	hc.UpdateView(func(v *state.ViewState) {
		v.Order = order
		v.Mode = schedule.ViewInstructor
	})
	showCurrent(hc, "")
}

// HandleSearchPrompt просит ввести текст поиска
func HandleSearchPrompt(hc *common.HandlerContext) {
	hc.SetState(state.StateEnteringSearch)

	err := hc.SendMessage(
		"🔎 Digite o nome do aluno, instrutor, modalidade ou sala.\n\nPara cancelar use /cancel",
		nil,
	)
	if err != nil {
		hc.Fail("send search prompt", err)
		return
	}
	hc.Answer("")
}

// HandleClearSearch сбрасывает фильтр
func HandleClearSearch(hc *common.HandlerContext) {
	hc.UpdateView(func(v *state.ViewState) {
		v.Search = ""
		v.Mode = schedule.ViewInstructor
	})
	showCurrent(hc, "Filtro removido")
}
