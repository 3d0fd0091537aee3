package callbacks

import (
	"errors"
	"fmt"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/controller/views"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"go.uber.org/zap"
)

// findAppointment ищет запись в снапшоте чата. Без снапшота сначала грузит
// месяц, запись из другого месяца (кнопка старой сводки) берёт с сервера.
func findAppointment(hc *common.HandlerContext, id int64) (*model.AppointmentRecord, error) {
	rec, err := hc.Handler.Schedules.Appointment(hc.ChatID, id)
	if errors.Is(err, service.ErrNoSnapshot) {
		if _, err := common.EnsureSnapshot(hc.Ctx, hc.Handler, hc.ChatID, hc.View().Month); err != nil {
			return nil, err
		}
		rec, err = hc.Handler.Schedules.Appointment(hc.ChatID, id)
	}
	if errors.Is(err, service.ErrAppointmentNotFound) {
		return hc.Handler.Schedules.FetchAppointment(hc.Ctx, id)
	}
	return rec, err
}

// HandleAppointment карточка записи
func HandleAppointment(hc *common.HandlerContext) {
	id, err := common.ParseIDFromCallback(hc.Callback.Data, views.CbAppointment)
	if err != nil {
		hc.Fail("parse appointment id", err)
		return
	}

	rec, err := findAppointment(hc, id)
	if err != nil {
		hc.Fail("find appointment", err)
		return
	}

	text, kb := views.BuildDetailsScreen(*rec)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Fail("edit details", err)
		return
	}
	hc.Answer("")
}

// HandleStatusChange меняет статус и показывает обновлённую карточку
func HandleStatusChange(hc *common.HandlerContext) {
	args, err := common.CallbackArgs(hc.Callback.Data, views.CbStatus, 2)
	if err != nil {
		hc.Fail("parse status change", err)
		return
	}

	var id int64
	if _, err := fmt.Sscan(args[0], &id); err != nil {
		hc.Fail("parse status change", fmt.Errorf("%w: bad id %q", common.ErrInvalidFormat, args[0]))
		return
	}
	status := model.AppointmentStatus(args[1])

	if _, err := hc.Handler.Schedules.UpdateStatus(hc.Ctx, hc.ChatID, id, status); err != nil {
		hc.Fail("update status", err)
		return
	}

	hc.Handler.Logger.Info("Appointment status changed from chat",
		zap.Int64("chat_id", hc.ChatID),
		zap.Int64("appointment_id", id),
		zap.String("status", string(status)))

	rec, err := hc.Handler.Schedules.Appointment(hc.ChatID, id)
	if err != nil {
		// Запись ушла из снапшота (например, сменилась дата)
		showCurrent(hc, "✅ Status atualizado")
		return
	}

	text, kb := views.BuildDetailsScreen(*rec)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Fail("edit details", err)
		return
	}
	hc.Answer("✅ Status atualizado")
}

// HandleDeleteRequest спрашивает подтверждение удаления
func HandleDeleteRequest(hc *common.HandlerContext) {
	id, err := common.ParseIDFromCallback(hc.Callback.Data, views.CbDelete)
	if err != nil {
		hc.Fail("parse delete id", err)
		return
	}

	rec, err := findAppointment(hc, id)
	if err != nil {
		hc.Fail("find appointment", err)
		return
	}

	text, kb := views.BuildDeleteConfirmScreen(*rec)
	if err := hc.EditMessage(text, kb); err != nil {
		hc.Fail("edit delete confirmation", err)
		return
	}
	hc.Answer("")
}

// HandleConfirmDelete удаляет запись и возвращает к календарю её дня
func HandleConfirmDelete(hc *common.HandlerContext) {
	id, err := common.ParseIDFromCallback(hc.Callback.Data, views.CbConfirmDelete)
	if err != nil {
		hc.Fail("parse delete id", err)
		return
	}

	// Дата нужна для возврата, после удаления записи в снапшоте уже не будет
	rec, lookupErr := hc.Handler.Schedules.Appointment(hc.ChatID, id)

	if _, err := hc.Handler.Schedules.Delete(hc.Ctx, hc.ChatID, id); err != nil {
		hc.Fail("delete appointment", err)
		return
	}

	hc.UpdateView(func(v *state.ViewState) {
		v.Mode = schedule.ViewCalendar
		if lookupErr != nil {
			return
		}
		if date, err := schedule.ParseDateKey(rec.Date); err == nil {
			v.SelectDate(date)
		}
	})
	showCurrent(hc, "🗑 Agendamento excluído")
}
