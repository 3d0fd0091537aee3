package common

import (
	"context"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/controller/views"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/go-telegram/bot/models"
)

// EnsureSnapshot возвращает снапшот нужного месяца, загружая его при необходимости
func EnsureSnapshot(ctx context.Context, h *callbacktypes.Handler, chatID int64, month time.Time) (*service.Snapshot, error) {
	snap, err := h.Schedules.Snapshot(chatID)
	if err == nil && snap.Month.Equal(schedule.StartOfMonth(month)) {
		return snap, nil
	}
	return h.Schedules.LoadMonth(ctx, chatID, month)
}

// BuildCurrentScreen собирает экран текущего режима чата
func BuildCurrentScreen(ctx context.Context, h *callbacktypes.Handler, chatID int64) (string, *models.InlineKeyboardMarkup, error) {
	view := h.StateManager.View(chatID)

	snap, err := EnsureSnapshot(ctx, h, chatID, view.Month)
	if err != nil {
		return "", nil, err
	}

	text, kb := BuildScreen(view, snap)
	return text, kb, nil
}

// BuildScreen выбирает представление по режиму
func BuildScreen(view state.ViewState, snap *service.Snapshot) (string, *models.InlineKeyboardMarkup) {
	switch view.Mode {
	case schedule.ViewTimeline:
		return views.BuildTimelineScreen(schedule.BuildTimeline(view.Selected, snap.Records))

	case schedule.ViewInstructor:
		filtered := schedule.FilterBySearch(snap.Records, view.Search)
		groups := schedule.GroupByInstructor(filtered)
		return views.BuildInstructorScreen(view.Month, schedule.SortSummaries(groups, view.Order), view.Search, view.Order)

	default:
		grid := schedule.BuildCalendarGrid(view.Month, snap.Records, view.Selected)
		agenda := schedule.GetAgendaForDate(view.Selected, snap.Records)
		return views.BuildCalendarScreen(grid, view.Selected, agenda)
	}
}

// BuildAgendaForDay экран списка записей выбранного дня
func BuildAgendaForDay(ctx context.Context, h *callbacktypes.Handler, chatID int64, date time.Time) (string, *models.InlineKeyboardMarkup, error) {
	snap, err := EnsureSnapshot(ctx, h, chatID, date)
	if err != nil {
		return "", nil, err
	}
	text, kb := views.BuildAgendaScreen(date, schedule.GetAgendaForDate(date, snap.Records))
	return text, kb, nil
}
