package state

import (
	"time"

	"github.com/Freeeeeet/studio_admin/internal/schedule"
)

// UserState представляет текущее состояние пользователя в диалоге
type UserState string

const (
	StateNone UserState = "" // Нет активного состояния

	// Ожидаем текст поиска для экрана инструкторов
	StateEnteringSearch UserState = "entering_search"
)

// ViewState что сейчас смотрит чат
type ViewState struct {
	Mode     schedule.ViewMode
	Month    time.Time // первое число отображаемого месяца
	Selected time.Time // выбранный день, полночь
	Search   string
	Order    schedule.SummaryOrder
}

// DefaultView календарь текущего месяца с выбранным сегодняшним днём
func DefaultView(now time.Time) ViewState {
	return ViewState{
		Mode:     schedule.ViewCalendar,
		Month:    schedule.StartOfMonth(now),
		Selected: schedule.StartOfDay(now),
		Order:    schedule.SortByName,
	}
}

// SelectDate выбирает день и переключает месяц, если день в другом месяце
func (v *ViewState) SelectDate(date time.Time) {
	v.Selected = schedule.StartOfDay(date)
	v.Month = schedule.StartOfMonth(date)
}

// SelectMonth переключает месяц. Выбранный день остаётся, если он в этом
// месяце, иначе выбирается первое число.
func (v *ViewState) SelectMonth(month time.Time) {
	v.Month = schedule.StartOfMonth(month)
	if !sameMonth(v.Selected, v.Month) {
		v.Selected = v.Month
	}
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// UserData хранит состояние чата
type UserData struct {
	State UserState
	View  ViewState
}
