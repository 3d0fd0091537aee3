package views

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/go-telegram/bot/models"
)

const (
	// maxAgendaItems сколько записей дня печатаем в тексте
	maxAgendaItems = 15
	// maxAgendaButtons сколько кнопок записей помещаем под календарём
	maxAgendaButtons = 8
)

// BuildCalendarScreen формирует экран месяца с выбранным днём
func BuildCalendarScreen(grid schedule.CalendarGrid, selected time.Time, agenda []model.AppointmentRecord) (string, *models.InlineKeyboardMarkup) {
	summary := grid.Summary()

	var text strings.Builder
	fmt.Fprintf(&text, "📅 <b>%s</b>\n", formatting.FormatMonthTitle(grid.Month))
	fmt.Fprintf(&text, "📋 %d %s em %d %s · 💰 %s recebidos\n\n",
		summary.ScheduleCount,
		formatting.PluralizeAppointments(summary.ScheduleCount),
		summary.BusyDays,
		formatting.PluralizeDays(summary.BusyDays),
		formatting.FormatPrice(summary.Revenue),
	)
	fmt.Fprintf(&text, "<b>%s</b>\n", formatting.FormatDateWithWeekday(selected))
	text.WriteString(agendaList(agenda))
	text.WriteString("\n\n<i>• com agendamentos  [ ] selecionado  * hoje</i>")

	return text.String(), calendarKeyboard(grid, selected, agenda)
}

func calendarKeyboard(grid schedule.CalendarGrid, selected time.Time, agenda []model.AppointmentRecord) *models.InlineKeyboardMarkup {
	b := keyboard.NewBuilder()

	prev := grid.Month.AddDate(0, -1, 0)
	next := grid.Month.AddDate(0, 1, 0)
	b.AddPagination(formatting.FormatMonthTitle(grid.Month), monthData(prev), monthData(next))

	header := make([]models.InlineKeyboardButton, schedule.DaysPerWeek)
	for i := range header {
		header[i] = keyboard.Noop(formatting.GetWeekdayLetter(i))
	}
	b.Row(header...)

	for _, week := range grid.Weeks() {
		row := make([]models.InlineKeyboardButton, len(week))
		for i, cell := range week {
			row[i] = keyboard.Button(DayLabel(cell), dayData(CbDay, cell.Date))
		}
		b.Row(row...)
	}

	b.AddRows(appointmentButtons(agenda))
	b.Row(keyboard.Button("🕒 Linha do tempo do dia", dayData(CbTimelineDay, selected)))

	return footer(b, schedule.ViewCalendar).Build()
}

// DayLabel подпись ячейки календаря
func DayLabel(cell schedule.CalendarCell) string {
	label := strconv.Itoa(cell.Day)
	if !cell.IsCurrentMonth {
		label = "·" + label
	}
	if cell.ScheduleCount > 0 {
		label += "•"
	}
	if cell.IsToday {
		label += "*"
	}
	if cell.IsSelected {
		label = "[" + label + "]"
	}
	return label
}

// agendaList текст записей дня
func agendaList(agenda []model.AppointmentRecord) string {
	if len(agenda) == 0 {
		return "Nenhum agendamento neste dia."
	}

	shown := agenda
	if len(shown) > maxAgendaItems {
		shown = shown[:maxAgendaItems]
	}

	lines := make([]string, 0, len(shown)+1)
	for i, a := range shown {
		lines = append(lines, formatting.FormatAppointmentInfo(a, i+1))
	}
	if rest := len(agenda) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("… e mais %d %s", rest, formatting.PluralizeAppointments(rest)))
	}
	return strings.Join(lines, "\n\n")
}

// appointmentButtons по кнопке на запись, открывают карточку
func appointmentButtons(agenda []model.AppointmentRecord) [][]models.InlineKeyboardButton {
	shown := agenda
	if len(shown) > maxAgendaButtons {
		shown = shown[:maxAgendaButtons]
	}

	rows := make([][]models.InlineKeyboardButton, 0, len(shown)+1)
	for _, a := range shown {
		label := fmt.Sprintf("%s %s %s · %s",
			formatting.GetAppointmentStatusDisplay(a.Status).Emoji,
			a.StartTime,
			formatting.Truncate(a.StudentName, 24),
			formatting.FormatPriceShort(a.Price),
		)
		rows = append(rows, []models.InlineKeyboardButton{
			keyboard.Button(label, appointmentData(CbAppointment, a.ID)),
		})
	}
	if rest := len(agenda) - len(shown); rest > 0 {
		rows = append(rows, []models.InlineKeyboardButton{
			keyboard.Noop(fmt.Sprintf("+%d na linha do tempo", rest)),
		})
	}
	return rows
}
