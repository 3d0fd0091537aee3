package views

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/go-telegram/bot/models"
)

// BuildDetailsScreen карточка записи со всеми полями
func BuildDetailsScreen(a model.AppointmentRecord) (string, *models.InlineKeyboardMarkup) {
	status := formatting.GetAppointmentStatusDisplay(a.Status)
	payment := formatting.GetPaymentStatusDisplay(a.PaymentStatus)

	dateText := a.Date
	if date, err := schedule.ParseDateKey(a.Date); err == nil {
		dateText = formatting.FormatDateWithWeekday(date)
	}

	duration := "—"
	if minutes, err := schedule.CalculateDurationMinutes(a.StartTime, a.EndTime); err == nil {
		duration = formatting.FormatDuration(minutes)
	}

	room := a.Room
	if room == "" {
		room = "—"
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%s <b>Agendamento #%d</b>\n\n", status.Emoji, a.ID)
	fmt.Fprintf(&text, "🙋 Aluno: <b>%s</b> (#%d)\n", html.EscapeString(a.StudentName), a.StudentID)
	fmt.Fprintf(&text, "👤 Instrutor: %s (#%d)\n", html.EscapeString(a.InstructorName), a.InstructorID)
	fmt.Fprintf(&text, "🏋️ Modalidade: %s\n", html.EscapeString(a.Type))
	fmt.Fprintf(&text, "📅 Data: %s\n", dateText)
	fmt.Fprintf(&text, "⏰ Horário: %s (%s)\n", formatting.FormatTimeRange(a.StartTime, a.EndTime), duration)
	fmt.Fprintf(&text, "📍 Sala: %s\n", html.EscapeString(room))
	fmt.Fprintf(&text, "🧰 Equipamentos: %s\n", formatting.FormatEquipment(a.Equipment))
	fmt.Fprintf(&text, "📊 Status: %s\n", status.Text)
	fmt.Fprintf(&text, "💰 Valor: %s · %s\n", formatting.FormatPrice(a.Price), payment.String())
	if a.Notes != "" {
		fmt.Fprintf(&text, "📝 Observações: %s\n", html.EscapeString(a.Notes))
	}
	text.WriteString("\n")
	text.WriteString(historyText(a))

	return text.String(), detailsKeyboard(a)
}

// historyText история из двух событий. Настоящей истории API не отдаёт,
// она собирается из createdAt и текущего статуса.
func historyText(a model.AppointmentRecord) string {
	created := "data desconhecida"
	if !a.CreatedAt.IsZero() {
		created = formatting.FormatDateTime(a.CreatedAt.Time)
	}
	return fmt.Sprintf(
		"🕓 <b>Histórico</b> <i>(gerado a partir do registro)</i>\n"+
			" • %s: agendamento criado\n"+
			" • Status atual: %s",
		created,
		formatting.GetAppointmentStatusDisplay(a.Status).String(),
	)
}

func detailsKeyboard(a model.AppointmentRecord) *models.InlineKeyboardMarkup {
	statusButtons := make([]models.InlineKeyboardButton, 0, len(model.AppointmentStatuses))
	for _, status := range model.AppointmentStatuses {
		if status == a.Status {
			continue
		}
		statusButtons = append(statusButtons,
			keyboard.Button(formatting.GetAppointmentStatusDisplay(status).String(), statusData(a.ID, status)))
	}

	return keyboard.NewBuilder().
		Grid(statusButtons, 2).
		Row(keyboard.DeleteButton(appointmentData(CbDelete, a.ID))).
		AddBackButton(backData(a)).
		Build()
}

// BuildDeleteConfirmScreen подтверждение удаления
func BuildDeleteConfirmScreen(a model.AppointmentRecord) (string, *models.InlineKeyboardMarkup) {
	text := fmt.Sprintf(
		"🗑 <b>Excluir agendamento #%d?</b>\n\n%s\n\nEsta ação não pode ser desfeita.",
		a.ID,
		formatting.FormatAppointmentInfo(a, 1),
	)

	kb := keyboard.NewBuilder().
		Row(keyboard.ConfirmCancelRow(
			appointmentData(CbConfirmDelete, a.ID),
			appointmentData(CbAppointment, a.ID),
		)...).
		Build()

	return text, kb
}

// backData возврат к дню записи в календаре
func backData(a model.AppointmentRecord) string {
	if date, err := schedule.ParseDateKey(a.Date); err == nil {
		return dayData(CbDay, date)
	}
	return modeData(schedule.ViewCalendar)
}
