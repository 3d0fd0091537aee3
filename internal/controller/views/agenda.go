package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/go-telegram/bot/models"
)

// BuildAgendaScreen формирует список записей дня
func BuildAgendaScreen(date time.Time, agenda []model.AppointmentRecord) (string, *models.InlineKeyboardMarkup) {
	var text strings.Builder
	fmt.Fprintf(&text, "📋 <b>Agenda · %s</b>\n", formatting.FormatDateWithWeekday(date))
	fmt.Fprintf(&text, "%d %s\n\n", len(agenda), formatting.PluralizeAppointments(len(agenda)))
	text.WriteString(agendaList(agenda))

	b := keyboard.NewBuilder().
		AddRows(appointmentButtons(agenda)).
		Row(
			keyboard.Button("📅 Calendário", dayData(CbDay, date)),
			keyboard.Button("🕒 Linha do tempo", dayData(CbTimelineDay, date)),
		)

	return text.String(), b.Build()
}

// BuildDigestScreen сводка с кнопками календаря и линии времени дня
func BuildDigestScreen(date time.Time, agenda []model.AppointmentRecord) (string, *models.InlineKeyboardMarkup) {
	kb := keyboard.NewBuilder().
		Row(
			keyboard.Button("📅 Calendário", dayData(CbDay, date)),
			keyboard.Button("🕒 Linha do tempo", dayData(CbTimelineDay, date)),
		).
		Build()
	return BuildDigestText(date, agenda), kb
}

// BuildDigestText утренняя сводка для администраторов
func BuildDigestText(date time.Time, agenda []model.AppointmentRecord) string {
	var expected, paid model.Money
	confirmed := 0
	for _, a := range agenda {
		expected += a.Price
		if a.IsPaid() {
			paid += a.Price
		}
		if a.IsConfirmed() {
			confirmed++
		}
	}

	var text strings.Builder
	fmt.Fprintf(&text, "☀️ <b>Bom dia! Agenda de hoje</b>\n%s\n\n", formatting.FormatDateWithWeekday(date))
	if len(agenda) == 0 {
		text.WriteString("Nenhum agendamento para hoje.")
		return text.String()
	}

	fmt.Fprintf(&text, "📋 %d %s · ✅ %d %s\n",
		len(agenda), formatting.PluralizeAppointments(len(agenda)),
		confirmed, formatting.PluralizeConfirmed(confirmed),
	)
	fmt.Fprintf(&text, "💰 Previsto %s · recebido %s\n\n", formatting.FormatPrice(expected), formatting.FormatPrice(paid))
	text.WriteString(agendaList(agenda))
	return text.String()
}
