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

// BuildTimelineScreen формирует получасовую сетку дня
func BuildTimelineScreen(tl schedule.Timeline) (string, *models.InlineKeyboardMarkup) {
	var text strings.Builder
	fmt.Fprintf(&text, "🕒 <b>Linha do tempo · %s</b>\n", formatting.FormatDateWithWeekday(tl.Date))
	fmt.Fprintf(&text, "%d %s · %d de %d horários ocupados\n\n",
		tl.Total(), formatting.PluralizeAppointments(tl.Total()),
		tl.Occupied(), schedule.SlotCount,
	)

	for _, line := range TimelineLines(tl) {
		text.WriteString(line)
		text.WriteByte('\n')
	}

	if len(tl.OutOfWindow) > 0 {
		fmt.Fprintf(&text, "\n⚠️ <b>Fora do horário (%s–%s)</b>\n",
			schedule.Clock(schedule.TimelineFirstHour*60), schedule.Clock((schedule.TimelineLastHour+1)*60))
		for _, a := range tl.OutOfWindow {
			fmt.Fprintf(&text, " • %s\n", slotEntry(a))
		}
	}

	prev := tl.Date.AddDate(0, 0, -1)
	next := tl.Date.AddDate(0, 0, 1)
	b := keyboard.NewBuilder().
		AddPagination(formatting.FormatDate(tl.Date), dayData(CbTimelineDay, prev), dayData(CbTimelineDay, next)).
		Row(keyboard.Button("🖼 Imagem do dia", dayData(CbTimelineImage, tl.Date)))

	return text.String(), footer(b, schedule.ViewTimeline).Build()
}

// TimelineLines по строке на слот: "<code>07:00</code> │ ..."
func TimelineLines(tl schedule.Timeline) []string {
	lines := make([]string, 0, len(tl.Slots))
	for _, slot := range tl.Slots {
		content := "·"
		if !slot.IsEmpty() {
			entries := make([]string, len(slot.Appointments))
			for i, a := range slot.Appointments {
				entries[i] = slotEntry(a)
			}
			content = strings.Join(entries, "; ")
		}
		lines = append(lines, fmt.Sprintf("<code>%s</code> │ %s", slot.SlotStart, content))
	}
	return lines
}

func slotEntry(a model.AppointmentRecord) string {
	return fmt.Sprintf("%s %s %s, %s",
		formatting.GetAppointmentStatusDisplay(a.Status).Emoji,
		a.StartTime,
		html.EscapeString(a.Type),
		html.EscapeString(a.StudentName),
	)
}
