package views

import (
	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/go-telegram/bot/models"
)

var modeLabels = map[schedule.ViewMode]string{
	schedule.ViewCalendar:   "📅 Calendário",
	schedule.ViewTimeline:   "🕒 Linha do tempo",
	schedule.ViewInstructor: "👥 Instrutores",
}

// ModeSwitchRow ряд переключения режимов, текущий помечен точкой
func ModeSwitchRow(current schedule.ViewMode) []models.InlineKeyboardButton {
	row := make([]models.InlineKeyboardButton, 0, len(schedule.ViewModes))
	for _, mode := range schedule.ViewModes {
		label := modeLabels[mode]
		if mode == current {
			row = append(row, keyboard.Noop("• "+label))
			continue
		}
		row = append(row, keyboard.Button(label, modeData(mode)))
	}
	return row
}

// footer общий низ экранов: режимы и обновление
func footer(b *keyboard.Builder, current schedule.ViewMode) *keyboard.Builder {
	return b.Row(ModeSwitchRow(current)...).Row(keyboard.RefreshButton(CbRefresh))
}
