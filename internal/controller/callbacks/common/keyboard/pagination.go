package keyboard

import (
	"github.com/go-telegram/bot/models"
)

// PeriodPagination ряд ◀️ подпись ▶️ для перехода между периодами
// (месяцами или днями). prev и next уже содержат полный callback.
func PeriodPagination(label, prevData, nextData string) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		Button("◀️", prevData),
		Noop(label),
		Button("▶️", nextData),
	}
}

// AddPagination добавляет пагинацию по периодам к builder
func (b *Builder) AddPagination(label, prevData, nextData string) *Builder {
	return b.Row(PeriodPagination(label, prevData, nextData)...)
}
