package keyboard

import "github.com/go-telegram/bot/models"

// NoopData callback кнопок без действия
const NoopData = "noop"

// BackButton создаёт кнопку "Voltar"
func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Voltar", callbackData)
}

// CancelButton создаёт кнопку "Cancelar"
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("✖️ Cancelar", callbackData)
}

// ConfirmButton создаёт кнопку "Confirmar"
func ConfirmButton(callbackData string) models.InlineKeyboardButton {
	return Button("✅ Confirmar", callbackData)
}

// DeleteButton создаёт кнопку "Excluir"
func DeleteButton(callbackData string) models.InlineKeyboardButton {
	return Button("🗑 Excluir", callbackData)
}

// RefreshButton создаёт кнопку "Atualizar"
func RefreshButton(callbackData string) models.InlineKeyboardButton {
	return Button("🔄 Atualizar", callbackData)
}

// ConfirmCancelRow ряд Confirmar/Cancelar
func ConfirmCancelRow(confirmCallback, cancelCallback string) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		ConfirmButton(confirmCallback),
		CancelButton(cancelCallback),
	}
}

// AddBackButton добавляет кнопку "Voltar" к builder
func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}
