package formatting

import "github.com/Freeeeeet/studio_admin/internal/model"

// StatusDisplay представляет отображение статуса
type StatusDisplay struct {
	Emoji string
	Text  string
}

func (d StatusDisplay) String() string {
	return d.Emoji + " " + d.Text
}

var unknownStatus = StatusDisplay{"❓", "Desconhecido"}

// GetAppointmentStatusDisplay возвращает emoji и текст для статуса записи
func GetAppointmentStatusDisplay(status model.AppointmentStatus) StatusDisplay {
	displays := map[model.AppointmentStatus]StatusDisplay{
		model.StatusScheduled: {"🗓", "Agendado"},
		model.StatusConfirmed: {"✅", "Confirmado"},
		model.StatusCompleted: {"✔️", "Concluído"},
		model.StatusCanceled:  {"❌", "Cancelado"},
		model.StatusNoShow:    {"🚫", "Falta"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return unknownStatus
}

// GetPaymentStatusDisplay возвращает emoji и текст для статуса оплаты
func GetPaymentStatusDisplay(status model.PaymentStatus) StatusDisplay {
	displays := map[model.PaymentStatus]StatusDisplay{
		model.PaymentPending: {"⏳", "Pendente"},
		model.PaymentPaid:    {"💵", "Pago"},
		model.PaymentExempt:  {"🎁", "Isento"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return unknownStatus
}
