package formatting

import (
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
		short string
	}{
		{0, "R$ 0,00", "R$ 0"},
		{8000, "R$ 80,00", "R$ 80"},
		{8050, "R$ 80,50", "R$ 80,50"},
		{123450, "R$ 1.234,50", "R$ 1.234,50"},
		{100000000, "R$ 1.000.000,00", "R$ 1.000.000"},
		{-1505, "-R$ 15,05", "-R$ 15,05"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPrice(model.Money(tt.cents)))
			assert.Equal(t, tt.short, FormatPriceShort(model.Money(tt.cents)))
		})
	}
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "1h", FormatDuration(60))
	assert.Equal(t, "3h 15min", FormatDuration(195))
	assert.Equal(t, "3h 0min", FormatHoursMinutes(3, 0))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "Segunda, 10/06/2024", FormatDateWithWeekday(time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "Junho de 2024", FormatMonthTitle(time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, "Sáb", GetWeekdayShort(int(time.Saturday)))
	assert.Equal(t, "?", GetWeekdayShort(9))
}

func TestStatusDisplayFallback(t *testing.T) {
	assert.Equal(t, "✅ Confirmado", GetAppointmentStatusDisplay(model.StatusConfirmed).String())
	assert.Equal(t, "❓ Desconhecido", GetAppointmentStatusDisplay("Remarcado").String())
	assert.Equal(t, "💵 Pago", GetPaymentStatusDisplay(model.PaymentPaid).String())
	assert.Equal(t, "❓ Desconhecido", GetPaymentStatusDisplay("Estornado").String())
}

func TestFormatAppointmentInfoEscapesHTML(t *testing.T) {
	a := model.AppointmentRecord{
		StartTime:      "09:00",
		EndTime:        "10:00",
		StudentName:    "Ana <Maria>",
		InstructorName: "Sarah",
		Type:           "Pilates",
		Status:         model.StatusScheduled,
		Price:          model.Reais(80),
		PaymentStatus:  model.PaymentPending,
	}

	got := FormatAppointmentInfo(a, 1)

	assert.Contains(t, got, "Ana &lt;Maria&gt;")
	assert.Contains(t, got, "09:00–10:00")
	assert.Contains(t, got, "R$ 80,00 · ⏳ Pendente")
	assert.NotContains(t, got, "📍")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "Pilates", Truncate("Pilates", 10))
	assert.Equal(t, "Fisiot…", Truncate("Fisioterapia", 7))
	assert.Equal(t, "F", Truncate("Fisioterapia", 1))
	assert.Equal(t, "", Truncate("Fisioterapia", 0))
	assert.Equal(t, "", Truncate("Fisioterapia", -1))
}
