package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

// FormatAppointmentShort строка списка: время, студент, тип
func FormatAppointmentShort(a model.AppointmentRecord) string {
	return fmt.Sprintf("%s %s %s · %s",
		GetAppointmentStatusDisplay(a.Status).Emoji,
		FormatTimeRange(a.StartTime, a.EndTime),
		html.EscapeString(a.StudentName),
		html.EscapeString(a.Type),
	)
}

// FormatAppointmentInfo форматирует запись для списка дня
func FormatAppointmentInfo(a model.AppointmentRecord, index int) string {
	status := GetAppointmentStatusDisplay(a.Status)
	payment := GetPaymentStatusDisplay(a.PaymentStatus)

	var b strings.Builder
	fmt.Fprintf(&b, "%d. %s <b>%s</b> %s\n",
		index,
		status.Emoji,
		FormatTimeRange(a.StartTime, a.EndTime),
		html.EscapeString(a.StudentName),
	)
	fmt.Fprintf(&b, "   🏋️ %s · 👤 %s\n", html.EscapeString(a.Type), html.EscapeString(a.InstructorName))
	if a.Room != "" {
		fmt.Fprintf(&b, "   📍 %s\n", html.EscapeString(a.Room))
	}
	fmt.Fprintf(&b, "   💰 %s · %s", FormatPrice(a.Price), payment.String())
	return b.String()
}

// FormatEquipment список оборудования через запятую
func FormatEquipment(items []string) string {
	if len(items) == 0 {
		return "—"
	}
	escaped := make([]string, len(items))
	for i, item := range items {
		escaped[i] = html.EscapeString(item)
	}
	return strings.Join(escaped, ", ")
}

// Truncate обрезает строку до max рун
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
