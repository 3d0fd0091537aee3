package formatting

import (
	"fmt"
	"time"
)

// FormatDateTime форматирует дату и время
func FormatDateTime(t time.Time) string {
	return t.Format("02/01/2006 15:04")
}

// FormatDate форматирует только дату
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

// FormatDateWithWeekday форматирует дату с днём недели: Segunda, 10/06/2024
func FormatDateWithWeekday(t time.Time) string {
	return fmt.Sprintf("%s, %s", GetWeekdayName(int(t.Weekday())), FormatDate(t))
}

// FormatTimeRange форматирует диапазон времени HH:MM–HH:MM
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s–%s", start, end)
}

// FormatDuration форматирует длительность в минутах
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	mins := minutes % 60
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, mins)
}

// FormatHoursMinutes всегда показывает часы и минуты: 3h 0min
func FormatHoursMinutes(hours, minutes int) string {
	return fmt.Sprintf("%dh %dmin", hours, minutes)
}

// GetWeekdayName возвращает название дня недели на португальском
func GetWeekdayName(weekday int) string {
	names := []string{
		"Domingo",
		"Segunda",
		"Terça",
		"Quarta",
		"Quinta",
		"Sexta",
		"Sábado",
	}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "Desconhecido"
}

// GetWeekdayShort возвращает короткое название дня недели
func GetWeekdayShort(weekday int) string {
	names := []string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}

// GetWeekdayLetter однобуквенное название для шапки календаря
func GetWeekdayLetter(weekday int) string {
	names := []string{"D", "S", "T", "Q", "Q", "S", "S"}
	if weekday >= 0 && weekday < len(names) {
		return names[weekday]
	}
	return "?"
}

// GetMonthName возвращает название месяца на португальском
func GetMonthName(month time.Month) string {
	names := map[time.Month]string{
		time.January:   "Janeiro",
		time.February:  "Fevereiro",
		time.March:     "Março",
		time.April:     "Abril",
		time.May:       "Maio",
		time.June:      "Junho",
		time.July:      "Julho",
		time.August:    "Agosto",
		time.September: "Setembro",
		time.October:   "Outubro",
		time.November:  "Novembro",
		time.December:  "Dezembro",
	}
	return names[month]
}

// FormatMonthTitle Junho de 2024
func FormatMonthTitle(t time.Time) string {
	return fmt.Sprintf("%s de %d", GetMonthName(t.Month()), t.Year())
}
