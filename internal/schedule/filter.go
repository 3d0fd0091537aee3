package schedule

import (
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

// FilterBySearch оставляет записи, где ученик, инструктор, тип или зал
// содержат term без учёта регистра. Пустой term возвращает вход как есть.
func FilterBySearch(appointments []model.AppointmentRecord, term string) []model.AppointmentRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return appointments
	}

	filtered := make([]model.AppointmentRecord, 0)
	for _, a := range appointments {
		if matches(a, term) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

func matches(a model.AppointmentRecord, term string) bool {
	for _, field := range []string{a.StudentName, a.InstructorName, a.Type, a.Room} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
