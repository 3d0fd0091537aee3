package schedule

import (
	"sort"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

// GetAgendaForDate записи одного дня по времени начала.
// Никогда не nil: для пустого дня пустой срез.
func GetAgendaForDate(date time.Time, appointments []model.AppointmentRecord) []model.AppointmentRecord {
	key := DateKey(date)

	agenda := make([]model.AppointmentRecord, 0)
	for _, a := range appointments {
		if a.Date == key {
			agenda = append(agenda, a)
		}
	}

	sortByStart(agenda)
	return agenda
}

// sortByStart сортирует по минутам начала, при равенстве порядок входа.
// Записи с нераспознанным началом идут в конец, по исходной строке.
func sortByStart(records []model.AppointmentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return startBefore(&records[i], &records[j])
	})
}

func startBefore(a, b *model.AppointmentRecord) bool {
	as, errA := ParseClock(a.StartTime)
	bs, errB := ParseClock(b.StartTime)
	switch {
	case errA == nil && errB == nil:
		return as < bs
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a.StartTime < b.StartTime
	}
}
