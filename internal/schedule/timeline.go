package schedule

import (
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

// Окно работы студии для таймлайна: слоты по 30 минут с 07:00 до 20:30 включительно
const (
	TimelineFirstHour = 7
	TimelineLastHour  = 20
	SlotWidthMinutes  = 30

	SlotCount = (TimelineLastHour - TimelineFirstHour + 1) * 60 / SlotWidthMinutes
)

const (
	windowStart = Clock(TimelineFirstHour * 60)
	windowEnd   = Clock((TimelineLastHour + 1) * 60) // не включая
)

// SlotBucket занятия, начинающиеся в пределах одного 30-минутного слота
type SlotBucket struct {
	SlotStart    Clock
	Appointments []model.AppointmentRecord
}

// SlotEnd конец слота (не включая)
func (b SlotBucket) SlotEnd() Clock {
	return b.SlotStart + SlotWidthMinutes
}

// IsEmpty в слоте нет занятий
func (b SlotBucket) IsEmpty() bool {
	return len(b.Appointments) == 0
}

// Timeline раскладка одного дня по слотам
type Timeline struct {
	Date  time.Time
	Slots [SlotCount]SlotBucket
	// OutOfWindow занятия этого дня, начинающиеся вне окна; в слоты не попадают
	OutOfWindow []model.AppointmentRecord
}

// SlotStarts возвращает начала всех слотов окна
func SlotStarts() []Clock {
	starts := make([]Clock, SlotCount)
	for i := range starts {
		starts[i] = windowStart + Clock(i*SlotWidthMinutes)
	}
	return starts
}

// InWindow проверяет, попадает ли время начала в окно таймлайна
func InWindow(c Clock) bool {
	return c >= windowStart && c < windowEnd
}

// BuildTimeline раскладывает занятия дня по слотам.
// Занятие попадает ровно в один слот, тот, где лежит его начало, независимо от длительности.
// Внутри слота порядок по времени начала, при равенстве порядок входа.
func BuildTimeline(date time.Time, appointments []model.AppointmentRecord) Timeline {
	tl := Timeline{
		Date:        StartOfDay(date),
		OutOfWindow: make([]model.AppointmentRecord, 0),
	}
	for i, start := range SlotStarts() {
		tl.Slots[i] = SlotBucket{
			SlotStart:    start,
			Appointments: make([]model.AppointmentRecord, 0),
		}
	}

	for _, a := range GetAgendaForDate(date, appointments) {
		start, err := ParseClock(a.StartTime)
		if err != nil || !InWindow(start) {
			tl.OutOfWindow = append(tl.OutOfWindow, a)
			continue
		}
		idx := int(start-windowStart) / SlotWidthMinutes
		tl.Slots[idx].Appointments = append(tl.Slots[idx].Appointments, a)
	}
	return tl
}

// Occupied количество непустых слотов
func (t *Timeline) Occupied() int {
	n := 0
	for _, s := range t.Slots {
		if !s.IsEmpty() {
			n++
		}
	}
	return n
}

// Total количество занятий в окне
func (t *Timeline) Total() int {
	n := 0
	for _, s := range t.Slots {
		n += len(s.Appointments)
	}
	return n
}
