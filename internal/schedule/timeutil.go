package schedule

import (
	"fmt"
	"time"
)

// DateKeyLayout формат ключа дня YYYY-MM-DD
const DateKeyLayout = "2006-01-02"

// подменяется в тестах
var now = time.Now

// Clock время суток в минутах от полуночи
type Clock int

// ParseClock строгий разбор "HH:MM" в 24-часовом формате
func ParseClock(s string) (Clock, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hour, okH := twoDigits(s[0:2])
	minute, okM := twoDigits(s[3:5])
	if !okH || !okM || hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return Clock(hour*60 + minute), nil
}

// MustParseClock для констант и тестов
func MustParseClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func twoDigits(s string) (int, bool) {
	if len(s) != 2 {
		return 0, false
	}
	d0, d1 := s[0], s[1]
	if d0 < '0' || d0 > '9' || d1 < '0' || d1 > '9' {
		return 0, false
	}
	return int(d0-'0')*10 + int(d1-'0'), true
}

func (c Clock) Hour() int   { return int(c) / 60 }
func (c Clock) Minute() int { return int(c) % 60 }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On момент этого времени в календарный день date
func (c Clock) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), c.Hour(), c.Minute(), 0, 0, date.Location())
}

// CalculateDurationMinutes end-start в минутах.
// Для обратной пары результат отрицательный, такие записи отсекаются при приёме.
func CalculateDurationMinutes(startTime, endTime string) (int, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, fmt.Errorf("parse start time: %w", err)
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, fmt.Errorf("parse end time: %w", err)
	}
	return int(end - start), nil
}

// IsSameCalendarDay сравнивает даты по местным часам, без учёта времени
func IsSameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday t приходится на сегодняшнюю местную дату
func IsToday(t time.Time) bool {
	return IsSameCalendarDay(t, now())
}

// DateKey дата t по местным часам в виде YYYY-MM-DD.
// В UTC не переводим, иначе поздний вечер уехал бы на следующий день.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey YYYY-MM-DD в местную полночь этого дня
func ParseDateKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, s)
	}
	return t, nil
}

// StartOfDay полночь дня t в его же зоне
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfMonth полночь первого числа месяца t
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// MonthRange первый и последний день месяца t
func MonthRange(t time.Time) (time.Time, time.Time) {
	first := StartOfMonth(t)
	last := time.Date(first.Year(), first.Month()+1, 0, 0, 0, 0, 0, first.Location())
	return first, last
}

// addDays шагает календарными днями, а не по 24h: переход на летнее время
// не пропускает и не повторяет дату.
func addDays(t time.Time, days int) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day()+days, 0, 0, 0, 0, t.Location())
}
