package schedule

import (
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

const (
	// DaysPerWeek ширина сетки месяца
	DaysPerWeek = 7
	// GridWeeks высота сетки, всегда шесть недель
	GridWeeks = 6
	// GridCells ячеек в любой сетке
	GridCells = DaysPerWeek * GridWeeks
)

// CalendarCell день сетки с агрегатами занятости
type CalendarCell struct {
	Date           time.Time
	Key            string
	Day            int
	IsCurrentMonth bool
	IsToday        bool
	IsSelected     bool
	ScheduleCount  int
	// Revenue сумма оплаченных записей дня
	Revenue model.Money
}

// CalendarGrid сетка месяца 6x7, неделя с воскресенья
type CalendarGrid struct {
	Month time.Time // первое число месяца
	Cells [GridCells]CalendarCell
}

// MonthSummary итоги по ячейкам самого месяца
type MonthSummary struct {
	ScheduleCount int
	Revenue       model.Money
	BusyDays      int
}

type dayAggregate struct {
	count   int
	revenue model.Money
}

// BuildCalendarGrid раскладывает 42 дня подряд вокруг referenceMonth.
// Ячейка 0 это воскресенье не позже первого числа, остаток заполняют
// хвост прошлого и начало следующего месяца. Входные данные не меняются.
func BuildCalendarGrid(referenceMonth time.Time, appointments []model.AppointmentRecord, selectedDate time.Time) CalendarGrid {
	first := StartOfMonth(referenceMonth)
	gridStart := addDays(first, -int(first.Weekday()))

	perDay := aggregateByDay(appointments)
	today := now()

	grid := CalendarGrid{Month: first}
	for i := 0; i < GridCells; i++ {
		date := addDays(gridStart, i)
		key := DateKey(date)
		agg := perDay[key]

		grid.Cells[i] = CalendarCell{
			Date:           date,
			Key:            key,
			Day:            date.Day(),
			IsCurrentMonth: date.Month() == first.Month() && date.Year() == first.Year(),
			IsToday:        IsSameCalendarDay(date, today),
			IsSelected:     IsSameCalendarDay(date, selectedDate),
			ScheduleCount:  agg.count,
			Revenue:        agg.revenue,
		}
	}
	return grid
}

func aggregateByDay(appointments []model.AppointmentRecord) map[string]dayAggregate {
	perDay := make(map[string]dayAggregate)
	for i := range appointments {
		a := &appointments[i]
		agg := perDay[a.Date]
		agg.count++
		if a.IsPaid() {
			agg.revenue += a.Price
		}
		perDay[a.Date] = agg
	}
	return perDay
}

// Weeks сетка по неделям
func (g *CalendarGrid) Weeks() [][]CalendarCell {
	weeks := make([][]CalendarCell, 0, GridWeeks)
	for w := 0; w < GridWeeks; w++ {
		weeks = append(weeks, g.Cells[w*DaysPerWeek:(w+1)*DaysPerWeek])
	}
	return weeks
}

// Cell ячейка даты, если она есть в сетке
func (g *CalendarGrid) Cell(date time.Time) (CalendarCell, bool) {
	key := DateKey(date)
	for _, c := range g.Cells {
		if c.Key == key {
			return c, true
		}
	}
	return CalendarCell{}, false
}

// Summary итоги по дням месяца
func (g *CalendarGrid) Summary() MonthSummary {
	var s MonthSummary
	for _, c := range g.Cells {
		if !c.IsCurrentMonth {
			continue
		}
		s.ScheduleCount += c.ScheduleCount
		s.Revenue += c.Revenue
		if c.ScheduleCount > 0 {
			s.BusyDays++
		}
	}
	return s
}
