package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCalendarGrid_AlwaysFortyTwoContiguousDays(t *testing.T) {
	months := []struct {
		name      string
		ref       time.Time
		wantFirst time.Time
		inMonth   int
	}{
		{name: "non-leap february", ref: date(2023, 2, 10), wantFirst: date(2023, 1, 29), inMonth: 28},
		{name: "leap february", ref: date(2024, 2, 29), wantFirst: date(2024, 1, 28), inMonth: 29},
		{name: "month starting on sunday", ref: date(2026, 2, 1), wantFirst: date(2026, 2, 1), inMonth: 28},
		{name: "june starting on saturday", ref: date(2024, 6, 30), wantFirst: date(2024, 5, 26), inMonth: 30},
		{name: "december across year boundary", ref: date(2024, 12, 15), wantFirst: date(2024, 12, 1), inMonth: 31},
		{name: "january after year boundary", ref: date(2025, 1, 1), wantFirst: date(2024, 12, 29), inMonth: 31},
	}

	for _, tt := range months {
		t.Run(tt.name, func(t *testing.T) {
			grid := BuildCalendarGrid(tt.ref, nil, time.Time{})

			require.Len(t, grid.Cells, GridCells)
			assert.Equal(t, time.Sunday, grid.Cells[0].Date.Weekday())
			assert.Equal(t, tt.wantFirst, grid.Cells[0].Date)

			inMonth := 0
			for i, cell := range grid.Cells {
				if i > 0 {
					want := grid.Cells[i-1].Date.AddDate(0, 0, 1)
					assert.Equal(t, DateKey(want), cell.Key, "cell %d", i)
				}
				assert.Equal(t, cell.Date.Day(), cell.Day)
				if cell.IsCurrentMonth {
					inMonth++
				}
			}
			assert.Equal(t, tt.inMonth, inMonth)
		})
	}
}

func TestBuildCalendarGrid_ContiguousAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	ref := time.Date(2024, 3, 15, 12, 0, 0, 0, loc)

	grid := BuildCalendarGrid(ref, nil, time.Time{})

	seen := make(map[string]bool)
	for i, cell := range grid.Cells {
		assert.False(t, seen[cell.Key], "day repeated at cell %d", i)
		seen[cell.Key] = true
		assert.Equal(t, 0, cell.Date.Hour(), "cell %d not at midnight", i)
	}
	assert.Equal(t, "2024-02-25", grid.Cells[0].Key)
	assert.Equal(t, "2024-04-06", grid.Cells[GridCells-1].Key)
}

func TestBuildCalendarGrid_DayAggregates(t *testing.T) {
	appointments := []model.AppointmentRecord{
		paid(appt(1, "2024-06-10", "08:00", "09:00"), 80),
		pending(appt(2, "2024-06-10", "09:00", "10:00"), 100),
		paid(appt(3, "2024-06-10", "10:00", "11:00"), 90),
		paid(appt(4, "2024-06-11", "10:00", "11:00"), 55),
		paid(appt(5, "2024-07-01", "10:00", "11:00"), 40),
	}

	grid := BuildCalendarGrid(date(2024, 6, 1), appointments, date(2024, 6, 10))

	cell, ok := grid.Cell(date(2024, 6, 10))
	require.True(t, ok)
	assert.Equal(t, 3, cell.ScheduleCount)
	assert.Equal(t, model.Reais(170), cell.Revenue)
	assert.True(t, cell.IsSelected)

	next, ok := grid.Cell(date(2024, 6, 11))
	require.True(t, ok)
	assert.Equal(t, 1, next.ScheduleCount)
	assert.False(t, next.IsSelected)

	// 1 июля попадает в хвост сетки, но не в итоги месяца
	july, ok := grid.Cell(date(2024, 7, 1))
	require.True(t, ok)
	assert.False(t, july.IsCurrentMonth)
	assert.Equal(t, 1, july.ScheduleCount)

	summary := grid.Summary()
	assert.Equal(t, 4, summary.ScheduleCount)
	assert.Equal(t, model.Reais(225), summary.Revenue)
	assert.Equal(t, 2, summary.BusyDays)
}

func TestBuildCalendarGrid_TodayFlag(t *testing.T) {
	freezeNow(t, time.Date(2024, 6, 12, 18, 45, 0, 0, time.Local))

	grid := BuildCalendarGrid(date(2024, 6, 1), nil, time.Time{})

	todays := 0
	for _, c := range grid.Cells {
		if c.IsToday {
			todays++
			assert.Equal(t, "2024-06-12", c.Key)
		}
		assert.False(t, c.IsSelected)
	}
	assert.Equal(t, 1, todays)
}

func TestBuildCalendarGrid_EmptyAndIdempotent(t *testing.T) {
	freezeNow(t, time.Date(2024, 6, 12, 9, 0, 0, 0, time.Local))
	appointments := []model.AppointmentRecord{paid(appt(1, "2024-06-03", "08:00", "09:00"), 80)}
	snapshot := append([]model.AppointmentRecord(nil), appointments...)

	first := BuildCalendarGrid(date(2024, 6, 5), appointments, date(2024, 6, 3))
	second := BuildCalendarGrid(date(2024, 6, 5), appointments, date(2024, 6, 3))
	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, appointments)

	empty := BuildCalendarGrid(date(2024, 6, 5), []model.AppointmentRecord{}, time.Time{})
	for _, c := range empty.Cells {
		assert.Zero(t, c.ScheduleCount)
		assert.Zero(t, c.Revenue)
	}
	assert.Equal(t, MonthSummary{}, empty.Summary())
}

func TestCalendarGrid_Weeks(t *testing.T) {
	grid := BuildCalendarGrid(date(2024, 6, 1), nil, time.Time{})

	weeks := grid.Weeks()
	require.Len(t, weeks, GridWeeks)
	for _, w := range weeks {
		require.Len(t, w, DaysPerWeek)
		assert.Equal(t, time.Sunday, w[0].Date.Weekday())
		assert.Equal(t, time.Saturday, w[6].Date.Weekday())
	}
}
