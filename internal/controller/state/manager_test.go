package state

import (
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/stretchr/testify/assert"
)

func newTestManager(now time.Time) *Manager {
	m := NewManager()
	m.now = func() time.Time { return now }
	return m
}

func TestManager_DefaultView(t *testing.T) {
	now := time.Date(2024, 6, 18, 15, 30, 0, 0, time.Local)
	m := newTestManager(now)

	view := m.View(1)

	assert.Equal(t, schedule.ViewCalendar, view.Mode)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local), view.Month)
	assert.Equal(t, time.Date(2024, 6, 18, 0, 0, 0, 0, time.Local), view.Selected)
	assert.Equal(t, schedule.SortByName, view.Order)
	assert.Equal(t, StateNone, m.GetState(1))
}

func TestManager_UpdateViewAndClear(t *testing.T) {
	m := newTestManager(time.Date(2024, 6, 18, 0, 0, 0, 0, time.Local))

	m.UpdateView(1, func(v *ViewState) {
		v.Mode = schedule.ViewTimeline
		v.Search = "sarah"
	})
	m.SetState(1, StateEnteringSearch)

	assert.Equal(t, schedule.ViewTimeline, m.View(1).Mode)
	assert.Equal(t, "sarah", m.View(1).Search)
	assert.Equal(t, StateEnteringSearch, m.GetState(1))
	assert.Equal(t, schedule.ViewCalendar, m.View(2).Mode)

	m.ClearState(1)

	assert.Equal(t, StateNone, m.GetState(1))
	assert.Empty(t, m.View(1).Search)
}

func TestViewState_SelectMonthKeepsSelectedDayInsideMonth(t *testing.T) {
	v := DefaultView(time.Date(2024, 6, 18, 0, 0, 0, 0, time.Local))

	v.SelectMonth(time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, 18, v.Selected.Day())

	v.SelectMonth(time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local))
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local), v.Selected)
	assert.Equal(t, time.July, v.Month.Month())
}

func TestViewState_SelectDateSwitchesMonth(t *testing.T) {
	v := DefaultView(time.Date(2024, 6, 18, 0, 0, 0, 0, time.Local))

	v.SelectDate(time.Date(2024, 7, 2, 13, 0, 0, 0, time.Local))

	assert.Equal(t, time.Date(2024, 7, 2, 0, 0, 0, 0, time.Local), v.Selected)
	assert.Equal(t, time.Date(2024, 7, 1, 0, 0, 0, 0, time.Local), v.Month)
}
