package schedule

import (
	"testing"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFilterBySearch(t *testing.T) {
	a1 := byInstructor(appt(1, "2024-06-10", "08:00", "09:00"), 1, "Sarah Lima")
	a2 := byInstructor(appt(2, "2024-06-10", "09:00", "10:00"), 2, "Bruno")
	a2.StudentName = "Mariana"
	a3 := byInstructor(appt(3, "2024-06-10", "10:00", "11:00"), 2, "Bruno")
	a3.Type = "Funcional"
	a3.Room = "Estúdio B"
	records := []model.AppointmentRecord{a1, a2, a3}

	assert.Equal(t, []int64{1}, ids(FilterBySearch(records, "sarah")))
	assert.Equal(t, []int64{2}, ids(FilterBySearch(records, "MARI")))
	assert.Equal(t, []int64{3}, ids(FilterBySearch(records, "funcional")))
	assert.Equal(t, []int64{3}, ids(FilterBySearch(records, "estúdio")))
	assert.Equal(t, []int64{1, 2, 3}, ids(FilterBySearch(records, "  ")))
	assert.Empty(t, FilterBySearch(records, "yoga"))
}

func TestParseViewMode(t *testing.T) {
	m, ok := ParseViewMode("timeline")
	assert.True(t, ok)
	assert.Equal(t, ViewTimeline, m)

	_, ok = ParseViewMode("week")
	assert.False(t, ok)
}
