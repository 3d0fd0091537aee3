package common

import (
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/state"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/Freeeeeet/studio_admin/internal/service"
	"github.com/stretchr/testify/assert"
)

func screenSnapshot() *service.Snapshot {
	a := timelineRecord(1, "09:00", "10:00", model.StatusConfirmed)
	a.InstructorID = 1
	b := timelineRecord(2, "11:00", "12:00", model.StatusScheduled)
	b.InstructorID = 2
	b.InstructorName = "Bruno"
	b.StudentName = "Carla"
	return &service.Snapshot{
		Month:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		Records: []model.AppointmentRecord{a, b},
	}
}

func TestBuildScreen_Modes(t *testing.T) {
	view := state.DefaultView(time.Date(2024, 6, 10, 8, 0, 0, 0, time.Local))
	snap := screenSnapshot()

	text, _ := BuildScreen(view, snap)
	assert.Contains(t, text, "📅 <b>Junho de 2024</b>")

	view.Mode = schedule.ViewTimeline
	text, _ = BuildScreen(view, snap)
	assert.Contains(t, text, "Linha do tempo · Segunda, 10/06/2024")

	view.Mode = schedule.ViewInstructor
	text, _ = BuildScreen(view, snap)
	assert.Contains(t, text, "<b>Sarah</b>")
	assert.Contains(t, text, "<b>Bruno</b>")

	view.Search = "carla"
	text, _ = BuildScreen(view, snap)
	assert.NotContains(t, text, "<b>Sarah</b>")
	assert.Contains(t, text, "<b>Bruno</b>")
}
