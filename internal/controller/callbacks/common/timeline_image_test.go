package common

import (
	"bytes"
	"fmt"
	"image/png"
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timelineRecord(id int64, start, end string, status model.AppointmentStatus) model.AppointmentRecord {
	return model.AppointmentRecord{
		ID:             id,
		StudentName:    "Ana",
		InstructorName: "Sarah",
		Date:           "2024-06-10",
		StartTime:      start,
		EndTime:        end,
		Type:           "Pilates",
		Status:         status,
	}
}

func TestLayoutBlocks_OverlapsGetSeparateLanes(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	tl := schedule.BuildTimeline(date, []model.AppointmentRecord{
		timelineRecord(1, "09:00", "10:00", model.StatusConfirmed),
		timelineRecord(2, "09:30", "10:30", model.StatusScheduled),
		timelineRecord(3, "10:00", "11:00", model.StatusScheduled),
	})

	blocks, lanes := layoutBlocks(tl)

	require.Len(t, blocks, 3)
	assert.Equal(t, 2, lanes)
	assert.Equal(t, 0, blocks[0].lane)
	assert.Equal(t, 1, blocks[1].lane)
	assert.Equal(t, 0, blocks[2].lane)
}

func TestRenderDayTimeline(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	prev := renderNow
	renderNow = func() time.Time { return date.Add(9*time.Hour + 40*time.Minute) }
	t.Cleanup(func() { renderNow = prev })

	tl := schedule.BuildTimeline(date, []model.AppointmentRecord{
		timelineRecord(1, "09:00", "10:00", model.StatusConfirmed),
		timelineRecord(2, "20:30", "22:00", "Remarcado"),
		timelineRecord(3, "06:00", "07:00", model.StatusCanceled),
	})

	data, err := RenderDayTimeline(date, tl)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, cfg.Width)
	assert.Equal(t, imageHeight, cfg.Height)
}

func TestRenderDayTimeline_Empty(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)

	data, err := RenderDayTimeline(date, schedule.BuildTimeline(date, nil))

	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestRenderDayTimeline_ManyOverlaps(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.Local)
	records := make([]model.AppointmentRecord, 0, 300)
	for i := 1; i <= 300; i++ {
		rec := timelineRecord(int64(i), "07:00", "08:00", model.StatusScheduled)
		rec.StudentName = fmt.Sprintf("Aluno %d", i)
		records = append(records, rec)
	}
	tl := schedule.BuildTimeline(date, records)

	_, lanes := layoutBlocks(tl)
	assert.Equal(t, 300, lanes)

	data, err := RenderDayTimeline(date, tl)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, imageWidth, cfg.Width)
}
