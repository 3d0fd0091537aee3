package schedule

import (
	"testing"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*model.AppointmentRecord)
		wantErr   error
		wantField string
	}{
		{name: "valid", mutate: func(*model.AppointmentRecord) {}},
		{
			name:    "unknown status is accepted",
			mutate:  func(a *model.AppointmentRecord) { a.Status = "Remarcado"; a.PaymentStatus = "Parcial" },
			wantErr: nil,
		},
		{
			name:      "malformed start",
			mutate:    func(a *model.AppointmentRecord) { a.StartTime = "8h" },
			wantErr:   ErrMalformedTime,
			wantField: "startTime",
		},
		{
			name:      "malformed end",
			mutate:    func(a *model.AppointmentRecord) { a.EndTime = "25:00" },
			wantErr:   ErrMalformedTime,
			wantField: "endTime",
		},
		{
			name:      "inverted range",
			mutate:    func(a *model.AppointmentRecord) { a.StartTime, a.EndTime = "10:00", "09:00" },
			wantErr:   ErrInvalidTimeRange,
			wantField: "endTime",
		},
		{
			name:      "zero length",
			mutate:    func(a *model.AppointmentRecord) { a.EndTime = a.StartTime },
			wantErr:   ErrInvalidTimeRange,
			wantField: "endTime",
		},
		{
			name:      "impossible date",
			mutate:    func(a *model.AppointmentRecord) { a.Date = "2023-02-29" },
			wantErr:   ErrMalformedDate,
			wantField: "date",
		},
		{
			name:      "missing date",
			mutate:    func(a *model.AppointmentRecord) { a.Date = "" },
			wantErr:   ErrMissingField,
			wantField: "date",
		},
		{
			name:      "negative price",
			mutate:    func(a *model.AppointmentRecord) { a.Price = model.Reais(-5) },
			wantErr:   ErrNegativePrice,
			wantField: "price",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := appt(10, "2024-06-10", "08:00", "09:00")
			tt.mutate(&rec)

			err := ValidateRecord(rec)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)
			var recErr *RecordError
			require.ErrorAs(t, err, &recErr)
			assert.Equal(t, int64(10), recErr.ID)
			assert.Equal(t, tt.wantField, recErr.Field)
		})
	}
}

func TestIngest_RejectsOnlyBadRecords(t *testing.T) {
	records := []model.AppointmentRecord{
		paid(appt(1, "2024-06-10", "08:00", "09:00"), 80),
		appt(2, "2024-06-10", "9:00", "10:00"),
		paid(appt(3, "2024-06-10", "10:00", "11:00"), 90),
		appt(4, "2024-06-10", "12:00", "11:00"),
	}

	res := Ingest(records)

	assert.Equal(t, []int64{1, 3}, ids(res.Valid))
	require.Len(t, res.Rejected, 2)
	assert.ErrorIs(t, res.Rejected[0], ErrMalformedTime)
	assert.Equal(t, int64(2), res.Rejected[0].ID)
	assert.ErrorIs(t, res.Rejected[1], ErrInvalidTimeRange)
	assert.Equal(t, int64(4), res.Rejected[1].ID)

	// отклонённые записи не портят агрегаты
	grid := BuildCalendarGrid(date(2024, 6, 1), res.Valid, date(2024, 6, 10))
	cell, _ := grid.Cell(date(2024, 6, 10))
	assert.Equal(t, 2, cell.ScheduleCount)
	assert.Equal(t, model.Reais(170), cell.Revenue)
}

func TestIngest_Empty(t *testing.T) {
	res := Ingest(nil)
	assert.NotNil(t, res.Valid)
	assert.Empty(t, res.Valid)
	assert.Empty(t, res.Rejected)
}
