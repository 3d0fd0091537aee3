package schedule

import (
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

func appt(id int64, date, start, end string) model.AppointmentRecord {
	return model.AppointmentRecord{
		ID:             id,
		StudentID:      100 + id,
		StudentName:    "Aluno",
		InstructorID:   1,
		InstructorName: "Sarah",
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Type:           "Pilates",
		Status:         model.StatusScheduled,
		Room:           "Sala 1",
		Price:          model.Reais(80),
		PaymentStatus:  model.PaymentPending,
	}
}

func paid(a model.AppointmentRecord, reais float64) model.AppointmentRecord {
	a.Price = model.Reais(reais)
	a.PaymentStatus = model.PaymentPaid
	return a
}

func pending(a model.AppointmentRecord, reais float64) model.AppointmentRecord {
	a.Price = model.Reais(reais)
	a.PaymentStatus = model.PaymentPending
	return a
}

func byInstructor(a model.AppointmentRecord, id int64, name string) model.AppointmentRecord {
	a.InstructorID = id
	a.InstructorName = name
	return a
}

func withStatus(a model.AppointmentRecord, s model.AppointmentStatus) model.AppointmentRecord {
	a.Status = s
	return a
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// freezeNow подменяет текущее время на время теста
func freezeNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func ids(records []model.AppointmentRecord) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}
