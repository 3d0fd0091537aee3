package schedule

import (
	"sort"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/model"
)

// InstructorKey ключ группы: id инструктора, а без id его имя.
// Тёзки с разными id не сливаются.
type InstructorKey struct {
	ID   int64
	Name string
}

func instructorKey(a model.AppointmentRecord) InstructorKey {
	if a.InstructorID > 0 {
		return InstructorKey{ID: a.InstructorID}
	}
	return InstructorKey{Name: strings.ToLower(strings.TrimSpace(a.InstructorName))}
}

// InstructorSummary агрегаты одного инструктора
type InstructorSummary struct {
	InstructorID   int64
	InstructorName string
	// по (date, startTime) по возрастанию
	Appointments      []model.AppointmentRecord
	TotalAppointments int
	TotalRevenue      model.Money
	ConfirmedCount    int
	TotalMinutes      int
}

func (s *InstructorSummary) Hours() int            { return s.TotalMinutes / 60 }
func (s *InstructorSummary) RemainderMinutes() int { return s.TotalMinutes % 60 }

// ConfirmationRate ConfirmedCount/TotalAppointments, 0 для пустой группы
func (s *InstructorSummary) ConfirmationRate() float64 {
	if s.TotalAppointments == 0 {
		return 0
	}
	return float64(s.ConfirmedCount) / float64(s.TotalAppointments)
}

// GroupByInstructor одна сводка на инструктора.
// Порядок map не определён, для показа есть SortSummaries.
func GroupByInstructor(appointments []model.AppointmentRecord) map[InstructorKey]*InstructorSummary {
	groups := make(map[InstructorKey]*InstructorSummary)

	for _, a := range appointments {
		key := instructorKey(a)
		g, ok := groups[key]
		if !ok {
			g = &InstructorSummary{
				InstructorID:   a.InstructorID,
				InstructorName: a.InstructorName,
			}
			groups[key] = g
		}

		g.Appointments = append(g.Appointments, a)
		g.TotalAppointments++
		if a.IsPaid() {
			g.TotalRevenue += a.Price
		}
		if a.IsConfirmed() {
			g.ConfirmedCount++
		}
		// Обратные интервалы не проходят приём, но в сумму их всё равно не берём
		if minutes, err := CalculateDurationMinutes(a.StartTime, a.EndTime); err == nil && minutes > 0 {
			g.TotalMinutes += minutes
		}
	}

	for _, g := range groups {
		sortChronologically(g.Appointments)
	}
	return groups
}

func sortChronologically(records []model.AppointmentRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return startBefore(&records[i], &records[j])
	})
}

// SummaryOrder порядок групп на экране
type SummaryOrder string

const (
	SortByName    SummaryOrder = "name"
	SortByRevenue SummaryOrder = "revenue"
)

// SortSummaries группы срезом в нужном порядке
func SortSummaries(groups map[InstructorKey]*InstructorSummary, order SummaryOrder) []*InstructorSummary {
	list := make([]*InstructorSummary, 0, len(groups))
	for _, g := range groups {
		list = append(list, g)
	}

	byName := func(a, b *InstructorSummary) bool {
		an, bn := strings.ToLower(a.InstructorName), strings.ToLower(b.InstructorName)
		if an != bn {
			return an < bn
		}
		return a.InstructorID < b.InstructorID
	}

	sort.Slice(list, func(i, j int) bool {
		if order == SortByRevenue && list[i].TotalRevenue != list[j].TotalRevenue {
			return list[i].TotalRevenue > list[j].TotalRevenue
		}
		return byName(list[i], list[j])
	})
	return list
}
