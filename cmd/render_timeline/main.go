package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/controller/callbacks/common"
	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
)

// Рисует линию времени дня на тестовых данных, без бота и API
func main() {
	output := flag.String("o", "timeline.png", "output file")
	flag.Parse()

	date := schedule.StartOfDay(time.Now())
	key := schedule.DateKey(date)

	appointments := []model.AppointmentRecord{
		sample(1, key, "07:00", "08:00", "Ana Souza", "Sarah", "Pilates", model.StatusConfirmed),
		sample(2, key, "07:30", "08:15", "Bruno Lima", "Marcos", "Funcional", model.StatusScheduled),
		sample(3, key, "09:00", "10:00", "Carla Dias", "Sarah", "Pilates", model.StatusCompleted),
		sample(4, key, "12:15", "13:00", "Diego Alves", "Júlia", "Yoga", model.StatusCanceled),
		sample(5, key, "18:00", "19:30", "Eva Rocha", "Marcos", "Funcional", model.StatusConfirmed),
		// Вне окна 07:00-21:00
		sample(6, key, "21:30", "22:00", "Fábio Reis", "Júlia", "Yoga", model.StatusScheduled),
	}

	ingested := schedule.Ingest(appointments)
	tl := schedule.BuildTimeline(date, ingested.Valid)

	imageData, err := common.RenderDayTimeline(date, tl)
	if err != nil {
		fmt.Printf("Erro ao gerar a imagem: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, imageData, 0644); err != nil {
		fmt.Printf("Erro ao salvar o arquivo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Imagem salva em %s\n", *output)
	fmt.Printf("📅 Dia: %s\n", date.Format("02/01/2006"))
	fmt.Printf("📊 Agendamentos: %d (fora do horário: %d)\n", tl.Total(), len(tl.OutOfWindow))
}

func sample(id int64, date, start, end, student, instructor, kind string, status model.AppointmentStatus) model.AppointmentRecord {
	return model.AppointmentRecord{
		ID:             id,
		StudentID:      100 + id,
		StudentName:    student,
		InstructorID:   int64(len(instructor)),
		InstructorName: instructor,
		Date:           date,
		StartTime:      start,
		EndTime:        end,
		Type:           kind,
		Status:         status,
		Price:          model.Reais(90),
		PaymentStatus:  model.PaymentPending,
	}
}
