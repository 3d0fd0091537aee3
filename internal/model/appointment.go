package model

// AppointmentStatus статус занятия, как его присылает API
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Agendado"   // Запланировано
	StatusConfirmed AppointmentStatus = "Confirmado" // Подтверждено
	StatusCompleted AppointmentStatus = "Concluído"  // Проведено
	StatusCanceled  AppointmentStatus = "Cancelado"  // Отменено
	StatusNoShow    AppointmentStatus = "Falta"      // Студент не пришёл
)

// AppointmentStatuses все известные статусы в порядке жизненного цикла
var AppointmentStatuses = []AppointmentStatus{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCanceled,
	StatusNoShow,
}

// IsKnown проверяет, что статус входит в перечисление.
// Неизвестные значения не считаются ошибкой, их просто показываем как "неизвестно".
func (s AppointmentStatus) IsKnown() bool {
	for _, known := range AppointmentStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pendente" // Ожидает оплаты
	PaymentPaid    PaymentStatus = "Pago"     // Оплачено
	PaymentExempt  PaymentStatus = "Isento"   // Освобождён от оплаты
)

// IsKnown проверяет, что статус оплаты входит в перечисление
func (p PaymentStatus) IsKnown() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentExempt:
		return true
	}
	return false
}

// AppointmentRecord одно занятие студента с инструктором.
// Имена денормализованы для отображения, ссылочная целостность на стороне API.
type AppointmentRecord struct {
	ID             int64             `json:"id"`
	StudentID      int64             `json:"studentId"`
	StudentName    string            `json:"studentName"`
	InstructorID   int64             `json:"instructorId"`
	InstructorName string            `json:"instructorName"`
	Date           string            `json:"date" validate:"required,isodate"`    // YYYY-MM-DD
	StartTime      string            `json:"startTime" validate:"required,clock"` // HH:MM
	EndTime        string            `json:"endTime" validate:"required,clock"`   // HH:MM
	Type           string            `json:"type"`
	Status         AppointmentStatus `json:"status"`
	Room           string            `json:"room"`
	Equipment      []string          `json:"equipment"`
	Price          Money             `json:"price" validate:"gte=0"`
	PaymentStatus  PaymentStatus     `json:"paymentStatus"`
	Notes          string            `json:"notes"`
	CreatedAt      Timestamp         `json:"createdAt"`
}

// IsPaid занятие учитывается в выручке только если оплачено
func (a *AppointmentRecord) IsPaid() bool {
	return a.PaymentStatus == PaymentPaid
}

// IsConfirmed проверяет статус "Confirmado"
func (a *AppointmentRecord) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}
