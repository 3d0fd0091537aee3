package schedule

import (
	"errors"
	"fmt"
)

// Виды ошибок при приёме записей
var (
	ErrMalformedTime    = errors.New("malformed time, expected HH:MM")
	ErrMalformedDate    = errors.New("malformed date, expected YYYY-MM-DD")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrNegativePrice    = errors.New("price must not be negative")
	ErrMissingField     = errors.New("required field is empty")
)

// RecordError почему конкретная запись отклонена при приёме
type RecordError struct {
	ID    int64
	Field string
	Value string
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("appointment %d: field %s (%q): %v", e.ID, e.Field, e.Value, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
