package schedule

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В ошибках используем имена полей из JSON, как их видит API
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "clock", func(fl validator.FieldLevel) bool {
		_, err := ParseClock(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDateKey(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("register validation " + tag + ": " + err.Error())
	}
}

// IngestResult принятые и отклонённые записи снапшота
type IngestResult struct {
	Valid    []model.AppointmentRecord
	Rejected []*RecordError
}

// Ingest проверяет каждую запись отдельно: плохая запись отклоняется одна
// и не влияет на остальные. Неизвестные статусы принимаются.
func Ingest(records []model.AppointmentRecord) IngestResult {
	res := IngestResult{
		Valid: make([]model.AppointmentRecord, 0, len(records)),
	}
	for _, rec := range records {
		if err := ValidateRecord(rec); err != nil {
			var recErr *RecordError
			if errors.As(err, &recErr) {
				res.Rejected = append(res.Rejected, recErr)
			} else {
				res.Rejected = append(res.Rejected, &RecordError{ID: rec.ID, Err: err})
			}
			continue
		}
		res.Valid = append(res.Valid, rec)
	}
	return res
}

// ValidateRecord проверяет одну запись. Ошибка всегда *RecordError
// с одним из видов ошибок пакета внутри.
func ValidateRecord(rec model.AppointmentRecord) error {
	if err := validate.Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &RecordError{
				ID:    rec.ID,
				Field: fe.Field(),
				Value: valueString(fe.Value()),
				Err:   kindForTag(fe.Tag()),
			}
		}
		return &RecordError{ID: rec.ID, Err: err}
	}

	start, _ := ParseClock(rec.StartTime)
	end, _ := ParseClock(rec.EndTime)
	if end <= start {
		return &RecordError{
			ID:    rec.ID,
			Field: "endTime",
			Value: rec.StartTime + "-" + rec.EndTime,
			Err:   ErrInvalidTimeRange,
		}
	}
	return nil
}

func kindForTag(tag string) error {
	switch tag {
	case "clock":
		return ErrMalformedTime
	case "isodate":
		return ErrMalformedDate
	case "gte":
		return ErrNegativePrice
	default:
		return ErrMissingField
	}
}

func valueString(v interface{}) string {
	if m, ok := v.(model.Money); ok {
		return fmt.Sprintf("%.2f", m.Float())
	}
	return fmt.Sprint(v)
}
