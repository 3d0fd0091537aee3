package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/schedule"
	"go.uber.org/zap"
)

var (
	// ErrStaleSnapshot ответ пришёл после того, как зритель запросил другой месяц
	ErrStaleSnapshot       = errors.New("schedule response is stale")
	ErrNoSnapshot          = errors.New("schedule snapshot not loaded")
	ErrAppointmentNotFound = errors.New("appointment not found in snapshot")
	ErrUnknownStatus       = errors.New("unknown appointment status")
)

// ScheduleRepository источник записей расписания (REST API)
type ScheduleRepository interface {
	ListByRange(ctx context.Context, q model.ScheduleQuery) (*model.Page[model.AppointmentRecord], error)
	GetByID(ctx context.Context, id int64) (*model.AppointmentRecord, error)
	UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// Snapshot загруженный месяц расписания. Заменяется целиком, не патчится.
type Snapshot struct {
	Month    time.Time
	Records  []model.AppointmentRecord
	Rejected []*schedule.RecordError
	LoadedAt time.Time
}

func (s *Snapshot) clone() *Snapshot {
	c := *s
	c.Records = append([]model.AppointmentRecord(nil), s.Records...)
	c.Rejected = append([]*schedule.RecordError(nil), s.Rejected...)
	return &c
}

type viewer struct {
	seq      uint64
	cancel   context.CancelFunc
	snapshot *Snapshot
}

// ScheduleService владеет снапшотами расписания для каждого чата
type ScheduleService struct {
	repo       ScheduleRepository
	maxResults int
	now        func() time.Time
	logger     *zap.Logger

	mu      sync.Mutex
	viewers map[int64]*viewer
}

func NewScheduleService(repo ScheduleRepository, maxResults int, logger *zap.Logger) *ScheduleService {
	return &ScheduleService{
		repo:       repo,
		maxResults: maxResults,
		now:        time.Now,
		logger:     logger,
		viewers:    make(map[int64]*viewer),
	}
}

// LoadMonth загружает месяц для зрителя. Предыдущий незавершённый запрос
// этого зрителя отменяется; ответ сохраняется только если запрос всё ещё
// последний, иначе возвращается ErrStaleSnapshot.
func (s *ScheduleService) LoadMonth(ctx context.Context, viewerID int64, month time.Time) (*Snapshot, error) {
	month = schedule.StartOfMonth(month)
	fetchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	v, ok := s.viewers[viewerID]
	if !ok {
		v = &viewer{}
		s.viewers[viewerID] = v
	}
	if v.cancel != nil {
		v.cancel()
	}
	v.seq++
	seq := v.seq
	v.cancel = cancel
	s.mu.Unlock()

	first, last := schedule.MonthRange(month)
	result, err := s.fetch(fetchCtx, first, last)

	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.viewers[viewerID]; !ok || cur != v || v.seq != seq {
		s.logger.Debug("Discarding stale schedule response",
			zap.Int64("viewer_id", viewerID),
			zap.String("month", month.Format("2006-01")),
			zap.Uint64("seq", seq),
		)
		return nil, ErrStaleSnapshot
	}
	v.cancel = nil

	if err != nil {
		return nil, fmt.Errorf("load month %s: %w", month.Format("2006-01"), err)
	}

	v.snapshot = &Snapshot{
		Month:    month,
		Records:  result.Valid,
		Rejected: result.Rejected,
		LoadedAt: s.now(),
	}

	s.logger.Info("Schedule snapshot loaded",
		zap.Int64("viewer_id", viewerID),
		zap.String("month", month.Format("2006-01")),
		zap.Int("records", len(result.Valid)),
		zap.Int("rejected", len(result.Rejected)),
	)

	return v.snapshot.clone(), nil
}

func (s *ScheduleService) fetch(ctx context.Context, from, to time.Time) (schedule.IngestResult, error) {
	page, err := s.repo.ListByRange(ctx, model.ScheduleQuery{
		StartDate:  from,
		EndDate:    to,
		MaxResults: s.maxResults,
	})
	if err != nil {
		return schedule.IngestResult{}, fmt.Errorf("fetch schedules: %w", err)
	}

	result := schedule.Ingest(page.Content)
	for _, rejected := range result.Rejected {
		s.logger.Warn("Rejected malformed appointment record",
			zap.Int64("appointment_id", rejected.ID),
			zap.String("field", rejected.Field),
			zap.String("value", rejected.Value),
			zap.Error(rejected.Err),
		)
	}
	if page.TotalElements > int64(len(page.Content)) {
		s.logger.Warn("Schedule page truncated",
			zap.Int64("total", page.TotalElements),
			zap.Int("received", len(page.Content)),
		)
	}
	return result, nil
}

// Snapshot текущий снапшот зрителя
func (s *ScheduleService) Snapshot(viewerID int64) (*Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.viewers[viewerID]
	if !ok || v.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	return v.snapshot.clone(), nil
}

// Refresh перезагружает месяц текущего снапшота
func (s *ScheduleService) Refresh(ctx context.Context, viewerID int64) (*Snapshot, error) {
	snap, err := s.Snapshot(viewerID)
	if err != nil {
		return nil, err
	}
	return s.LoadMonth(ctx, viewerID, snap.Month)
}

// Appointment ищет запись в снапшоте зрителя
func (s *ScheduleService) Appointment(viewerID, appointmentID int64) (*model.AppointmentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.viewers[viewerID]
	if !ok || v.snapshot == nil {
		return nil, ErrNoSnapshot
	}
	for i := range v.snapshot.Records {
		if v.snapshot.Records[i].ID == appointmentID {
			rec := v.snapshot.Records[i]
			return &rec, nil
		}
	}
	return nil, ErrAppointmentNotFound
}

// FetchAppointment загружает одну запись с сервера, минуя снапшот
func (s *ScheduleService) FetchAppointment(ctx context.Context, appointmentID int64) (*model.AppointmentRecord, error) {
	rec, err := s.repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, fmt.Errorf("fetch appointment: %w", err)
	}
	if err := schedule.ValidateRecord(*rec); err != nil {
		return nil, fmt.Errorf("fetch appointment: %w", err)
	}
	return rec, nil
}

// UpdateStatus меняет статус записи на сервере и перезагружает снапшот
func (s *ScheduleService) UpdateStatus(ctx context.Context, viewerID, appointmentID int64, status model.AppointmentStatus) (*Snapshot, error) {
	if !status.IsKnown() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	if err := s.repo.UpdateStatus(ctx, appointmentID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("Appointment status updated",
		zap.Int64("viewer_id", viewerID),
		zap.Int64("appointment_id", appointmentID),
		zap.String("status", string(status)),
	)

	return s.refreshAfterMutation(ctx, viewerID)
}

// Delete удаляет запись на сервере и перезагружает снапшот
func (s *ScheduleService) Delete(ctx context.Context, viewerID, appointmentID int64) (*Snapshot, error) {
	if err := s.repo.Delete(ctx, appointmentID); err != nil {
		return nil, fmt.Errorf("delete appointment: %w", err)
	}

	s.logger.Info("Appointment deleted",
		zap.Int64("viewer_id", viewerID),
		zap.Int64("appointment_id", appointmentID),
	)

	return s.refreshAfterMutation(ctx, viewerID)
}

// refreshAfterMutation: изменение уже применено на сервере, поэтому
// устаревший ответ не ошибка, снапшот обновит более новый запрос
func (s *ScheduleService) refreshAfterMutation(ctx context.Context, viewerID int64) (*Snapshot, error) {
	snap, err := s.Refresh(ctx, viewerID)
	switch {
	case errors.Is(err, ErrStaleSnapshot), errors.Is(err, ErrNoSnapshot):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("refresh after mutation: %w", err)
	}
	return snap, nil
}

// FetchDay разовая загрузка одного дня, в снапшоты не попадает
func (s *ScheduleService) FetchDay(ctx context.Context, date time.Time) ([]model.AppointmentRecord, error) {
	day := schedule.StartOfDay(date)
	result, err := s.fetch(ctx, day, day)
	if err != nil {
		return nil, fmt.Errorf("fetch day %s: %w", schedule.DateKey(day), err)
	}
	return schedule.GetAgendaForDate(day, result.Valid), nil
}

// Forget отменяет загрузку и удаляет снапшот зрителя (logout)
func (s *ScheduleService) Forget(viewerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.viewers[viewerID]; ok {
		if v.cancel != nil {
			v.cancel()
		}
		delete(s.viewers, viewerID)
	}
}

// ForgetAll сбрасывает все снапшоты
func (s *ScheduleService) ForgetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, v := range s.viewers {
		if v.cancel != nil {
			v.cancel()
		}
		delete(s.viewers, id)
	}
}
