package app

import (
	"context"
	"sync"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DayFetcher загружает расписание на день
type DayFetcher interface {
	FetchDay(ctx context.Context, date time.Time) ([]model.AppointmentRecord, error)
}

// DigestSender отправляет сводку дня в чат
type DigestSender interface {
	SendDigest(ctx context.Context, chatID int64, date time.Time, agenda []model.AppointmentRecord) error
}

// DigestScheduler раз в день рассылает администраторам расписание на сегодня
type DigestScheduler struct {
	fetcher  DayFetcher
	sender   DigestSender
	chatIDs  []int64
	hour     int
	now      func() time.Time
	logger   *zap.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewDigestScheduler создаёт планировщик рассылки
func NewDigestScheduler(fetcher DayFetcher, sender DigestSender, chatIDs []int64, hour int, logger *zap.Logger) *DigestScheduler {
	return &DigestScheduler{
		fetcher:  fetcher,
		sender:   sender,
		chatIDs:  chatIDs,
		hour:     hour,
		now:      time.Now,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (s *DigestScheduler) Start(ctx context.Context) {
	s.logger.Info("Starting digest scheduler",
		zap.Int("hour", s.hour),
		zap.Int("chats", len(s.chatIDs)),
	)

	go s.run(ctx)
}

// Stop останавливает фоновую задачу, повторный вызов ничего не делает
func (s *DigestScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Info("Stopping digest scheduler")
		close(s.stopChan)
	})
}

func (s *DigestScheduler) run(ctx context.Context) {
	for {
		next := nextRun(s.now(), s.hour)
		timer := time.NewTimer(time.Until(next))

		select {
		case <-timer.C:
			s.SendToday(ctx)
		case <-s.stopChan:
			timer.Stop()
			s.logger.Info("Digest task stopped")
			return
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("Digest task cancelled")
			return
		}
	}
}

// nextRun ближайший момент hour:00 по местному времени строго после now
func nextRun(now time.Time, hour int) time.Time {
	run := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !run.After(now) {
		run = time.Date(now.Year(), now.Month(), now.Day()+1, hour, 0, 0, 0, now.Location())
	}
	return run
}

// SendToday загружает сегодняшнее расписание и рассылает его
func (s *DigestScheduler) SendToday(ctx context.Context) {
	runID := uuid.NewString()
	today := s.now()
	log := s.logger.With(zap.String("run_id", runID), zap.String("date", today.Format("2006-01-02")))

	log.Info("Sending daily digest")

	agenda, err := s.fetcher.FetchDay(ctx, today)
	if err != nil {
		log.Error("Failed to fetch digest agenda", zap.Error(err))
		return
	}

	sent := 0
	for _, chatID := range s.chatIDs {
		if err := s.sender.SendDigest(ctx, chatID, today, agenda); err != nil {
			log.Error("Failed to send digest", zap.Int64("chat_id", chatID), zap.Error(err))
			continue
		}
		sent++
	}

	log.Info("Daily digest sent",
		zap.Int("appointments", len(agenda)),
		zap.Int("chats", sent),
	)
}
