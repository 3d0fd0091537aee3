package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

type stubFetcher struct {
	agenda []model.AppointmentRecord
	err    error
	dates  []time.Time
}

func (f *stubFetcher) FetchDay(_ context.Context, date time.Time) ([]model.AppointmentRecord, error) {
	f.dates = append(f.dates, date)
	return f.agenda, f.err
}

type stubSender struct {
	chats   []int64
	failFor int64
}

func (s *stubSender) SendDigest(_ context.Context, chatID int64, _ time.Time, _ []model.AppointmentRecord) error {
	if chatID == s.failFor {
		return errors.New("blocked by user")
	}
	s.chats = append(s.chats, chatID)
	return nil
}

func TestNextRun(t *testing.T) {
	loc := time.UTC
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before hour", time.Date(2024, 6, 10, 5, 30, 0, 0, loc), time.Date(2024, 6, 10, 7, 0, 0, 0, loc)},
		{"exactly at hour", time.Date(2024, 6, 10, 7, 0, 0, 0, loc), time.Date(2024, 6, 11, 7, 0, 0, 0, loc)},
		{"after hour", time.Date(2024, 6, 10, 9, 0, 0, 0, loc), time.Date(2024, 6, 11, 7, 0, 0, 0, loc)},
		{"month end", time.Date(2024, 6, 30, 23, 0, 0, 0, loc), time.Date(2024, 7, 1, 7, 0, 0, 0, loc)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextRun(tt.now, 7))
		})
	}
}

func TestSendToday(t *testing.T) {
	fetcher := &stubFetcher{agenda: []model.AppointmentRecord{{ID: 1}}}
	sender := &stubSender{failFor: 2}
	s := NewDigestScheduler(fetcher, sender, []int64{1, 2, 3}, 7, zaptest.NewLogger(t))
	fixed := time.Date(2024, 6, 10, 7, 0, 0, 0, time.Local)
	s.now = func() time.Time { return fixed }

	s.SendToday(context.Background())

	assert.Equal(t, []time.Time{fixed}, fetcher.dates)
	assert.Equal(t, []int64{1, 3}, sender.chats)
}

func TestSendToday_FetchErrorSendsNothing(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("api down")}
	sender := &stubSender{}
	s := NewDigestScheduler(fetcher, sender, []int64{1}, 7, zaptest.NewLogger(t))

	s.SendToday(context.Background())

	assert.Empty(t, sender.chats)
}

func TestStop_Twice(t *testing.T) {
	s := NewDigestScheduler(&stubFetcher{}, &stubSender{}, []int64{1}, 7, zaptest.NewLogger(t))

	assert.NotPanics(t, func() {
		s.Stop()
		s.Stop()
	})

	select {
	case <-s.stopChan:
	default:
		t.Fatal("stop channel is not closed")
	}
}
