package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/repository/base"
)

const apiDateLayout = "2006-01-02"

// ScheduleRepository доступ к занятиям через REST API
type ScheduleRepository struct {
	client *base.Client
}

func NewScheduleRepository(client *base.Client) *ScheduleRepository {
	return &ScheduleRepository{client: client}
}

// ListByRange получает занятия за диапазон дат (включительно)
func (r *ScheduleRepository) ListByRange(ctx context.Context, q model.ScheduleQuery) (*model.Page[model.AppointmentRecord], error) {
	params := url.Values{}
	params.Set("startDate", q.StartDate.Format(apiDateLayout))
	params.Set("endDate", q.EndDate.Format(apiDateLayout))
	if q.MaxResults > 0 {
		params.Set("size", strconv.Itoa(q.MaxResults))
	}

	var page model.Page[model.AppointmentRecord]
	if err := r.client.Do(ctx, http.MethodGet, "/schedules", params, nil, &page); err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	if page.Content == nil {
		page.Content = []model.AppointmentRecord{}
	}
	return &page, nil
}

// GetByID получает занятие по ID; nil, nil если занятия нет
func (r *ScheduleRepository) GetByID(ctx context.Context, id int64) (*model.AppointmentRecord, error) {
	var rec model.AppointmentRecord
	err := r.client.Do(ctx, http.MethodGet, "/schedules/"+strconv.FormatInt(id, 10), nil, nil, &rec)
	if err != nil {
		if errors.Is(err, base.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get schedule by id: %w", err)
	}
	return &rec, nil
}

type statusUpdateRequest struct {
	Status model.AppointmentStatus `json:"status"`
}

// UpdateStatus меняет статус занятия
func (r *ScheduleRepository) UpdateStatus(ctx context.Context, id int64, status model.AppointmentStatus) error {
	path := "/schedules/" + strconv.FormatInt(id, 10) + "/status"
	if err := r.client.Do(ctx, http.MethodPatch, path, nil, statusUpdateRequest{Status: status}, nil); err != nil {
		return fmt.Errorf("update schedule status: %w", err)
	}
	return nil
}

// Delete удаляет занятие
func (r *ScheduleRepository) Delete(ctx context.Context, id int64) error {
	if err := r.client.Do(ctx, http.MethodDelete, "/schedules/"+strconv.FormatInt(id, 10), nil, nil, nil); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}
	return nil
}
