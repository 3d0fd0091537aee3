package repository

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Freeeeeet/studio_admin/internal/model"
	"github.com/Freeeeeet/studio_admin/internal/repository/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, handler http.HandlerFunc) *base.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := base.NewClient(srv.URL+"/api", 2*time.Second, staticToken("secret"), zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestScheduleRepository_ListByRange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/schedules", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("startDate"))
		assert.Equal(t, "2024-06-30", r.URL.Query().Get("endDate"))
		assert.Equal(t, "500", r.URL.Query().Get("size"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"content": [
				{"id": 1, "instructorId": 3, "instructorName": "Sarah", "date": "2024-06-10",
				 "startTime": "08:00", "endTime": "09:00", "status": "Agendado",
				 "price": 80, "paymentStatus": "Pago"}
			],
			"totalElements": 1, "totalPages": 1, "number": 0, "size": 500
		}`))
	})
	repo := NewScheduleRepository(client)

	page, err := repo.ListByRange(context.Background(), model.ScheduleQuery{
		StartDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.Local),
		EndDate:    time.Date(2024, 6, 30, 0, 0, 0, 0, time.Local),
		MaxResults: 500,
	})

	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Sarah", page.Content[0].InstructorName)
	assert.Equal(t, model.Reais(80), page.Content[0].Price)
	assert.Equal(t, int64(1), page.TotalElements)
}

func TestScheduleRepository_ListByRange_EmptyContent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	page, err := NewScheduleRepository(client).ListByRange(context.Background(), model.ScheduleQuery{
		StartDate: time.Now(),
		EndDate:   time.Now(),
	})

	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.Empty(t, page.Content)
}

func TestScheduleRepository_Errors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/schedules/404":
			http.Error(w, "not found", http.StatusNotFound)
		case "/api/schedules":
			http.Error(w, "token expired", http.StatusUnauthorized)
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	})
	repo := NewScheduleRepository(client)

	rec, err := repo.GetByID(context.Background(), 404)
	assert.NoError(t, err)
	assert.Nil(t, rec)

	_, err = repo.ListByRange(context.Background(), model.ScheduleQuery{StartDate: time.Now(), EndDate: time.Now()})
	assert.ErrorIs(t, err, base.ErrUnauthorized)

	err = repo.Delete(context.Background(), 7)
	var apiErr *base.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "boom", apiErr.Body)
}

func TestScheduleRepository_UpdateStatusAndDelete(t *testing.T) {
	var calls []string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		if r.Method == http.MethodPatch {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "Concluído", body["status"])
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		}
		w.WriteHeader(http.StatusNoContent)
	})
	repo := NewScheduleRepository(client)

	require.NoError(t, repo.UpdateStatus(context.Background(), 12, model.StatusCompleted))
	require.NoError(t, repo.Delete(context.Background(), 12))

	assert.Equal(t, []string{"PATCH /api/schedules/12/status", "DELETE /api/schedules/12"}, calls)
}

func TestAuthRepository_Login(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body["password"] != "right" {
			http.Error(w, "bad credentials", http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"token": "jwt-token"}`))
	})
	repo := NewAuthRepository(client)

	token, err := repo.Login(context.Background(), "admin@studio.com.br", "right")
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", token)

	_, err = repo.Login(context.Background(), "admin@studio.com.br", "wrong")
	assert.ErrorIs(t, err, base.ErrUnauthorized)
}

func TestNewClient_RejectsRelativeURL(t *testing.T) {
	_, err := base.NewClient("localhost:8080", time.Second, nil, zap.NewNop())
	assert.Error(t, err)
}
