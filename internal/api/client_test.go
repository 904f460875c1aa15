package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/flke/flke/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientListCompaniesSendsCompanyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/companies", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("companyId"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `[{"id":7,"companyId":7,"companyname":"Acme","username":"acme","isCompany":true},
			{"id":9,"companyId":7,"username":"ann","role":{"admin":false,"changeStatus":true}}]`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", time.Second)
	got, err := c.ListCompanies(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].IsCompany)
	assert.Equal(t, "Acme", got[0].CompanyName)
	require.NotNil(t, got[1].Role)
	assert.True(t, got[1].Role.ChangeStatus)
}

func TestClientUpdateTaskSendsFullBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/tasks/3", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		data, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body UpdateTaskRequest
		require.NoError(t, sonic.Unmarshal(data, &body))
		assert.Equal(t, models.StatusDone, body.Status)
		assert.Equal(t, "Ship", body.Title)

		_, _ = io.WriteString(w, `{"id":3,"title":"Ship","status":"done","companyId":1}`)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	task := &models.Task{ID: 3, Title: "Ship", Status: models.StatusDone, CompanyID: 1}
	got, err := c.UpdateTask(context.Background(), task.ID, UpdateFromTask(task))
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, got.Status)
}

func TestClientErrorClassification(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		conflict  bool
		notFound  bool
		wantCode  string
		wantInMsg string
	}{
		{
			name:      "conflict with json body",
			status:    http.StatusConflict,
			body:      `{"code":"ALREADY_REGISTERED","message":"username taken"}`,
			conflict:  true,
			wantCode:  CodeConflict,
			wantInMsg: "username taken",
		},
		{
			name:     "not found",
			status:   http.StatusNotFound,
			body:     `{"code":"NOT_FOUND","message":"no such task"}`,
			notFound: true,
			wantCode: CodeNotFound,
		},
		{
			name:      "plain text body",
			status:    http.StatusInternalServerError,
			body:      "boom",
			wantInMsg: "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			err := NewClient(srv.URL, time.Second).DeleteTask(context.Background(), 1)
			require.Error(t, err)

			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantCode, apiErr.Code)
			assert.Equal(t, tt.conflict, IsConflict(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
			if tt.wantInMsg != "" {
				assert.Contains(t, err.Error(), tt.wantInMsg)
			}
		})
	}
}

func TestClientUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second).ListTasks(context.Background(), 1)
	require.Error(t, err)
	assert.True(t, IsUnreachable(err))
}

func TestClientDeleteAcceptsEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	require.NoError(t, NewClient(srv.URL, time.Second).DeleteCompany(context.Background(), 4))
}
