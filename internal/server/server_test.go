package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okmtz/tsk-cli/internal/model"
	"github.com/okmtz/tsk-cli/internal/store"
)

func newTestServer(t *testing.T) (*echo.Echo, model.Config) {
	t.Helper()
	cfg := model.Config{DataDir: t.TempDir()}
	e := echo.New()
	Register(e, cfg)
	return e, cfg
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestPostAndGetTasks(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tasks",
		`{"title": "book flights", "priority": "high", "due": "2030-01-02"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("failed to decode created task: %v", err)
	}
	if created.SeqID != 1 || created.Priority != model.PriorityHigh {
		t.Fatalf("unexpected created task: %+v", created)
	}
	if created.Source.Type != model.SourceManual {
		t.Fatalf("api-created tasks are manual, got %q", created.Source.Type)
	}

	rec = doRequest(e, http.MethodGet, "/api/tasks", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Tasks []model.Task `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(resp.Tasks) != 1 || resp.Tasks[0].Title != "book flights" {
		t.Fatalf("unexpected list: %+v", resp.Tasks)
	}
}

func TestPostTaskValidation(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tasks", `{"title": "   "}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty title, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks", `{"title": "x", "priority": "asap"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad priority, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks", `{"title": "x", "due": "someday"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad due date, got %d", rec.Code)
	}
}

func TestToggleTaskFlipsCompletion(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tasks", `{"title": "water plants"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks/1/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var toggled model.Task
	if err := json.Unmarshal(rec.Body.Bytes(), &toggled); err != nil {
		t.Fatalf("failed to decode toggled task: %v", err)
	}
	if toggled.Status != model.StatusCompleted || toggled.CompletedAt == nil {
		t.Fatalf("expected completed task with timestamp, got %+v", toggled)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks/1/toggle", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 on second toggle, got %d", rec.Code)
	}
	toggled = model.Task{}
	if err := json.Unmarshal(rec.Body.Bytes(), &toggled); err != nil {
		t.Fatalf("failed to decode re-toggled task: %v", err)
	}
	if toggled.Status != model.StatusPending || toggled.CompletedAt != nil {
		t.Fatalf("expected reopened task, got %+v", toggled)
	}

	rec = doRequest(e, http.MethodPost, "/api/tasks/99/toggle", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown task, got %d", rec.Code)
	}
}

func TestDeleteTaskMovesToTrash(t *testing.T) {
	e, cfg := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/api/tasks", `{"title": "old chore"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("setup failed: %d", rec.Code)
	}

	rec = doRequest(e, http.MethodDelete, "/api/tasks/1", "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = doRequest(e, http.MethodGet, "/api/tasks", "")
	var resp struct {
		Tasks []model.Task `json:"tasks"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(resp.Tasks) != 0 {
		t.Fatalf("trashed task should be hidden from the list, got %+v", resp.Tasks)
	}

	// Still on disk, just flagged
	tasks, _, err := store.LoadTasks(cfg)
	if err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	if len(tasks) != 1 || !tasks[0].Deleted || tasks[0].DeletedAt == nil {
		t.Fatalf("expected soft-deleted task on disk, got %+v", tasks)
	}
}

func TestGetTasksFilters(t *testing.T) {
	e, cfg := newTestServer(t)

	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	seed := []model.Task{
		{ID: "a", SeqID: 1, Title: "overdue urgent", Status: model.StatusPending, Priority: model.PriorityUrgent, Source: model.ManualSource(), DueDate: &past},
		{ID: "b", SeqID: 2, Title: "future", Status: model.StatusPending, Priority: model.PriorityLow, Source: model.ManualSource(), DueDate: &future},
		{ID: "c", SeqID: 3, Title: "done", Status: model.StatusCompleted, Source: model.Source{Type: model.SourceMessages, Identifier: "m1"}},
	}
	_, jsonPath, err := store.LoadTasks(cfg)
	if err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.SaveTasks(seed, jsonPath); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	cases := []struct {
		query string
		want  []string
	}{
		{query: "?status=pending", want: []string{"a", "b"}},
		{query: "?overdue=true", want: []string{"a"}},
		{query: "?priority=urgent", want: []string{"a"}},
		{query: "?source=messages", want: []string{"c"}},
		{query: "?status=completed&source=messages", want: []string{"c"}},
	}

	for _, tc := range cases {
		rec := doRequest(e, http.MethodGet, "/api/tasks"+tc.query, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.query, rec.Code)
		}
		var resp struct {
			Tasks []model.Task `json:"tasks"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: failed to decode: %v", tc.query, err)
		}
		if len(resp.Tasks) != len(tc.want) {
			t.Fatalf("%s: expected %d tasks, got %d", tc.query, len(tc.want), len(resp.Tasks))
		}
		for i, id := range tc.want {
			if resp.Tasks[i].ID != id {
				t.Fatalf("%s: expected task %s at %d, got %s", tc.query, id, i, resp.Tasks[i].ID)
			}
		}
	}

	rec := doRequest(e, http.MethodGet, "/api/tasks?status=paused", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", rec.Code)
	}
}
