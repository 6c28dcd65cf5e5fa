package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"proof-timeline/internal/model"
	"proof-timeline/internal/timeline"
	pkgLog "proof-timeline/pkg/log"
	"proof-timeline/pkg/response"
)

type mockUseCase struct {
	listOut   timeline.ListDayOutput
	createOut model.Task
	changeOut timeline.ChangeActualStartOutput
	err       error

	gotChange timeline.ChangeActualStartInput
}

func (m *mockUseCase) ListDay(ctx context.Context, input timeline.ListDayInput) (timeline.ListDayOutput, error) {
	return m.listOut, m.err
}

func (m *mockUseCase) CreateTask(ctx context.Context, input timeline.CreateTaskInput) (model.Task, error) {
	return m.createOut, m.err
}

func (m *mockUseCase) ChangeActualStart(ctx context.Context, input timeline.ChangeActualStartInput) (timeline.ChangeActualStartOutput, error) {
	m.gotChange = input
	return m.changeOut, m.err
}

func newRouter(uc timeline.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1/timeline"), New(pkgLog.NewNop(), uc))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestListDayHandler(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	uc := &mockUseCase{listOut: timeline.ListDayOutput{
		Day: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Tasks: []model.Task{
			{ID: "a", Title: "Run", ScheduledStart: start, ScheduledEnd: start.Add(30 * time.Minute), Status: model.TaskStatusScheduled},
			{ID: "b", Title: "Read", ScheduledStart: start.Add(time.Hour), Status: model.TaskStatusScheduled},
		},
	}}
	w := do(newRouter(uc), http.MethodGet, "/api/v1/timeline?day=2024-05-01", "")

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Data struct {
			Day   string           `json:"day"`
			Count int              `json:"count"`
			Tasks []map[string]any `json:"tasks"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Data.Day != "2024-05-01" || resp.Data.Count != 2 {
		t.Errorf("unexpected payload: %s", w.Body.String())
	}
	if resp.Data.Tasks[0]["duration_minutes"] != float64(30) {
		t.Errorf("unexpected duration: %v", resp.Data.Tasks[0]["duration_minutes"])
	}
	if _, ok := resp.Data.Tasks[1]["scheduled_end"]; ok {
		t.Errorf("end-less task should omit scheduled_end")
	}
}

func TestChangeActualStartHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "OK", body: `{"actual_start":"2024-05-01T09:10:00Z"}`, wantStatus: http.StatusOK},
		{name: "Missing body field", body: `{}`, wantStatus: http.StatusBadRequest},
		{name: "Not found", body: `{"actual_start":"2024-05-01T09:10:00Z"}`, err: timeline.ErrTaskNotFound, wantStatus: http.StatusNotFound},
		{name: "Unexpected error", body: `{"actual_start":"2024-05-01T09:10:00Z"}`, err: fmt.Errorf("store: %w", errors.New("boom")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err, changeOut: timeline.ChangeActualStartOutput{
				Task:   model.Task{ID: "t"},
				Shifts: []timeline.Shift{{TaskID: "u"}},
			}}
			w := do(newRouter(uc), http.MethodPost, "/api/v1/timeline/tasks/t/actual-start", tt.body)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, w.Code, w.Body.String())
			}
			if tt.wantStatus == http.StatusOK {
				if uc.gotChange.TaskID != "t" || uc.gotChange.ActualStart.Hour() != 9 {
					t.Errorf("unexpected input: %+v", uc.gotChange)
				}
				var resp response.Resp
				json.Unmarshal(w.Body.Bytes(), &resp)
				if resp.ErrorCode != 0 {
					t.Errorf("unexpected error code %d", resp.ErrorCode)
				}
			}
		})
	}
}

func TestCreateTaskHandler(t *testing.T) {
	uc := &mockUseCase{createOut: model.Task{ID: "new", Title: "Cook"}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/timeline/tasks", `{"title":"Cook","scheduled_start":"2024-05-01T18:00:00Z","duration_minutes":45}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = do(r, http.MethodPost, "/api/v1/timeline/tasks", `{"title":"Cook","scheduled_start":"2024-05-01T18:00:00Z"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without duration, got %d", w.Code)
	}
}
