package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"integral-analytics/internal/analytics"
	"integral-analytics/internal/middleware"
	"integral-analytics/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockUseCase records the last scope/input per operation and returns
// canned outputs.
type mockUseCase struct {
	lastScope  model.Scope
	lastReport analytics.ReportInput
	lastRecord analytics.RecordSessionInput
	err        error

	productivity analytics.ProductivityMetricsOutput
	timeOut      analytics.TimeAnalyticsOutput
	tasksOut     analytics.TaskAnalyticsOutput
	trends       analytics.ComplexityTrendsOutput
	streaks      analytics.StreaksOutput
	insights     analytics.InsightsOutput
	record       analytics.RecordSessionOutput
	list         analytics.ListSessionsOutput
	weekly       analytics.WeeklyFocusOutput
}

func (m *mockUseCase) GetProductivityMetrics(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.ProductivityMetricsOutput, error) {
	m.lastScope, m.lastReport = sc, input
	return m.productivity, m.err
}

func (m *mockUseCase) GetTimeAnalytics(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.TimeAnalyticsOutput, error) {
	m.lastScope, m.lastReport = sc, input
	return m.timeOut, m.err
}

func (m *mockUseCase) GetTaskAnalytics(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.TaskAnalyticsOutput, error) {
	m.lastScope, m.lastReport = sc, input
	return m.tasksOut, m.err
}

func (m *mockUseCase) GetComplexityTrends(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.ComplexityTrendsOutput, error) {
	m.lastScope, m.lastReport = sc, input
	return m.trends, m.err
}

func (m *mockUseCase) GetStreaks(ctx context.Context, sc model.Scope) (analytics.StreaksOutput, error) {
	m.lastScope = sc
	return m.streaks, m.err
}

func (m *mockUseCase) GetInsights(ctx context.Context, sc model.Scope, input analytics.ReportInput) (analytics.InsightsOutput, error) {
	m.lastScope, m.lastReport = sc, input
	return m.insights, m.err
}

func (m *mockUseCase) RecordFocusSession(ctx context.Context, sc model.Scope, input analytics.RecordSessionInput) (analytics.RecordSessionOutput, error) {
	m.lastScope, m.lastRecord = sc, input
	return m.record, m.err
}

func (m *mockUseCase) ListFocusSessions(ctx context.Context, sc model.Scope, input analytics.ListSessionsInput) (analytics.ListSessionsOutput, error) {
	m.lastScope = sc
	return m.list, m.err
}

func (m *mockUseCase) GetWeeklyFocusTotal(ctx context.Context, sc model.Scope, input analytics.WeeklyFocusInput) (analytics.WeeklyFocusOutput, error) {
	m.lastScope = sc
	return m.weekly, m.err
}

func newTestRouter(uc analytics.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(nopLogger{}, uc)
	mw := middleware.New(nopLogger{})
	RegisterRoutes(r.Group("/api/v1"), h, mw)
	return r
}

func doReq(t *testing.T, r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func dataOf(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		ErrorCode int            `json:"error_code"`
		Message   string         `json:"message"`
		Data      map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v (%s)", err, w.Body.String())
	}
	return envelope.Data
}

func TestGetProductivity(t *testing.T) {
	uc := &mockUseCase{
		productivity: analytics.ProductivityMetricsOutput{
			Metrics: analytics.ProductivityMetrics{
				CompletionRate:  75,
				VelocityTrend:   110,
				BurnoutRisk:     20,
				EfficiencyScore: 105,
				ComplexityScore: 1.4,
			},
			TimeRangeDays: 30,
		},
	}
	r := newTestRouter(uc)

	w := doReq(t, r, http.MethodGet, "/api/v1/analytics/productivity?days=30", "u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	data := dataOf(t, w)
	if data["completion_rate"] != 75.0 {
		t.Errorf("completion_rate = %v, want 75", data["completion_rate"])
	}
	if data["complexity_score"] != 1.4 {
		t.Errorf("complexity_score = %v, want 1.4", data["complexity_score"])
	}
	if uc.lastScope.UserID != "u1" {
		t.Errorf("scope user = %q, want u1", uc.lastScope.UserID)
	}
	if uc.lastReport.TimeRangeDays != 30 {
		t.Errorf("window = %d, want 30", uc.lastReport.TimeRangeDays)
	}
}

func TestAnalyticsRoutesRequireAuth(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	paths := []string{
		"/api/v1/analytics/productivity",
		"/api/v1/analytics/time",
		"/api/v1/analytics/tasks",
		"/api/v1/analytics/complexity-trends",
		"/api/v1/analytics/streaks",
		"/api/v1/analytics/insights",
		"/api/v1/focus-sessions",
	}
	for _, p := range paths {
		if w := doReq(t, r, http.MethodGet, p, "", ""); w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without identity: status = %d, want 401", p, w.Code)
		}
	}
}

func TestGetStreaksHandler(t *testing.T) {
	uc := &mockUseCase{streaks: analytics.StreaksOutput{Current: 3, Longest: 9}}
	r := newTestRouter(uc)

	w := doReq(t, r, http.MethodGet, "/api/v1/analytics/streaks", "u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := dataOf(t, w)
	if data["current_streak"] != 3.0 || data["longest_streak"] != 9.0 {
		t.Errorf("got %v, want current 3 longest 9", data)
	}
}

func TestGetInsightsHandlerEmptyList(t *testing.T) {
	r := newTestRouter(&mockUseCase{})

	w := doReq(t, r, http.MethodGet, "/api/v1/analytics/insights", "u1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	data := dataOf(t, w)
	insights, ok := data["insights"].([]any)
	if !ok {
		t.Fatalf("insights missing or not a list: %v", data)
	}
	if len(insights) != 0 {
		t.Errorf("got %d insights, want empty list", len(insights))
	}
}

func TestCreateFocusSessionHandler(t *testing.T) {
	t.Run("valid body reaches the use case", func(t *testing.T) {
		uc := &mockUseCase{record: analytics.RecordSessionOutput{
			Created: true,
			Session: model.FocusSession{ID: "s1", UserID: "u1", Date: "2024-05-15", DurationMS: 900000},
		}}
		r := newTestRouter(uc)

		w := doReq(t, r, http.MethodPost, "/api/v1/focus-sessions", "u1", `{"date":"2024-05-15","duration_ms":900000}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if uc.lastRecord.Date != "2024-05-15" || uc.lastRecord.DurationMS != 900000 {
			t.Errorf("use case saw %+v", uc.lastRecord)
		}
		data := dataOf(t, w)
		if data["created"] != true {
			t.Errorf("created = %v, want true", data["created"])
		}
	})

	t.Run("zero duration is accepted and passed through as a no-op", func(t *testing.T) {
		uc := &mockUseCase{record: analytics.RecordSessionOutput{Created: false}}
		r := newTestRouter(uc)

		w := doReq(t, r, http.MethodPost, "/api/v1/focus-sessions", "u1", `{"date":"2024-05-15","duration_ms":0}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		if uc.lastRecord.DurationMS != 0 || uc.lastRecord.Date != "2024-05-15" {
			t.Errorf("use case saw %+v, want zero duration passed through", uc.lastRecord)
		}
		data := dataOf(t, w)
		if data["created"] != false {
			t.Errorf("created = %v, want false", data["created"])
		}
		if _, present := data["session"]; present {
			t.Error("session should be omitted for a discarded duration")
		}
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doReq(t, r, http.MethodPost, "/api/v1/focus-sessions", "u1", `{"date":`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("domain validation maps to 400", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: analytics.ErrInvalidDate})

		w := doReq(t, r, http.MethodPost, "/api/v1/focus-sessions", "u1", `{"date":"nope","duration_ms":1}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("unknown errors map to 500", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{err: errors.New("db down")})

		w := doReq(t, r, http.MethodPost, "/api/v1/focus-sessions", "u1", `{"date":"2024-05-15","duration_ms":1}`)
		if w.Code != http.StatusInternalServerError {
			t.Errorf("status = %d, want 500", w.Code)
		}
		if strings.Contains(w.Body.String(), "db down") {
			t.Error("internal error detail leaked to client")
		}
	})
}

func TestGetWeeklyFocusTotalHandler(t *testing.T) {
	t.Run("requires both bounds", func(t *testing.T) {
		r := newTestRouter(&mockUseCase{})

		w := doReq(t, r, http.MethodGet, "/api/v1/focus-sessions/weekly-total?week_start=2024-05-13", "u1", "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})

	t.Run("returns the total", func(t *testing.T) {
		uc := &mockUseCase{weekly: analytics.WeeklyFocusOutput{TotalMS: 7_200_000}}
		r := newTestRouter(uc)

		w := doReq(t, r, http.MethodGet, "/api/v1/focus-sessions/weekly-total?week_start=2024-05-13&week_end=2024-05-19", "u1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
		}
		data := dataOf(t, w)
		if data["total_ms"] != 7_200_000.0 {
			t.Errorf("total_ms = %v, want 7200000", data["total_ms"])
		}
	})
}
