package usecase

import (
	"context"
	"time"

	"integral-analytics/internal/model"
	sessionRepo "integral-analytics/internal/session/repository"
	taskRepo "integral-analytics/internal/task/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock task repository for testing
type mockTaskRepo struct {
	tasks   []model.Task
	err     error
	lastOpt taskRepo.ListTasksOptions
}

func (m *mockTaskRepo) ListTasks(ctx context.Context, opt taskRepo.ListTasksOptions) ([]model.Task, error) {
	m.lastOpt = opt
	return m.tasks, m.err
}

// Mock session repository for testing
type mockSessionRepo struct {
	sessions  []model.FocusSession
	createErr error
	listErr   error
	created   []sessionRepo.CreateSessionOptions
	lastList  sessionRepo.ListSessionsOptions
}

func (m *mockSessionRepo) CreateSession(ctx context.Context, opt sessionRepo.CreateSessionOptions) (model.FocusSession, error) {
	if m.createErr != nil {
		return model.FocusSession{}, m.createErr
	}
	m.created = append(m.created, opt)
	s := model.FocusSession{
		ID:         "generated-id",
		UserID:     opt.UserID,
		Date:       opt.Date,
		DurationMS: opt.DurationMS,
	}
	m.sessions = append(m.sessions, s)
	return s, nil
}

func (m *mockSessionRepo) ListSessions(ctx context.Context, opt sessionRepo.ListSessionsOptions) ([]model.FocusSession, error) {
	m.lastList = opt
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.sessions, nil
}

// newTestUseCase wires a usecase against mocks with a fixed clock.
func newTestUseCase(tasks *mockTaskRepo, sessions *mockSessionRepo, now time.Time) *implUseCase {
	return New(&mockLogger{}, tasks, sessions).WithClock(func() time.Time { return now })
}

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }
