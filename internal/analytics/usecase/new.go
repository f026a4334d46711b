package usecase

import (
	"time"

	"integral-analytics/internal/analytics"
	sessionRepo "integral-analytics/internal/session/repository"
	taskRepo "integral-analytics/internal/task/repository"
	pkgLog "integral-analytics/pkg/log"
)

type implUseCase struct {
	l        pkgLog.Logger
	tasks    taskRepo.Repository
	sessions sessionRepo.Repository

	// now supplies the reference time for all window math so reports are
	// deterministic under test.
	now func() time.Time

	// defaultDays is the window applied when a request carries none.
	defaultDays int
}

// New creates a new analytics UseCase instance.
func New(l pkgLog.Logger, tasks taskRepo.Repository, sessions sessionRepo.Repository) *implUseCase {
	return &implUseCase{
		l:           l,
		tasks:       tasks,
		sessions:    sessions,
		now:         time.Now,
		defaultDays: analytics.DefaultTimeRangeDays,
	}
}

// WithClock overrides the reference-time source. Used by tests and to
// anchor report days to a configured timezone.
func (uc *implUseCase) WithClock(now func() time.Time) *implUseCase {
	uc.now = now
	return uc
}

// WithDefaultWindow overrides the default report window. Values outside
// [1, MaxTimeRangeDays] are ignored.
func (uc *implUseCase) WithDefaultWindow(days int) *implUseCase {
	if days > 0 && days <= analytics.MaxTimeRangeDays {
		uc.defaultDays = days
	}
	return uc
}
