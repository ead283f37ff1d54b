package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"butler-assistant/internal/model"
	"butler-assistant/internal/record"
	"butler-assistant/internal/record/repository"
	"butler-assistant/pkg/datemath"
	pkgLog "butler-assistant/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.Repository
	dates *datemath.Parser
	now   func() time.Time

	mu           sync.Mutex
	lastID       int64
	tasks        []model.Task
	appointments []model.Appointment
	meetings     []model.Meeting
}

var _ record.UseCase = (*implUseCase)(nil)

// New loads the persisted collections and returns the record store.
func New(ctx context.Context, l pkgLog.Logger, repo repository.Repository, dates *datemath.Parser) (*implUseCase, error) {
	uc := &implUseCase{
		l:     l,
		repo:  repo,
		dates: dates,
		now:   time.Now,
	}

	var err error
	if uc.tasks, err = repo.ListTasks(ctx); err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}
	if uc.appointments, err = repo.ListAppointments(ctx); err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}
	if uc.meetings, err = repo.ListMeetings(ctx); err != nil {
		return nil, fmt.Errorf("load meetings: %w", err)
	}

	for _, t := range uc.tasks {
		uc.lastID = max(uc.lastID, t.ID)
	}
	for _, a := range uc.appointments {
		uc.lastID = max(uc.lastID, a.ID)
	}
	for _, m := range uc.meetings {
		uc.lastID = max(uc.lastID, m.ID)
	}

	l.Infof(ctx, "%s: loaded %d tasks, %d appointments, %d meetings",
		logPrefixNew, len(uc.tasks), len(uc.appointments), len(uc.meetings))

	return uc, nil
}

// nextID returns a Unix-millisecond identity strictly greater than any
// issued or loaded before. Callers hold mu.
func (uc *implUseCase) nextID(at time.Time) int64 {
	id := at.UnixMilli()
	if id <= uc.lastID {
		id = uc.lastID + 1
	}
	uc.lastID = id
	return id
}
