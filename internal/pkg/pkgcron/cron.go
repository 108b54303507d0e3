package pkgcron

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/robfig/cron"

	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkglog"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkgroutine"
	"github.com/ANUSHREE1403/Generating-Report-for-failed-query-logs-in-BQ/internal/pkg/pkguid"
)

// ErrEmptySpec is returned when a job is registered without a schedule.
var ErrEmptySpec = errors.New("pkgcron: empty schedule spec")

// Job is the function fired on each tick.
type Job func(ctx context.Context) error

// Scheduler wraps a cron runner and dispatches its ticks through a goroutine manager.
type Scheduler struct {
	ctx    context.Context
	cron   *cron.Cron
	runner *pkgroutine.Manager
	uid    pkguid.StringID

	mu      sync.Mutex
	started bool
}

// New creates a Scheduler. Jobs receive a child of ctx; canceling it stops in-flight runs.
func New(ctx context.Context, runner *pkgroutine.Manager, uid pkguid.StringID) *Scheduler {
	if runner == nil {
		runner = pkgroutine.NewManager(1)
	}
	if uid == nil {
		uid = pkguid.NewUUID()
	}

	return &Scheduler{
		ctx:    ctx,
		cron:   cron.New(),
		runner: runner,
		uid:    uid,
	}
}

// Add registers job under name with a six-field cron spec or a descriptor like "@every 1h".
func (s *Scheduler) Add(name, spec string, job Job) error {
	if spec == "" {
		return ErrEmptySpec
	}

	return s.cron.AddFunc(spec, func() {
		s.fire(name, job)
	})
}

func (s *Scheduler) fire(name string, job Job) {
	ctx := pkglog.SetCorrelationID(s.ctx, s.uid.Generate())

	scheduled := s.runner.TryGo(ctx, func(ctx context.Context) error {
		slog.InfoContext(ctx, "scheduled job started", "job", name)

		if err := job(ctx); err != nil {
			slog.ErrorContext(ctx, "scheduled job failed", "job", name, "error", err)
			return nil
		}

		slog.InfoContext(ctx, "scheduled job finished", "job", name)
		return nil
	})
	if !scheduled {
		slog.WarnContext(ctx, "scheduled job skipped, previous run still active", "job", name)
	}
}

// Start begins firing registered jobs in the background.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return
	}
	s.started = true
	s.cron.Start()
}

// Stop halts the schedule and waits for in-flight runs, or for ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.cron.Stop()
		s.started = false
	}
	s.mu.Unlock()

	done := make(chan error, 1)
	go func() {
		done <- s.runner.Wait()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
