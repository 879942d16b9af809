package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"docuflota/internal/model"
	"docuflota/internal/notifier"
	"docuflota/internal/service"
)

// Status is a snapshot of the scheduler's state.
type Status struct {
	Running   bool       `json:"running"`
	CronSpec  string     `json:"cron_spec"`
	Timezone  string     `json:"timezone"`
	NextRun   *time.Time `json:"next_run,omitempty"`
	LastRun   *time.Time `json:"last_run,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// Scheduler owns the daily report job: reconcile every document's status,
// then generate the expiration report and mail it to the administrator.
// It is an explicit handle: the caller decides when it starts and stops,
// and is safe for concurrent use.
type Scheduler struct {
	sync     service.Synchronizer
	reports  service.ReportService
	notifier notifier.Notifier
	to       string
	spec     string
	loc      *time.Location
	logger   zerolog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	entry   cron.EntryID
	running bool
	lastRun *time.Time
	lastErr error
}

// New constructs the scheduler. cronSpec uses the standard five-field format;
// tz names the IANA zone the spec is evaluated in.
func New(syncer service.Synchronizer, reports service.ReportService, n notifier.Notifier, to, cronSpec, tz string, logger zerolog.Logger) (*Scheduler, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", tz, err)
	}
	if _, err := cron.ParseStandard(cronSpec); err != nil {
		return nil, fmt.Errorf("parse cron spec %q: %w", cronSpec, err)
	}
	return &Scheduler{
		sync:     syncer,
		reports:  reports,
		notifier: n,
		to:       to,
		spec:     cronSpec,
		loc:      loc,
		logger:   logger.With().Str("component", "scheduler").Logger(),
	}, nil
}

// Start schedules the daily job. Starting an already running scheduler is an
// error.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return errors.New("scheduler already running")
	}

	s.cron = cron.New(cron.WithLocation(s.loc))
	id, err := s.cron.AddFunc(s.spec, s.runJob)
	if err != nil {
		return err
	}
	s.entry = id
	s.cron.Start()
	s.running = true

	s.logger.Info().
		Str("cron_spec", s.spec).
		Str("timezone", s.loc.String()).
		Msg("report scheduler started")
	return nil
}

// Stop halts future runs. A run already in flight finishes; the returned
// context is done when it has.
func (s *Scheduler) Stop() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		return ctx
	}

	s.running = false
	s.logger.Info().Msg("stopping report scheduler")
	return s.cron.Stop()
}

// Status reports whether the scheduler is running and when it fires next.
func (s *Scheduler) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Status{
		Running:  s.running,
		CronSpec: s.spec,
		Timezone: s.loc.String(),
		LastRun:  s.lastRun,
	}
	if s.lastErr != nil {
		st.LastError = s.lastErr.Error()
	}
	if s.running {
		next := s.cron.Entry(s.entry).Next
		if !next.IsZero() {
			st.NextRun = &next
		}
	}
	return st
}

// RunNow executes the job immediately, outside the schedule, and returns the
// generated report.
func (s *Scheduler) RunNow(ctx context.Context) (*model.Report, error) {
	return s.run(ctx, time.Now())
}

func (s *Scheduler) runJob() {
	if _, err := s.run(context.Background(), time.Now()); err != nil {
		s.logger.Error().Err(err).Msg("scheduled report run failed")
	}
}

// run reconciles statuses first so the report reflects the stored state it
// just converged, then generates and sends the report.
func (s *Scheduler) run(ctx context.Context, now time.Time) (*model.Report, error) {
	res, err := s.sync.Run(ctx, now)
	if err != nil {
		s.recordRun(now, err)
		return nil, fmt.Errorf("status sync: %w", err)
	}

	report, err := s.reports.Generate(ctx, now)
	if err != nil {
		s.recordRun(now, err)
		return nil, fmt.Errorf("generate report: %w", err)
	}

	if err := s.notifier.SendReport(ctx, s.to, report); err != nil {
		s.recordRun(now, err)
		return report, fmt.Errorf("send report: %w", err)
	}

	s.recordRun(now, nil)
	s.logger.Info().
		Int64("statuses_changed", res.Total()).
		Int("tracked_documents", report.Summary.TotalTracked).
		Msg("daily report run completed")
	return report, nil
}

func (s *Scheduler) recordRun(now time.Time, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := now
	s.lastRun = &t
	s.lastErr = err
}
